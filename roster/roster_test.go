package roster

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nickandperla.net/pool_seeding/scoring"
)

const players = `Tag, Region, Rank, Notes
alpha, NEOH, 1, returning
bravo, Cincinnati, 1,
charlie, NEOH, 2, first event

delta, Columbus, 2, late
`

func TestReadCSV(t *testing.T) {
	r, err := ReadCSV(strings.NewReader(players))
	require.NoError(t, err)

	assert.Equal(t, []string{"Tag", "Region", "Rank", "Notes"}, r.Header)
	require.Len(t, r.Competitors, 4)
	require.Len(t, r.Rows, 4)
	assert.Equal(t, scoring.Competitor{Identifier: "alpha", Region: "NEOH", Rank: 1}, r.Competitors[0])
	assert.Equal(t, scoring.Competitor{Identifier: "delta", Region: "Columbus", Rank: 2}, r.Competitors[3])
	assert.Equal(t, "late", r.Rows[3][3])
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("tag,rank\nalpha,1\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadCSV(strings.NewReader("tag,region,rank\nalpha,NEOH,first\n"))
	assert.ErrorIs(t, err, ErrInvalidRow)
	assert.Contains(t, err.Error(), "row 2")

	_, err = ReadCSV(strings.NewReader("tag,region,rank\n,NEOH,1\n"))
	assert.ErrorIs(t, err, ErrInvalidRow)

	_, err = ReadCSV(strings.NewReader("tag,region,rank\n"))
	assert.ErrorIs(t, err, ErrInvalidRow)

	_, err = ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestIdentifierColumnAliases(t *testing.T) {
	r, err := ReadCSV(strings.NewReader("Player Name,NAME,REGION,RANK\nx,alpha,NEOH,3\n"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", r.Competitors[0].Identifier)
	assert.Equal(t, 3, r.Competitors[0].Rank)
}

func TestReorderAndWriteCSV(t *testing.T) {
	r, err := ReadCSV(strings.NewReader(players))
	require.NoError(t, err)

	reordered, err := r.Reorder([]int{3, 1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, "delta", reordered.Competitors[0].Identifier)
	assert.Equal(t, "charlie", reordered.Competitors[3].Identifier)

	var out bytes.Buffer
	require.NoError(t, reordered.WriteCSV(&out))
	assert.Equal(t, "Tag,Region,Rank,Notes\n"+
		"delta,Columbus,2,late\n"+
		"bravo,Cincinnati,1,\n"+
		"alpha,NEOH,1,returning\n"+
		"charlie,NEOH,2,first event\n", out.String())

	_, err = r.Reorder([]int{0, 1, 2})
	assert.Error(t, err)
	_, err = r.Reorder([]int{0, 1, 1, 2})
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	data := []byte(`{"event": "weekly", "players": [
		{"tag": "alpha", "region": "NEOH", "rank": 1},
		{"region": "Dayton", "tag": "bravo", "rank": 2, "extra": true}
	]}`)
	r, err := ReadJSON(data, "players")
	require.NoError(t, err)

	assert.Equal(t, []string{"tag", "region", "rank"}, r.Header)
	assert.Equal(t, []scoring.Competitor{
		{Identifier: "alpha", Region: "NEOH", Rank: 1},
		{Identifier: "bravo", Region: "Dayton", Rank: 2},
	}, r.Competitors)

	_, err = ReadJSON([]byte(`{"players": 3}`), "players")
	assert.ErrorIs(t, err, ErrInvalidRow)
	_, err = ReadJSON([]byte(`[{"tag": "a", "region": "b", "rank": 1}, 4]`), "")
	assert.ErrorIs(t, err, ErrInvalidRow)
	_, err = ReadJSON([]byte(`[{`), "")
	assert.ErrorIs(t, err, ErrInvalidRow)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("Players")
	require.NoError(t, err)
	rows := [][]any{
		{"Tag", "Region", "Rank"},
		{"alpha", "NEOH", 1},
		{"bravo", "Cincinnati", 2},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Players", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	r, err := ReadXLSX(path, "Players")
	require.NoError(t, err)
	assert.Equal(t, []scoring.Competitor{
		{Identifier: "alpha", Region: "NEOH", Rank: 1},
		{Identifier: "bravo", Region: "Cincinnati", Rank: 2},
	}, r.Competitors)

	_, err = ReadXLSX(path, "Missing")
	assert.Error(t, err)
}

func TestReadDispatch(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "players.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(players), 0o644))
	r, err := Read(csvPath, "")
	require.NoError(t, err)
	assert.Len(t, r.Competitors, 4)

	jsonPath := filepath.Join(dir, "players.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name": "a", "region": "b", "rank": 1}]`), 0o644))
	r, err = Read(jsonPath, "")
	require.NoError(t, err)
	assert.Equal(t, "a", r.Competitors[0].Identifier)

	_, err = Read(filepath.Join(dir, "missing.csv"), "")
	assert.Error(t, err)
}
