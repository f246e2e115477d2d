// Package roster reads and writes competitor lists. A roster is a table with
// a header row naming at least an identifier column (tag, identifier, name or
// player), a region column and a rank column; other columns ride along
// untouched so a solved order can be written back out in full.
package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"nickandperla.net/pool_seeding/scoring"
)

var (
	ErrMissingColumn = errors.New("roster is missing a required column")
	ErrInvalidRow    = errors.New("invalid roster row")
)

var (
	identifierColumns = []string{"tag", "identifier", "name", "player"}
	regionColumns     = []string{"region"}
	rankColumns       = []string{"rank"}
)

// Roster keeps the source table alongside the parsed competitors. Rows[i]
// produced Competitors[i].
type Roster struct {
	Header      []string
	Rows        [][]string
	Competitors []scoring.Competitor
}

type columns struct {
	identifier, region, rank int
}

func findColumn(header []string, names []string) int {
	fold := cases.Fold()
	for _, name := range names {
		for i, h := range header {
			if fold.String(strings.TrimSpace(h)) == name {
				return i
			}
		}
	}
	return -1
}

func findColumns(header []string) (columns, error) {
	c := columns{
		identifier: findColumn(header, identifierColumns),
		region:     findColumn(header, regionColumns),
		rank:       findColumn(header, rankColumns),
	}
	switch {
	case c.identifier < 0:
		return c, fmt.Errorf("%w: one of %s", ErrMissingColumn, strings.Join(identifierColumns, ", "))
	case c.region < 0:
		return c, fmt.Errorf("%w: region", ErrMissingColumn)
	case c.rank < 0:
		return c, fmt.Errorf("%w: rank", ErrMissingColumn)
	}
	return c, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// FromRecords builds a roster from a header row followed by data rows. Blank
// rows are skipped and short rows are padded to the header width.
func FromRecords(records [][]string) (*Roster, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMissingColumn)
	}
	header := records[0]
	cols, err := findColumns(header)
	if err != nil {
		return nil, err
	}

	r := &Roster{Header: header}
	for i, record := range records[1:] {
		line := i + 2
		if blank(record) {
			continue
		}
		row := make([]string, max(len(header), len(record)))
		copy(row, record)

		identifier := strings.TrimSpace(row[cols.identifier])
		if identifier == "" {
			return nil, fmt.Errorf("%w: row %d has no %s", ErrInvalidRow, line, header[cols.identifier])
		}
		rank, err := strconv.Atoi(strings.TrimSpace(row[cols.rank]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d has rank %q: %v", ErrInvalidRow, line, row[cols.rank], err)
		}

		r.Rows = append(r.Rows, row)
		r.Competitors = append(r.Competitors, scoring.Competitor{
			Identifier: identifier,
			Region:     strings.TrimSpace(row[cols.region]),
			Rank:       rank,
		})
	}
	if len(r.Competitors) == 0 {
		return nil, fmt.Errorf("%w: roster has no competitors", ErrInvalidRow)
	}
	return r, nil
}

// Reorder returns a roster whose rows follow order, given as indices into r.
func (r *Roster) Reorder(order []int) (*Roster, error) {
	if len(order) != len(r.Rows) {
		return nil, fmt.Errorf("order has %d entries for %d rows", len(order), len(r.Rows))
	}
	out := &Roster{
		Header:      r.Header,
		Rows:        make([][]string, len(order)),
		Competitors: make([]scoring.Competitor, len(order)),
	}
	seen := make([]bool, len(order))
	for i, idx := range order {
		if idx < 0 || idx >= len(r.Rows) || seen[idx] {
			return nil, fmt.Errorf("order is not a permutation: index %d at position %d", idx, i)
		}
		seen[idx] = true
		out.Rows[i] = r.Rows[idx]
		out.Competitors[i] = r.Competitors[idx]
	}
	return out, nil
}
