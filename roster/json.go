package roster

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ReadJSON reads an array of player objects. path selects the array inside
// the document using gjson syntax; an empty path means the document itself.
// The first object's keys become the header.
func ReadJSON(data []byte, path string) (*Roster, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidRow)
	}
	players := gjson.ParseBytes(data)
	if path != "" {
		players = players.Get(path)
	}
	if !players.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of players", ErrInvalidRow)
	}

	var header []string
	players.Get("0").ForEach(func(key, _ gjson.Result) bool {
		header = append(header, key.String())
		return true
	})

	records := [][]string{header}
	var err error
	n := 0
	players.ForEach(func(_, player gjson.Result) bool {
		n++
		if !player.IsObject() {
			err = fmt.Errorf("%w: player %d is not an object", ErrInvalidRow, n)
			return false
		}
		fields := make(map[string]string, len(header))
		player.ForEach(func(key, value gjson.Result) bool {
			fields[key.String()] = value.String()
			return true
		})
		row := make([]string, len(header))
		for j, key := range header {
			row[j] = fields[key]
		}
		records = append(records, row)
		return true
	})
	if err != nil {
		return nil, err
	}
	return FromRecords(records)
}
