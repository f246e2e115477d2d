package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads sheet from the workbook at path, or the first sheet when
// sheet is empty.
func ReadXLSX(path, sheet string) (*Roster, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return FromRecords(rows)
}
