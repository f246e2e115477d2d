package roster

import (
	"encoding/csv"
	"fmt"
	"io"
)

func ReadCSV(in io.Reader) (*Roster, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return FromRecords(records)
}

// WriteCSV writes the header and every row in roster order.
func (r *Roster) WriteCSV(out io.Writer) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(r.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(r.Rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
