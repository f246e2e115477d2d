package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Read picks a reader from the file extension. An empty path or "-" reads
// CSV from stdin.
func Read(path, sheet string) (*Roster, error) {
	if path == "" || path == "-" {
		return ReadCSV(os.Stdin)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, sheet)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ReadJSON(data, "")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
