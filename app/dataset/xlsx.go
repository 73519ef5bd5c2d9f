package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSX (Excel) reading and ingestion functions.

// ReadXLSXTable reads the first sheet of an XLSX file into a Table. The
// first row is the header; empty column names are normalized to
// Unnamed_A, Unnamed_B, etc.
func ReadXLSXTable(filePath string) (*Table, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows found in XLSX file")
	}

	header := NormalizeHeaders(rows[0])
	return &Table{Header: header, Rows: rows[1:]}, nil
}
