package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// CSV reading and ingestion functions.

// ReadCSVTable parses CSV data in memory into a Table. The first row is
// the header; empty column names are normalized to Unnamed_A, Unnamed_B,
// etc. Ragged rows are kept as-is (missing trailing cells read back as
// empty strings), and rows with unrecoverable parse errors are skipped
// rather than aborting the load.
func ReadCSVTable(data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data is empty")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	// Allow variable number of fields per record to handle corrupted files
	reader.FieldsPerRecord = -1

	firstRow, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	header := NormalizeHeaders(firstRow)

	var rows [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if rec == nil {
				continue
			}
		}
		rows = append(rows, rec)
	}

	return &Table{Header: header, Rows: rows}, nil
}
