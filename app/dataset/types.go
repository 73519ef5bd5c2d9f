package dataset

// Package dataset provides centralized loading of the employee dataset
// from a local directory. It abstracts file type detection, compression
// handling, header normalization and row ingestion for all supported
// formats (CSV, XLSX, JSON).

// FileType represents the type of data file being processed
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeCSV
	FileTypeXLSX
	FileTypeJSON
)

// String returns the string representation of FileType
func (ft FileType) String() string {
	switch ft {
	case FileTypeCSV:
		return "CSV"
	case FileTypeXLSX:
		return "XLSX"
	case FileTypeJSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Table is an ordered sequence of records sharing one header. The header
// is stable for the lifetime of a load; individual cells may be empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// NumRows returns the number of data rows in the table.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the index of the named column, or -1 if absent.
// Lookup is exact (the resolver owns fuzzy matching).
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or "" when the row is ragged and
// does not reach col. Ragged rows occur in corrupted CSV files.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// LoadResult describes a successfully loaded dataset file.
type LoadResult struct {
	Table       *Table
	SourcePath  string
	FileType    FileType
	Compression CompressionType
	Warning     string // non-empty if decompression was incomplete
}
