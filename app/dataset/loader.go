package dataset

import (
	"fmt"
	"log"
	"os"
)

// Load resolves a dataset directory to a single table. It picks the first
// usable file (see FindDatasetFile), decompresses it if needed, and parses
// it according to its detected format.
//
// Any failure here is fatal to the caller: the dashboard either gets a
// table or halts with an error (no retries, no partial recovery beyond
// truncated decompression).
func Load(dirPath, pattern string) (*LoadResult, error) {
	path, err := FindDatasetFile(dirPath, pattern)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile loads a single dataset file of any supported format.
func LoadFile(path string) (*LoadResult, error) {
	fileType, compression := DetectFileTypeAndCompression(path)
	if fileType == FileTypeUnknown {
		return nil, fmt.Errorf("unsupported dataset file: %s", path)
	}

	result := &LoadResult{
		SourcePath:  path,
		FileType:    fileType,
		Compression: compression,
	}

	var table *Table
	var err error
	switch fileType {
	case FileTypeXLSX:
		// excelize reads from the file directly; XLSX is already a zip
		// container so compressed variants are not supported
		if compression != CompressionNone {
			return nil, fmt.Errorf("compressed XLSX files are not supported: %s", path)
		}
		table, err = ReadXLSXTable(path)
	case FileTypeCSV, FileTypeJSON:
		var data []byte
		if compression != CompressionNone {
			dec, decErr := DecompressFile(path, compression)
			if decErr != nil {
				return nil, fmt.Errorf("failed to decompress %s: %w", path, decErr)
			}
			data = dec.Data
			result.Warning = dec.Warning
			if dec.Warning != "" {
				log.Printf("[DATASET_LOAD] %s: %s", path, dec.Warning)
			}
		} else {
			data, err = os.ReadFile(path)
			if err != nil {
				return nil, err
			}
		}
		if fileType == FileTypeCSV {
			table, err = ReadCSVTable(data)
		} else {
			table, err = ReadJSONTable(data)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	log.Printf("[DATASET_LOAD] Loaded %s (%s, %s): %d columns, %d rows",
		path, fileType, compression, len(table.Header), len(table.Rows))

	result.Table = table
	return result, nil
}
