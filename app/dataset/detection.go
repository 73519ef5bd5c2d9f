package dataset

import (
	"strings"
)

// compressionExtensions maps compression extensions to their CompressionType
var compressionExtensions = map[string]CompressionType{
	".gz":  CompressionGzip,
	".bz2": CompressionBzip2,
	".xz":  CompressionXZ,
}

// DetectFileType determines the file type based on the file extension.
//
// Supported file types:
//   - CSV (.csv)
//   - XLSX (.xlsx)
//   - JSON (.json)
//
// Returns FileTypeUnknown for anything else. This function does NOT handle
// compressed files. Use DetectFileTypeAndCompression instead.
func DetectFileType(filePath string) FileType {
	if filePath == "" {
		return FileTypeUnknown
	}

	lower := strings.ToLower(filePath)

	if strings.HasSuffix(lower, ".csv") {
		return FileTypeCSV
	}
	if strings.HasSuffix(lower, ".xlsx") {
		return FileTypeXLSX
	}
	if strings.HasSuffix(lower, ".json") {
		return FileTypeJSON
	}

	return FileTypeUnknown
}

// DetectFileTypeAndCompression determines both the file type and
// compression type. It checks for double extensions (e.g. .csv.gz) first
// and falls back to magic byte detection when no compression extension is
// present but the file might still be compressed.
//
// Returns the inner file type and compression type.
func DetectFileTypeAndCompression(filePath string) (FileType, CompressionType) {
	if filePath == "" {
		return FileTypeUnknown, CompressionNone
	}

	lower := strings.ToLower(filePath)

	compressionType := CompressionNone
	innerPath := lower
	for ext, ct := range compressionExtensions {
		if strings.HasSuffix(lower, ext) {
			compressionType = ct
			innerPath = strings.TrimSuffix(lower, ext)
			break
		}
	}

	if compressionType == CompressionNone {
		// No compression extension; check magic bytes in case the file
		// was compressed without being renamed
		if detected, err := DetectCompressionByMagic(filePath); err == nil {
			compressionType = detected
		}
	}

	return DetectFileType(innerPath), compressionType
}
