package dataset

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// CompressionType represents the compression format of a file
type CompressionType int

const (
	CompressionNone CompressionType = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
)

// String returns the string representation of CompressionType
func (ct CompressionType) String() string {
	switch ct {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "none"
	}
}

// Magic byte signatures for compression detection
var (
	// Gzip magic bytes: 1f 8b
	gzipMagic = []byte{0x1f, 0x8b}
	// Bzip2 magic bytes: 42 5a 68 ("BZh")
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	// XZ magic bytes: fd 37 7a 58 5a 00
	xzMagic = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// DecompressionResult contains the decompressed data and any warning
type DecompressionResult struct {
	Data    []byte
	Warning string // Non-empty if decompression was incomplete
}

// DetectCompressionByMagic reads the first few bytes of a file and
// detects the compression type.
func DetectCompressionByMagic(filePath string) (CompressionType, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return CompressionNone, err
	}
	defer f.Close()

	// XZ has the longest magic (6 bytes)
	header := make([]byte, 6)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return CompressionNone, err
	}

	if n >= 2 && bytes.HasPrefix(header, gzipMagic) {
		return CompressionGzip, nil
	}
	if n >= 3 && bytes.HasPrefix(header, bzip2Magic) {
		return CompressionBzip2, nil
	}
	if n >= 6 && bytes.HasPrefix(header, xzMagic) {
		return CompressionXZ, nil
	}

	return CompressionNone, nil
}

// DecompressFile reads a compressed file and returns the decompressed data.
// If decompression fails mid-stream, it returns partial data with a warning
// message so the caller can still work with a truncated dataset.
func DecompressFile(filePath string, compressionType CompressionType) (*DecompressionResult, error) {
	if compressionType == CompressionNone {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		return &DecompressionResult{Data: data}, nil
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader
	switch compressionType {
	case CompressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		reader = gz
	case CompressionBzip2:
		reader = bzip2.NewReader(f)
	case CompressionXZ:
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open xz stream: %w", err)
		}
		reader = xzr
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
	}

	var buf bytes.Buffer
	_, copyErr := io.Copy(&buf, reader)
	if copyErr != nil {
		if buf.Len() == 0 {
			return nil, fmt.Errorf("failed to decompress %s data: %w", compressionType, copyErr)
		}
		// Partial data recovered; keep it and report the truncation
		return &DecompressionResult{
			Data:    buf.Bytes(),
			Warning: fmt.Sprintf("decompression incomplete, recovered %d bytes: %v", buf.Len(), copyErr),
		}, nil
	}

	return &DecompressionResult{Data: buf.Bytes()}, nil
}
