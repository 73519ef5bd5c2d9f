package cache

import (
	"fmt"
	"io"
	"os"

	"github.com/minio/highwayhash"
)

// datasetHashKey is the hardcoded key used for dataset file hashing.
// A fixed key keeps dataset hashes stable across restarts, so cache
// keys computed before a reload stay comparable to those after it.
var datasetHashKey = []byte("paylens hash key\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")

// HashFile calculates a HighwayHash of the file content. The result
// identifies the dataset version in cache keys, so a changed file
// never serves stale views.
func HashFile(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash, err := highwayhash.New(datasetHashKey)
	if err != nil {
		return "", fmt.Errorf("failed to create hash: %w", err)
	}
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// Key composes a cache key from the dataset version and a canonical
// filter key ("all" for the unfiltered dashboard).
func Key(datasetHash, filterKey string) string {
	return fmt.Sprintf("data:%s|filter:%s", datasetHash, filterKey)
}

// datasetPrefix returns the key prefix shared by every entry derived
// from one dataset version.
func datasetPrefix(datasetHash string) string {
	return fmt.Sprintf("data:%s|", datasetHash)
}
