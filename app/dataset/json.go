package dataset

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ohler55/ojg/oj"
)

// JSON reading and ingestion functions. A JSON dataset is a top-level
// array of flat objects; each object becomes one row. The header is the
// union of all keys, in order of first appearance, with keys seen later
// appended in sorted order per object to keep loads deterministic.

// ReadJSONTable parses JSON data in memory into a Table.
func ReadJSONTable(data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data is empty")
	}

	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	arr, ok := parsed.([]interface{})
	if !ok {
		return nil, fmt.Errorf("JSON dataset must be an array of objects")
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("JSON dataset is empty")
	}

	// First pass: build the unified header
	var header []string
	seen := make(map[string]int)
	for _, item := range arr {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		newKeys := make([]string, 0, len(obj))
		for k := range obj {
			if _, exists := seen[k]; !exists {
				newKeys = append(newKeys, k)
			}
		}
		// Map iteration order is random; sort the unseen keys of each
		// object so repeated loads produce the same header
		sort.Strings(newKeys)
		for _, k := range newKeys {
			seen[k] = len(header)
			header = append(header, k)
		}
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("JSON dataset contains no objects")
	}

	// Second pass: flatten objects into rows
	rows := make([][]string, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		row := make([]string, len(header))
		for k, v := range obj {
			row[seen[k]] = stringifyJSONValue(v)
		}
		rows = append(rows, row)
	}

	return &Table{Header: NormalizeHeaders(header), Rows: rows}, nil
}

// stringifyJSONValue renders a scalar JSON value the way it would appear
// in a CSV cell. Nested values fall back to their JSON encoding.
func stringifyJSONValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return oj.JSON(val)
	}
}
