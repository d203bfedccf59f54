package merge

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnresolvedPath signals that a field path is absent from the merge
// data. Callers rendering fields fall back to the field's configured
// default value; expansion never aborts a layout pass over it.
var ErrUnresolvedPath = errors.New("merge: path not present in data")

// Context is a nested key/array merge-data structure: maps hold
// sub-contexts and values, slices hold array elements addressed by
// their iteration index.
type Context map[string]interface{}

// Resolve looks up a dot-separated path. Numeric path segments index
// into arrays.
func (ctx Context) Resolve(path string) (interface{}, error) {
	var cur interface{} = map[string]interface{}(ctx)
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]interface{}:
			v, ok := node[seg]
			if !ok {
				return nil, ErrUnresolvedPath
			}
			cur = v
		case Context:
			v, ok := node[seg]
			if !ok {
				return nil, ErrUnresolvedPath
			}
			cur = v
		case []interface{}:
			k, err := strconv.Atoi(seg)
			if err != nil || k < 0 || k >= len(node) {
				return nil, ErrUnresolvedPath
			}
			cur = node[k]
		default:
			return nil, ErrUnresolvedPath
		}
	}
	return cur, nil
}

// Array resolves a path to an array. A missing path yields a zero-length
// array, so that a section bound to absent data simply vanishes.
func (ctx Context) Array(path string) []interface{} {
	v, err := ctx.Resolve(path)
	if err != nil {
		return nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	return arr
}

// String resolves a path to its display string.
func (ctx Context) String(path string) (string, error) {
	v, err := ctx.Resolve(path)
	if err != nil {
		return "", err
	}
	return displayString(v), nil
}

func displayString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	}
	return ""
}
