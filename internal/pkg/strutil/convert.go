// Package strutil contains small string conversion helpers used by the API layer.
package strutil

import (
	"fmt"
	"strconv"
)

// ParseInt parses s as an int. Unlike strconv.Atoi the error names the
// offending value so it can be surfaced to API clients as-is.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer", s)
	}
	return v, nil
}

// ParseInt64 parses s as an int64.
func ParseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer", s)
	}
	return v, nil
}
