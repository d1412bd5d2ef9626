package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt64 only accepts a complete base 10 number. Surrounding whitespace,
// trailing garbage and out of range values are rejected.
func ParseInt64(s string) (int64, error) {
	if s == "" || strings.TrimSpace(s) != s {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func ParseInt32(s string) (int32, error) {
	if s == "" || strings.TrimSpace(s) != s {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int32(v), nil
}

// SplitFields splits a colon delimited option value.
func SplitFields(s string) []string {
	return strings.Split(s, ":")
}

func FormatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
