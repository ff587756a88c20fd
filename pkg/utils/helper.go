package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// QueryInt reads an optional integer query parameter. A missing parameter
// yields def; a malformed one is an error.
func QueryInt(query url.Values, key string, def int) (int, error) {
	value := query.Get(key)
	if value == "" {
		return def, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return result, nil
}

// QueryInt64Ptr reads an optional int64 filter parameter; nil when absent.
func QueryInt64Ptr(query url.Values, key string) (*int64, error) {
	value := query.Get(key)
	if value == "" {
		return nil, nil
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &result, nil
}

// QueryIntPtr reads an optional integer filter parameter; nil when absent.
func QueryIntPtr(query url.Values, key string) (*int, error) {
	value := query.Get(key)
	if value == "" {
		return nil, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &result, nil
}

// ParseID parses a positive numeric route id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}
