package utils

import (
	"net/url"
	"strconv"
)

// QueryInt safely parses an integer from query parameters.
// If missing or invalid, returns the provided default.
func QueryInt(q url.Values, key string, def int) int {
	v := q.Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// QueryFloat parses a float query parameter, reporting whether it was present
// and well-formed.
func QueryFloat(q url.Values, key string) (float64, bool) {
	v := q.Get(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
