package utils

import (
	"net/http"
	"strconv"
)

// QueryBool reads an optional boolean query parameter. A missing or
// empty parameter yields nil; a present parameter must parse strictly.
func QueryBool(r *http.Request, key string) (*bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &val, nil
}
