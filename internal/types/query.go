package types

import (
	"errors"
	"strings"
)

var ErrEmptyQuery = errors.New("city name is empty")

// Query is a trimmed, non-empty city name
type Query string

// NewQuery trims surrounding white space from raw and rejects the empty result.
func NewQuery(raw string) (Query, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyQuery
	}
	return Query(trimmed), nil
}

func (q Query) String() string {
	return string(q)
}
