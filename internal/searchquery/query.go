package searchquery

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidQuery = errors.New("invalid search query")

// StringFilter restricts a string-valued facet to included and/or excluded values.
type StringFilter struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

func (f *StringFilter) isEmpty() bool {
	return f == nil || (len(f.Include) == 0 && len(f.Exclude) == 0)
}

type Filters struct {
	SourceIDs *StringFilter `json:"sourceIds,omitempty"`
}

func (f *Filters) isEmpty() bool {
	return f == nil || f.SourceIDs.isEmpty()
}

// SearchQuery is the structured node search filter carried in the "query" URL parameter.
type SearchQuery struct {
	Text    string   `json:"text,omitempty"`
	Filters *Filters `json:"filters,omitempty"`
}

// IsEmpty reports whether the query carries no meaningful filter.
func (q *SearchQuery) IsEmpty() bool {
	return q == nil || (q.Text == "" && q.Filters.isEmpty())
}

// IncludeSourceIDs returns the included source ids, nil when there is no such filter.
func (q *SearchQuery) IncludeSourceIDs() []string {
	if q == nil || q.Filters == nil || q.Filters.SourceIDs == nil {
		return nil
	}
	return q.Filters.SourceIDs.Include
}

// Normalize drops empty filter branches so that "no filter" has a single representation.
func (q SearchQuery) Normalize() SearchQuery {
	if q.Filters.isEmpty() {
		q.Filters = nil
		return q
	}
	sourceIDs := *q.Filters.SourceIDs
	if len(sourceIDs.Include) == 0 {
		sourceIDs.Include = nil
	}
	if len(sourceIDs.Exclude) == 0 {
		sourceIDs.Exclude = nil
	}
	q.Filters = &Filters{SourceIDs: &sourceIDs}
	return q
}

// Encode serializes the query for the URL. The boolean is false when the parameter
// must be omitted because the query has no meaningful filter.
func Encode(q *SearchQuery) (string, bool) {
	if q.IsEmpty() {
		return "", false
	}

	normalized := q.Normalize()
	data, err := json.Marshal(normalized)
	if err != nil {
		return "", false
	}

	return string(data), true
}

// Decode parses the "query" URL parameter. An absent or empty parameter yields nil.
func Decode(value string) (*SearchQuery, error) {
	if value == "" {
		return nil, nil
	}

	var q SearchQuery
	if err := json.Unmarshal([]byte(value), &q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	normalized := q.Normalize()
	return &normalized, nil
}

// Equal compares two queries structurally over their JSON serialization.
func Equal(left, right *SearchQuery) bool {
	l, lok := Encode(left)
	r, rok := Encode(right)
	return lok == rok && l == r
}
