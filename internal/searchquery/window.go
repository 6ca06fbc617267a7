package searchquery

import (
	"net/url"
	"strconv"
)

const (
	LimitDefault  = 10
	OffsetDefault = 0

	ParamLimit  = "limit"
	ParamOffset = "offset"
	ParamQuery  = "query"
)

// Window describes one page of search results.
type Window struct {
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
	Query  SearchQuery `json:"query"`
}

func DefaultWindow() Window {
	return Window{Limit: LimitDefault, Offset: OffsetDefault}
}

// ParseWindow reads the window from URL parameters. Absent or unusable limit/offset
// values fall back to the defaults; a malformed query is an error.
func ParseWindow(values url.Values) (Window, error) {
	window := DefaultWindow()

	if limit, err := strconv.Atoi(values.Get(ParamLimit)); err == nil && limit > 0 {
		window.Limit = limit
	}

	if offset, err := strconv.Atoi(values.Get(ParamOffset)); err == nil && offset >= 0 {
		window.Offset = offset
	}

	query, err := Decode(values.Get(ParamQuery))
	if err != nil {
		return window, err
	}
	if query != nil {
		window.Query = *query
	}

	return window, nil
}

// Values encodes the window as URL parameters, omitting an empty query.
func (w Window) Values() url.Values {
	values := url.Values{}
	values.Set(ParamLimit, strconv.Itoa(w.Limit))
	values.Set(ParamOffset, strconv.Itoa(w.Offset))
	if encoded, ok := Encode(&w.Query); ok {
		values.Set(ParamQuery, encoded)
	}
	return values
}

// Equal reports whether two windows select the same page of the same query.
func (w Window) Equal(other Window) bool {
	return w.Limit == other.Limit && w.Offset == other.Offset && Equal(&w.Query, &other.Query)
}
