package history

import (
	"net/url"
	"sync"
)

// History is a back/forward stack of URL parameter sets, the terminal stand-in for
// the browser location. It satisfies pagination.Navigator.
type History struct {
	mu      sync.Mutex
	entries []string
	current int
}

// New starts a history at the given location.
func New(initial url.Values) *History {
	return &History{entries: []string{initial.Encode()}}
}

// Navigate pushes values as the new current entry and drops any forward entries.
// Navigating to the current location is a no-op.
func (h *History) Navigate(values url.Values) {
	h.mu.Lock()
	defer h.mu.Unlock()

	encoded := values.Encode()
	if h.entries[h.current] == encoded {
		return
	}

	h.entries = append(h.entries[:h.current+1], encoded)
	h.current++
}

func (h *History) Back() (url.Values, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == 0 {
		return h.at(h.current), false
	}
	h.current--
	return h.at(h.current), true
}

func (h *History) Forward() (url.Values, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == len(h.entries)-1 {
		return h.at(h.current), false
	}
	h.current++
	return h.at(h.current), true
}

func (h *History) Current() url.Values {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.at(h.current)
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) at(i int) url.Values {
	values, err := url.ParseQuery(h.entries[i])
	if err != nil {
		// entries are always produced by url.Values.Encode
		return url.Values{}
	}
	return values
}
