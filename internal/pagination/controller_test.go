package pagination

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"runtime"
	"sync"
	"testing"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/graphql"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
	"github.com/rs/zerolog"
)

type recordingNavigator struct {
	mu     sync.Mutex
	values []url.Values
}

func (n *recordingNavigator) Navigate(values url.Values) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.values = append(n.values, values)
}

func (n *recordingNavigator) last() url.Values {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.values) == 0 {
		return nil
	}
	return n.values[len(n.values)-1]
}

// rowsFor returns limit rows labelled with their absolute offsets.
func rowsFor(window searchquery.Window) []string {
	rows := make([]string, 0, window.Limit)
	for i := 0; i < window.Limit; i++ {
		rows = append(rows, fmt.Sprintf("row-%d", window.Offset+i))
	}
	return rows
}

func staticFetcher(total int) (Fetcher[string], *[]searchquery.Window) {
	var requested []searchquery.Window
	fetcher := FetcherFunc[string](func(_ context.Context, window searchquery.Window) graphql.Result[Page[string]] {
		requested = append(requested, window)
		return graphql.Success(Page[string]{Rows: rowsFor(window), TotalCount: total})
	})
	return fetcher, &requested
}

func newTestController(fetcher Fetcher[string], navigator Navigator) *Controller[string] {
	logger := zerolog.Nop()
	window := searchquery.Window{Limit: 10, Offset: 0, Query: searchquery.SearchQuery{Text: "foo"}}
	initial := Page[string]{Rows: rowsFor(window), TotalCount: 95}
	return NewController[string](window, initial, fetcher, navigator, &logger)
}

func TestController_ChangePage(t *testing.T) {
	fetcher, requested := staticFetcher(95)
	navigator := &recordingNavigator{}
	controller := newTestController(fetcher, navigator)

	if err := controller.ChangePage(context.Background(), 3); err != nil {
		t.Fatalf("ChangePage failed: %v", err)
	}

	if len(*requested) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*requested))
	}
	got := (*requested)[0]
	if got.Limit != 10 || got.Offset != 30 || got.Query.Text != "foo" {
		t.Errorf("unexpected requested window %+v", got)
	}

	state := controller.Snapshot()
	if state.PageIndex != 3 {
		t.Errorf("expected page index 3, got %d", state.PageIndex)
	}
	if state.PageCount != 10 {
		t.Errorf("expected 10 pages, got %d", state.PageCount)
	}
	if state.Rows[0] != "row-30" {
		t.Errorf("expected rows from offset 30, got %s", state.Rows[0])
	}
	if state.Status != graphql.StatusSuccess {
		t.Errorf("expected success, got %s", state.Status)
	}

	values := navigator.last()
	if values.Get("offset") != "30" || values.Get("limit") != "10" {
		t.Errorf("unexpected URL parameters %v", values)
	}
	if values.Get("query") != `{"text":"foo"}` {
		t.Errorf("expected query to be preserved, got %q", values.Get("query"))
	}
}

func TestController_ChangePageSize_ResetsOffset(t *testing.T) {
	fetcher, requested := staticFetcher(95)
	navigator := &recordingNavigator{}
	controller := newTestController(fetcher, navigator)

	if err := controller.ChangePage(context.Background(), 2); err != nil {
		t.Fatalf("ChangePage failed: %v", err)
	}
	if err := controller.ChangePageSize(context.Background(), 25); err != nil {
		t.Fatalf("ChangePageSize failed: %v", err)
	}

	got := (*requested)[1]
	if got.Limit != 25 || got.Offset != 0 {
		t.Errorf("expected {25, 0}, got {%d, %d}", got.Limit, got.Offset)
	}

	state := controller.Snapshot()
	if state.PageIndex != 0 || state.PageCount != 4 {
		t.Errorf("expected page 0 of 4, got %d of %d", state.PageIndex, state.PageCount)
	}
	if len(state.Rows) != 25 {
		t.Errorf("expected 25 rows, got %d", len(state.Rows))
	}
}

func TestController_InvalidInput(t *testing.T) {
	fetcher, requested := staticFetcher(95)
	controller := newTestController(fetcher, nil)

	if err := controller.ChangePage(context.Background(), -1); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got %v", err)
	}
	if err := controller.ChangePageSize(context.Background(), 0); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize, got %v", err)
	}
	if len(*requested) != 0 {
		t.Errorf("expected no requests, got %d", len(*requested))
	}
}

func TestController_RowsNeverExceedLimit(t *testing.T) {
	oversized := FetcherFunc[string](func(_ context.Context, window searchquery.Window) graphql.Result[Page[string]] {
		return graphql.Success(Page[string]{Rows: rowsFor(searchquery.Window{Limit: window.Limit * 2}), TotalCount: 100})
	})
	controller := newTestController(oversized, nil)

	if err := controller.ChangePage(context.Background(), 1); err != nil {
		t.Fatalf("ChangePage failed: %v", err)
	}

	if rows := controller.Snapshot().Rows; len(rows) != 10 {
		t.Errorf("expected 10 rows, got %d", len(rows))
	}
}

func TestController_ErrorKeepsRows(t *testing.T) {
	tests := []struct {
		name      string
		result    graphql.Result[Page[string]]
		expectErr error
	}{
		{
			name:      "no data",
			result:    graphql.Failure[Page[string]](graphql.ErrNoData),
			expectErr: graphql.ErrNoData,
		},
		{
			name:      "not found",
			result:    graphql.Failure[Page[string]](graphql.ErrNotFound),
			expectErr: graphql.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failing := FetcherFunc[string](func(context.Context, searchquery.Window) graphql.Result[Page[string]] {
				return tt.result
			})
			navigator := &recordingNavigator{}
			controller := newTestController(failing, navigator)

			err := controller.ChangePage(context.Background(), 4)
			if !errors.Is(err, tt.expectErr) {
				t.Fatalf("expected %v, got %v", tt.expectErr, err)
			}

			state := controller.Snapshot()
			if state.Status != graphql.StatusError {
				t.Errorf("expected error status, got %s", state.Status)
			}
			if !errors.Is(state.Err, tt.expectErr) {
				t.Errorf("expected state error %v, got %v", tt.expectErr, state.Err)
			}
			if state.PageIndex != 0 || state.Rows[0] != "row-0" {
				t.Errorf("expected previous page to be kept, got page %d starting at %s", state.PageIndex, state.Rows[0])
			}
			if navigator.last() != nil {
				t.Errorf("expected no URL write, got %v", navigator.last())
			}
		})
	}
}

func TestController_SamePageDoesNotWriteURL(t *testing.T) {
	fetcher, _ := staticFetcher(95)
	navigator := &recordingNavigator{}
	controller := newTestController(fetcher, navigator)

	if err := controller.ChangePage(context.Background(), 0); err != nil {
		t.Fatalf("ChangePage failed: %v", err)
	}

	if len(navigator.values) != 0 {
		t.Errorf("expected no URL writes, got %d", len(navigator.values))
	}
}

type gatedFetcher struct {
	gates map[int]chan struct{}
}

func (f *gatedFetcher) FetchPage(_ context.Context, window searchquery.Window) graphql.Result[Page[string]] {
	<-f.gates[window.Offset]
	return graphql.Success(Page[string]{Rows: rowsFor(window), TotalCount: 95})
}

func TestController_LatestRequestWins(t *testing.T) {
	fetcher := &gatedFetcher{gates: map[int]chan struct{}{
		10: make(chan struct{}),
		20: make(chan struct{}),
	}}
	navigator := &recordingNavigator{}
	controller := newTestController(fetcher, navigator)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- controller.ChangePage(context.Background(), 1)
	}()

	// Wait until the first request is in flight before issuing the second.
	for controller.Snapshot().Status != graphql.StatusLoading {
		runtime.Gosched()
	}

	secondDone := make(chan error, 1)
	go func() {
		secondDone <- controller.ChangePage(context.Background(), 2)
	}()
	for controller.seq.Load() != 2 {
		runtime.Gosched()
	}

	close(fetcher.gates[20])
	if err := <-secondDone; err != nil {
		t.Fatalf("second request failed: %v", err)
	}

	close(fetcher.gates[10])
	if err := <-firstDone; !errors.Is(err, ErrStale) {
		t.Fatalf("expected first request to be stale, got %v", err)
	}

	state := controller.Snapshot()
	if state.PageIndex != 2 {
		t.Errorf("expected page 2, got %d", state.PageIndex)
	}
	if state.Rows[0] != "row-20" {
		t.Errorf("expected rows from offset 20, got %s", state.Rows[0])
	}
	if got := navigator.last().Get("offset"); got != "20" {
		t.Errorf("expected URL offset 20, got %s", got)
	}
	if len(navigator.values) != 1 {
		t.Errorf("expected exactly one URL write, got %d", len(navigator.values))
	}
}

func TestWindowMath(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		limit       int
		offset      int
		expectIndex int
		expectCount int
	}{
		{name: "first page", total: 95, limit: 10, offset: 0, expectIndex: 0, expectCount: 10},
		{name: "exact multiple", total: 100, limit: 10, offset: 90, expectIndex: 9, expectCount: 10},
		{name: "unaligned offset", total: 30, limit: 10, offset: 15, expectIndex: 1, expectCount: 3},
		{name: "empty result", total: 0, limit: 10, offset: 0, expectIndex: 0, expectCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := searchquery.Window{Limit: tt.limit, Offset: tt.offset}
			if got := PageIndex(window); got != tt.expectIndex {
				t.Errorf("PageIndex: expected %d, got %d", tt.expectIndex, got)
			}
			if got := PageCount(tt.total, tt.limit); got != tt.expectCount {
				t.Errorf("PageCount: expected %d, got %d", tt.expectCount, got)
			}
		})
	}
}
