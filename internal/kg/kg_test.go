package kg

import (
	"testing"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/models"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
)

func ptr(s string) *string {
	return &s
}

func TestMakeTitle(t *testing.T) {
	sources := []models.KgSource{{ID: "A", Label: "Alpha"}}

	tests := []struct {
		name   string
		count  int
		query  *searchquery.SearchQuery
		expect string
	}{
		{
			name:   "text only",
			count:  3,
			query:  &searchquery.SearchQuery{Text: "foo"},
			expect: `3 results for "foo"`,
		},
		{
			name:  "included sources with unknown id",
			count: 7,
			query: &searchquery.SearchQuery{Filters: &searchquery.Filters{
				SourceIDs: &searchquery.StringFilter{Include: []string{"A", "Z"}},
			}},
			expect: "7 results in Alpha, Z",
		},
		{
			name:  "text and sources",
			count: 1,
			query: &searchquery.SearchQuery{Text: "dog", Filters: &searchquery.Filters{
				SourceIDs: &searchquery.StringFilter{Include: []string{"A"}},
			}},
			expect: `1 results for "dog" in Alpha`,
		},
		{
			name:  "exclude only has no in clause",
			count: 2,
			query: &searchquery.SearchQuery{Filters: &searchquery.Filters{
				SourceIDs: &searchquery.StringFilter{Exclude: []string{"A"}},
			}},
			expect: "2 results",
		},
		{
			name:   "no query",
			count:  0,
			query:  nil,
			expect: "0 results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeTitle(tt.count, tt.query, sources); got != tt.expect {
				t.Errorf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestGroupByPredicate(t *testing.T) {
	target := &models.KgNode{ID: "n2"}

	t.Run("skips edges without target or predicate", func(t *testing.T) {
		edges := []models.KgEdge{
			{ID: "e1", Predicate: ptr("p1"), ObjectNode: target},
			{ID: "e2", Predicate: ptr("p1"), ObjectNode: nil},
			{ID: "e3", Predicate: nil, ObjectNode: target},
		}

		groups := GroupByPredicate(edges)

		if len(groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(groups))
		}
		if groups[0].Predicate != "p1" || len(groups[0].Edges) != 1 || groups[0].Edges[0].ID != "e1" {
			t.Errorf("unexpected group %+v", groups[0])
		}
	})

	t.Run("keeps first-seen order", func(t *testing.T) {
		edges := []models.KgEdge{
			{ID: "e1", Predicate: ptr("zeta"), ObjectNode: target},
			{ID: "e2", Predicate: ptr("alpha"), ObjectNode: target},
			{ID: "e3", Predicate: ptr("zeta"), ObjectNode: target},
		}

		groups := GroupByPredicate(edges)

		if len(groups) != 2 || groups[0].Predicate != "zeta" || groups[1].Predicate != "alpha" {
			t.Fatalf("unexpected groups %+v", groups)
		}
		if len(groups[0].Edges) != 2 || groups[0].Edges[1].ID != "e3" {
			t.Errorf("expected zeta to hold e1 and e3, got %+v", groups[0].Edges)
		}
	})
}

func TestNodeTitle(t *testing.T) {
	tests := []struct {
		name   string
		node   models.KgNode
		expect string
	}{
		{name: "label", node: models.KgNode{ID: "/c/en/dog", Label: ptr("dog")}, expect: "dog"},
		{name: "id fallback", node: models.KgNode{ID: "/c/en/dog"}, expect: "/c/en/dog"},
		{name: "with pos", node: models.KgNode{ID: "x", Label: ptr("dog"), Pos: ptr("n")}, expect: "dog (n)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NodeTitle(tt.node); got != tt.expect {
				t.Errorf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestUniqueAliases(t *testing.T) {
	got := UniqueAliases([]string{"hound", "dog", "hound", "canine", "dog"})
	expect := []string{"hound", "dog", "canine"}

	if len(got) != len(expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
	for i := range expect {
		if got[i] != expect[i] {
			t.Errorf("position %d: expected %s, got %s", i, expect[i], got[i])
		}
	}
}

func TestSourcePillLabel(t *testing.T) {
	source := models.KgSource{ID: "wn", Label: "WordNet"}

	if got := SourcePillLabel(source, false); got != "wn: WordNet" {
		t.Errorf("unexpected label %q", got)
	}
	if got := SourcePillLabel(source, true); got != "wn" {
		t.Errorf("unexpected id-only label %q", got)
	}
}

func TestSourcePalette(t *testing.T) {
	palette := NewSourcePalette()

	first := palette.Color("wn")
	second := palette.Color("cn")

	if first == second {
		t.Error("expected distinct colors for distinct sources")
	}
	if palette.Color("wn") != first {
		t.Error("expected a stable color per source")
	}
	if first != "#4e79a7" {
		t.Errorf("expected first color of the scheme, got %s", first)
	}
}

func TestNodeTabs(t *testing.T) {
	tabs := NodeTabs("cskg", "/c/en/dog")

	if len(tabs) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(tabs))
	}
	if tabs[0].Href != "/kg/cskg/node/%2Fc%2Fen%2Fdog" {
		t.Errorf("unexpected grid href %s", tabs[0].Href)
	}
	if tabs[1].Href != "/kg/cskg/node/%2Fc%2Fen%2Fdog/list" {
		t.Errorf("unexpected list href %s", tabs[1].Href)
	}
}
