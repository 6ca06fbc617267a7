package mcpadapter

import (
	"context"
	"testing"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/explorer"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/kg"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
)

type fakeExplorer struct {
	kgID        string
	window      searchquery.Window
	nodeID      string
	view        kg.NodeView
	benchmarkID string
}

func (f *fakeExplorer) NodeSearchPage(_ context.Context, kgID string, window searchquery.Window) (*explorer.NodeSearchView, error) {
	f.kgID, f.window = kgID, window
	return &explorer.NodeSearchView{KgID: kgID, Window: window}, nil
}

func (f *fakeExplorer) NodeDetail(_ context.Context, kgID, nodeID string, view kg.NodeView) (*explorer.NodeDetailView, error) {
	f.kgID, f.nodeID, f.view = kgID, nodeID, view
	return &explorer.NodeDetailView{KgID: kgID, ID: nodeID, View: view}, nil
}

func (f *fakeExplorer) Search(_ context.Context, kgID, text string, limit int) ([]explorer.SearchHit, error) {
	f.kgID = kgID
	return []explorer.SearchHit{{Label: text}}, nil
}

func (f *fakeExplorer) QuestionsTable(_ context.Context, benchmarkID, datasetID, submissionID string, window searchquery.Window) (*explorer.QuestionsView, error) {
	f.benchmarkID, f.window = benchmarkID, window
	return &explorer.QuestionsView{BenchmarkID: benchmarkID, DatasetID: datasetID}, nil
}

func TestNodeSearchHandler(t *testing.T) {
	fake := &fakeExplorer{}
	handler := NewNodeSearchHandler(fake, "cskg")

	_, view, err := handler(context.Background(), nil, NodeSearchInput{
		Text:      "dog",
		SourceIDs: []string{"A"},
		Limit:     25,
		Page:      2,
	})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	if fake.kgID != "cskg" {
		t.Errorf("expected default KG, got %s", fake.kgID)
	}
	if fake.window.Limit != 25 || fake.window.Offset != 50 {
		t.Errorf("unexpected window %+v", fake.window)
	}
	if ids := fake.window.Query.IncludeSourceIDs(); len(ids) != 1 || ids[0] != "A" {
		t.Errorf("expected source filter, got %v", ids)
	}
	if view.KgID != "cskg" {
		t.Errorf("unexpected view %+v", view)
	}
}

func TestNodeSearchHandler_NegativePage(t *testing.T) {
	handler := NewNodeSearchHandler(&fakeExplorer{}, "cskg")

	if _, _, err := handler(context.Background(), nil, NodeSearchInput{Page: -1}); err == nil {
		t.Error("expected an error for a negative page")
	}
}

func TestNodeHandler(t *testing.T) {
	tests := []struct {
		name       string
		input      NodeInput
		expectView kg.NodeView
		expectErr  bool
	}{
		{name: "default view", input: NodeInput{NodeID: "dog"}, expectView: kg.NodeViewGrid},
		{name: "list view with explicit kg", input: NodeInput{KgID: "wn", NodeID: "dog", View: "list"}, expectView: kg.NodeViewList},
		{name: "unknown view", input: NodeInput{NodeID: "dog", View: "table"}, expectErr: true},
		{name: "missing node", input: NodeInput{}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExplorer{}
			_, view, err := NewNodeHandler(fake, "cskg")(context.Background(), nil, tt.input)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("handler failed: %v", err)
			}
			if view.View != tt.expectView {
				t.Errorf("expected view %s, got %s", tt.expectView, view.View)
			}
			if tt.input.KgID != "" && fake.kgID != tt.input.KgID {
				t.Errorf("expected KG %s, got %s", tt.input.KgID, fake.kgID)
			}
		})
	}
}

func TestSearchHandler(t *testing.T) {
	_, output, err := NewSearchHandler(&fakeExplorer{}, "cskg")(context.Background(), nil, SearchInput{Text: "dog"})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if len(output.Hits) != 1 || output.Hits[0].Label != "dog" {
		t.Errorf("unexpected output %+v", output)
	}
}

func TestQuestionsHandler(t *testing.T) {
	fake := &fakeExplorer{}
	handler := NewQuestionsHandler(fake)

	if _, _, err := handler(context.Background(), nil, QuestionsInput{BenchmarkID: "csqa"}); err == nil {
		t.Error("expected an error without dataset_id")
	}

	_, view, err := handler(context.Background(), nil, QuestionsInput{BenchmarkID: "csqa", DatasetID: "dev", Page: 1})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if view.BenchmarkID != "csqa" || fake.window.Offset != 10 {
		t.Errorf("unexpected call, view %+v window %+v", view, fake.window)
	}
}
