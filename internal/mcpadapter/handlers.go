package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/explorer"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/kg"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
)

// Explorer is the subset of explorer.Service the tools need.
type Explorer interface {
	NodeSearchPage(ctx context.Context, kgID string, window searchquery.Window) (*explorer.NodeSearchView, error)
	NodeDetail(ctx context.Context, kgID, nodeID string, view kg.NodeView) (*explorer.NodeDetailView, error)
	Search(ctx context.Context, kgID, text string, limit int) ([]explorer.SearchHit, error)
	QuestionsTable(ctx context.Context, benchmarkID, datasetID, submissionID string, window searchquery.Window) (*explorer.QuestionsView, error)
}

// NodeSearchInput is the MCP tool input schema for a node search page.
type NodeSearchInput struct {
	KgID      string   `json:"kg_id,omitempty" jsonschema:"knowledge graph id, defaults to the configured KG"`
	Text      string   `json:"text,omitempty" jsonschema:"free text to match node labels"`
	SourceIDs []string `json:"source_ids,omitempty" jsonschema:"only return nodes from these sources"`
	Limit     int      `json:"limit,omitempty" jsonschema:"page size (default 10)"`
	Page      int      `json:"page,omitempty" jsonschema:"zero-based page index"`
}

type NodeInput struct {
	KgID   string `json:"kg_id,omitempty" jsonschema:"knowledge graph id, defaults to the configured KG"`
	NodeID string `json:"node_id" jsonschema:"node identifier"`
	View   string `json:"view,omitempty" jsonschema:"grid or list (default grid)"`
}

type SearchInput struct {
	KgID  string `json:"kg_id,omitempty" jsonschema:"knowledge graph id, defaults to the configured KG"`
	Text  string `json:"text" jsonschema:"search text"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

// SearchOutput wraps the hits; tool results must be objects.
type SearchOutput struct {
	Hits []explorer.SearchHit `json:"hits"`
}

type QuestionsInput struct {
	BenchmarkID  string `json:"benchmark_id" jsonschema:"benchmark identifier"`
	DatasetID    string `json:"dataset_id" jsonschema:"dataset identifier"`
	SubmissionID string `json:"submission_id,omitempty" jsonschema:"submission whose answers the rows link to"`
	Limit        int    `json:"limit,omitempty" jsonschema:"page size (default 10)"`
	Page         int    `json:"page,omitempty" jsonschema:"zero-based page index"`
}

func window(limit, page int) (searchquery.Window, error) {
	if limit <= 0 {
		limit = searchquery.LimitDefault
	}
	if page < 0 {
		return searchquery.Window{}, fmt.Errorf("page must not be negative, got %d", page)
	}
	return searchquery.Window{Limit: limit, Offset: page * limit}, nil
}

func kgOrDefault(kgID, defaultKgID string) string {
	if kgID == "" {
		return defaultKgID
	}
	return kgID
}

// NewNodeSearchHandler returns the kg_node_search tool handler.
// Pass the returned function to mcp.AddTool.
func NewNodeSearchHandler(svc Explorer, defaultKgID string) func(context.Context, *mcp.CallToolRequest, NodeSearchInput) (*mcp.CallToolResult, explorer.NodeSearchView, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input NodeSearchInput) (*mcp.CallToolResult, explorer.NodeSearchView, error) {
		w, err := window(input.Limit, input.Page)
		if err != nil {
			return nil, explorer.NodeSearchView{}, err
		}
		w.Query = searchquery.SearchQuery{Text: input.Text}
		if len(input.SourceIDs) > 0 {
			w.Query.Filters = &searchquery.Filters{SourceIDs: &searchquery.StringFilter{Include: input.SourceIDs}}
		}

		view, err := svc.NodeSearchPage(ctx, kgOrDefault(input.KgID, defaultKgID), w)
		if err != nil {
			return nil, explorer.NodeSearchView{}, err
		}
		return nil, *view, nil
	}
}

// NewNodeHandler returns the kg_node tool handler.
func NewNodeHandler(svc Explorer, defaultKgID string) func(context.Context, *mcp.CallToolRequest, NodeInput) (*mcp.CallToolResult, explorer.NodeDetailView, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input NodeInput) (*mcp.CallToolResult, explorer.NodeDetailView, error) {
		if input.NodeID == "" {
			return nil, explorer.NodeDetailView{}, fmt.Errorf("node_id is required")
		}

		view := kg.NodeView(input.View)
		switch view {
		case "":
			view = kg.NodeViewGrid
		case kg.NodeViewGrid, kg.NodeViewList:
		default:
			return nil, explorer.NodeDetailView{}, fmt.Errorf("unknown view %q", input.View)
		}

		detail, err := svc.NodeDetail(ctx, kgOrDefault(input.KgID, defaultKgID), input.NodeID, view)
		if err != nil {
			return nil, explorer.NodeDetailView{}, err
		}
		return nil, *detail, nil
	}
}

// NewSearchHandler returns the kg_search tool handler.
func NewSearchHandler(svc Explorer, defaultKgID string) func(context.Context, *mcp.CallToolRequest, SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		hits, err := svc.Search(ctx, kgOrDefault(input.KgID, defaultKgID), input.Text, input.Limit)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		return nil, SearchOutput{Hits: hits}, nil
	}
}

// NewQuestionsHandler returns the benchmark_questions tool handler.
func NewQuestionsHandler(svc Explorer) func(context.Context, *mcp.CallToolRequest, QuestionsInput) (*mcp.CallToolResult, explorer.QuestionsView, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input QuestionsInput) (*mcp.CallToolResult, explorer.QuestionsView, error) {
		if input.BenchmarkID == "" || input.DatasetID == "" {
			return nil, explorer.QuestionsView{}, fmt.Errorf("benchmark_id and dataset_id are required")
		}

		w, err := window(input.Limit, input.Page)
		if err != nil {
			return nil, explorer.QuestionsView{}, err
		}

		view, err := svc.QuestionsTable(ctx, input.BenchmarkID, input.DatasetID, input.SubmissionID, w)
		if err != nil {
			return nil, explorer.QuestionsView{}, err
		}
		return nil, *view, nil
	}
}
