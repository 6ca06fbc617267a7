package explorer

import (
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/benchmark"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/kg"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/models"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
)

type SourcePill struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Href  string `json:"href"`
}

type NodeRow struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Href      string   `json:"href"`
	SourceIDs []string `json:"sourceIds"`
}

// Links are hrefs to neighbouring pages of the same query. Prev and Next are empty at the edges.
type Links struct {
	Self  string `json:"self"`
	First string `json:"first"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last"`
}

type NodeSearchView struct {
	KgID       string             `json:"kgId"`
	Title      string             `json:"title"`
	Window     searchquery.Window `json:"window"`
	Rows       []NodeRow          `json:"rows"`
	TotalCount int                `json:"totalCount"`
	PageIndex  int                `json:"pageIndex"`
	PageCount  int                `json:"pageCount"`
	PageSizes  []int              `json:"pageSizes"`
	Sources    []SourcePill       `json:"sources"`
	Links      Links              `json:"links"`
}

type NodeDetailView struct {
	KgID    string              `json:"kgId"`
	ID      string              `json:"id"`
	Title   string              `json:"title"`
	View    kg.NodeView         `json:"view"`
	Tabs    []kg.NodeTab        `json:"tabs"`
	Aliases []string            `json:"aliases,omitempty"`
	Sources []SourcePill        `json:"sources"`
	Groups  []kg.PredicateGroup `json:"groups"`
}

type SearchHit struct {
	Kind      models.SearchResultKind `json:"kind"`
	Label     string                  `json:"label"`
	Href      string                  `json:"href"`
	SourceIDs []string                `json:"sourceIds,omitempty"`
}

type DatasetLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Href string `json:"href"`
}

type BenchmarkView struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Href     string        `json:"href"`
	Datasets []DatasetLink `json:"datasets"`
}

type QuestionsView struct {
	BenchmarkID  string                  `json:"benchmarkId"`
	DatasetID    string                  `json:"datasetId"`
	SubmissionID string                  `json:"submissionId,omitempty"`
	Columns      []benchmark.Column      `json:"columns"`
	Rows         []benchmark.QuestionRow `json:"rows"`
	TotalCount   int                     `json:"totalCount"`
	PageIndex    int                     `json:"pageIndex"`
	PageCount    int                     `json:"pageCount"`
	RowsPerPage  int                     `json:"rowsPerPage"`
}

type ChoiceGraphs struct {
	ChoiceID   string                `json:"choiceId"`
	ChoiceText string                `json:"choiceText,omitempty"`
	Chosen     bool                  `json:"chosen"`
	Graphs     []benchmark.PathGraph `json:"graphs"`
}

type AnswerView struct {
	QuestionID   string         `json:"questionId"`
	QuestionText string         `json:"questionText"`
	SubmissionID string         `json:"submissionId"`
	ChoiceID     string         `json:"choiceId,omitempty"`
	Analyses     []ChoiceGraphs `json:"analyses"`
}
