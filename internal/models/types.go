package models

import (
	"encoding/json"
	"fmt"
)

type KgSource struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type KgNode struct {
	ID        string   `json:"id"`
	Label     *string  `json:"label"`
	Labels    []string `json:"labels"`
	Aliases   []string `json:"aliases"`
	Pos       *string  `json:"pos"`
	SourceIDs []string `json:"sourceIds"`
}

// KgEdge is an edge as returned for a node's subject-of relations.
type KgEdge struct {
	ID         string   `json:"id"`
	Subject    string   `json:"subject"`
	Predicate  *string  `json:"predicate"`
	Object     string   `json:"object"`
	ObjectNode *KgNode  `json:"objectNode"`
	Labels     []string `json:"labels"`
	SourceIDs  []string `json:"sourceIds"`
}

type KgNodeDetail struct {
	KgNode
	SubjectOfEdges []KgEdge `json:"subjectOfEdges"`
}

type SearchResultKind string

const (
	SearchResultEdgeLabel SearchResultKind = "KgEdgeLabelSearchResult"
	SearchResultEdge      SearchResultKind = "KgEdgeSearchResult"
	SearchResultNodeLabel SearchResultKind = "KgNodeLabelSearchResult"
	SearchResultNode      SearchResultKind = "KgNodeSearchResult"
	SearchResultSource    SearchResultKind = "KgSourceSearchResult"
)

// SearchResult is one member of the search result union. Which fields are set depends on Kind.
type SearchResult struct {
	Kind      SearchResultKind `json:"__typename"`
	EdgeLabel string           `json:"edgeLabel,omitempty"`
	Edge      *KgEdge          `json:"edge,omitempty"`
	NodeLabel string           `json:"nodeLabel,omitempty"`
	Node      *KgNode          `json:"node,omitempty"`
	SourceID  string           `json:"sourceId,omitempty"`
	SourceIDs []string         `json:"sourceIds,omitempty"`
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	type plain SearchResult
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	switch decoded.Kind {
	case SearchResultEdgeLabel, SearchResultNodeLabel, SearchResultSource:
	case SearchResultEdge:
		if decoded.Edge == nil {
			return fmt.Errorf("%s without edge", decoded.Kind)
		}
	case SearchResultNode:
		if decoded.Node == nil {
			return fmt.Errorf("%s without node", decoded.Kind)
		}
	default:
		return fmt.Errorf("unknown search result type %q", decoded.Kind)
	}

	*r = SearchResult(decoded)
	return nil
}

type Benchmark struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Datasets []BenchmarkDataset `json:"datasets"`
}

type BenchmarkDataset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MultipleChoice"
	QuestionTypeTrueFalse      QuestionType = "TrueFalse"
)

type PromptType string

const (
	PromptTypeGoal        PromptType = "Goal"
	PromptTypeObservation PromptType = "Observation"
	PromptTypeQuestion    PromptType = "Question"
)

type QuestionPrompt struct {
	Text string     `json:"text"`
	Type PromptType `json:"type"`
}

type QuestionChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type BenchmarkQuestion struct {
	ID         string           `json:"id"`
	Prompts    []QuestionPrompt `json:"prompts"`
	Type       *QuestionType    `json:"type"`
	Categories []string         `json:"categories"`
	Concept    *string          `json:"concept"`
	Choices    []QuestionChoice `json:"choices,omitempty"`
}

// AnswerPath alternates node ids and predicates: node, predicate, node, ...
type AnswerPath struct {
	Path  []string `json:"path"`
	Score float64  `json:"score"`
}

type QuestionAnswerPath struct {
	StartNodeID string       `json:"startNodeId"`
	StartNode   *KgNode      `json:"startNode"`
	EndNodeID   string       `json:"endNodeId"`
	EndNode     *KgNode      `json:"endNode"`
	Score       float64      `json:"score"`
	Paths       []AnswerPath `json:"paths"`
}

type ChoiceAnalysis struct {
	ChoiceID            string               `json:"choiceId"`
	QuestionAnswerPaths []QuestionAnswerPath `json:"questionAnswerPaths"`
}

type AnswerExplanation struct {
	ChoiceAnalyses []ChoiceAnalysis `json:"choiceAnalyses"`
}

type BenchmarkAnswer struct {
	ChoiceID    string             `json:"choiceId"`
	Explanation *AnswerExplanation `json:"explanation"`
}
