package graphql

import (
	"context"
	"fmt"

	genql "github.com/Khan/genqlient/graphql"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/models"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
)

// NodeSearchPage is one page of matching nodes.
type NodeSearchPage struct {
	Nodes      []models.KgNode
	TotalCount int
}

// NodeSearchInitial is the first page plus the sources used to label filters.
type NodeSearchInitial struct {
	NodeSearchPage
	Sources []models.KgSource
}

type NodeWithSources struct {
	Node    models.KgNodeDetail
	Sources []models.KgSource
}

type QuestionsPage struct {
	Questions  []models.BenchmarkQuestion
	TotalCount int
}

type AnswerPage struct {
	Question models.BenchmarkQuestion
	Answer   *models.BenchmarkAnswer
}

type nodeSearchData struct {
	KgByID *struct {
		MatchingNodes      []models.KgNode   `json:"matchingNodes"`
		MatchingNodesCount int               `json:"matchingNodesCount"`
		Sources            []models.KgSource `json:"sources"`
	} `json:"kgById"`
}

type nodePageData struct {
	KgByID *struct {
		NodeByID *models.KgNodeDetail `json:"nodeById"`
		Sources  []models.KgSource    `json:"sources"`
	} `json:"kgById"`
}

type randomNodeData struct {
	KgByID *struct {
		RandomNode *struct {
			ID string `json:"id"`
		} `json:"randomNode"`
	} `json:"kgById"`
}

type searchData struct {
	KgByID *struct {
		Search []models.SearchResult `json:"search"`
	} `json:"kgById"`
}

type benchmarkData struct {
	BenchmarkByID *models.Benchmark `json:"benchmarkById"`
}

type questionsData struct {
	BenchmarkByID *struct {
		DatasetByID *struct {
			Questions      []models.BenchmarkQuestion `json:"questions"`
			QuestionsCount int                        `json:"questionsCount"`
		} `json:"datasetById"`
	} `json:"benchmarkById"`
}

type answerData struct {
	BenchmarkByID *struct {
		DatasetByID *struct {
			QuestionByID   *models.BenchmarkQuestion `json:"questionById"`
			SubmissionByID *struct {
				AnswerByQuestionID *models.BenchmarkAnswer `json:"answerByQuestionId"`
			} `json:"submissionById"`
		} `json:"datasetById"`
	} `json:"benchmarkById"`
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

func windowVariables(kgID string, window searchquery.Window) map[string]any {
	return map[string]any{
		"kgId":   kgID,
		"limit":  window.Limit,
		"offset": window.Offset,
		"query":  window.Query.Normalize(),
	}
}

// Queries issues the explorer's operations against one GraphQL endpoint.
type Queries struct {
	client genql.Client
}

func NewQueries(client genql.Client) *Queries {
	return &Queries{client: client}
}

func (q *Queries) NodeSearchInitial(ctx context.Context, kgID string, window searchquery.Window) Result[NodeSearchInitial] {
	result := Execute[nodeSearchData](ctx, q.client, KgNodeSearchResultsPageInitialQuery, windowVariables(kgID, window))
	return Map(result, func(data nodeSearchData) (NodeSearchInitial, error) {
		if data.KgByID == nil {
			return NodeSearchInitial{}, notFound("kg", kgID)
		}
		return NodeSearchInitial{
			NodeSearchPage: NodeSearchPage{
				Nodes:      data.KgByID.MatchingNodes,
				TotalCount: data.KgByID.MatchingNodesCount,
			},
			Sources: data.KgByID.Sources,
		}, nil
	})
}

func (q *Queries) NodeSearchPage(ctx context.Context, kgID string, window searchquery.Window) Result[NodeSearchPage] {
	result := Execute[nodeSearchData](ctx, q.client, KgNodeSearchResultsPagePaginationQuery, windowVariables(kgID, window))
	return Map(result, func(data nodeSearchData) (NodeSearchPage, error) {
		if data.KgByID == nil {
			return NodeSearchPage{}, notFound("kg", kgID)
		}
		return NodeSearchPage{
			Nodes:      data.KgByID.MatchingNodes,
			TotalCount: data.KgByID.MatchingNodesCount,
		}, nil
	})
}

func (q *Queries) NodeByID(ctx context.Context, kgID string, nodeID string) Result[NodeWithSources] {
	result := Execute[nodePageData](ctx, q.client, KgNodePageQuery, map[string]any{
		"kgId":   kgID,
		"nodeId": nodeID,
	})
	return Map(result, func(data nodePageData) (NodeWithSources, error) {
		if data.KgByID == nil {
			return NodeWithSources{}, notFound("kg", kgID)
		}
		if data.KgByID.NodeByID == nil {
			return NodeWithSources{}, notFound("node", nodeID)
		}
		return NodeWithSources{Node: *data.KgByID.NodeByID, Sources: data.KgByID.Sources}, nil
	})
}

func (q *Queries) RandomNodeID(ctx context.Context, kgID string) Result[string] {
	result := Execute[randomNodeData](ctx, q.client, RandomKgNodeQuery, map[string]any{"kgId": kgID})
	return Map(result, func(data randomNodeData) (string, error) {
		if data.KgByID == nil {
			return "", notFound("kg", kgID)
		}
		if data.KgByID.RandomNode == nil {
			return "", notFound("random node of kg", kgID)
		}
		return data.KgByID.RandomNode.ID, nil
	})
}

func (q *Queries) Search(ctx context.Context, kgID string, text string, limit int) Result[[]models.SearchResult] {
	result := Execute[searchData](ctx, q.client, KgSearchBoxAutocompleteQuery, map[string]any{
		"kgId": kgID,
		"query": map[string]any{
			"text":  text,
			"limit": limit,
		},
	})
	return Map(result, func(data searchData) ([]models.SearchResult, error) {
		if data.KgByID == nil {
			return nil, notFound("kg", kgID)
		}
		return data.KgByID.Search, nil
	})
}

func (q *Queries) BenchmarkByID(ctx context.Context, benchmarkID string) Result[models.Benchmark] {
	result := Execute[benchmarkData](ctx, q.client, BenchmarkPageQuery, map[string]any{"benchmarkId": benchmarkID})
	return Map(result, func(data benchmarkData) (models.Benchmark, error) {
		if data.BenchmarkByID == nil {
			return models.Benchmark{}, notFound("benchmark", benchmarkID)
		}
		return *data.BenchmarkByID, nil
	})
}

func (q *Queries) DatasetQuestions(ctx context.Context, benchmarkID, datasetID string, limit, offset int) Result[QuestionsPage] {
	result := Execute[questionsData](ctx, q.client, BenchmarkDatasetQuestionsPaginationQuery, map[string]any{
		"benchmarkId":     benchmarkID,
		"datasetId":       datasetID,
		"questionsLimit":  limit,
		"questionsOffset": offset,
	})
	return Map(result, func(data questionsData) (QuestionsPage, error) {
		if data.BenchmarkByID == nil {
			return QuestionsPage{}, notFound("benchmark", benchmarkID)
		}
		if data.BenchmarkByID.DatasetByID == nil {
			return QuestionsPage{}, notFound("dataset", datasetID)
		}
		return QuestionsPage{
			Questions:  data.BenchmarkByID.DatasetByID.Questions,
			TotalCount: data.BenchmarkByID.DatasetByID.QuestionsCount,
		}, nil
	})
}

func (q *Queries) Answer(ctx context.Context, benchmarkID, datasetID, submissionID, questionID string) Result[AnswerPage] {
	result := Execute[answerData](ctx, q.client, BenchmarkAnswerPageQuery, map[string]any{
		"benchmarkId":  benchmarkID,
		"datasetId":    datasetID,
		"submissionId": submissionID,
		"questionId":   questionID,
	})
	return Map(result, func(data answerData) (AnswerPage, error) {
		if data.BenchmarkByID == nil {
			return AnswerPage{}, notFound("benchmark", benchmarkID)
		}
		dataset := data.BenchmarkByID.DatasetByID
		if dataset == nil {
			return AnswerPage{}, notFound("dataset", datasetID)
		}
		if dataset.QuestionByID == nil {
			return AnswerPage{}, notFound("question", questionID)
		}
		if dataset.SubmissionByID == nil {
			return AnswerPage{}, notFound("submission", submissionID)
		}
		return AnswerPage{
			Question: *dataset.QuestionByID,
			Answer:   dataset.SubmissionByID.AnswerByQuestionID,
		}, nil
	})
}
