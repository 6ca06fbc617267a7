package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/benchmark"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/cache"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/config"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/graphql"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/hrefs"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/kg"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/models"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/pagination"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
	"github.com/rs/zerolog"
)

// ErrInvalidWindow is returned for windows the service refuses to request.
var ErrInvalidWindow = errors.New("invalid window")

type Service struct {
	queries    *graphql.Queries
	pageCache  *cache.PageCache
	pagination config.PaginationConfig
	palette    *kg.SourcePalette
	logger     *zerolog.Logger
}

// NewService builds the explorer service. pageCache may be nil to disable caching.
func NewService(queries *graphql.Queries, pageCache *cache.PageCache, paging config.PaginationConfig, logger *zerolog.Logger) *Service {
	return &Service{
		queries:    queries,
		pageCache:  pageCache,
		pagination: paging,
		palette:    kg.NewSourcePalette(),
		logger:     logger,
	}
}

func (s *Service) checkWindow(window searchquery.Window) error {
	if window.Limit <= 0 || (s.pagination.MaxLimit > 0 && window.Limit > s.pagination.MaxLimit) {
		return fmt.Errorf("%w: limit %d out of range (0, %d]", ErrInvalidWindow, window.Limit, s.pagination.MaxLimit)
	}
	if window.Offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrInvalidWindow, window.Offset)
	}
	return nil
}

func (s *Service) sourcePills(kgID string, sources []models.KgSource) []SourcePill {
	kgHrefs := hrefs.Kg(hrefs.Raw(kgID))
	pills := make([]SourcePill, 0, len(sources))
	for _, source := range sources {
		pills = append(pills, SourcePill{
			ID:    source.ID,
			Label: kg.SourcePillLabel(source, false),
			Color: s.palette.Color(source.ID),
			Href:  kgHrefs.Source(hrefs.Raw(source.ID)),
		})
	}
	return pills
}

func nodeRows(kgID string, nodes []models.KgNode) []NodeRow {
	kgHrefs := hrefs.Kg(hrefs.Raw(kgID))
	rows := make([]NodeRow, 0, len(nodes))
	for _, node := range nodes {
		rows = append(rows, NodeRow{
			ID:        node.ID,
			Title:     kg.NodeTitle(node),
			Href:      kgHrefs.Node(hrefs.Raw(node.ID)),
			SourceIDs: node.SourceIDs,
		})
	}
	return rows
}

// SearchLinks computes the hrefs of the neighbouring pages of window.
func SearchLinks(kgID string, window searchquery.Window, totalCount int) Links {
	kgHrefs := hrefs.Kg(hrefs.Raw(kgID))
	at := func(pageIndex int) string {
		w, _ := pagination.WindowForPage(window, pageIndex)
		return kgHrefs.NodeSearch(&w)
	}

	pageIndex := pagination.PageIndex(window)
	lastIndex := max(pagination.PageCount(totalCount, window.Limit)-1, 0)

	links := Links{
		Self:  kgHrefs.NodeSearch(&window),
		First: at(0),
		Last:  at(lastIndex),
	}
	if pageIndex > 0 {
		links.Prev = at(pageIndex - 1)
	}
	if pageIndex < lastIndex {
		links.Next = at(pageIndex + 1)
	}
	return links
}

// NodeSearchPage loads the search results page for window, including the title and sources.
func (s *Service) NodeSearchPage(ctx context.Context, kgID string, window searchquery.Window) (*NodeSearchView, error) {
	if err := s.checkWindow(window); err != nil {
		return nil, err
	}

	initial, err := s.nodeSearchInitial(ctx, kgID, window)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("kg_id", kgID).
		Int("limit", window.Limit).
		Int("offset", window.Offset).
		Int("total", initial.TotalCount).
		Msg("node search page loaded")

	return &NodeSearchView{
		KgID:       kgID,
		Title:      kg.MakeTitle(initial.TotalCount, &window.Query, initial.Sources),
		Window:     window,
		Rows:       nodeRows(kgID, initial.Nodes),
		TotalCount: initial.TotalCount,
		PageIndex:  pagination.PageIndex(window),
		PageCount:  pagination.PageCount(initial.TotalCount, window.Limit),
		PageSizes:  s.pagination.PageSizes,
		Sources:    s.sourcePills(kgID, initial.Sources),
		Links:      SearchLinks(kgID, window, initial.TotalCount),
	}, nil
}

func (s *Service) nodeSearchInitial(ctx context.Context, kgID string, window searchquery.Window) (graphql.NodeSearchInitial, error) {
	var key string
	if s.pageCache != nil {
		key = s.pageCache.Key("initial:"+kgID, window)
		var cached graphql.NodeSearchInitial
		hit, err := s.pageCache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("page cache read failed, bypassing")
		}
		if hit {
			return cached, nil
		}
	}

	result := s.queries.NodeSearchInitial(ctx, kgID, window)
	if !result.OK() {
		return graphql.NodeSearchInitial{}, result.Err
	}

	if s.pageCache != nil {
		if err := s.pageCache.Set(ctx, key, result.Data); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("page cache write failed")
		}
	}
	return result.Data, nil
}

// NodeSearchFetcher returns the pagination fetcher for a KG's node search table.
func (s *Service) NodeSearchFetcher(kgID string) pagination.Fetcher[NodeRow] {
	var fetcher pagination.Fetcher[NodeRow] = pagination.FetcherFunc[NodeRow](
		func(ctx context.Context, window searchquery.Window) graphql.Result[pagination.Page[NodeRow]] {
			if err := s.checkWindow(window); err != nil {
				return graphql.Failure[pagination.Page[NodeRow]](err)
			}
			return graphql.Map(s.queries.NodeSearchPage(ctx, kgID, window), func(page graphql.NodeSearchPage) (pagination.Page[NodeRow], error) {
				return pagination.Page[NodeRow]{Rows: nodeRows(kgID, page.Nodes), TotalCount: page.TotalCount}, nil
			})
		})

	if s.pageCache != nil {
		fetcher = cache.NewFetcher(fetcher, s.pageCache, "nodes:"+kgID, s.logger)
	}
	return fetcher
}

func (s *Service) NodeDetail(ctx context.Context, kgID, nodeID string, view kg.NodeView) (*NodeDetailView, error) {
	result := s.queries.NodeByID(ctx, kgID, nodeID)
	if !result.OK() {
		return nil, result.Err
	}

	node := result.Data.Node
	known := make(map[string]models.KgSource, len(result.Data.Sources))
	for _, source := range result.Data.Sources {
		known[source.ID] = source
	}

	var nodeSources []models.KgSource
	for _, id := range node.SourceIDs {
		source, ok := known[id]
		if !ok {
			source = models.KgSource{ID: id, Label: id}
		}
		nodeSources = append(nodeSources, source)
	}

	if view == "" {
		view = kg.NodeViewGrid
	}

	return &NodeDetailView{
		KgID:    kgID,
		ID:      node.ID,
		Title:   kg.NodeTitle(node.KgNode),
		View:    view,
		Tabs:    kg.NodeTabs(kgID, node.ID),
		Aliases: kg.UniqueAliases(node.Aliases),
		Sources: s.sourcePills(kgID, nodeSources),
		Groups:  kg.GroupByPredicate(node.SubjectOfEdges),
	}, nil
}

func (s *Service) RandomNodeHref(ctx context.Context, kgID string) (string, error) {
	result := s.queries.RandomNodeID(ctx, kgID)
	if !result.OK() {
		return "", result.Err
	}
	return hrefs.Kg(hrefs.Raw(kgID)).Node(hrefs.Raw(result.Data)), nil
}

// Search runs the autocomplete search and links each hit to the page it opens.
func (s *Service) Search(ctx context.Context, kgID, text string, limit int) ([]SearchHit, error) {
	if limit <= 0 {
		limit = s.pagination.AutocompleteSize
	}

	result := s.queries.Search(ctx, kgID, text, limit)
	if !result.OK() {
		return nil, result.Err
	}

	kgHrefs := hrefs.Kg(hrefs.Raw(kgID))
	textSearch := func(label string) string {
		window := searchquery.DefaultWindow()
		window.Query = searchquery.SearchQuery{Text: label}
		return kgHrefs.NodeSearch(&window)
	}

	hits := make([]SearchHit, 0, len(result.Data))
	for _, r := range result.Data {
		hit := SearchHit{Kind: r.Kind, SourceIDs: r.SourceIDs}
		switch r.Kind {
		case models.SearchResultNode:
			hit.Label = kg.NodeTitle(*r.Node)
			hit.Href = kgHrefs.Node(hrefs.Raw(r.Node.ID))
			hit.SourceIDs = r.Node.SourceIDs
		case models.SearchResultEdge:
			hit.Label = r.Edge.ID
			if len(r.Edge.Labels) > 0 {
				hit.Label = r.Edge.Labels[0]
			}
			hit.Href = textSearch(hit.Label)
			hit.SourceIDs = r.Edge.SourceIDs
		case models.SearchResultNodeLabel:
			hit.Label = r.NodeLabel
			hit.Href = textSearch(r.NodeLabel)
		case models.SearchResultEdgeLabel:
			hit.Label = r.EdgeLabel
			hit.Href = textSearch(r.EdgeLabel)
		case models.SearchResultSource:
			hit.Label = r.SourceID
			hit.Href = kgHrefs.Source(hrefs.Raw(r.SourceID))
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func (s *Service) BenchmarkPage(ctx context.Context, benchmarkID string) (*BenchmarkView, error) {
	result := s.queries.BenchmarkByID(ctx, benchmarkID)
	if !result.OK() {
		return nil, result.Err
	}

	benchmarkHrefs := hrefs.Benchmark(hrefs.Raw(result.Data.ID))
	view := &BenchmarkView{
		ID:       result.Data.ID,
		Name:     result.Data.Name,
		Href:     benchmarkHrefs.Home(),
		Datasets: make([]DatasetLink, 0, len(result.Data.Datasets)),
	}
	for _, dataset := range result.Data.Datasets {
		view.Datasets = append(view.Datasets, DatasetLink{
			ID:   dataset.ID,
			Name: dataset.Name,
			Href: benchmarkHrefs.Dataset(hrefs.Raw(dataset.ID)).Home(),
		})
	}
	return view, nil
}

// QuestionsFetcher returns the pagination fetcher of a dataset's questions table. The
// query part of the window is ignored.
func (s *Service) QuestionsFetcher(benchmarkID, datasetID string) pagination.Fetcher[models.BenchmarkQuestion] {
	var fetcher pagination.Fetcher[models.BenchmarkQuestion] = pagination.FetcherFunc[models.BenchmarkQuestion](
		func(ctx context.Context, window searchquery.Window) graphql.Result[pagination.Page[models.BenchmarkQuestion]] {
			if err := s.checkWindow(window); err != nil {
				return graphql.Failure[pagination.Page[models.BenchmarkQuestion]](err)
			}
			result := s.queries.DatasetQuestions(ctx, benchmarkID, datasetID, window.Limit, window.Offset)
			return graphql.Map(result, func(page graphql.QuestionsPage) (pagination.Page[models.BenchmarkQuestion], error) {
				return pagination.Page[models.BenchmarkQuestion]{Rows: page.Questions, TotalCount: page.TotalCount}, nil
			})
		})

	if s.pageCache != nil {
		fetcher = cache.NewFetcher(fetcher, s.pageCache, "questions:"+benchmarkID+":"+datasetID, s.logger)
	}
	return fetcher
}

func (s *Service) QuestionsTable(ctx context.Context, benchmarkID, datasetID, submissionID string, window searchquery.Window) (*QuestionsView, error) {
	window.Query = searchquery.SearchQuery{}

	result := s.QuestionsFetcher(benchmarkID, datasetID).FetchPage(ctx, window)
	if !result.OK() {
		return nil, result.Err
	}

	rows, err := benchmark.QuestionRows(benchmarkID, datasetID, submissionID, result.Data.Rows)
	if err != nil {
		return nil, err
	}

	return &QuestionsView{
		BenchmarkID:  benchmarkID,
		DatasetID:    datasetID,
		SubmissionID: submissionID,
		Columns:      benchmark.Columns(result.Data.Rows),
		Rows:         rows,
		TotalCount:   result.Data.TotalCount,
		PageIndex:    pagination.PageIndex(window),
		PageCount:    pagination.PageCount(result.Data.TotalCount, window.Limit),
		RowsPerPage:  window.Limit,
	}, nil
}

// AnswerGraphs builds one path graph per question-answer path of every analysed choice.
func (s *Service) AnswerGraphs(ctx context.Context, benchmarkID, datasetID, submissionID, questionID string) (*AnswerView, error) {
	result := s.queries.Answer(ctx, benchmarkID, datasetID, submissionID, questionID)
	if !result.OK() {
		return nil, result.Err
	}

	question := result.Data.Question
	view := &AnswerView{
		QuestionID:   question.ID,
		QuestionText: benchmark.QuestionText(question.Prompts),
		SubmissionID: submissionID,
		Analyses:     []ChoiceGraphs{},
	}

	answer := result.Data.Answer
	if answer == nil {
		return view, nil
	}
	view.ChoiceID = answer.ChoiceID
	if answer.Explanation == nil {
		return view, nil
	}

	choiceText := make(map[string]string, len(question.Choices))
	for _, choice := range question.Choices {
		choiceText[choice.ID] = choice.Text
	}

	for _, analysis := range answer.Explanation.ChoiceAnalyses {
		nodes, links := benchmark.BuildChoiceGraph(analysis)
		graphs := make([]benchmark.PathGraph, 0, len(analysis.QuestionAnswerPaths))
		for _, qap := range analysis.QuestionAnswerPaths {
			graphs = append(graphs, benchmark.BuildPathGraph(qap, nodes, links))
		}
		view.Analyses = append(view.Analyses, ChoiceGraphs{
			ChoiceID:   analysis.ChoiceID,
			ChoiceText: choiceText[analysis.ChoiceID],
			Chosen:     analysis.ChoiceID == answer.ChoiceID,
			Graphs:     graphs,
		})
	}

	return view, nil
}
