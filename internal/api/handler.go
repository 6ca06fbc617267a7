package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/cache"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/config"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/explorer"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/graphql"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/kg"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
	"github.com/rs/zerolog"
)

const listSuffix = "/list"

type Handler struct {
	service   *explorer.Service
	pageCache *cache.PageCache
	paging    config.PaginationConfig
	logger    *zerolog.Logger
}

// NewHandler builds the API handler. pageCache may be nil when caching is disabled.
func NewHandler(service *explorer.Service, pageCache *cache.PageCache, paging config.PaginationConfig, logger *zerolog.Logger) *Handler {
	return &Handler{
		service:   service,
		pageCache: pageCache,
		paging:    paging,
		logger:    logger,
	}
}

// statusFor maps service errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, searchquery.ErrInvalidQuery),
		errors.Is(err, explorer.ErrInvalidWindow),
		errors.Is(err, middleware.ErrInvalidParam):
		return http.StatusBadRequest
	case errors.Is(err, graphql.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) fail(resp *restful.Response, err error, msg string) {
	status := statusFor(err)
	event := h.logger.Warn()
	if status == http.StatusBadGateway {
		event = h.logger.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)
	middleware.HandleError(resp, err, status)
}

func (h *Handler) window(req *restful.Request) (searchquery.Window, error) {
	values := req.Request.URL.Query()
	window, err := searchquery.ParseWindow(values)
	if err != nil {
		return window, err
	}
	if values.Get(searchquery.ParamLimit) == "" && h.paging.DefaultLimit > 0 {
		window.Limit = h.paging.DefaultLimit
	}
	return window, nil
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// GET /api/v1/kg/{kg_id}/node/search?limit=&offset=&query=
func (h *Handler) NodeSearch(req *restful.Request, resp *restful.Response) {
	kgID := req.PathParameter("kg_id")

	window, err := h.window(req)
	if err != nil {
		h.fail(resp, err, "Failed to parse search window")
		return
	}

	view, err := h.service.NodeSearchPage(req.Request.Context(), kgID, window)
	if err != nil {
		h.fail(resp, err, "Node search failed")
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, view)
}

// GET /api/v1/kg/{kg_id}/node/{node_id}[/list]
func (h *Handler) Node(req *restful.Request, resp *restful.Response) {
	kgID := req.PathParameter("kg_id")
	nodeID := req.PathParameter("node_id")

	view := kg.NodeViewGrid
	if trimmed, ok := strings.CutSuffix(nodeID, listSuffix); ok {
		nodeID = trimmed
		view = kg.NodeViewList
	}
	if nodeID == "" {
		h.fail(resp, fmt.Errorf("%w: empty node id", middleware.ErrInvalidParam), "Invalid node request")
		return
	}

	detail, err := h.service.NodeDetail(req.Request.Context(), kgID, nodeID, view)
	if err != nil {
		h.fail(resp, err, "Node lookup failed")
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, detail)
}

// GET /api/v1/kg/{kg_id}/randomNode redirects to a random node page.
func (h *Handler) RandomNode(req *restful.Request, resp *restful.Response) {
	kgID := req.PathParameter("kg_id")

	href, err := h.service.RandomNodeHref(req.Request.Context(), kgID)
	if err != nil {
		h.fail(resp, err, "Random node lookup failed")
		return
	}

	h.logger.Info().Str("kg_id", kgID).Str("href", href).Msg("Redirecting to random node")

	resp.AddHeader("Location", href)
	resp.WriteHeader(http.StatusFound)
}

// GET /api/v1/kg/{kg_id}/search?text=&limit=
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	kgID := req.PathParameter("kg_id")
	text := req.QueryParameter("text")

	limit := 0
	if limitStr := req.QueryParameter("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || (h.paging.MaxLimit > 0 && parsed > h.paging.MaxLimit) {
			h.fail(resp, fmt.Errorf("%w: limit %q", middleware.ErrInvalidParam, limitStr), "Invalid search limit")
			return
		}
		limit = parsed
	}

	hits, err := h.service.Search(req.Request.Context(), kgID, text, limit)
	if err != nil {
		h.fail(resp, err, "Search failed")
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, hits)
}

// GET /api/v1/benchmark/{benchmark_id}
func (h *Handler) Benchmark(req *restful.Request, resp *restful.Response) {
	view, err := h.service.BenchmarkPage(req.Request.Context(), req.PathParameter("benchmark_id"))
	if err != nil {
		h.fail(resp, err, "Benchmark lookup failed")
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, view)
}

// GET /api/v1/benchmark/{benchmark_id}/dataset/{dataset_id}/questions?limit=&offset=&submission_id=
func (h *Handler) Questions(req *restful.Request, resp *restful.Response) {
	window, err := h.window(req)
	if err != nil {
		h.fail(resp, err, "Failed to parse questions window")
		return
	}

	view, err := h.service.QuestionsTable(
		req.Request.Context(),
		req.PathParameter("benchmark_id"),
		req.PathParameter("dataset_id"),
		req.QueryParameter("submission_id"),
		window,
	)
	if err != nil {
		h.fail(resp, err, "Questions lookup failed")
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, view)
}

// GET /api/v1/benchmark/{benchmark_id}/dataset/{dataset_id}/submission/{submission_id}/question/{question_id}/graphs
func (h *Handler) AnswerGraphs(req *restful.Request, resp *restful.Response) {
	view, err := h.service.AnswerGraphs(
		req.Request.Context(),
		req.PathParameter("benchmark_id"),
		req.PathParameter("dataset_id"),
		req.PathParameter("submission_id"),
		req.PathParameter("question_id"),
	)
	if err != nil {
		h.fail(resp, err, "Answer lookup failed")
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, view)
}

// POST /api/v1/admin/cache/clear
func (h *Handler) ClearCache(req *restful.Request, resp *restful.Response) {
	if h.pageCache == nil {
		resp.WriteHeaderAndEntity(http.StatusOK, CacheClearResponse{})
		return
	}

	deleted, err := h.pageCache.Clear(req.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to clear page cache")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().Int64("deleted", deleted).Msg("Page cache cleared")
	resp.WriteHeaderAndEntity(http.StatusOK, CacheClearResponse{Deleted: deleted})
}
