package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/explorer"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	kgID := ws.PathParameter("kg_id", "Knowledge graph identifier").DataType("string")
	benchmarkID := ws.PathParameter("benchmark_id", "Benchmark identifier").DataType("string")
	datasetID := ws.PathParameter("dataset_id", "Benchmark dataset identifier").DataType("string")
	limit := ws.QueryParameter("limit", "Page size (default 10)").DataType("integer").Required(false)
	offset := ws.QueryParameter("offset", "Row offset (default 0)").DataType("integer").Required(false)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/kg/{kg_id}/node/search").
			To(handler.NodeSearch).
			Doc("Node search results page").
			Metadata(restfulspec.KeyOpenAPITags, []string{"kg"}).
			Param(kgID).
			Param(limit).
			Param(offset).
			Param(ws.QueryParameter("query", "JSON encoded node query, e.g. {\"text\":\"dog\"}").DataType("string").Required(false)).
			Writes(explorer.NodeSearchView{}).
			Returns(200, "OK", explorer.NodeSearchView{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "KG Not Found", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/kg/{kg_id}/randomNode").
			To(handler.RandomNode).
			Doc("Redirect to a random node page").
			Metadata(restfulspec.KeyOpenAPITags, []string{"kg"}).
			Param(kgID).
			Returns(302, "Found", nil).
			Returns(404, "KG Not Found", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/kg/{kg_id}/search").
			To(handler.Search).
			Doc("Autocomplete search over nodes, edges and sources").
			Metadata(restfulspec.KeyOpenAPITags, []string{"kg"}).
			Param(kgID).
			Param(ws.QueryParameter("text", "Search text").DataType("string")).
			Param(ws.QueryParameter("limit", "Maximum number of results").DataType("integer").Required(false)).
			Writes([]explorer.SearchHit{}).
			Returns(200, "OK", []explorer.SearchHit{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}))

	// The node id may contain slashes; a trailing /list selects the list view.
	ws.
		Route(ws.GET("/kg/{kg_id}/node/{node_id:*}").
			To(handler.Node).
			Doc("Node detail page (grid view, or list view with a /list suffix)").
			Metadata(restfulspec.KeyOpenAPITags, []string{"kg"}).
			Param(kgID).
			Param(ws.PathParameter("node_id", "Node identifier").DataType("string")).
			Writes(explorer.NodeDetailView{}).
			Returns(200, "OK", explorer.NodeDetailView{}).
			Returns(404, "Node Not Found", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/benchmark/{benchmark_id}").
			To(handler.Benchmark).
			Doc("Benchmark page").
			Metadata(restfulspec.KeyOpenAPITags, []string{"benchmark"}).
			Param(benchmarkID).
			Writes(explorer.BenchmarkView{}).
			Returns(200, "OK", explorer.BenchmarkView{}).
			Returns(404, "Benchmark Not Found", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/benchmark/{benchmark_id}/dataset/{dataset_id}/questions").
			To(handler.Questions).
			Doc("Benchmark dataset questions table").
			Metadata(restfulspec.KeyOpenAPITags, []string{"benchmark"}).
			Param(benchmarkID).
			Param(datasetID).
			Param(limit).
			Param(offset).
			Param(ws.QueryParameter("submission_id", "Submission whose answers the rows link to").DataType("string").Required(false)).
			Writes(explorer.QuestionsView{}).
			Returns(200, "OK", explorer.QuestionsView{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Dataset Not Found", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/benchmark/{benchmark_id}/dataset/{dataset_id}/submission/{submission_id}/question/{question_id}/graphs").
			To(handler.AnswerGraphs).
			Doc("Answer path graphs of a submission's answer").
			Metadata(restfulspec.KeyOpenAPITags, []string{"benchmark"}).
			Param(benchmarkID).
			Param(datasetID).
			Param(ws.PathParameter("submission_id", "Submission identifier").DataType("string")).
			Param(ws.PathParameter("question_id", "Question identifier").DataType("string")).
			Writes(explorer.AnswerView{}).
			Returns(200, "OK", explorer.AnswerView{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}))

	// Admin: Clear cache endpoint
	ws.
		Route(ws.POST("/admin/cache/clear").
			To(handler.ClearCache).
			Doc("Clear the page cache").
			Metadata(restfulspec.KeyOpenAPITags, []string{"admin"}).
			Returns(200, "OK", CacheClearResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
