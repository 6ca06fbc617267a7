package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	defer deps.Close()

	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "kg-explorer",
			Version: "1.0.0",
		}, nil,
	)

	defaultKgID := deps.Explorer.KG.DefaultID

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "kg_node_search",
		Description: "Page through knowledge graph nodes matching a text and source filter",
	}, mcpadapter.NewNodeSearchHandler(deps.Service, defaultKgID))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "kg_node",
		Description: "Show a knowledge graph node with its relations grouped by predicate",
	}, mcpadapter.NewNodeHandler(deps.Service, defaultKgID))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "kg_search",
		Description: "Autocomplete over node labels, edges and sources",
	}, mcpadapter.NewSearchHandler(deps.Service, defaultKgID))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "benchmark_questions",
		Description: "Page through the questions of a benchmark dataset",
	}, mcpadapter.NewQuestionsHandler(deps.Service))
	return server
}
