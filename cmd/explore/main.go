package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/setup"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/setup/logger"
)

func main() {
	kgID := flag.String("kg", "", "knowledge graph id (defaults to kg.default_id)")
	text := flag.String("text", "", "free text to match node labels")
	sources := flag.String("sources", "", "comma separated source ids to include")
	limit := flag.Int("limit", searchquery.LimitDefault, "page size")
	offset := flag.Int("offset", searchquery.OffsetDefault, "row offset")
	flag.Parse()

	_ = godotenv.Load()

	cfg := setup.LoadConfig()
	log := logger.New(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}
	defer deps.Close()

	if *kgID == "" {
		*kgID = deps.Explorer.KG.DefaultID
	}

	window := searchquery.Window{
		Limit:  *limit,
		Offset: *offset,
		Query:  searchquery.SearchQuery{Text: *text},
	}
	if *sources != "" {
		window.Query.Filters = &searchquery.Filters{
			SourceIDs: &searchquery.StringFilter{Include: strings.Split(*sources, ",")},
		}
	}

	p := newPager(deps.Service, deps.Explorer, *kgID, os.Stdout, &log)
	if err := p.open(ctx, window); err != nil {
		log.Fatal().Err(err).Msg("Failed to load node search")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if err := p.exec(ctx, scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
