package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/config"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/explorer"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/history"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/kg"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/pagination"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
	"github.com/rs/zerolog"
)

var errQuit = errors.New("quit")

const usage = `commands:
  n          next page
  p          previous page
  g N        go to page N (1-based)
  s N        set page size
  o N        open row N of the current page
  b / f      back / forward
  q          quit`

// pager drives a node search table from the terminal. The history plays the role
// of the browser location.
type pager struct {
	service *explorer.Service
	config  *config.ExplorerConfig
	kgID    string
	out     io.Writer
	logger  *zerolog.Logger

	history    *history.History
	controller *pagination.Controller[explorer.NodeRow]
	title      string
}

func newPager(service *explorer.Service, cfg *config.ExplorerConfig, kgID string, out io.Writer, logger *zerolog.Logger) *pager {
	return &pager{service: service, config: cfg, kgID: kgID, out: out, logger: logger}
}

// open loads window as a fresh page, like following a link.
func (p *pager) open(ctx context.Context, window searchquery.Window) error {
	view, err := p.service.NodeSearchPage(ctx, p.kgID, window)
	if err != nil {
		return err
	}

	if p.history == nil {
		p.history = history.New(window.Values())
	}

	initial := pagination.Page[explorer.NodeRow]{Rows: view.Rows, TotalCount: view.TotalCount}
	p.controller = pagination.NewController(window, initial, p.service.NodeSearchFetcher(p.kgID), p.history, p.logger)
	p.title = view.Title
	p.render()
	return nil
}

func (p *pager) render() {
	state := p.controller.Snapshot()

	fmt.Fprintf(p.out, "\n%s\n", p.title)
	for i, row := range state.Rows {
		fmt.Fprintf(p.out, "%3d. %-40s %s\n", i+1, row.Title, strings.Join(row.SourceIDs, ","))
	}
	if state.PageCount > 0 {
		fmt.Fprintf(p.out, "page %d of %d, %d per page\n", state.PageIndex+1, state.PageCount, state.Window.Limit)
	}
}

func (p *pager) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	arg := func() (int, error) {
		if len(fields) < 2 {
			return 0, fmt.Errorf("%s needs a number", fields[0])
		}
		return strconv.Atoi(fields[1])
	}

	state := p.controller.Snapshot()

	switch fields[0] {
	case "q", "quit":
		return errQuit
	case "h", "help":
		fmt.Fprintln(p.out, usage)
		return nil
	case "n":
		if state.PageIndex+1 >= state.PageCount {
			return fmt.Errorf("already on the last page")
		}
		return p.changePage(ctx, state.PageIndex+1)
	case "p":
		if state.PageIndex == 0 {
			return fmt.Errorf("already on the first page")
		}
		return p.changePage(ctx, state.PageIndex-1)
	case "g":
		page, err := arg()
		if err != nil {
			return err
		}
		if page < 1 || (state.PageCount > 0 && page > state.PageCount) {
			return fmt.Errorf("page %d out of range 1-%d", page, state.PageCount)
		}
		return p.changePage(ctx, page-1)
	case "s":
		size, err := arg()
		if err != nil {
			return err
		}
		if !p.config.AllowedPageSize(size) {
			return fmt.Errorf("page size %d not one of %v", size, p.config.Pagination.PageSizes)
		}
		if err := p.controller.ChangePageSize(ctx, size); err != nil {
			return err
		}
		p.render()
		return nil
	case "o":
		row, err := arg()
		if err != nil {
			return err
		}
		if row < 1 || row > len(state.Rows) {
			return fmt.Errorf("row %d out of range 1-%d", row, len(state.Rows))
		}
		return p.showNode(ctx, state.Rows[row-1].ID)
	case "b", "f":
		move := p.history.Back
		if fields[0] == "f" {
			move = p.history.Forward
		}
		values, ok := move()
		if !ok {
			return fmt.Errorf("no more history")
		}
		window, err := searchquery.ParseWindow(values)
		if err != nil {
			return err
		}
		return p.open(ctx, window)
	default:
		return fmt.Errorf("unknown command %q, try h", fields[0])
	}
}

func (p *pager) changePage(ctx context.Context, pageIndex int) error {
	if err := p.controller.ChangePage(ctx, pageIndex); err != nil {
		return err
	}
	p.render()
	return nil
}

func (p *pager) showNode(ctx context.Context, nodeID string) error {
	detail, err := p.service.NodeDetail(ctx, p.kgID, nodeID, kg.NodeViewList)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "\n%s [%s]\n", detail.Title, detail.ID)
	if len(detail.Aliases) > 0 {
		fmt.Fprintf(p.out, "aliases: %s\n", strings.Join(detail.Aliases, ", "))
	}
	for _, group := range detail.Groups {
		fmt.Fprintf(p.out, "  %s\n", group.Predicate)
		for _, edge := range group.Edges {
			fmt.Fprintf(p.out, "    %s\n", kg.NodeTitle(*edge.ObjectNode))
		}
	}
	return nil
}
