package kg

import (
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/models"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
)

// MakeTitle summarises a node search: `<count> results[ for "<text>"][ in <sources>]`.
// Included source ids missing from sources are shown as the raw id.
func MakeTitle(count int, query *searchquery.SearchQuery, sources []models.KgSource) string {
	parts := []string{strconv.Itoa(count), "results"}

	if query != nil && query.Text != "" {
		parts = append(parts, `for "`+query.Text+`"`)
	}

	if includeIDs := query.IncludeSourceIDs(); len(includeIDs) > 0 {
		labels := make(map[string]string, len(sources))
		for _, source := range sources {
			labels[source.ID] = source.Label
		}

		includeLabels := make([]string, 0, len(includeIDs))
		for _, id := range includeIDs {
			if label, ok := labels[id]; ok {
				includeLabels = append(includeLabels, label)
			} else {
				includeLabels = append(includeLabels, id)
			}
		}

		parts = append(parts, "in", strings.Join(includeLabels, ", "))
	}

	return strings.Join(parts, " ")
}

// NodeTitle is the node's label, or its id when unlabelled, followed by the part of speech.
func NodeTitle(node models.KgNode) string {
	title := node.ID
	if node.Label != nil && *node.Label != "" {
		title = *node.Label
	}
	if node.Pos != nil && *node.Pos != "" {
		title += " (" + *node.Pos + ")"
	}
	return title
}

// UniqueAliases drops repeated aliases, keeping first-seen order.
func UniqueAliases(aliases []string) []string {
	if aliases == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(aliases))
	unique := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		if _, ok := seen[alias]; ok {
			continue
		}
		seen[alias] = struct{}{}
		unique = append(unique, alias)
	}
	return unique
}

func SourcePillLabel(source models.KgSource, idOnly bool) string {
	if idOnly {
		return source.ID
	}
	return source.ID + ": " + source.Label
}
