package kg

import (
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/hrefs"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/models"
)

type PredicateGroup struct {
	Predicate string          `json:"predicate"`
	Edges     []models.KgEdge `json:"edges"`
}

// GroupByPredicate groups edges by predicate in first-seen order. Edges without an
// object node or a predicate are skipped.
func GroupByPredicate(edges []models.KgEdge) []PredicateGroup {
	var groups []PredicateGroup
	index := make(map[string]int)

	for _, edge := range edges {
		if edge.ObjectNode == nil || edge.Predicate == nil || *edge.Predicate == "" {
			continue
		}

		predicate := *edge.Predicate
		i, ok := index[predicate]
		if !ok {
			i = len(groups)
			index[predicate] = i
			groups = append(groups, PredicateGroup{Predicate: predicate})
		}
		groups[i].Edges = append(groups[i].Edges, edge)
	}

	return groups
}

type NodeView string

const (
	NodeViewGrid NodeView = "grid"
	NodeViewList NodeView = "list"
)

type NodeTab struct {
	View  NodeView `json:"view"`
	Label string   `json:"label"`
	Href  string   `json:"href"`
}

// NodeTabs lists the node page views. Each view has its own href so the selection can be shared.
func NodeTabs(kgID, nodeID string) []NodeTab {
	kg := hrefs.Kg(hrefs.Raw(kgID))
	node := hrefs.Raw(nodeID)
	return []NodeTab{
		{View: NodeViewGrid, Label: "Predicate Grid", Href: kg.Node(node)},
		{View: NodeViewList, Label: "Predicate List", Href: kg.NodeList(node)},
	}
}
