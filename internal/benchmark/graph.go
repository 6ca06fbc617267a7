package benchmark

import (
	"fmt"
	"math"
	"strconv"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/models"
)

const (
	startStroke     = "blue"
	endStroke       = "purple"
	focusOpacity    = 1.0
	backdropOpacity = 0.2
)

// NodePath records that a graph node lies on one answer path.
type NodePath struct {
	ID                   string  `json:"id"`
	QuestionAnswerPathID string  `json:"questionAnswerPathId,omitempty"`
	Score                float64 `json:"score"`
}

type GraphNode struct {
	ID            string     `json:"id"`
	Label         string     `json:"label"`
	IncomingEdges int        `json:"incomingEdges"`
	Paths         []NodePath `json:"paths"`
}

type GraphLink struct {
	ID                   string  `json:"id"`
	SourceID             string  `json:"sourceId"`
	TargetID             string  `json:"targetId"`
	Predicate            string  `json:"predicate"`
	PathID               string  `json:"pathId"`
	QuestionAnswerPathID string  `json:"questionAnswerPathId,omitempty"`
	Score                float64 `json:"score"`
}

func QuestionAnswerPathID(qap models.QuestionAnswerPath) string {
	return qap.StartNodeID + "-" + qap.EndNodeID
}

// PathID identifies the index-th path of a question-answer path.
func PathID(qap models.QuestionAnswerPath, index int) string {
	return QuestionAnswerPathID(qap) + "-" + strconv.Itoa(index)
}

// BuildChoiceGraph collects the nodes and links of every path of a choice analysis.
// Paths alternate node ids and predicates; nodes keep first-seen order.
func BuildChoiceGraph(analysis models.ChoiceAnalysis) ([]GraphNode, []GraphLink) {
	var nodes []GraphNode
	var links []GraphLink
	index := make(map[string]int)
	labels := make(map[string]string)

	for _, qap := range analysis.QuestionAnswerPaths {
		if qap.StartNode != nil && qap.StartNode.Label != nil {
			labels[qap.StartNodeID] = *qap.StartNode.Label
		}
		if qap.EndNode != nil && qap.EndNode.Label != nil {
			labels[qap.EndNodeID] = *qap.EndNode.Label
		}
	}

	node := func(id string) *GraphNode {
		i, ok := index[id]
		if !ok {
			label := id
			if l, found := labels[id]; found {
				label = l
			}
			i = len(nodes)
			index[id] = i
			nodes = append(nodes, GraphNode{ID: id, Label: label})
		}
		return &nodes[i]
	}

	for _, qap := range analysis.QuestionAnswerPaths {
		qapID := QuestionAnswerPathID(qap)

		for pathIndex, path := range qap.Paths {
			pathID := PathID(qap, pathIndex)

			seen := make(map[string]struct{})
			for i := 0; i < len(path.Path); i += 2 {
				id := path.Path[i]
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				n := node(id)
				n.Paths = append(n.Paths, NodePath{ID: pathID, QuestionAnswerPathID: qapID, Score: path.Score})
			}

			for hop, i := 0, 0; i+2 < len(path.Path); hop, i = hop+1, i+2 {
				links = append(links, GraphLink{
					ID:                   pathID + "-" + strconv.Itoa(hop),
					SourceID:             path.Path[i],
					Predicate:            path.Path[i+1],
					TargetID:             path.Path[i+2],
					PathID:               pathID,
					QuestionAnswerPathID: qapID,
					Score:                path.Score,
				})
				node(path.Path[i+2]).IncomingEdges++
			}
		}
	}

	return nodes, links
}

type RenderedNode struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Radius  float64 `json:"radius"`
	Score   float64 `json:"score"`
	Fill    string  `json:"fill"`
	Stroke  string  `json:"stroke,omitempty"`
	Opacity float64 `json:"opacity"`
}

type RenderedLink struct {
	ID           string  `json:"id"`
	SourceID     string  `json:"sourceId"`
	TargetID     string  `json:"targetId"`
	Predicate    string  `json:"predicate"`
	Stroke       string  `json:"stroke"`
	TargetRadius float64 `json:"targetRadius"`
	Opacity      float64 `json:"opacity"`
}

// PathGraph is the force-graph view of one question-answer path.
type PathGraph struct {
	ID                 string         `json:"id"`
	Score              float64        `json:"score"`
	StartLabel         string         `json:"startLabel"`
	EndLabel           string         `json:"endLabel"`
	HighestScorePathID string         `json:"highestScorePathId,omitempty"`
	Nodes              []RenderedNode `json:"nodes"`
	Links              []RenderedLink `json:"links"`
}

// NodeRadius scales a node by the number of its incoming edges.
func NodeRadius(incomingEdges int) float64 {
	if incomingEdges > 0 {
		return 8*math.Log2(float64(incomingEdges)) + 10
	}
	return 10
}

// ScoreColor interpolates from red at 0 to green at 1.
func ScoreColor(score float64) string {
	t := math.Max(0, math.Min(1, score))
	r := math.Round(255 * (1 - t))
	g := math.Round(128 * t)
	return fmt.Sprintf("rgb(%d, %d, 0)", int(r), int(g))
}

// HighestScorePath returns the index of the best-scoring path, the first on ties,
// or -1 when there are no paths. The paths are not reordered.
func HighestScorePath(paths []models.AnswerPath) int {
	best := -1
	for i, path := range paths {
		if best < 0 || path.Score > paths[best].Score {
			best = i
		}
	}
	return best
}

// BuildPathGraph renders the shared choice graph highlighting the best path of qap.
func BuildPathGraph(qap models.QuestionAnswerPath, nodes []GraphNode, links []GraphLink) PathGraph {
	graph := PathGraph{
		ID:         QuestionAnswerPathID(qap),
		Score:      qap.Score,
		StartLabel: endpointLabel(qap.StartNode, qap.StartNodeID),
		EndLabel:   endpointLabel(qap.EndNode, qap.EndNodeID),
		Nodes:      make([]RenderedNode, 0, len(nodes)),
		Links:      make([]RenderedLink, 0, len(links)),
	}

	if best := HighestScorePath(qap.Paths); best >= 0 {
		graph.HighestScorePathID = PathID(qap, best)
	}

	radii := make(map[string]float64, len(nodes))
	for _, node := range nodes {
		radius := NodeRadius(node.IncomingEdges)
		radii[node.ID] = radius

		var total float64
		onHighest := false
		for _, path := range node.Paths {
			if path.QuestionAnswerPathID != "" {
				total += path.Score
			}
			onHighest = onHighest || (graph.HighestScorePathID != "" && path.ID == graph.HighestScorePathID)
		}
		score := 0.0
		if len(node.Paths) > 0 {
			score = total / float64(len(node.Paths))
		}

		rendered := RenderedNode{
			ID:      node.ID,
			Label:   node.Label,
			Radius:  radius,
			Score:   score,
			Fill:    ScoreColor(score),
			Opacity: backdropOpacity,
		}
		switch node.ID {
		case qap.StartNodeID:
			rendered.Stroke = startStroke
		case qap.EndNodeID:
			rendered.Stroke = endStroke
		}
		if onHighest {
			rendered.Opacity = focusOpacity
		}
		graph.Nodes = append(graph.Nodes, rendered)
	}

	for _, link := range links {
		rendered := RenderedLink{
			ID:           link.ID,
			SourceID:     link.SourceID,
			TargetID:     link.TargetID,
			Predicate:    link.Predicate,
			Stroke:       ScoreColor(link.Score),
			TargetRadius: radii[link.TargetID],
			Opacity:      backdropOpacity,
		}
		if graph.HighestScorePathID != "" && link.PathID == graph.HighestScorePathID {
			rendered.Opacity = focusOpacity
		}
		graph.Links = append(graph.Links, rendered)
	}

	return graph
}

func endpointLabel(node *models.KgNode, id string) string {
	if node != nil && node.Label != nil && *node.Label != "" {
		return *node.Label
	}
	return id
}
