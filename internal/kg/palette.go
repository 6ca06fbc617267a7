package kg

import "sync"

var tableau10 = []string{
	"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
	"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
}

// SourcePalette assigns colors to source ids in the order they are first requested,
// cycling through the Tableau10 scheme.
type SourcePalette struct {
	mu       sync.Mutex
	assigned map[string]string
}

func NewSourcePalette() *SourcePalette {
	return &SourcePalette{assigned: make(map[string]string)}
}

func (p *SourcePalette) Color(sourceID string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if color, ok := p.assigned[sourceID]; ok {
		return color
	}
	color := tableau10[len(p.assigned)%len(tableau10)]
	p.assigned[sourceID] = color
	return color
}
