package correct

import "github.com/HeshalD/Cuisinise/core"

// candidatePool is an insertion-ordered set of candidate strings keyed by
// normalized text, so later stages iterate deterministically.
type candidatePool struct {
	seen  map[string]struct{}
	items []string
}

func newCandidatePool() *candidatePool {
	return &candidatePool{seen: make(map[string]struct{})}
}

// Add inserts a candidate unless an equivalent one is already present.
func (p *candidatePool) Add(text string) {
	key := core.NormalizeText(text)
	if key == "" {
		return
	}
	if _, ok := p.seen[key]; ok {
		return
	}
	p.seen[key] = struct{}{}
	p.items = append(p.items, text)
}

// Items returns candidates in insertion order.
func (p *candidatePool) Items() []string {
	return p.items
}
