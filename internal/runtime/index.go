package runtime

import "github.com/aretw0/turing/pkg/domain"

type indexKey struct {
	state domain.StateID
	read  domain.Symbol
}

// transitionIndex maps (state, read) to the position of the first matching
// transition. Later duplicates are never indexed.
type transitionIndex map[indexKey]int

func buildIndex(transitions []domain.Transition) transitionIndex {
	idx := make(transitionIndex, len(transitions))
	for i, t := range transitions {
		k := indexKey{state: t.From, read: t.Read}
		if _, exists := idx[k]; !exists {
			idx[k] = i
		}
	}
	return idx
}

func (idx transitionIndex) lookup(state domain.StateID, read domain.Symbol) (int, bool) {
	i, ok := idx[indexKey{state: state, read: read}]
	return i, ok
}
