package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Expectation is the documented outcome of running a sample.
type Expectation struct {
	State string
	Steps int
	Tape  string
}

// Sample is a named, documented machine.
type Sample struct {
	Program domain.Program
	Title   string
	Expect  Expectation
}

// Registry manages the available sample machines.
// It implements ports.ProgramLoader.
type Registry struct {
	mu      sync.RWMutex
	samples map[string]Sample
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		samples: make(map[string]Sample),
	}
}

// Default returns a registry holding the built-in samples.
func Default() *Registry {
	r := NewRegistry()
	for _, s := range builtin {
		r.Register(s)
	}
	return r
}

// Register adds a sample to the registry.
// If a sample with the same ID exists, it is overwritten.
func (r *Registry) Register(s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples[s.Program.ID] = s
}

// Sample looks up a sample by ID.
func (r *Registry) Sample(id string) (Sample, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.samples[id]
	return s, ok
}

// Samples returns every sample ordered by ID.
func (r *Registry) Samples() []Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Sample, 0, len(r.samples))
	for _, s := range r.samples {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Program.ID < out[j].Program.ID })
	return out
}

// GetProgram returns the program of a sample.
func (r *Registry) GetProgram(ctx context.Context, id string) (*domain.Program, error) {
	s, ok := r.Sample(id)
	if !ok {
		return nil, fmt.Errorf("%w: sample %s", domain.ErrProgramNotFound, id)
	}
	p := s.Program
	return &p, nil
}

// ListPrograms returns sample IDs in lexical order.
func (r *Registry) ListPrograms(ctx context.Context) ([]string, error) {
	samples := r.Samples()
	ids := make([]string, len(samples))
	for i, s := range samples {
		ids[i] = s.Program.ID
	}
	return ids, nil
}
