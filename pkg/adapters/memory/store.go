package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/turing/pkg/domain"
)

// Store implements ports.ProgramStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Program
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Program),
	}
}

// Save persists a copy of the program in memory.
func (s *Store) Save(ctx context.Context, id string, program *domain.Program) error {
	if err := domain.ValidateProgramID(id); err != nil {
		return err
	}

	stored := *program
	stored.ID = id
	stored.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = stored
	return nil
}

// Load retrieves a copy of the program from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Program, error) {
	if err := domain.ValidateProgramID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	program, ok := s.data[id]
	if !ok {
		return nil, domain.ErrProgramNotFound
	}
	return &program, nil
}

// Delete removes the program.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored program IDs in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
