package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/turing/pkg/domain"
)

// Loader adapts the Loam library to the ports.ProgramLoader interface.
// Each document is one machine: frontmatter carries the tape and parameters,
// the body carries the description.
type Loader struct {
	Repo *loam.TypedRepository[MachineMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[MachineMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// The library is only ever read; ReadOnly keeps Loam out of its sandbox mode.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[MachineMetadata](repo)), nil
}

// GetProgram retrieves a machine by its normalized ID.
func (l *Loader) GetProgram(ctx context.Context, id string) (*domain.Program, error) {
	docID, err := l.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := l.Repo.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	return &domain.Program{
		ID:          id,
		Description: buildDescription(doc.Data, doc.Content),
		Tape:        strings.TrimSpace(doc.Data.Tape),
	}, nil
}

// ListPrograms lists all machines in the repository.
func (l *Loader) ListPrograms(ctx context.Context) ([]string, error) {
	index, err := l.index(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// resolve maps a normalized ID to the Loam document ID.
func (l *Loader) resolve(ctx context.Context, id string) (string, error) {
	index, err := l.index(ctx)
	if err != nil {
		return "", err
	}
	docID, ok := index[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrProgramNotFound, id)
	}
	return docID, nil
}

// index maps normalized IDs to document IDs, rejecting collisions.
func (l *Loader) index(ctx context.Context) (map[string]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
	}
	return seen, nil
}

// buildDescription joins frontmatter parameters and the document body.
// When the body holds a fenced code block, only the first block is used so
// machine files can carry prose around the table.
func buildDescription(meta MachineMetadata, content string) string {
	var b strings.Builder
	if meta.Start != "" {
		fmt.Fprintf(&b, "start %s\n", meta.Start)
	}
	if meta.EmptySymbol != "" {
		fmt.Fprintf(&b, "empty_symbol %s\n", meta.EmptySymbol)
	}
	b.WriteString(extractFence(content))
	return strings.TrimRight(b.String(), "\n")
}

func extractFence(content string) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r", ""), "\n")
	start := -1
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		return strings.Join(lines[start+1:i], "\n")
	}
	return strings.TrimSpace(content)
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
