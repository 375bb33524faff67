package embload

import (
	"fmt"
	"os"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ErrNotFound is returned when no embeddings exist for an entity.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`, so a
// DirLoader miss and a Memory miss are detected the same way.
var ErrNotFound = os.ErrNotExist

// Memory is a thread-safe in-process loader backed by a map.
// The zero value is not usable; create one with NewMemory.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*mat.Dense
}

// NewMemory creates an empty in-memory loader.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*mat.Dense)}
}

// Put stores the embedding matrix for an entity, replacing any previous one.
// The matrix is stored by reference; callers must not mutate it afterwards.
func (m *Memory) Put(entityID string, embeddings *mat.Dense) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entityID] = embeddings
}

// Load returns the stored embedding matrix for an entity.
func (m *Memory) Load(entityID string) (*mat.Dense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[entityID]
	if !ok {
		return nil, fmt.Errorf("embload: no embeddings for entity %q: %w", entityID, ErrNotFound)
	}
	return e, nil
}

// Len returns the number of stored entities.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
