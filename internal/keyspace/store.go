package keyspace

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/mahdiidarabi/solvanity/internal/fileio"
)

// ErrCorruptCounter is returned when persisted state is not exactly CounterSize bytes.
var ErrCorruptCounter = errors.New("persisted counter is not 32 bytes")

// Store persists a single counter.
type Store interface {
	// Load returns the persisted counter. ok is false when nothing has been
	// persisted yet.
	Load() (c Counter, ok bool, err error)

	// Save replaces the persisted counter.
	Save(c Counter) error
}

// FileStore keeps the counter as 32 raw bytes in a file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the counter file. A missing file is not an error.
func (f *FileStore) Load() (Counter, bool, error) {
	var c Counter
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return c, false, nil
	}
	if err != nil {
		return c, false, fmt.Errorf("failed to read counter: %w", err)
	}
	if len(b) != CounterSize {
		return c, false, fmt.Errorf("%w: %s holds %d bytes", ErrCorruptCounter, f.Path, len(b))
	}
	copy(c[:], b)
	return c, true, nil
}

// Save writes the counter file atomically.
func (f *FileStore) Save(c Counter) error {
	if err := fileio.WriteAtomic(f.Path, c[:], 0o644); err != nil {
		return fmt.Errorf("failed to persist counter: %w", err)
	}
	return nil
}

// MemoryStore keeps the counter in memory.
type MemoryStore struct {
	mu    sync.Mutex
	c     Counter
	ok    bool
	saves int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved counter.
func (m *MemoryStore) Load() (Counter, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.c, m.ok, nil
}

// Save records c.
func (m *MemoryStore) Save(c Counter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.c = c
	m.ok = true
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
