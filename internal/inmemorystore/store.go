package inmemorystore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/cellstore"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
)

// Store is an in-memory implementation of cellstore.Store backed by a plain
// map keyed by coordinate.
//
// Only written coordinates occupy memory; a 10,000 x 10,000 grid with three
// populated cells holds three entries.
//
// A RWMutex guards the map: the sheet has a single writer, and readers (the
// renderer, snapshots) share the read lock.
type Store struct {
	mu      sync.RWMutex
	cells   map[cellid.Coord]cellstore.Content
	version uint64
}

// New creates a new, empty in-memory cell store.
func New() *Store {
	return &Store{
		cells: make(map[cellid.Coord]cellstore.Content),
	}
}

var _ cellstore.Store = (*Store)(nil)

// Write stores a record at coord. See cellstore.Store for the semantics.
func (s *Store) Write(ctx context.Context, coord cellid.Coord, rawText string) error {
	if !coord.Valid() {
		return fmt.Errorf("%w: (%d, %d)", cellstore.ErrInvalidCoord, coord.Row, coord.Col)
	}

	content := cellstore.Classify(rawText)
	logger := ctxlog.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, exists := s.cells[coord]
	switch {
	case !exists && content.Raw == "":
		logger.Debug("Empty write to empty cell ignored.", "cell", coord.String())
		return nil
	case exists && prev == content:
		logger.Debug("Write unchanged, skipped.", "cell", coord.String())
		return nil
	}

	s.cells[coord] = content
	s.version++
	logger.Debug("Cell written.", "cell", coord.String(), "kind", content.Kind.String(), "version", s.version)
	return nil
}

// Read retrieves the record at coord.
func (s *Store) Read(ctx context.Context, coord cellid.Coord) (cellstore.Content, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.cells[coord]
	return content, ok
}

// Len returns the number of populated coordinates.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells)
}

// Version returns the current content version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Entries returns all records ordered row-major.
func (s *Store) Entries(ctx context.Context) []cellstore.Entry {
	s.mu.RLock()
	entries := make([]cellstore.Entry, 0, len(s.cells))
	for coord, content := range s.cells {
		entries = append(entries, cellstore.Entry{Coord: coord, Content: content})
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Coord.Less(entries[j].Coord)
	})
	return entries
}
