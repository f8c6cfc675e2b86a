package datastore

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"gridiron/adapters/tabular"
	"gridiron/domain/table"
	"gridiron/internal"
	"gridiron/ports"
)

// Store owns the process-wide dataset snapshot. The file is read at most once
// per process: the first successful load is cached for the process lifetime,
// so later changes to the file are never observed. A failed load is not
// cached and the next request retries.
type Store struct {
	path   string
	reader ports.ReaderPort
	logger *internal.Logger

	mu     sync.RWMutex
	cached *table.Table

	group singleflight.Group
}

// NewStore creates a store for the configured dataset path
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		reader: tabular.NewDataReader(path),
		logger: internal.NewDefaultLogger(),
	}
}

// Path returns the configured dataset path
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached dataset, reading the file on first use. Concurrent
// first calls collapse into a single read.
func (s *Store) Load() (*table.Table, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := s.group.Do("dataset", func() (interface{}, error) {
		// Another flight may have finished while we waited for the lock.
		s.mu.RLock()
		cached := s.cached
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		tbl, err := s.reader.ReadData()
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cached = tbl
		s.mu.Unlock()

		s.logger.Info("Dataset cached for process lifetime (%d rows, %d columns)",
			tbl.NumRows(), tbl.NumColumns())
		if s.logger.GetLevel() >= internal.LogLevelDebug {
			s.logger.Debug("Dataset columns: %s", strings.Join(tbl.Headers, ", "))
		}
		return tbl, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*table.Table), nil
}
