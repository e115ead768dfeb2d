package transfer

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type memoryLogStore struct {
	mu     sync.RWMutex
	logs   map[int64]Log
	lastID int64
}

// NewMemoryLogStore constructs an in-memory log store for tests and for
// running the service without a database.
func NewMemoryLogStore() LogStore {
	return &memoryLogStore{logs: make(map[int64]Log)}
}

func (s *memoryLogStore) Create(_ context.Context, lg Log) (Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	lg.ID = s.lastID
	now := time.Now().UTC()
	lg.CreatedAt = now
	lg.UpdatedAt = now
	s.logs[lg.ID] = lg
	return lg, nil
}

func (s *memoryLogStore) UpdateStatus(_ context.Context, id int64, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lg, ok := s.logs[id]
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrLogNotFound, id)
	}
	if lg.Status.Terminal() {
		return fmt.Errorf("transfer log %d already %s", id, lg.Status)
	}
	lg.Status = status
	lg.UpdatedAt = time.Now().UTC()
	s.logs[id] = lg
	return nil
}

func (s *memoryLogStore) ListByAccount(_ context.Context, accountID int64) ([]Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var logs []Log
	for _, lg := range s.logs {
		if lg.FromAccountID == accountID || lg.ToAccountID == accountID {
			logs = append(logs, lg)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].ID < logs[j].ID })
	return logs, nil
}
