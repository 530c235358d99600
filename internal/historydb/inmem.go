package historydb

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewInMemoryStore returns a Store backed entirely by process memory. All
// history is lost on restart.
func NewInMemoryStore() Store {
	return &inmemStore{history: newInMemoryHistoryRepository()}
}

type inmemStore struct {
	history *inmemHistoryRepository
}

func (s *inmemStore) History() HistoryRepository { return s.history }

func (s *inmemStore) Close() error { return nil }

func newInMemoryHistoryRepository() *inmemHistoryRepository {
	return &inmemHistoryRepository{records: make(map[uuid.UUID]ParseRecord)}
}

// inmemHistoryRepository guards records with a mutex because the HTTP
// service drives many concurrent /validate requests against the same
// repository; the sqlite backend gets the equivalent serialization for
// free from database/sql's connection pool.
type inmemHistoryRepository struct {
	mu      sync.Mutex
	records map[uuid.UUID]ParseRecord
}

func (r *inmemHistoryRepository) Close() error { return nil }

func (r *inmemHistoryRepository) Create(ctx context.Context, rec ParseRecord) (ParseRecord, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return ParseRecord{}, fmt.Errorf("could not generate ID: %w", err)
	}
	rec.ID = newUUID
	if rec.SubmittedAt.IsZero() {
		rec.SubmittedAt = time.Now()
	}

	r.mu.Lock()
	r.records[rec.ID] = rec
	r.mu.Unlock()

	return rec, nil
}

func (r *inmemHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (ParseRecord, error) {
	r.mu.Lock()
	rec, ok := r.records[id]
	r.mu.Unlock()

	if !ok {
		return ParseRecord{}, ErrNotFound
	}
	return rec, nil
}

func (r *inmemHistoryRepository) GetAll(ctx context.Context, notBefore *time.Time, notAfter *time.Time) ([]ParseRecord, error) {
	r.mu.Lock()
	all := make([]ParseRecord, 0, len(r.records))
	for _, rec := range r.records {
		if notBefore != nil && rec.SubmittedAt.Before(*notBefore) {
			continue
		}
		if notAfter != nil && rec.SubmittedAt.After(*notAfter) {
			continue
		}
		all = append(all, rec)
	}
	r.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].SubmittedAt.After(all[j].SubmittedAt)
	})

	return all, nil
}
