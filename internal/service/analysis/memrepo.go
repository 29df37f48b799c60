package analysis

import (
	"context"
	"sort"
	"sync"

	"github.com/kapu/chess-moves-go/internal/domain"
)

// memrepo is a development-only in-memory repository implementation used when no DB is configured.
type memrepo struct {
	mu sync.RWMutex

	nextID int64
	items  []*domain.Analysis
}

func NewMemoryRepository() Repository {
	return &memrepo{}
}

func (m *memrepo) InsertAnalysis(ctx context.Context, a *domain.Analysis) (int64, error) {
	if a == nil {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	copy := *a
	copy.ID = m.nextID
	m.items = append(m.items, &copy)
	return copy.ID, nil
}

func (m *memrepo) RecentAnalyses(ctx context.Context, limit int) ([]*domain.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := append([]*domain.Analysis(nil), m.items...)
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]*domain.Analysis, len(items))
	for i, it := range items {
		copy := *it
		out[i] = &copy
	}
	return out, nil
}
