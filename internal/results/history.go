package results

import (
	"context"
	"sync"
	"time"
)

type Record struct {
	SessionID   string    `json:"sessionId"`
	CompletedAt time.Time `json:"completedAt"`
	Summary     Summary   `json:"summary"`
}

// History is the per-user log of finished practice sessions.
type History struct {
	repo HistoryRepository
}

func NewHistory(repo HistoryRepository) *History {
	return &History{repo: repo}
}

func (h *History) Add(ctx context.Context, userID string, rec Record) error {
	return h.repo.Create(ctx, userID, rec)
}

// List returns the user's records, oldest first.
func (h *History) List(ctx context.Context, userID string) ([]Record, error) {
	return h.repo.ListByUser(ctx, userID)
}

// Counts folds every recorded session into one count per discipline, ordered
// by first appearance.
func (h *History) Counts(ctx context.Context, userID string) ([]DisciplineCount, error) {
	records, err := h.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []DisciplineCount
	pos := make(map[string]int)
	for _, rec := range records {
		for _, d := range rec.Summary.PerDiscipline {
			i, ok := pos[d.Discipline]
			if !ok {
				i = len(out)
				pos[d.Discipline] = i
				out = append(out, DisciplineCount{Discipline: d.Discipline})
			}
			out[i].Correct += d.Correct
			out[i].Total += d.Total
		}
	}
	return out, nil
}

type memoryRepository struct {
	mu      sync.RWMutex
	records map[string][]Record
}

func NewMemoryRepository() HistoryRepository {
	return &memoryRepository{records: make(map[string][]Record)}
}

func (r *memoryRepository) Create(_ context.Context, userID string, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[userID] = append(r.records[userID], rec)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Record(nil), r.records[userID]...), nil
}
