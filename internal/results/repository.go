package results

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HistoryRepository interface {
	Create(ctx context.Context, userID string, rec Record) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}

// Attempt is a finished session as stored in the database. Per-discipline
// counts live in a JSON column.
type Attempt struct {
	SessionID      string         `gorm:"type:text;primaryKey"`
	UserID         string         `gorm:"type:text;not null;index"`
	TotalQuestions int            `gorm:"not null;default:0"`
	CorrectCount   int            `gorm:"not null;default:0"`
	Disciplines    datatypes.JSON `gorm:"type:jsonb;not null"`
	CompletedAt    time.Time      `gorm:"not null"`
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) HistoryRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, userID string, rec Record) error {
	counts := make([]DisciplineCount, 0, len(rec.Summary.PerDiscipline))
	for _, d := range rec.Summary.PerDiscipline {
		counts = append(counts, d.DisciplineCount)
	}
	raw, err := json.Marshal(counts)
	if err != nil {
		return err
	}

	a := Attempt{
		SessionID:      rec.SessionID,
		UserID:         userID,
		TotalQuestions: rec.Summary.TotalQuestions,
		CorrectCount:   rec.Summary.TotalCorrect,
		Disciplines:    datatypes.JSON(raw),
		CompletedAt:    rec.CompletedAt,
	}
	return r.db.WithContext(ctx).Create(&a).Error
}

func (r *attemptRepository) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	var attempts []*Attempt
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(attempts))
	for _, a := range attempts {
		var counts []DisciplineCount
		if err := json.Unmarshal(a.Disciplines, &counts); err != nil {
			return nil, fmt.Errorf("decode attempt %s: %w", a.SessionID, err)
		}
		summary, err := Aggregate(counts)
		if err != nil {
			return nil, fmt.Errorf("attempt %s: %w", a.SessionID, err)
		}
		out = append(out, Record{SessionID: a.SessionID, CompletedAt: a.CompletedAt, Summary: summary})
	}
	return out, nil
}
