// Package results reduces per-discipline answer counts into the summary shown
// on the dashboard and at the end of a practice session.
package results

import (
	"errors"
	"fmt"
	"math"
)

var ErrNoQuestions = errors.New("no questions answered")

type DisciplineCount struct {
	Discipline string `json:"discipline"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
}

type DisciplineResult struct {
	DisciplineCount
	AccuracyPercent int `json:"accuracyPercent"`
}

type Summary struct {
	TotalCorrect    int                `json:"totalCorrect"`
	TotalQuestions  int                `json:"totalQuestions"`
	AccuracyPercent int                `json:"accuracyPercent"`
	PerDiscipline   []DisciplineResult `json:"perDiscipline"`
}

// Aggregate sums the counts and keeps the per-discipline entries in input
// order. A zero total is rejected instead of dividing by it.
func Aggregate(counts []DisciplineCount) (Summary, error) {
	var s Summary
	s.PerDiscipline = make([]DisciplineResult, 0, len(counts))

	for _, c := range counts {
		if c.Correct < 0 || c.Total < 0 || c.Correct > c.Total {
			return Summary{}, fmt.Errorf("invalid count for %s: %d/%d", c.Discipline, c.Correct, c.Total)
		}
		s.TotalCorrect += c.Correct
		s.TotalQuestions += c.Total
		s.PerDiscipline = append(s.PerDiscipline, DisciplineResult{
			DisciplineCount: c,
			AccuracyPercent: percent(c.Correct, c.Total),
		})
	}

	if s.TotalQuestions == 0 {
		return Summary{}, ErrNoQuestions
	}
	s.AccuracyPercent = percent(s.TotalCorrect, s.TotalQuestions)
	return s, nil
}

func percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
