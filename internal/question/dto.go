package question

// SummaryDTO describes a question without revealing its answer.
type SummaryDTO struct {
	ID         int        `json:"id"`
	Discipline string     `json:"discipline"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Vignette   string     `json:"vignette"`
}

func ToSummary(q Question) SummaryDTO {
	return SummaryDTO{
		ID:         q.ID,
		Discipline: q.Discipline,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Vignette:   q.Vignette,
	}
}
