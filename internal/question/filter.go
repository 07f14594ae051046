package question

// Filter selects the working set for a practice session. Empty fields and
// All match everything; anything else must match exactly.
type Filter struct {
	Discipline string `json:"discipline"`
	Difficulty string `json:"difficulty"`
}

func (f Filter) Matches(q Question) bool {
	return matches(f.Discipline, q.Discipline) && matches(f.Difficulty, string(q.Difficulty))
}

func matches(want, got string) bool {
	return want == "" || want == All || want == got
}
