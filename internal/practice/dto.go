package practice

import (
	"github.com/nanambeah/MedPrep-Ghana/internal/access"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
)

type StartSessionDTO struct {
	Discipline string `json:"discipline"`
	Difficulty string `json:"difficulty"`
}

type SelectOptionDTO struct {
	Option *int `json:"option"`
}

// QuestionView is a question with its answer withheld.
type QuestionView struct {
	ID         int                 `json:"id"`
	Discipline string              `json:"discipline"`
	Topic      string              `json:"topic"`
	Difficulty question.Difficulty `json:"difficulty"`
	Vignette   string              `json:"vignette"`
	Options    []string            `json:"options"`
}

// Snapshot is everything a client needs to render a session.
type Snapshot struct {
	ID         string       `json:"id"`
	State      State        `json:"state"`
	Index      int          `json:"index"`
	Total      int          `json:"total"`
	Question   QuestionView `json:"question"`
	Selected   *int         `json:"selected"`
	Reveal     *Reveal      `json:"reveal,omitempty"`
	Bookmarked bool         `json:"bookmarked"`
	Access     access.Level `json:"access"`
	Blocked    bool         `json:"blocked"`
}

type BookmarkToggleResponse struct {
	QuestionID int  `json:"questionId"`
	Bookmarked bool `json:"bookmarked"`
}

// Snapshot renders the session for level. Restricted users see the session
// but are blocked from submitting.
func (s *Session) Snapshot(level access.Level) *Snapshot {
	q := s.Current()
	snap := &Snapshot{
		ID:    s.ID,
		State: s.state,
		Index: s.index,
		Total: len(s.questions),
		Question: QuestionView{
			ID:         q.ID,
			Discipline: q.Discipline,
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
			Vignette:   q.Vignette,
			Options:    append([]string(nil), q.Options...),
		},
		Reveal:     s.Reveal(),
		Bookmarked: s.bookmarks.Has(q.ID),
		Access:     level,
		Blocked:    level != access.LevelFull,
	}
	if sel, ok := s.Selected(); ok {
		snap.Selected = &sel
	}
	return snap
}
