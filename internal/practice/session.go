package practice

import (
	"github.com/google/uuid"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
)

const noSelection = -1

// Reveal is what the user learns about a question once they submit.
type Reveal struct {
	QuestionID         int    `json:"questionId"`
	Selected           int    `json:"selected"`
	CorrectAnswerIndex int    `json:"correctAnswerIndex"`
	Correct            bool   `json:"correct"`
	Explanation        string `json:"explanation"`
	WrongExplanation   string `json:"wrongExplanation,omitempty"`
}

type Outcome struct {
	QuestionID int    `json:"questionId"`
	Discipline string `json:"discipline"`
	Selected   int    `json:"selected"`
	Correct    bool   `json:"correct"`
}

// Session walks a user through a fixed working set one question at a time.
//
//	unanswered --Submit--> answered --Advance--> unanswered (next question)
//	                                 \--Advance on the last question--> complete
//
// Every transition is deterministic. Rejected transitions leave the session
// exactly as it was.
type Session struct {
	ID     string
	UserID string
	Filter question.Filter

	questions []question.Question
	index     int
	selected  int
	state     State
	reveal    *Reveal
	outcomes  []Outcome
	bookmarks *Bookmarks
}

// Start filters the catalog and opens a session over the result.
func Start(u *user.User, c *question.Catalog, f question.Filter, bookmarks *Bookmarks) (*Session, error) {
	if u == nil {
		return nil, ErrUnauthenticated
	}
	s, err := NewSession(u, c.Filter(f), bookmarks)
	if err != nil {
		return nil, err
	}
	s.Filter = f
	return s, nil
}

// NewSession opens a session over questions in the order given. bookmarks
// may be nil, in which case the session gets a set of its own.
func NewSession(u *user.User, questions []question.Question, bookmarks *Bookmarks) (*Session, error) {
	if u == nil {
		return nil, ErrUnauthenticated
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if bookmarks == nil {
		bookmarks = NewBookmarks()
	}

	return &Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		questions: questions,
		selected:  noSelection,
		state:     StateUnanswered,
		bookmarks: bookmarks,
	}, nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Index() int {
	return s.index
}

func (s *Session) Len() int {
	return len(s.questions)
}

// Current is the question at the current index. A complete session stays on
// its last question.
func (s *Session) Current() question.Question {
	return s.questions[s.index]
}

func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected != noSelection
}

// Reveal is nil until the current question has been submitted.
func (s *Session) Reveal() *Reveal {
	if s.reveal == nil {
		return nil
	}
	r := *s.reveal
	return &r
}

func (s *Session) Outcomes() []Outcome {
	return append([]Outcome(nil), s.outcomes...)
}

func (s *Session) Bookmarks() *Bookmarks {
	return s.bookmarks
}

func (s *Session) IsBookmarked(questionID int) bool {
	return s.bookmarks.Has(questionID)
}

// SelectOption records a tentative choice. Choices can change freely until
// the answer is submitted.
func (s *Session) SelectOption(option int) error {
	switch s.state {
	case StateComplete:
		return ErrSessionComplete
	case StateAnswered:
		return ErrAlreadySubmitted
	}
	if !s.Current().HasOption(option) {
		return ErrInvalidOption
	}
	s.selected = option
	return nil
}

// Submit locks in the selected option for the current question.
func (s *Session) Submit() (Reveal, error) {
	switch s.state {
	case StateComplete:
		return Reveal{}, ErrSessionComplete
	case StateAnswered:
		return Reveal{}, ErrAlreadySubmitted
	}
	if s.selected == noSelection {
		return Reveal{}, ErrNoSelection
	}

	q := s.Current()
	r := Reveal{
		QuestionID:         q.ID,
		Selected:           s.selected,
		CorrectAnswerIndex: q.CorrectAnswerIndex,
		Correct:            q.IsCorrect(s.selected),
		Explanation:        q.Explanation,
	}
	if !r.Correct {
		r.WrongExplanation, _ = q.WrongExplanation(s.selected)
	}

	s.reveal = &r
	s.state = StateAnswered
	s.outcomes = append(s.outcomes, Outcome{
		QuestionID: q.ID,
		Discipline: q.Discipline,
		Selected:   s.selected,
		Correct:    r.Correct,
	})
	return r, nil
}

// Advance moves past a submitted question. On the last question the session
// completes instead.
func (s *Session) Advance() error {
	switch s.state {
	case StateComplete:
		return ErrSessionComplete
	case StateUnanswered:
		return ErrNotSubmitted
	}

	if s.index == len(s.questions)-1 {
		s.state = StateComplete
		return nil
	}
	s.index++
	s.selected = noSelection
	s.reveal = nil
	s.state = StateUnanswered
	return nil
}

// ToggleBookmark works in every state and never affects progression.
func (s *Session) ToggleBookmark(questionID int) bool {
	return s.bookmarks.Toggle(questionID)
}

// Summary scores a complete session per discipline, in the order the
// disciplines first appear in the working set.
func (s *Session) Summary() (results.Summary, error) {
	if s.state != StateComplete {
		return results.Summary{}, ErrSessionNotComplete
	}

	var counts []results.DisciplineCount
	pos := make(map[string]int)
	for _, o := range s.outcomes {
		i, ok := pos[o.Discipline]
		if !ok {
			i = len(counts)
			pos[o.Discipline] = i
			counts = append(counts, results.DisciplineCount{Discipline: o.Discipline})
		}
		counts[i].Total++
		if o.Correct {
			counts[i].Correct++
		}
	}
	return results.Aggregate(counts)
}
