package question

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidQuestion = errors.New("invalid question")

type Question struct {
	ID                 int        `yaml:"id" json:"id"`
	Discipline         string     `yaml:"discipline" json:"discipline"`
	Topic              string     `yaml:"topic" json:"topic"`
	Difficulty         Difficulty `yaml:"difficulty" json:"difficulty"`
	Vignette           string     `yaml:"vignette" json:"vignette"`
	Options            []string   `yaml:"options" json:"options"`
	CorrectAnswerIndex int        `yaml:"correct_answer_index" json:"correctAnswerIndex"`
	Explanation        string     `yaml:"explanation" json:"explanation"`
	// WrongExplanations is keyed by option index.
	WrongExplanations map[int]string `yaml:"wrong_explanations" json:"wrongExplanations"`
}

func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectAnswerIndex
}

// WrongExplanation returns why option is wrong. ok is false for the correct
// option and for indexes outside the question.
func (q Question) WrongExplanation(option int) (string, bool) {
	if option == q.CorrectAnswerIndex {
		return "", false
	}
	text, ok := q.WrongExplanations[option]
	return text, ok
}

func (q Question) HasOption(option int) bool {
	return option >= 0 && option < len(q.Options)
}

// Validate checks the invariants every catalog entry must hold.
func (q Question) Validate() error {
	var problems []string

	if q.ID <= 0 {
		problems = append(problems, "id must be positive")
	}
	if strings.TrimSpace(q.Vignette) == "" {
		problems = append(problems, "vignette is empty")
	}
	if strings.TrimSpace(q.Discipline) == "" {
		problems = append(problems, "discipline is empty")
	}
	if !q.Difficulty.Valid() {
		problems = append(problems, fmt.Sprintf("unknown difficulty %q", q.Difficulty))
	}
	if len(q.Options) != OptionCount {
		problems = append(problems, fmt.Sprintf("has %d options, want %d", len(q.Options), OptionCount))
	}
	if !q.HasOption(q.CorrectAnswerIndex) {
		problems = append(problems, fmt.Sprintf("correct answer index %d out of range", q.CorrectAnswerIndex))
	}
	if len(q.WrongExplanations) != len(q.Options)-1 {
		problems = append(problems, fmt.Sprintf("has %d wrong explanations, want %d", len(q.WrongExplanations), len(q.Options)-1))
	}
	for option := range q.WrongExplanations {
		switch {
		case option == q.CorrectAnswerIndex:
			problems = append(problems, fmt.Sprintf("wrong explanation given for the correct option %d", option))
		case !q.HasOption(option):
			problems = append(problems, fmt.Sprintf("wrong explanation for unknown option %d", option))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w %d: %s", ErrInvalidQuestion, q.ID, strings.Join(problems, "; "))
}

func (q Question) clone() Question {
	cp := q
	cp.Options = append([]string(nil), q.Options...)
	cp.WrongExplanations = make(map[int]string, len(q.WrongExplanations))
	for k, v := range q.WrongExplanations {
		cp.WrongExplanations[k] = v
	}
	return cp
}
