package practice

import "errors"

var (
	ErrUnauthenticated      = errors.New("sign in to practice")
	ErrNoQuestions          = errors.New("no questions match the selected filters")
	ErrInvalidOption        = errors.New("option out of range")
	ErrAlreadySubmitted     = errors.New("answer already submitted")
	ErrNoSelection          = errors.New("select an option before submitting")
	ErrNotSubmitted         = errors.New("submit an answer before moving on")
	ErrSessionComplete      = errors.New("session is complete")
	ErrSessionNotComplete   = errors.New("session is not complete")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSubscriptionRequired = errors.New("an active subscription is required")
	ErrUnknownQuestion      = errors.New("unknown question")
)
