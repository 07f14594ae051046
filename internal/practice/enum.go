package practice

type State string

const (
	StateUnanswered State = "unanswered"
	StateAnswered   State = "answered"
	StateComplete   State = "complete"
)
