package question

type QuestionContainer struct {
	Catalog *Catalog
	Handler *Handler
}

func NewQuestionContainer(c *Catalog) *QuestionContainer {
	return &QuestionContainer{
		Catalog: c,
		Handler: NewHandler(c),
	}
}
