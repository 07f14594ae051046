package question

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrDuplicateID = errors.New("duplicate question id")

type Catalog struct {
	disciplines []string
	questions   []Question
	index       map[int]int
}

type catalogFile struct {
	Disciplines []string   `yaml:"disciplines"`
	Questions   []Question `yaml:"questions"`
}

type DisciplineStat struct {
	Discipline string `json:"discipline"`
	Questions  int    `json:"questions"`
}

// New validates every question and fails on the first load if any of them
// breaks an invariant. All problems are reported together.
func New(disciplines []string, questions []Question) (*Catalog, error) {
	c := &Catalog{
		disciplines: append([]string(nil), disciplines...),
		questions:   make([]Question, 0, len(questions)),
		index:       make(map[int]int, len(questions)),
	}

	var errs []error
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.index[q.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateID, q.ID))
			continue
		}
		c.index[q.ID] = len(c.questions)
		c.questions = append(c.questions, q.clone())
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if len(c.disciplines) == 0 {
		c.disciplines = c.observedDisciplines()
	}
	return c, nil
}

func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(file.Disciplines, file.Questions)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Default returns the question bank compiled into the binary.
func Default() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(defaultCatalog, &file); err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	return New(file.Disciplines, file.Questions)
}

// Open loads path when it is set and the embedded bank otherwise.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

func (c *Catalog) Disciplines() []string {
	return append([]string(nil), c.disciplines...)
}

func (c *Catalog) Get(id int) (Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i].clone(), true
}

// Filter returns matching questions in catalog order. The result may be
// empty; callers treat that as a prompt to widen the filter.
func (c *Catalog) Filter(f Filter) []Question {
	var out []Question
	for _, q := range c.questions {
		if f.Matches(q) {
			out = append(out, q.clone())
		}
	}
	return out
}

// Stats counts questions per listed discipline, in listing order.
func (c *Catalog) Stats() []DisciplineStat {
	counts := make(map[string]int)
	for _, q := range c.questions {
		counts[q.Discipline]++
	}

	stats := make([]DisciplineStat, 0, len(c.disciplines))
	for _, d := range c.disciplines {
		stats = append(stats, DisciplineStat{Discipline: d, Questions: counts[d]})
	}
	return stats
}

func (c *Catalog) observedDisciplines() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range c.questions {
		if !seen[q.Discipline] {
			seen[q.Discipline] = true
			out = append(out, q.Discipline)
		}
	}
	return out
}
