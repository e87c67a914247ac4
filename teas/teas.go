// Package teas holds the closed catalog of tea kinds covered by the site, with
// their content and quizzes.
package teas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A Kind identifies a tea page. Only the constants below are valid kinds.
type Kind string

const (
	White  Kind = "white"
	Yellow Kind = "yellow"
	Green  Kind = "green"
	Oolong Kind = "oolong"
	Black  Kind = "black"
	PuErh  Kind = "pu-erh"
)

// Kinds lists every kind, in the order the site presents them.
var Kinds = []Kind{White, Yellow, Green, Oolong, Black, PuErh}

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a key absent from the catalog.
type NotFoundError struct {
	What string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.What, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type Tea struct {
	Kind           Kind     `json:"kind"`
	Name           string   `json:"name"`
	Subtitle       string   `json:"subtitle"`
	Origin         string   `json:"origin"`
	FlavorProfile  string   `json:"flavorProfile"`
	Processing     string   `json:"processing"`
	HealthBenefits []string `json:"healthBenefits"`
	BrewingTips    string   `json:"brewingTips"`
	FunFacts       []string `json:"funFacts"`
	Quizzes        []*Quiz  `json:"quizzes"`
}

type Quiz struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	Options     []*Option `json:"options"`
	Explanation string    `json:"explanation"`
}

type Option struct {
	Key     string `json:"key"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Summary is the short form of a Tea used in listings.
type Summary struct {
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
}

// Lookup returns the tea for a kind, or a *NotFoundError.
func Lookup(kind string) (*Tea, error) {
	t, ok := catalog[Kind(kind)]
	if !ok {
		return nil, &NotFoundError{What: "tea", Key: kind}
	}
	return t, nil
}

// All returns every tea, in the order of Kinds.
func All() []*Tea {
	all := make([]*Tea, len(Kinds))
	for i, k := range Kinds {
		all[i] = catalog[k]
	}
	return all
}

func Summaries() []Summary {
	ss := make([]Summary, len(Kinds))
	for i, t := range All() {
		ss[i] = Summary{Kind: t.Kind, Name: t.Name, Subtitle: t.Subtitle}
	}
	return ss
}

// FindQuestion resolves a question id such as "green-q1".
func FindQuestion(id string) (*Tea, *Quiz, error) {
	idx := strings.LastIndex(id, "-q")
	if idx <= 0 {
		return nil, nil, &NotFoundError{What: "question", Key: id}
	}

	t, ok := catalog[Kind(id[:idx])]
	if !ok {
		return nil, nil, &NotFoundError{What: "question", Key: id}
	}

	for _, q := range t.Quizzes {
		if q.ID == id {
			return t, q, nil
		}
	}

	return nil, nil, &NotFoundError{What: "question", Key: id}
}

var catalog = map[Kind]*Tea{}

func init() {
	for _, t := range teas {
		for i, q := range t.Quizzes {
			q.ID = string(t.Kind) + "-q" + strconv.Itoa(i+1)
			for j, o := range q.Options {
				o.Key = string(rune('A' + j))
			}
		}
		catalog[t.Kind] = t
	}
}
