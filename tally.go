package worldoftea

import (
	"sort"

	"github.com/worldoftea/worldoftea/teas"
)

// Results are the standings of a question, computed from its votes.
type Results struct {
	QuestionID string          `json:"questionId"`
	Question   string          `json:"question,omitempty"`
	Total      int             `json:"total"`
	Options    []*OptionResult `json:"options"`
}

type OptionResult struct {
	Option     string   `json:"option"`
	Label      string   `json:"label,omitempty"`
	Correct    bool     `json:"correct,omitempty"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
	Voters     []string `json:"voters"`
}

// Tally groups votes by selected option. Votes for other questions are ignored.
// If questionID is a known quiz question, all its options are listed, even those
// nobody picked.
func Tally(questionID string, votes []*Vote) *Results {
	res := &Results{QuestionID: questionID, Options: []*OptionResult{}}
	index := map[string]*OptionResult{}

	if _, q, err := teas.FindQuestion(questionID); err == nil {
		res.Question = q.Question
		for _, o := range q.Options {
			or := &OptionResult{Option: o.Key, Label: o.Text, Correct: o.Correct, Voters: []string{}}
			index[o.Key] = or
			res.Options = append(res.Options, or)
		}
	}

	for _, v := range votes {
		if v.QuestionID != questionID {
			continue
		}

		or, ok := index[v.SelectedOption]
		if !ok {
			or = &OptionResult{Option: v.SelectedOption, Voters: []string{}}
			index[v.SelectedOption] = or
			res.Options = append(res.Options, or)
		}

		or.Count++
		or.Voters = append(or.Voters, v.UserName)
		res.Total++
	}

	sort.Slice(res.Options, func(i, j int) bool {
		return res.Options[i].Option < res.Options[j].Option
	})

	for _, or := range res.Options {
		sort.Strings(or.Voters)
		if res.Total > 0 {
			or.Percentage = float64(or.Count) * 100 / float64(res.Total)
		}
	}

	return res
}

// Leader returns the option with the most votes, or nil if nobody voted. Ties go
// to the option sorting first.
func (r *Results) Leader() *OptionResult {
	var leader *OptionResult
	for _, or := range r.Options {
		if or.Count > 0 && (leader == nil || or.Count > leader.Count) {
			leader = or
		}
	}
	return leader
}
