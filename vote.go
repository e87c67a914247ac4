package worldoftea

import (
	"strings"
	"time"
)

// A Vote is the current choice of one user for one quiz question. There is at
// most one Vote per (UserName, QuestionID) pair.
type Vote struct {
	UserName       string    `db:"user_name" json:"userName"`
	QuestionID     string    `db:"question_id" json:"questionId"`
	SelectedOption string    `db:"selected_option" json:"selectedOption"`
	CreatedAt      time.Time `db:"created_at" json:"-"`
	Timestamp      time.Time `db:"updated_at" json:"timestamp"`
}

// NewVote normalizes its arguments and returns a Vote stamped with the current time.
// It returns a *ValidationError listing every field left empty after trimming.
func NewVote(userName string, questionID string, selectedOption string) (*Vote, error) {
	now := NowFunc()
	v := &Vote{
		UserName:       strings.TrimSpace(userName),
		QuestionID:     strings.TrimSpace(questionID),
		SelectedOption: strings.TrimSpace(selectedOption),
		CreatedAt:      now,
		Timestamp:      now,
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks that all required fields are set.
func (v *Vote) Validate() error {
	var fields []string
	if v.UserName == "" {
		fields = append(fields, "userName")
	}
	if v.QuestionID == "" {
		fields = append(fields, "questionId")
	}
	if v.SelectedOption == "" {
		fields = append(fields, "selectedOption")
	}

	if len(fields) > 0 {
		return Invalid(fields...)
	}

	return nil
}
