package worldoftea

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength is the maximum number of characters in a comment text.
const MaxCommentLength = 2000

// A Comment is posted once on a tea page and never edited.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	UserName  string    `db:"user_name" json:"userName"`
	TeaType   string    `db:"tea_type" json:"teaType"`
	Text      string    `db:"body" json:"text"`
	Timestamp time.Time `db:"created_at" json:"timestamp"`
}

// NewComment returns a Comment stamped with the current time. The text is kept as
// typed, but cannot be blank.
func NewComment(userName string, teaType string, text string) (*Comment, error) {
	c := &Comment{
		UserName:  strings.TrimSpace(userName),
		TeaType:   strings.TrimSpace(teaType),
		Text:      text,
		Timestamp: NowFunc(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Comment) Validate() error {
	var fields []string
	if c.UserName == "" {
		fields = append(fields, "userName")
	}
	if c.TeaType == "" {
		fields = append(fields, "teaType")
	}
	if strings.TrimSpace(c.Text) == "" || utf8.RuneCountInString(c.Text) > MaxCommentLength {
		fields = append(fields, "text")
	}

	if len(fields) > 0 {
		return Invalid(fields...)
	}

	return nil
}
