// Package events forwards stored votes and comments to a message broker, so that
// other services can follow the activity of the site.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/worldoftea/worldoftea"
)

const (
	TypeVoteCast      = "vote.cast"
	TypeCommentPosted = "comment.posted"
)

// A Publisher sends payloads to a broker. The key groups related messages, such
// as all votes on a question, for brokers that can keep them ordered.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
	Close() error
}

// An Event is the message sent for each vote or comment.
type Event struct {
	Type    string              `json:"type"`
	Key     string              `json:"key"`
	Vote    *worldoftea.Vote    `json:"vote,omitempty"`
	Comment *worldoftea.Comment `json:"comment,omitempty"`
	At      time.Time           `json:"at"`
}

// Forwarder provides server hooks publishing events.
type Forwarder struct {
	publisher Publisher
	now       func() time.Time
}

func NewForwarder(p Publisher) *Forwarder {
	return &Forwarder{publisher: p, now: time.Now}
}

// Vote publishes a vote.cast event keyed by question id. It can be registered with Server.OnVote.
func (f *Forwarder) Vote(ctx context.Context, vote *worldoftea.Vote) error {
	return f.publish(ctx, &Event{Type: TypeVoteCast, Key: vote.QuestionID, Vote: vote})
}

// Comment publishes a comment.posted event keyed by tea type. It can be registered with Server.OnComment.
func (f *Forwarder) Comment(ctx context.Context, comment *worldoftea.Comment) error {
	return f.publish(ctx, &Event{Type: TypeCommentPosted, Key: comment.TeaType, Comment: comment})
}

func (f *Forwarder) publish(ctx context.Context, e *Event) error {
	e.At = f.now().UTC()

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", e.Type, err)
	}

	if err := f.publisher.Publish(ctx, e.Key, payload); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", e.Type, err)
	}

	return nil
}
