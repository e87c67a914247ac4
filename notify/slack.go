// Package notify tells humans about activity on the site.
package notify

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/slack-go/slack"
	"github.com/worldoftea/worldoftea"
)

// excerptLength is the number of characters of a comment quoted in notifications.
const excerptLength = 200

// Slack posts a message to an incoming webhook for each new comment.
type Slack struct {
	webhookURL string
}

func NewSlack(webhookURL string) *Slack {
	return &Slack{webhookURL: webhookURL}
}

// Comment can be registered with Server.OnComment.
func (s *Slack) Comment(ctx context.Context, comment *worldoftea.Comment) error {
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("%s commented on %s: %s", comment.UserName, comment.TeaType, excerpt(comment.Text)),
	}

	if err := slack.PostWebhookContext(ctx, s.webhookURL, msg); err != nil {
		return fmt.Errorf("failed to notify slack: %w", err)
	}

	return nil
}

func excerpt(text string) string {
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}
	return string([]rune(text)[:excerptLength]) + "…"
}
