package worldoftea

import "context"

// A Store persists votes and comments. Implementations must make CastVote a single
// atomic upsert on (UserName, QuestionID).
type Store interface {
	Connect() error
	Close() error
	CastVote(ctx context.Context, vote *Vote) error
	ListVotes(ctx context.Context, questionID string) ([]*Vote, error)
	InsertComment(ctx context.Context, comment *Comment) error
	ListComments(ctx context.Context, teaType string) ([]*Comment, error)
}
