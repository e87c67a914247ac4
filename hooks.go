package worldoftea

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// hookTimeout bounds the time all hooks of a single write may take.
const hookTimeout = 5 * time.Second

// A VoteHook is called with each vote once it has been stored.
type VoteHook func(ctx context.Context, vote *Vote) error

// A CommentHook is called with each comment once it has been stored.
type CommentHook func(ctx context.Context, comment *Comment) error

// OnVote registers a hook called after a vote is cast. Hooks must be registered before Start.
func (s *Server) OnVote(h VoteHook) {
	s.voteHooks = append(s.voteHooks, h)
}

// OnComment registers a hook called after a comment is posted. Hooks must be registered before Start.
func (s *Server) OnComment(h CommentHook) {
	s.commentHooks = append(s.commentHooks, h)
}

// runVoteHooks calls the vote hooks in order, in the background. The record is already stored,
// so failures are logged and otherwise ignored.
func (s *Server) runVoteHooks(ctx context.Context, vote *Vote) {
	if len(s.voteHooks) == 0 {
		return
	}

	s.hooks.Add(1)
	go func() {
		defer s.hooks.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), hookTimeout)
		defer cancel()

		for _, h := range s.voteHooks {
			if err := h(ctx, vote); err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Str("question_id", vote.QuestionID).Msg("vote hook failed")
			}
		}
	}()
}

func (s *Server) runCommentHooks(ctx context.Context, comment *Comment) {
	if len(s.commentHooks) == 0 {
		return
	}

	s.hooks.Add(1)
	go func() {
		defer s.hooks.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), hookTimeout)
		defer cancel()

		for _, h := range s.commentHooks {
			if err := h(ctx, comment); err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Str("tea_type", comment.TeaType).Msg("comment hook failed")
			}
		}
	}()
}
