package pgstore

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/worldoftea/worldoftea"
)

// uniqueViolation is the SQLSTATE raised when a unique index rejects a row.
const uniqueViolation = "23505"

// A PGStore is responsible of interacting with the storage layer using a Postgresql database.
type PGStore struct {
	dbString string
	db       *sqlx.DB
}

// New returns a PGStore configured for a given address string, using the "user=postgres dbname=worldoftea ..." format.
func New(addr string) *PGStore {
	return &PGStore{
		dbString: addr,
	}
}

// Connect establish a connection with the database using the address given at initialization,
// creating the tables if they do not exist yet.
func (s *PGStore) Connect() error {
	db, err := sqlx.Connect("postgres", s.dbString)
	if err != nil {
		return worldoftea.Storage("connect", err)
	}

	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return worldoftea.Storage("create schema", err)
	}

	return nil
}

func (s *PGStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the existing connection, making it suitable to perform requests not already supported by
// the store interface. If called while not connected, it will return nil.
func (s *PGStore) DB() *sqlx.DB {
	return s.db
}

// CastVote records the vote, replacing the option and timestamp of any previous vote of the same
// user on the same question, in a single statement. The vote is updated with the persisted row.
func (s *PGStore) CastVote(ctx context.Context, vote *worldoftea.Vote) error {
	if err := vote.Validate(); err != nil {
		return err
	}

	err := s.db.GetContext(ctx, vote, `
		INSERT INTO votes (user_name, question_id, selected_option, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_name, question_id) DO UPDATE
		SET selected_option = EXCLUDED.selected_option, updated_at = EXCLUDED.updated_at
		RETURNING user_name, question_id, selected_option, created_at, updated_at`,
		vote.UserName, vote.QuestionID, vote.SelectedOption, vote.Timestamp.UTC(),
	)
	if err != nil {
		return wrapError("cast vote", err)
	}

	return nil
}

func (s *PGStore) ListVotes(ctx context.Context, questionID string) ([]*worldoftea.Vote, error) {
	votes := []*worldoftea.Vote{}
	err := s.db.SelectContext(ctx, &votes,
		"SELECT * FROM votes WHERE question_id = $1 ORDER BY created_at, user_name", questionID)
	if err != nil {
		return nil, wrapError("list votes", err)
	}

	return votes, nil
}

func (s *PGStore) InsertComment(ctx context.Context, comment *worldoftea.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	var id int64
	err := s.db.GetContext(ctx, &id,
		"INSERT INTO comments (user_name, tea_type, body, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		comment.UserName, comment.TeaType, comment.Text, comment.Timestamp.UTC(),
	)
	if err != nil {
		return wrapError("insert comment", err)
	}

	comment.ID = id

	return nil
}

func (s *PGStore) ListComments(ctx context.Context, teaType string) ([]*worldoftea.Comment, error) {
	comments := []*worldoftea.Comment{}
	err := s.db.SelectContext(ctx, &comments,
		"SELECT * FROM comments WHERE tea_type = $1 ORDER BY created_at DESC, id DESC", teaType)
	if err != nil {
		return nil, wrapError("list comments", err)
	}

	return comments, nil
}

func wrapError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return worldoftea.Conflict(err)
	}

	return worldoftea.Storage(op, err)
}

const schema = `
CREATE TABLE IF NOT EXISTS votes (
    user_name TEXT NOT NULL,
    question_id TEXT NOT NULL,
    selected_option TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_name, question_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_question_id ON votes(question_id);

CREATE TABLE IF NOT EXISTS comments (
    id BIGSERIAL PRIMARY KEY,
    user_name TEXT NOT NULL,
    tea_type TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comments_tea_type ON comments(tea_type, created_at DESC);
`
