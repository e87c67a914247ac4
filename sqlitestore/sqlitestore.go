// Package sqlitestore stores votes and comments in a SQLite database file. It is
// meant for development, tests and single-instance deployments.
package sqlitestore

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/worldoftea/worldoftea"
)

type SQLiteStore struct {
	path string
	db   *sqlx.DB
}

// New returns a store for the database file at path. Use ":memory:" for a
// throwaway database.
func New(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Connect() error {
	db, err := sqlx.Connect("sqlite3", s.path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return worldoftea.Storage("connect", err)
	}

	// One connection: writes are serialized in process, and an in-memory
	// database survives as long as the store.
	db.SetMaxOpenConns(1)
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return worldoftea.Storage("create schema", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) DB() *sqlx.DB {
	return s.db
}

// CastVote upserts the vote and reads the stored row back in the same transaction.
func (s *SQLiteStore) CastVote(ctx context.Context, vote *worldoftea.Vote) error {
	if err := vote.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapError("cast vote", err)
	}
	defer tx.Rollback()

	ts := vote.Timestamp.UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO votes (user_name, question_id, selected_option, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_name, question_id) DO UPDATE
		SET selected_option = excluded.selected_option, updated_at = excluded.updated_at`,
		vote.UserName, vote.QuestionID, vote.SelectedOption, ts, ts,
	)
	if err != nil {
		return wrapError("cast vote", err)
	}

	err = tx.GetContext(ctx, vote,
		"SELECT * FROM votes WHERE user_name = ? AND question_id = ?", vote.UserName, vote.QuestionID)
	if err != nil {
		return wrapError("cast vote", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapError("cast vote", err)
	}

	return nil
}

func (s *SQLiteStore) ListVotes(ctx context.Context, questionID string) ([]*worldoftea.Vote, error) {
	votes := []*worldoftea.Vote{}
	err := s.db.SelectContext(ctx, &votes,
		"SELECT * FROM votes WHERE question_id = ? ORDER BY created_at, user_name", questionID)
	if err != nil {
		return nil, wrapError("list votes", err)
	}

	return votes, nil
}

func (s *SQLiteStore) InsertComment(ctx context.Context, comment *worldoftea.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (user_name, tea_type, body, created_at) VALUES (?, ?, ?, ?)",
		comment.UserName, comment.TeaType, comment.Text, comment.Timestamp.UTC(),
	)
	if err != nil {
		return wrapError("insert comment", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return wrapError("insert comment", err)
	}

	comment.ID = id

	return nil
}

func (s *SQLiteStore) ListComments(ctx context.Context, teaType string) ([]*worldoftea.Comment, error) {
	comments := []*worldoftea.Comment{}
	err := s.db.SelectContext(ctx, &comments,
		"SELECT * FROM comments WHERE tea_type = ? ORDER BY created_at DESC, id DESC", teaType)
	if err != nil {
		return nil, wrapError("list comments", err)
	}

	return comments, nil
}

func wrapError(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return worldoftea.Conflict(err)
	}

	return worldoftea.Storage(op, err)
}

const schema = `
CREATE TABLE IF NOT EXISTS votes (
    user_name TEXT NOT NULL,
    question_id TEXT NOT NULL,
    selected_option TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    PRIMARY KEY (user_name, question_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_question_id ON votes(question_id);

CREATE TABLE IF NOT EXISTS comments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_name TEXT NOT NULL,
    tea_type TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comments_tea_type ON comments(tea_type, created_at);
`
