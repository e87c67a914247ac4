// Package storetest checks that a worldoftea.Store honors the vote and comment
// semantics every backend must share.
package storetest

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/worldoftea/worldoftea"
)

// Run runs the suite. newStore must return a connected store over an empty
// database, and release it when c is done.
func Run(c *qt.C, newStore func(c *qt.C) worldoftea.Store) {
	ctx := context.Background()

	c.Run("first vote creates a record", func(c *qt.C) {
		store := newStore(c)

		vote := mustVote(c, "alice", "green-q1", "A")
		c.Assert(store.CastVote(ctx, vote), qt.IsNil)
		c.Assert(vote.UserName, qt.Equals, "alice")
		c.Assert(vote.SelectedOption, qt.Equals, "A")
		c.Assert(vote.Timestamp.IsZero(), qt.IsFalse)

		votes, err := store.ListVotes(ctx, "green-q1")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 1)
		c.Assert(votes[0].SelectedOption, qt.Equals, "A")
	})

	c.Run("voting again overwrites the option", func(c *qt.C) {
		store := newStore(c)

		first := mustVote(c, "alice", "green-q1", "A")
		c.Assert(store.CastVote(ctx, first), qt.IsNil)

		second := mustVote(c, "alice", "green-q1", "B")
		second.Timestamp = first.Timestamp.Add(time.Minute)
		c.Assert(store.CastVote(ctx, second), qt.IsNil)
		c.Assert(second.SelectedOption, qt.Equals, "B")
		c.Assert(second.Timestamp.After(first.Timestamp), qt.IsTrue)
		c.Assert(second.CreatedAt.Equal(first.CreatedAt), qt.IsTrue, qt.Commentf("creation time must survive updates"))

		votes, err := store.ListVotes(ctx, "green-q1")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 1)
		c.Assert(votes[0].UserName, qt.Equals, "alice")
		c.Assert(votes[0].SelectedOption, qt.Equals, "B")
	})

	c.Run("same vote twice keeps a single record", func(c *qt.C) {
		store := newStore(c)

		for i := 0; i < 2; i++ {
			c.Assert(store.CastVote(ctx, mustVote(c, "alice", "green-q1", "A")), qt.IsNil)
		}

		votes, err := store.ListVotes(ctx, "green-q1")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 1)
	})

	c.Run("last of a sequence of votes wins", func(c *qt.C) {
		store := newStore(c)

		options := []string{"A", "C", "B", "D", "C"}
		for _, opt := range options {
			c.Assert(store.CastVote(ctx, mustVote(c, "bob", "oolong-q2", opt)), qt.IsNil)
		}

		votes, err := store.ListVotes(ctx, "oolong-q2")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 1)
		c.Assert(votes[0].SelectedOption, qt.Equals, "C")
	})

	c.Run("votes are scoped by question", func(c *qt.C) {
		store := newStore(c)

		c.Assert(store.CastVote(ctx, mustVote(c, "alice", "green-q1", "A")), qt.IsNil)
		c.Assert(store.CastVote(ctx, mustVote(c, "alice", "green-q2", "B")), qt.IsNil)
		c.Assert(store.CastVote(ctx, mustVote(c, "bob", "green-q1", "A")), qt.IsNil)

		votes, err := store.ListVotes(ctx, "green-q1")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 2)

		votes, err = store.ListVotes(ctx, "green-q2")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 1)
	})

	c.Run("unknown question has no votes", func(c *qt.C) {
		store := newStore(c)

		votes, err := store.ListVotes(ctx, "nope-q1")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 0)
	})

	c.Run("counts match distinct voters", func(c *qt.C) {
		store := newStore(c)

		// final choices: A: u0 u2, B: u1 u3 u4
		casts := [][2]string{
			{"u0", "A"}, {"u1", "A"}, {"u2", "B"}, {"u3", "B"},
			{"u1", "B"}, {"u2", "A"}, {"u4", "C"}, {"u4", "B"},
		}
		for _, cast := range casts {
			c.Assert(store.CastVote(ctx, mustVote(c, cast[0], "black-q1", cast[1])), qt.IsNil)
		}

		votes, err := store.ListVotes(ctx, "black-q1")
		c.Assert(err, qt.IsNil)

		res := worldoftea.Tally("black-q1", votes)
		c.Assert(res.Total, qt.Equals, 5)

		counts := map[string]int{}
		for _, o := range res.Options {
			counts[o.Option] = o.Count
		}
		c.Assert(counts["A"], qt.Equals, 2)
		c.Assert(counts["B"], qt.Equals, 3)
		c.Assert(counts["C"], qt.Equals, 0)
	})

	c.Run("concurrent votes of one user leave one record", func(c *qt.C) {
		store := newStore(c)

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				opt := "A"
				if i%2 == 1 {
					opt = "B"
				}
				vote, err := worldoftea.NewVote("carol", "white-q1", opt)
				if err == nil {
					err = store.CastVote(ctx, vote)
				}
				errs <- err
			}(i)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			c.Assert(err, qt.IsNil)
		}

		votes, err := store.ListVotes(ctx, "white-q1")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 1)
		c.Assert(votes[0].SelectedOption, qt.Matches, "A|B")
	})

	c.Run("concurrent votes of many users", func(c *qt.C) {
		store := newStore(c)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				vote, err := worldoftea.NewVote("user"+strconv.Itoa(i), "yellow-q1", "B")
				c.Check(err, qt.IsNil)
				c.Check(store.CastVote(ctx, vote), qt.IsNil)
			}(i)
		}
		wg.Wait()

		votes, err := store.ListVotes(ctx, "yellow-q1")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 10)
	})

	c.Run("invalid votes never reach the database", func(c *qt.C) {
		store := newStore(c)

		err := store.CastVote(ctx, &worldoftea.Vote{UserName: "", QuestionID: "green-q1", SelectedOption: "A", Timestamp: worldoftea.NowFunc()})
		var verr *worldoftea.ValidationError
		c.Assert(errors.As(err, &verr), qt.IsTrue)
		c.Assert(verr.Fields, qt.DeepEquals, []string{"userName"})

		votes, err := store.ListVotes(ctx, "green-q1")
		c.Assert(err, qt.IsNil)
		c.Assert(votes, qt.HasLen, 0)
	})

	c.Run("posted comment is listed", func(c *qt.C) {
		store := newStore(c)

		comment := mustComment(c, "bob", "oolong", "Great read!")
		c.Assert(store.InsertComment(ctx, comment), qt.IsNil)
		c.Assert(comment.ID, qt.Not(qt.Equals), int64(0))

		comments, err := store.ListComments(ctx, "oolong")
		c.Assert(err, qt.IsNil)
		c.Assert(comments, qt.HasLen, 1)
		c.Assert(comments[0].ID, qt.Equals, comment.ID)
		c.Assert(comments[0].UserName, qt.Equals, "bob")
		c.Assert(comments[0].TeaType, qt.Equals, "oolong")
		c.Assert(comments[0].Text, qt.Equals, "Great read!")
	})

	c.Run("comments are listed newest first", func(c *qt.C) {
		store := newStore(c)

		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		for i, text := range []string{"first", "second", "third"} {
			comment := mustComment(c, "bob", "green", text)
			comment.Timestamp = base.Add(time.Duration(i) * time.Second)
			c.Assert(store.InsertComment(ctx, comment), qt.IsNil)
		}

		other := mustComment(c, "bob", "black", "elsewhere")
		other.Timestamp = base.Add(time.Hour)
		c.Assert(store.InsertComment(ctx, other), qt.IsNil)

		comments, err := store.ListComments(ctx, "green")
		c.Assert(err, qt.IsNil)
		c.Assert(comments, qt.HasLen, 3)
		c.Assert(comments[0].Text, qt.Equals, "third")
		c.Assert(comments[1].Text, qt.Equals, "second")
		c.Assert(comments[2].Text, qt.Equals, "first")
	})

	c.Run("comments posted in the same instant", func(c *qt.C) {
		store := newStore(c)

		at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		for _, text := range []string{"older", "newer"} {
			comment := mustComment(c, "bob", "green", text)
			comment.Timestamp = at
			c.Assert(store.InsertComment(ctx, comment), qt.IsNil)
		}

		comments, err := store.ListComments(ctx, "green")
		c.Assert(err, qt.IsNil)
		c.Assert(comments[0].Text, qt.Equals, "newer")
	})

	c.Run("no comments", func(c *qt.C) {
		store := newStore(c)

		comments, err := store.ListComments(ctx, "pu-erh")
		c.Assert(err, qt.IsNil)
		c.Assert(comments, qt.HasLen, 0)
	})
}

func mustVote(c *qt.C, userName string, questionID string, option string) *worldoftea.Vote {
	vote, err := worldoftea.NewVote(userName, questionID, option)
	c.Assert(err, qt.IsNil)
	return vote
}

func mustComment(c *qt.C, userName string, teaType string, text string) *worldoftea.Comment {
	comment, err := worldoftea.NewComment(userName, teaType, text)
	c.Assert(err, qt.IsNil)
	return comment
}
