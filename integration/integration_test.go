package integration

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	qt "github.com/frankban/quicktest"
	"github.com/worldoftea/worldoftea"
)

type vote struct {
	UserName       string    `json:"userName"`
	QuestionID     string    `json:"questionId"`
	SelectedOption string    `json:"selectedOption"`
	Timestamp      time.Time `json:"timestamp"`
}

type comment struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"userName"`
	TeaType   string    `json:"teaType"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func TestVotes(t *testing.T) {
	c := qt.New(t)

	c.Run("OK voting again replaces the previous vote", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		resp := tc.postJSON(client, "/api/votes", map[string]string{"userName": "alice", "questionId": "green-q1", "selectedOption": "A"})
		c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)
		var first vote
		decode(c, resp, &first)
		c.Assert(first.UserName, qt.Equals, "alice")
		c.Assert(first.SelectedOption, qt.Equals, "A")

		resp = tc.postJSON(client, "/api/votes", map[string]string{"userName": "alice", "questionId": "green-q1", "selectedOption": "B"})
		c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)
		var second vote
		decode(c, resp, &second)
		c.Assert(second.SelectedOption, qt.Equals, "B")

		var votes []vote
		c.Assert(tc.getJSON(client, "/api/votes/green-q1", &votes), qt.Equals, http.StatusOK)
		c.Assert(votes, qt.HasLen, 1)
		c.Assert(votes[0].UserName, qt.Equals, "alice")
		c.Assert(votes[0].QuestionID, qt.Equals, "green-q1")
		c.Assert(votes[0].SelectedOption, qt.Equals, "B")
	})

	c.Run("OK names and question ids are trimmed", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		tc.postJSON(client, "/api/votes", map[string]string{"userName": "alice", "questionId": "black-q2", "selectedOption": "C"})
		tc.postJSON(client, "/api/votes", map[string]string{"userName": "  alice ", "questionId": " black-q2", "selectedOption": "D"})

		var votes []vote
		tc.getJSON(client, "/api/votes/black-q2", &votes)
		c.Assert(votes, qt.HasLen, 1)
		c.Assert(votes[0].SelectedOption, qt.Equals, "D")
	})

	c.Run("OK unknown question has no votes", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()

		resp, err := http.Get(tc.url("/api/votes/nothing-q1"))
		c.Assert(err, qt.IsNil)
		defer resp.Body.Close()
		c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

		var votes []vote
		decode(c, resp, &votes)
		c.Assert(votes, qt.HasLen, 0)
		c.Assert(votes, qt.Not(qt.IsNil))
	})

	c.Run("NOK missing fields", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		for _, body := range []map[string]string{
			{"userName": "", "questionId": "green-q1", "selectedOption": "A"},
			{"userName": "alice", "questionId": "   ", "selectedOption": "A"},
			{"userName": "alice", "questionId": "green-q1"},
			{},
		} {
			resp := tc.postJSON(client, "/api/votes", body)
			c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)
		}

		var votes []vote
		tc.getJSON(client, "/api/votes/green-q1", &votes)
		c.Assert(votes, qt.HasLen, 0)
	})

	c.Run("OK concurrent votes of the same visitor", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()

		var wg sync.WaitGroup
		codes := make(chan int, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				opt := string(rune('A' + i%4))
				resp, err := http.Post(tc.url("/api/votes"), "application/json",
					strings.NewReader(`{"userName":"alice","questionId":"oolong-q1","selectedOption":"`+opt+`"}`))
				if err != nil {
					codes <- 0
					return
				}
				resp.Body.Close()
				codes <- resp.StatusCode
			}(i)
		}
		wg.Wait()
		close(codes)

		for code := range codes {
			c.Assert(code, qt.Equals, http.StatusCreated)
		}

		var votes []vote
		tc.getJSON(http.DefaultClient, "/api/votes/oolong-q1", &votes)
		c.Assert(votes, qt.HasLen, 1)
	})

	c.Run("OK summary", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		for _, v := range [][2]string{{"alice", "B"}, {"bob", "B"}, {"carol", "A"}, {"bob", "C"}} {
			resp := tc.postJSON(client, "/api/votes", map[string]string{"userName": v[0], "questionId": "white-q1", "selectedOption": v[1]})
			c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)
		}

		var res worldoftea.Results
		c.Assert(tc.getJSON(client, "/api/votes/white-q1/summary", &res), qt.Equals, http.StatusOK)
		c.Assert(res.Total, qt.Equals, 3)
		c.Assert(res.Question, qt.Not(qt.Equals), "")

		counts := map[string]int{}
		for _, o := range res.Options {
			counts[o.Option] = o.Count
		}
		c.Assert(counts, qt.DeepEquals, map[string]int{"A": 1, "B": 1, "C": 1, "D": 0})
	})
}

func TestComments(t *testing.T) {
	c := qt.New(t)

	c.Run("OK posted comment is listed", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		resp := tc.postJSON(client, "/api/comments", map[string]string{"userName": "bob", "teaType": "oolong", "text": "Great read!"})
		c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)
		var posted comment
		decode(c, resp, &posted)
		c.Assert(posted.ID, qt.Not(qt.Equals), int64(0))
		c.Assert(posted.Timestamp.IsZero(), qt.IsFalse)

		var comments []comment
		c.Assert(tc.getJSON(client, "/api/comments/oolong", &comments), qt.Equals, http.StatusOK)
		c.Assert(comments, qt.HasLen, 1)
		c.Assert(comments[0].UserName, qt.Equals, "bob")
		c.Assert(comments[0].TeaType, qt.Equals, "oolong")
		c.Assert(comments[0].Text, qt.Equals, "Great read!")
	})

	c.Run("OK newest first", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		for _, text := range []string{"one", "two", "three"} {
			resp := tc.postJSON(client, "/api/comments", map[string]string{"userName": "bob", "teaType": "green", "text": text})
			c.Assert(resp.StatusCode, qt.Equals, http.StatusCreated)
		}

		var comments []comment
		tc.getJSON(client, "/api/comments/green", &comments)
		c.Assert(comments, qt.HasLen, 3)
		c.Assert(comments[0].Text, qt.Equals, "three")
		c.Assert(comments[2].Text, qt.Equals, "one")
	})

	c.Run("NOK missing fields", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		resp := tc.postJSON(client, "/api/comments", map[string]string{"userName": "bob", "teaType": "green", "text": "  "})
		c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)

		resp = tc.postJSON(client, "/api/comments", map[string]string{"teaType": "green", "text": "hi"})
		c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)

		var comments []comment
		tc.getJSON(client, "/api/comments/green", &comments)
		c.Assert(comments, qt.HasLen, 0)
	})

	c.Run("NOK storage failure", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		c.Assert(tc.store.Close(), qt.IsNil)

		resp, err := http.Get(tc.url("/api/comments/green"))
		c.Assert(err, qt.IsNil)
		defer resp.Body.Close()
		c.Assert(resp.StatusCode, qt.Equals, http.StatusInternalServerError)
	})
}

func TestSession(t *testing.T) {
	c := qt.New(t)

	c.Run("OK submitted names are remembered", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		var session map[string]string
		tc.getJSON(client, "/api/session", &session)
		c.Assert(session["userName"], qt.Equals, "")

		tc.postJSON(client, "/api/comments", map[string]string{"userName": " mei ", "teaType": "green", "text": "Lovely"})

		tc.getJSON(client, "/api/session", &session)
		c.Assert(session["userName"], qt.Equals, "mei")

		req, err := http.NewRequest("DELETE", tc.url("/api/session"), nil)
		c.Assert(err, qt.IsNil)
		resp, err := client.Do(req)
		c.Assert(err, qt.IsNil)
		resp.Body.Close()
		c.Assert(resp.StatusCode, qt.Equals, http.StatusNoContent)

		tc.getJSON(client, "/api/session", &session)
		c.Assert(session["userName"], qt.Equals, "")
	})

	c.Run("NOK votes do not use the session name", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		req, err := http.NewRequest("PUT", tc.url("/api/session"), strings.NewReader(`{"userName":"mei"}`))
		c.Assert(err, qt.IsNil)
		resp, err := client.Do(req)
		c.Assert(err, qt.IsNil)
		resp.Body.Close()
		c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

		resp = tc.postJSON(client, "/api/votes", map[string]string{"questionId": "green-q1", "selectedOption": "A"})
		c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)
	})
}

func TestTeaPage(t *testing.T) {
	c := qt.New(t)

	c.Run("OK tea page with standings and comments", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()
		ctx := context.Background()

		for _, v := range [][2]string{{"alice", "B"}, {"bob", "B"}, {"carol", "A"}} {
			vote, err := worldoftea.NewVote(v[0], "oolong-q1", v[1])
			c.Assert(err, qt.IsNil)
			c.Assert(tc.store.CastVote(ctx, vote), qt.IsNil)
		}
		cm, err := worldoftea.NewComment("bob", "oolong", "Great **read**!")
		c.Assert(err, qt.IsNil)
		c.Assert(tc.store.InsertComment(ctx, cm), qt.IsNil)

		resp, err := client.Get(tc.url("/teas/oolong"))
		c.Assert(err, qt.IsNil)
		defer resp.Body.Close()
		c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		c.Assert(err, qt.IsNil)

		c.Assert(doc.Find("title").Text(), qt.Equals, "Oolong Tea · The World of Tea")
		c.Assert(doc.Find("h1.tea-name").Text(), qt.Equals, "Oolong Tea")
		c.Assert(doc.Find("a.tea-link").Length(), qt.Equals, 6)

		quiz := doc.Find("section#oolong-q1")
		c.Assert(quiz.Find(".quiz-total").Text(), qt.Equals, "3 voters")
		b := quiz.Find(`li[data-option="B"]`)
		c.Assert(b.Find(".option-count").Text(), qt.Equals, "2 votes")
		c.Assert(b.Find(".option-percentage").Text(), qt.Equals, "67%")
		c.Assert(quiz.Find("li.leading").AttrOr("data-option", ""), qt.Equals, "B")

		comments := doc.Find("li.comment")
		c.Assert(comments.Length(), qt.Equals, 1)
		c.Assert(comments.Find(".comment-author").Text(), qt.Equals, "bob")
		c.Assert(comments.Find(".comment-body strong").Text(), qt.Equals, "read")
		c.Assert(comments.Find("time").Text(), qt.Equals, "now")
	})

	c.Run("OK remembered name is shown", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()
		client := tc.newHTTPClient()

		tc.postJSON(client, "/api/comments", map[string]string{"userName": "mei", "teaType": "white", "text": "Delicate"})

		resp, err := client.Get(tc.url("/teas/white"))
		c.Assert(err, qt.IsNil)
		defer resp.Body.Close()
		doc, err := goquery.NewDocumentFromReader(resp.Body)
		c.Assert(err, qt.IsNil)
		c.Assert(doc.Find(".visitor").Text(), qt.Equals, "Hello, mei")
	})

	c.Run("NOK unknown tea", func(c *qt.C) {
		tc := newTestContext(c)
		tc.prepareServer()

		resp, err := http.Get(tc.url("/teas/chamomile"))
		c.Assert(err, qt.IsNil)
		defer resp.Body.Close()
		c.Assert(resp.StatusCode, qt.Equals, http.StatusNotFound)

		resp2, err := http.Get(tc.url("/api/teas/chamomile"))
		c.Assert(err, qt.IsNil)
		defer resp2.Body.Close()
		c.Assert(resp2.StatusCode, qt.Equals, http.StatusNotFound)
	})
}

func TestCORS(t *testing.T) {
	c := qt.New(t)

	tc := newTestContext(c)
	tc.prepareServer()

	req, err := http.NewRequest("OPTIONS", tc.url("/api/votes"), nil)
	c.Assert(err, qt.IsNil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	c.Assert(err, qt.IsNil)
	resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusNoContent)
	c.Assert(resp.Header.Get("Access-Control-Allow-Origin"), qt.Equals, testOrigin)

	req, err = http.NewRequest("GET", tc.url("/api/teas"), nil)
	c.Assert(err, qt.IsNil)
	req.Header.Set("Origin", testOrigin)
	resp, err = http.DefaultClient.Do(req)
	c.Assert(err, qt.IsNil)
	resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)
	c.Assert(resp.Header.Get("Access-Control-Allow-Credentials"), qt.Equals, "true")
}

func TestHooks(t *testing.T) {
	c := qt.New(t)

	tc := newTestContext(c)

	seen := make(chan string, 2)
	tc.server.OnVote(func(ctx context.Context, v *worldoftea.Vote) error {
		seen <- v.UserName + "/" + v.QuestionID + "/" + v.SelectedOption
		return nil
	})
	tc.prepareServer()
	client := tc.newHTTPClient()

	tc.postJSON(client, "/api/votes", map[string]string{"userName": "", "questionId": "green-q1", "selectedOption": "A"})
	tc.postJSON(client, "/api/votes", map[string]string{"userName": "alice", "questionId": "green-q1", "selectedOption": "A"})

	select {
	case got := <-seen:
		c.Assert(got, qt.Equals, "alice/green-q1/A")
	case <-time.After(5 * time.Second):
		c.Fatal("vote hook was not called")
	}
	c.Assert(seen, qt.HasLen, 0)
}
