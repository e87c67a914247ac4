package worldoftea

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/worldoftea/worldoftea/teas"
)

// respondJSON writes v as the JSON body of a response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError logs err at a level matching its cause and writes it as a JSON error.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger := zerolog.Ctx(r.Context())

	var (
		verr *ValidationError
		nerr *NotFoundError
		terr *TooLargeError
		cerr *ConflictError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &nerr), errors.As(err, &terr):
		logger.Debug().Err(err).Msg(msg)
	case errors.As(err, &cerr):
		logger.Error().Err(err).Msg(msg + ": upsert did not resolve a duplicate")
	default:
		logger.Error().Err(err).Msg(msg)
	}

	var er ErrorResponder
	if errors.As(err, &er) && er.RespondError(w, r) {
		return
	}

	respondJSON(w, http.StatusInternalServerError, &errorBody{Message: "Internal server error"})
}

// decodeBody decodes the JSON request body into v. Malformed bodies are reported as a
// ValidationError on the body, oversized ones as a TooLargeError.
func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return TooLarge(mbe.Limit)
		}
		return Invalid("body")
	}
	return nil
}

// rememberUsername stores name in the visitor session, if it changed.
func (s *Server) rememberUsername(w http.ResponseWriter, r *http.Request, name string) {
	session := ctxSession(r.Context())
	if session == nil {
		return
	}

	session.Visitor().SetUsername(name)
	if err := session.Save(r, w); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Failed to save session")
	}
}

// HandleIndex answers liveness probes.
func (s *Server) HandleIndex() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Tea Server is Live"))
	}
}

// HandleListTeas lists the catalog, without the content of each tea.
func (s *Server) HandleListTeas() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		respondJSON(w, http.StatusOK, teas.Summaries())
	}
}

// HandleShowTea returns a tea with its content and quizzes.
func (s *Server) HandleShowTea() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		kind := params.ByName("teaType")
		tea, err := teas.Lookup(kind)
		if err != nil {
			s.respondError(w, r, NotFound("tea", kind), "Unknown tea")
			return
		}

		respondJSON(w, http.StatusOK, tea)
	}
}

// HandleListVotes returns the raw votes of a question. Aggregating them is left to the client,
// or to HandleVoteSummary.
func (s *Server) HandleListVotes() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		votes, err := s.store.ListVotes(r.Context(), params.ByName("questionId"))
		if err != nil {
			s.respondError(w, r, err, "Failed to list votes")
			return
		}

		respondJSON(w, http.StatusOK, votes)
	}
}

// HandleVoteSummary returns the standings of a question.
func (s *Server) HandleVoteSummary() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		questionID := params.ByName("questionId")
		votes, err := s.store.ListVotes(r.Context(), questionID)
		if err != nil {
			s.respondError(w, r, err, "Failed to list votes")
			return
		}

		respondJSON(w, http.StatusOK, Tally(questionID, votes))
	}
}

type voteForm struct {
	UserName       string `json:"userName"`
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

// HandleCastVote records the vote of a visitor, replacing any previous one on the same question.
// The name is taken from the body, never from the session.
func (s *Server) HandleCastVote() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var form voteForm
		if err := decodeBody(r, &form); err != nil {
			s.respondError(w, r, err, "Malformed vote")
			return
		}

		vote, err := NewVote(form.UserName, form.QuestionID, form.SelectedOption)
		if err != nil {
			s.respondError(w, r, err, "Invalid vote")
			return
		}

		if err := s.store.CastVote(r.Context(), vote); err != nil {
			s.respondError(w, r, err, "Failed to cast vote")
			return
		}

		s.rememberUsername(w, r, vote.UserName)
		respondJSON(w, http.StatusCreated, vote)

		s.runVoteHooks(r.Context(), vote)
	}
}

type commentForm struct {
	UserName string `json:"userName"`
	TeaType  string `json:"teaType"`
	Text     string `json:"text"`
}

// HandleListComments lists the comments posted on a tea page, newest first.
func (s *Server) HandleListComments() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		comments, err := s.store.ListComments(r.Context(), params.ByName("teaType"))
		if err != nil {
			s.respondError(w, r, err, "Failed to list comments")
			return
		}

		respondJSON(w, http.StatusOK, comments)
	}
}

// HandlePostComment appends a comment.
func (s *Server) HandlePostComment() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var form commentForm
		if err := decodeBody(r, &form); err != nil {
			s.respondError(w, r, err, "Malformed comment")
			return
		}

		comment, err := NewComment(form.UserName, form.TeaType, form.Text)
		if err != nil {
			s.respondError(w, r, err, "Invalid comment")
			return
		}

		if err := s.store.InsertComment(r.Context(), comment); err != nil {
			s.respondError(w, r, err, "Failed to insert comment")
			return
		}

		s.rememberUsername(w, r, comment.UserName)
		respondJSON(w, http.StatusCreated, comment)

		s.runCommentHooks(r.Context(), comment)
	}
}

type sessionBody struct {
	UserName string `json:"userName"`
}

// HandleShowSession returns the name the visitor last used, if any.
func (s *Server) HandleShowSession() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		session := ctxSession(r.Context())
		respondJSON(w, http.StatusOK, &sessionBody{UserName: session.Visitor().Username()})
	}
}

// HandleUpdateSession sets the name of the visitor.
func (s *Server) HandleUpdateSession() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		session := ctxSession(r.Context())

		var body sessionBody
		if err := decodeBody(r, &body); err != nil {
			s.respondError(w, r, err, "Malformed session")
			return
		}

		v := session.Visitor()
		if !v.SetUsername(body.UserName) {
			s.respondError(w, r, Invalid("userName"), "Blank username")
			return
		}

		if err := session.Save(r, w); err != nil {
			s.respondError(w, r, err, "Failed to save session")
			return
		}

		respondJSON(w, http.StatusOK, &sessionBody{UserName: v.Username()})
	}
}

// HandleDestroySession forgets the name of the visitor.
func (s *Server) HandleDestroySession() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		session := ctxSession(r.Context())
		session.Visitor().ClearUsername()

		if err := session.Save(r, w); err != nil {
			s.respondError(w, r, err, "Failed to save session")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
