package worldoftea

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/worldoftea/worldoftea/teas"
)

//go:embed assets/templates/*.html
var assets embed.FS

// quizPresenter pairs a quiz with its current standings.
type quizPresenter struct {
	Quiz    *teas.Quiz
	Results *Results
}

type teaPage struct {
	Title    string
	Teas     []teas.Summary
	UserName string
	Tea      *teas.Tea
	Quizzes  []*quizPresenter
	Comments []*Comment
}

func parseTemplates(name string, partials ...string) (*template.Template, error) {
	files := append([]string{"assets/templates/" + name}, partials...)
	for i := 1; i < len(files); i++ {
		files[i] = "assets/templates/" + files[i]
	}
	return template.New(name).Funcs(helpers).ParseFS(assets, files...)
}

// HandleTeaPage renders a tea with its quiz standings and comments.
func (s *Server) HandleTeaPage() httprouter.Handle {
	tmpl, err := parseTemplates("tea.html", "_header.html", "_footer.html", "_quiz.html", "_comment.html")
	if err != nil {
		s.Logger.Fatal().Err(err).Msg("Failed to load templates")
	}

	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		logger := zerolog.Ctx(r.Context())

		kind := params.ByName("teaType")
		tea, err := teas.Lookup(kind)
		if err != nil {
			http.Error(w, "Unknown tea", http.StatusNotFound)
			return
		}

		comments, err := s.store.ListComments(r.Context(), string(tea.Kind))
		if err != nil {
			logger.Error().Err(err).Msg("Failed to list comments")
			http.Error(w, "Failed to list comments", http.StatusInternalServerError)
			return
		}

		quizzes := make([]*quizPresenter, 0, len(tea.Quizzes))
		for _, q := range tea.Quizzes {
			votes, err := s.store.ListVotes(r.Context(), q.ID)
			if err != nil {
				logger.Error().Err(err).Str("question_id", q.ID).Msg("Failed to list votes")
				http.Error(w, "Failed to list votes", http.StatusInternalServerError)
				return
			}
			quizzes = append(quizzes, &quizPresenter{Quiz: q, Results: Tally(q.ID, votes)})
		}

		page := &teaPage{
			Title:    tea.Name,
			Teas:     teas.Summaries(),
			Tea:      tea,
			Quizzes:  quizzes,
			Comments: comments,
		}
		if session := ctxSession(r.Context()); session != nil {
			page.UserName = session.Visitor().Username()
		}

		// render fully before writing, so a template failure can still be reported
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, page); err != nil {
			logger.Error().Err(err).Msg("Failed to render template")
			http.Error(w, "Failed to render template", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
