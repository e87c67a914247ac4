package worldoftea

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/worldoftea/worldoftea/visitor"
)

// shutdownTimeout bounds how long Stop waits for in-flight requests.
const shutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Addr string
	// AllowedOrigins lists the front-end origins allowed to call the API from a browser.
	AllowedOrigins []string
}

type Server struct {
	Logger          zerolog.Logger
	config          *ServerConfig
	store           Store
	sessions        *visitor.CookieSessions
	router          *httprouter.Router
	handler         http.Handler
	done            chan struct{}
	idleConnsClosed chan struct{}
	voteHooks       []VoteHook
	commentHooks    []CommentHook
	// hooks tracks the hooks still running in the background.
	hooks sync.WaitGroup
}

func NewServer(config *ServerConfig, logger zerolog.Logger, store Store, sessions *visitor.CookieSessions) *Server {
	return &Server{
		config:          config,
		store:           store,
		sessions:        sessions,
		router:          httprouter.New(),
		Logger:          logger,
		done:            make(chan struct{}),
		idleConnsClosed: make(chan struct{}),
	}
}

// Prepare connects to the store and registers the routes. It must be called before Start or ServeHTTP.
func (s *Server) Prepare() error {
	// database
	err := s.store.Connect()
	if err != nil {
		return err
	}

	// routes
	s.router.GET("/", s.HandleIndex())
	s.router.GET("/api/teas", s.HandleListTeas())
	s.router.GET("/api/teas/:teaType", s.HandleShowTea())
	s.router.GET("/api/votes/:questionId", s.HandleListVotes())
	s.router.GET("/api/votes/:questionId/summary", s.HandleVoteSummary())
	s.router.GET("/api/comments/:teaType", s.HandleListComments())

	withMiddlewares(func(m middleware) {
		s.router.POST("/api/votes", m(s.HandleCastVote()))
		s.router.POST("/api/comments", m(s.HandlePostComment()))
		s.router.GET("/api/session", m(s.HandleShowSession()))
		s.router.PUT("/api/session", m(s.HandleUpdateSession()))
		s.router.DELETE("/api/session", m(s.HandleDestroySession()))
		s.router.GET("/teas/:teaType", m(s.HandleTeaPage()))
	}, s.loadSessionMiddleware())

	// preflight requests are answered by corsMiddleware
	s.router.HandleOPTIONS = false
	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, &errorBody{Message: "Not found"})
	})

	s.handler = chain(s.router, s.requestLogMiddleware(), s.corsMiddleware(), limitBodyMiddleware)

	return nil
}

// Start serves HTTP requests until Stop is called.
func (s *Server) Start() error {
	httpServer := http.Server{Addr: s.config.Addr, Handler: s}

	go func() {
		s.Logger.Info().Str("addr", s.config.Addr).Msg("Listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			s.Logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-s.done

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	s.hooks.Wait()
	close(s.idleConnsClosed)
	if err != nil {
		return err
	}

	return s.store.Close()
}

// Stop shuts down a started server gracefully and waits for it to be done.
func (s *Server) Stop() {
	close(s.done)
	<-s.idleConnsClosed
}

func (s *Server) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	s.handler.ServeHTTP(res, req)
}
