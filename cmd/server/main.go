package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/worldoftea/worldoftea"
	"github.com/worldoftea/worldoftea/cmd"
	"github.com/worldoftea/worldoftea/events"
	"github.com/worldoftea/worldoftea/notify"
	"github.com/worldoftea/worldoftea/visitor"
)

func main() {
	cfg := cmd.DefaultConfig()
	err := cfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read configuration")
	}
	logger := cmd.SetupLogger(cfg)

	store := cmd.NewStore(cfg)
	sessions := visitor.NewCookieSessions(cfg.SessionSecret)

	s := worldoftea.NewServer(
		&worldoftea.ServerConfig{Addr: cfg.Addr, AllowedOrigins: cfg.AllowedOrigins},
		logger,
		store,
		sessions,
	)

	// hooks
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	publisher, err := cmd.NewPublisher(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Str("broker", cfg.Events).Msg("Cannot connect to events broker")
	}
	if publisher != nil {
		defer publisher.Close()
		f := events.NewForwarder(publisher)
		s.OnVote(f.Vote)
		s.OnComment(f.Comment)
		logger.Info().Str("broker", cfg.Events).Msg("Forwarding events")
	}

	if cfg.SlackWebhookURL != "" {
		s.OnComment(notify.NewSlack(cfg.SlackWebhookURL).Comment)
	}

	err = s.Prepare()
	if err != nil {
		logger.Fatal().Err(err).Msg("Cannot prepare server")
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info().Msg("Shutting down")
		s.Stop()
	}()

	err = s.Start()
	if err != nil {
		logger.Error().Err(err).Msg("Server did not stop cleanly")
	}
}
