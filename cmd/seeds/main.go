package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/worldoftea/worldoftea"
	"github.com/worldoftea/worldoftea/cmd"
	"github.com/worldoftea/worldoftea/teas"
)

var users = []string{"mei", "arjun", "sofia", "kenji", "amara", "lukas", "hana", "diego"}

var remarks = []string{
	"Tried this one this morning, **lovely** with a second steep.",
	"I never knew the processing was so different from green tea!",
	"Brewed it at 80°C like suggested and it was far less bitter.",
	"Does anyone have a favorite shop for this?",
	"The fun facts section is great, sharing it with my tea club.",
	"Cold brewed it overnight, *highly* recommend.",
	"Got the quiz wrong but learned something :)",
	"Pairs really well with something sweet.",
}

func main() {
	commentsPerTea := flag.Int("comments", 5, "number of comments per tea")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg := cmd.DefaultConfig()
	err := cfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read configuration")
	}
	logger := cmd.SetupLogger(cfg)
	logger.Info().Str("store", cfg.Store).Msg("Seeding database")

	store := cmd.NewStore(cfg)
	err = store.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg("Can't connect to database")
	}
	defer store.Close()

	ctx := context.Background()
	rnd := rand.New(rand.NewSource(*seed))
	start := time.Now().Add(-72 * time.Hour)

	votes := 0
	for _, tea := range teas.All() {
		for _, q := range tea.Quizzes {
			for _, u := range users {
				if rnd.Intn(3) == 0 {
					continue
				}

				vote, err := worldoftea.NewVote(u, q.ID, q.Options[rnd.Intn(len(q.Options))].Key)
				if err != nil {
					logger.Fatal().Err(err).Msg("Invalid vote")
				}
				vote.Timestamp = start.Add(time.Duration(rnd.Intn(72*60)) * time.Minute)

				err = store.CastVote(ctx, vote)
				if err != nil {
					logger.Fatal().Err(err).Msg("Can't cast vote")
				}
				votes++
			}
		}

		for i := 0; i < *commentsPerTea; i++ {
			comment, err := worldoftea.NewComment(users[rnd.Intn(len(users))], string(tea.Kind), remarks[rnd.Intn(len(remarks))])
			if err != nil {
				logger.Fatal().Err(err).Msg("Invalid comment")
			}
			comment.Timestamp = start.Add(time.Duration(rnd.Intn(72*60)) * time.Minute)

			err = store.InsertComment(ctx, comment)
			if err != nil {
				logger.Fatal().Err(err).Msg("Can't insert comment")
			}
		}
	}

	logger.Info().Int("votes", votes).Int("comments", *commentsPerTea*len(teas.Kinds)).Msg("Done")
}
