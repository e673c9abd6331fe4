package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lshigami/examsched/config"
	"github.com/lshigami/examsched/database"
	"github.com/lshigami/examsched/internal/logger"
	"github.com/lshigami/examsched/internal/repository"
	"github.com/lshigami/examsched/internal/service"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Configure(cfg)

	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := repository.NewExamRepositoryFor(cfg, db)
	cli := commandLine{
		resultSvc: service.NewResultService(repo, cfg),
		out:       os.Stdout,
	}
	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			log.Error().Err(err).Msg("examctl failed")
		}
		stop()
		os.Exit(1)
	}
}
