package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shifttrack/internal/config"
	"shifttrack/internal/infra"
	"shifttrack/internal/repository"
	"shifttrack/internal/router"
	"shifttrack/internal/service"
	"shifttrack/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Start goroutine worker pool for async achievement checks. The worker
	// is wired here (composition root) so the pool has full access to the
	// repositories, the AI client and the mailer.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groqClient := infra.NewGroqClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel)
	mailer := infra.NewMailer(cfg)
	insightSvc := service.NewInsightService(groqClient, rdb, cfg.InsightCacheTTLMinutes)
	achievementRepo := repository.NewAchievementRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	achievementSvc := service.NewAchievementService(achievementRepo, shiftRepo, insightSvc)

	achWorker := worker.NewAchievementWorker(achievementSvc, mailer, cfg.NotifyEmail)
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, achWorker)

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("ShiftTrack backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
