package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/empowerup/empowerup-api/internal/api"
	"github.com/empowerup/empowerup-api/internal/infrastructure/db/mongo"
	"github.com/empowerup/empowerup-api/internal/infrastructure/db/redis"
	"github.com/empowerup/empowerup-api/internal/pkg/config"
	"github.com/empowerup/empowerup-api/pkg/logger"
)

func main() {
	// Root context that cancels on shutdown.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongo.Connect(rootCtx, mongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb init failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongo.NewUserRepository(db).EnsureIndexes(rootCtx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index setup failed")
	}

	rdb, err := redis.Connect(rootCtx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis init failed")
	}
	defer rdb.Close()

	e, dispatcher := api.NewRouter(cfg, db, rdb, log)
	dispatcher.Start(rootCtx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server failed")
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info().Msg("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}
