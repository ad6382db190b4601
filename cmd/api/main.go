package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/config"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/database"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/internal/router"
	"github.com/NaishaGupta24/Crisis-Response-System-Final/pkg/logger"
)

func main() {
	// config + logger (.env is optional)
	_ = godotenv.Load()
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// db
	pool, err := database.Open(context.Background(), cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	// optional hospital-lookup cache
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			l.Warn().Err(err).Msg("redis unavailable, hospital cache disabled")
			cache = nil
		}
	}

	// http
	r := router.New(l, pool, cache, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
