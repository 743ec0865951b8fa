package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andriiko/pocketbank/internal/auth"
	"github.com/andriiko/pocketbank/internal/config"
	"github.com/andriiko/pocketbank/internal/db"
	"github.com/andriiko/pocketbank/internal/domain/user"
	httpx "github.com/andriiko/pocketbank/internal/http"
	"github.com/andriiko/pocketbank/internal/observability"
	"github.com/andriiko/pocketbank/internal/rates"
	"github.com/andriiko/pocketbank/internal/redisclient"
	"github.com/andriiko/pocketbank/internal/repo/memory"
	"github.com/andriiko/pocketbank/internal/repo/postgres"
	"github.com/andriiko/pocketbank/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	if cfg.OTELEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(context.Background(), "pocketbank-api", cfg.OTELEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		defer func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdownTracer(ctx)
		}()
	}

	// credential store: postgres when configured, in-memory otherwise
	var users user.Repository
	var ping func() error

	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(cfg.DatabaseURL)

		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}

		defer pool.Close()

		users = postgres.NewUsersRepo(pool)

		ping = func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()
			return pool.Ping(ctx)
		}

		log.Info("using postgres credential store")
	} else {
		users = memory.NewUsersRepo()
		log.Info("using in-memory credential store")
	}

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuth(users, issuer)

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	rdb := redisclient.New(redisclient.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if rdb != nil {
		defer rdb.Close()
	}

	ratesSvc := rates.NewService(rates.NewClient(cfg.RatesURL), rdb, cfg.RatesTTL, log, prom)

	router := httpx.NewRouter(log, cfg, httpx.Deps{
		Auth:  authSvc,
		Rates: ratesSvc,
		Prom:  prom,
		Ping:  ping,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)

			return
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
