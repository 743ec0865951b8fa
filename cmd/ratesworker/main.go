// ratesworker keeps the exchange-rate cache warm so API reads never pay
// feed latency. It refreshes Redis on a fixed interval until signalled.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andriiko/pocketbank/internal/config"
	"github.com/andriiko/pocketbank/internal/observability"
	"github.com/andriiko/pocketbank/internal/rates"
	"github.com/andriiko/pocketbank/internal/redisclient"
)

func main() {
	cfg := config.Load()

	logger := observability.NewLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	defer stop()

	rdb := redisclient.New(redisclient.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if rdb == nil {
		log.Fatal("REDIS_ADDR is required for the rates worker")
	}

	defer rdb.Close()

	if err := redisclient.Ping(ctx, rdb); err != nil {
		log.Fatalf("redis connect failed: %v", err)
	}

	svc := rates.NewService(rates.NewClient(cfg.RatesURL), rdb, cfg.RatesTTL, logger, nil)

	refresh := func() {
		rctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		if _, err := svc.Refresh(rctx); err != nil {
			logger.Warn("rates refresh failed", "err", err)
			return
		}

		logger.Info("rates refreshed")
	}

	logger.Info("rates worker started", "interval", cfg.RatesRefresh.String())

	refresh()

	ticker := time.NewTicker(cfg.RatesRefresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("rates worker shutdown complete")
			return
		case <-ticker.C:
			refresh()
		}
	}
}
