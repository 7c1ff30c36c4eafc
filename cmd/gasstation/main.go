// Package main запускает HTTP-сервер сервиса заправочной станции.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/gasstation-system/internal/config"
	"github.com/mmeshcher/gasstation-system/internal/fixtures"
	"github.com/mmeshcher/gasstation-system/internal/handler"
	"github.com/mmeshcher/gasstation-system/internal/simulation"
	"github.com/mmeshcher/gasstation-system/internal/station"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	st := station.New()

	if cfg.StationFile != "" {
		state, err := fixtures.Load(cfg.StationFile)
		if err != nil {
			sugar.Fatalw("station file error", "error", err.Error())
		}

		ctx := context.Background()
		for _, p := range state.Pumps {
			st.AddPump(ctx, p.Fuel, p.Capacity)
		}
		for fuel, price := range state.Prices {
			st.SetPrice(ctx, fuel, price)
		}
		sugar.Infow("station state loaded",
			"file", cfg.StationFile,
			"pumps", len(state.Pumps),
			"prices", len(state.Prices),
		)
	}

	h := handler.NewHandler(st, logger)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск фоновой симуляции покупателей
	g.Go(func() error {
		runner := simulation.NewRunner(st, logger, cfg.SimulationWorkers)
		runner.Run(ctx)
		return nil
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting gas station server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
