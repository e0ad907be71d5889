package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"coinex-screener-bot/internal/bot"
	"coinex-screener-bot/internal/config"
	"coinex-screener-bot/internal/exchange"
	"coinex-screener-bot/internal/health"
	"coinex-screener-bot/internal/scheduler"
	"coinex-screener-bot/internal/screener"
	"coinex-screener-bot/internal/utils"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	logger := utils.NewLogger()

	cfg := config.Load()
	logger.WithFields(logrus.Fields{
		"exchange":        cfg.ExchangeID,
		"screen_schedule": cfg.ScreenSchedule,
		"metrics_port":    cfg.MetricsPort,
	}).Info("Configuration loaded")

	source, err := exchange.New(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build market data source")
	}

	scr := screener.New(source, cfg, logger)

	tgBot, err := bot.New(cfg, scr, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create telegram bot")
	}

	healthChecker := health.NewChecker(scr, logger)
	healthServer := healthChecker.StartServer(cfg.MetricsPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sched *scheduler.Scheduler
	if cfg.ScreenSchedule != "" {
		sched = scheduler.New(tgBot, cfg.ScreenSchedule, logger)
		if err := sched.Start(ctx); err != nil {
			logger.WithError(err).Fatal("Failed to start screen scheduler")
		}
	}

	go tgBot.Start()
	logger.Info("Screener bot started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down screener bot...")

	if sched != nil {
		sched.Stop()
	}
	tgBot.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Failed to shutdown health server gracefully")
	}

	logger.Info("Screener bot stopped")
}
