package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"github.com/MikhailBogachev/homework-bot/internal/app"
	"github.com/MikhailBogachev/homework-bot/internal/infra/config"
	"github.com/MikhailBogachev/homework-bot/internal/infra/logger"
	"github.com/MikhailBogachev/homework-bot/internal/infra/practicum"
	"github.com/MikhailBogachev/homework-bot/internal/infra/scheduler"
	sentryutil "github.com/MikhailBogachev/homework-bot/internal/infra/sentry"
	"github.com/MikhailBogachev/homework-bot/internal/infra/telegram"
)

func main() {
	// Config comes first: a missing token must stop the process before
	// anything touches the network.
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Could not load application configuration: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)
	log.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"chat_id":     cfg.ChatID,
		"poll_spec":   cfg.PollSpec,
	}).Info("Configuration loaded")

	sentryutil.Init(cfg.SentryDSN, cfg.Environment, log)
	defer sentryutil.Flush()

	policy, err := app.ParseWindowPolicy(cfg.WindowPolicy)
	if err != nil {
		log.Fatalf("Could not parse WINDOW_POLICY: %v", err)
	}

	// Initialize Telegram Bot. It only ever sends, so no poller and no
	// handler registration.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.BotToken})
	if err != nil {
		log.Fatalf("Could not create Telegram bot: %v", err)
	}
	notifier := telegram.NewNotifier(
		telegram.NewTelebotAdapter(bot),
		cfg.ChatID,
		log.WithField("component", "notifier"),
	)
	log.Info("Telegram bot initialized")

	apiClient := practicum.NewClient(
		cfg.Endpoint,
		cfg.APIToken,
		cfg.RequestTimeout,
		log.WithField("component", "practicum"),
	)

	fromDate := time.Now().Add(-cfg.Lookback).Unix()
	poller := app.NewPoller(apiClient, notifier, policy, fromDate, log.WithField("component", "poller"))

	pollScheduler, err := scheduler.NewPollScheduler(cfg.PollSpec, scheduler.SystemClock(), log.WithField("component", "scheduler"))
	if err != nil {
		log.Fatalf("Could not create poll scheduler: %v", err)
	}

	log.Info("Application setup complete. Poll loop is starting...")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := pollScheduler.Run(ctx, poller.RunCycle); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("Poll scheduler exited unexpectedly")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	cancel()
	<-done // Wait for an in-flight cycle to finish
	log.Info("Application shut down gracefully.")
}
