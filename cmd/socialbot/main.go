package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avasocial/social-bot/internal/bot"
	"github.com/avasocial/social-bot/internal/client"
	"github.com/avasocial/social-bot/internal/content"
	"github.com/avasocial/social-bot/pkg/config"
	"github.com/avasocial/social-bot/pkg/logger"
	"github.com/avasocial/social-bot/pkg/utils"
)

func main() {
	var settingsPath string
	var dictionaryPath string
	var seed int64
	var logLevel string

	flag.StringVar(&settingsPath, "config", "settings.yaml", "path to the settings file")
	flag.StringVar(&dictionaryPath, "dictionary", "dictionary.json", "path to the dictionary file")
	flag.Int64Var(&seed, "seed", 0, "random seed override (0 uses the settings value)")
	flag.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	level := settings.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger.SetDefault(logger.NewConsole(level, os.Stdout))

	// A missing dictionary aborts the run before any actor is created
	dictionary, err := content.LoadDictionary(dictionaryPath)
	if err != nil {
		logger.Error("failed to load dictionary", "error", err)
		os.Exit(1)
	}

	if seed == 0 {
		seed = settings.Seed
	}
	rng := utils.NewRandSource(seed)

	var apiClient client.Client
	if settings.API.FakeMode {
		logger.Info("Fake mode enabled: API calls are simulated")
		apiClient = client.NewFakeClient(utils.NewSequence(0))
	} else {
		timeout := time.Duration(settings.API.TimeoutSeconds) * time.Second
		apiClient = client.NewHTTPClient(settings.API.BaseURL, timeout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := bot.New(settings, apiClient, dictionary, rng)
	if err := b.Run(ctx); err != nil {
		logger.Error("run aborted", "error", err)
		os.Exit(1)
	}
}
