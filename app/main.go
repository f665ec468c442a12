package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lysyi3m/grants-import/app/cfg"
	"github.com/lysyi3m/grants-import/app/config"
	"github.com/lysyi3m/grants-import/app/database"
	"github.com/lysyi3m/grants-import/app/grants"
	"github.com/lysyi3m/grants-import/app/source"
	"github.com/lysyi3m/grants-import/app/tasks"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	if appCfg == nil {
		// Help was shown
		return 0
	}

	closeLog := setupLogger(appCfg)
	defer closeLog()

	slog.Info("Starting grants import", "version", appCfg.Version)

	profile, err := config.NewLoader(appCfg.Profile).Load()
	if err != nil {
		slog.Error("Failed to load import profile", "error", err)
		return 1
	}

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.HTTPTimeout) * time.Second,
	}

	store, err := database.Open(appCfg, httpClient)
	if err != nil {
		slog.Error("Failed to open datastore", "datastore", appCfg.Datastore, "error", err)
		return 1
	}
	defer store.Close()

	var acquirer source.Acquirer
	if appCfg.RemoteMode() {
		acquirer = source.NewRemoteSource(profile.Source, httpClient, appCfg.UserAgent)
	} else {
		acquirer = source.NewFileSource(appCfg.File)
	}

	transformer := grants.NewTransformer(profile.Mapping)
	task := tasks.NewImportGrantsTask(acquirer, transformer, store)

	result, err := task.Execute(context.Background())
	if err != nil {
		slog.Error("Grants import failed", "source", acquirer.Describe(), "error", err)
		return 1
	}

	slog.Info("Grants import finished",
		"inserted", result.Inserted,
		"failed", result.Failed,
		"found", result.Found)

	return 0
}

// setupLogger configures the default slog logger and returns a function that
// releases the log output
func setupLogger(appCfg *cfg.Cfg) func() {
	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}

	var output io.Writer = os.Stdout
	closer := func() {}

	if appCfg.LogFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   appCfg.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		output = io.MultiWriter(os.Stdout, rotated)
		closer = func() { rotated.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})))
	return closer
}
