package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/connectfour-backend/internal"
	"github.com/rocketscienceinc/connectfour-backend/internal/config"
)

const configFile = "config.yml"

// main starts the connect-four backend; any panic on the way up exits with status 1.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "connectfour: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := loadConfig()
	logger := newLogger(conf.LogLevel)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// loadConfig reads config.yml from the working directory.
func loadConfig() *config.Config {
	workDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get working directory: %w", err))
	}

	return config.MustLoad(filepath.Join(workDir, configFile))
}

// newLogger accepts any slog level name and falls back to info.
func newLogger(levelName string) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
