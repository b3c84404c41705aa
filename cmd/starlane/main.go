// Command starlane generates a deterministic galaxy and exports it as
// JSON, raw, and PNG artifacts.
//
// Usage:
//
//	starlane -seed 42 -out galaxy-out [-config galaxy.yaml] [-systems 128]
//
// Configuration precedence is flags over STARLANE_* environment
// variables (a .env file is honored) over the built-in defaults; a YAML
// config overrides the default galaxy profile field by field.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/eykd/starlane/export"
	"github.com/eykd/starlane/galaxy"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("starlane failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	cli := newCLIConfig()
	fs := flag.NewFlagSet("starlane", flag.ExitOnError)
	cli.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := setupLogger(cli)

	cfg := galaxy.DefaultConfig()
	if cli.ConfigPath != "" {
		if err := loadConfigFile(cli.ConfigPath, &cfg); err != nil {
			return err
		}
		logger.Debug("config loaded", "path", cli.ConfigPath)
	}
	if cli.Systems > 0 {
		cfg.SystemCount = cli.Systems
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("generating galaxy",
		"seed", cli.Seed,
		"systems", cfg.SystemCount,
		"radius", cfg.GalaxyRadius,
	)
	start := time.Now()
	g, err := galaxy.Generate(cfg, cli.Seed)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Info("galaxy generated",
		"systems", len(g.Systems),
		"routes", len(g.Routes),
		"map_width", g.CostMap.Width,
		"map_height", g.CostMap.Height,
		"elapsed", time.Since(start),
	)

	exportOpts := []export.Option{export.WithLogger(logger)}
	if cli.Concurrency > 0 {
		exportOpts = append(exportOpts, export.WithConcurrency(cli.Concurrency))
	}
	if err := export.WriteGalaxy(ctx, cli.OutDir, g, exportOpts...); err != nil {
		return err
	}
	logger.Info("export complete", "dir", cli.OutDir, "elapsed", time.Since(start))
	return nil
}

// setupLogger installs the process-wide logger and returns it.
func setupLogger(cli *cliConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cli.LogLevel)}
	var handler slog.Handler
	if cli.LogJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfigFile overlays a YAML document onto cfg; fields the document
// does not name keep their current values.
func loadConfigFile(path string, cfg *galaxy.Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
