package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Jin42/SabberStone/internal/config"
	"github.com/Jin42/SabberStone/internal/game/cards"
	"github.com/Jin42/SabberStone/internal/game/history"
	"github.com/Jin42/SabberStone/internal/game/state"
)

func main() {
	flags := pflag.NewFlagSet("replay", pflag.ExitOnError)
	configPath := flags.String("config", "config/config.yaml", "path to configuration file")
	outPath := flags.String("out", "", "write a zstd power history trace to this file")
	quiet := flags.Bool("quiet", false, "do not print the power log")
	flags.String("log-level", "", "override logging.level")
	flags.String("catalog", "", "override catalog.path")
	_ = flags.Parse(os.Args[1:])

	v := config.New()
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("catalog.path", flags.Lookup("catalog"))
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to read config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, *outPath, *quiet); err != nil {
		logger.Fatal("replay failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger, outPath string, quiet bool) error {
	catalog, err := cards.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	logger.Info("loaded card catalog",
		zap.String("path", cfg.Catalog.Path),
		zap.Int("cards", catalog.Len()),
	)

	level, err := cfg.History.Level()
	if err != nil {
		return err
	}
	opts := []state.Option{
		state.WithIndexThreshold(cfg.Collections.IndexThreshold),
		state.WithRecorderOptions(
			history.WithRecording(cfg.History.Enabled),
			history.WithTraceLevel(level),
		),
	}

	game, err := playScenario(logger, catalog, opts...)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Print(game.History().Render(true))
	}

	if outPath != "" {
		if err := writeTrace(game.History(), outPath); err != nil {
			return err
		}
	}

	logger.Info("scenario finished",
		zap.String("game_id", game.ID()),
		zap.Int("events", game.History().Len()),
		zap.String("checksum", game.Checksum()),
	)
	return nil
}

func writeTrace(r *history.Recorder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := r.WriteTrace(f, true); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return nil
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// the power log goes to stdout
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
