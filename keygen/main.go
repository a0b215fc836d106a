// Command ethkeygen prints between 1 and 10 random secp256k1 (Ethereum) key pairs.
//
// Generated keys are for demonstration only. Never fund or reuse them.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	"ethkeygen/batch"
	"ethkeygen/internal/metrics"
	"ethkeygen/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run loads configuration and the logger, then executes the command. It returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", shared.UserMessage(err))
		return 1
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	return execute(ctx, cfg, logger, args, stdout, stderr)
}

// execute handles the single CLI argument: the help flag, or a key pair count
func execute(ctx context.Context, cfg *Config, logger *zap.Logger, args []string, stdout, stderr io.Writer) int {
	program := programName(args)
	logger.Debug("ethkeygen starting", zap.String("version", BuildInfo()))

	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}

	if shared.IsHelpFlag(arg) {
		fmt.Fprint(stdout, shared.HelpText(program))
		return 0
	}

	count, err := shared.ParseCount(arg, program)
	if err != nil {
		logger.Debug("Rejected argument", zap.String("arg", arg), zap.Error(err))
		fmt.Fprintf(stderr, "Error: %s\n", shared.UserMessage(err))
		return 1
	}

	m := metrics.New()
	runner, err := batch.NewRunner(batch.Options{
		Out:         stdout,
		Logger:      logger,
		Metrics:     m,
		Format:      cfg.OutputFormat,
		RangeFilter: cfg.RangeFilter,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	err = runner.GenerateBatch(ctx, count)

	if cfg.MetricsFile != "" {
		if werr := m.WriteToFile(cfg.MetricsFile); werr != nil {
			logger.Warn("Failed to write metrics file", zap.String("path", cfg.MetricsFile), zap.Error(werr))
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", shared.UserMessage(err))
		return 1
	}
	return 0
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "ethkeygen"
	}
	return filepath.Base(args[0])
}
