// Package main provides the floci binary entry point.
// Floci translates fuzzy OWL 2 ontologies into fuzzyDL knowledge bases.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	sserrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hamhec/FLOCI/config"
	"github.com/hamhec/FLOCI/export"
	"github.com/hamhec/FLOCI/translator"
)

const (
	Version   = translator.Version
	BuildTime = "dev"
	appName   = "floci"
)

// Exit codes. Invalid input fails the same way on every run; a transient
// failure, such as an unreachable remote ontology, may succeed when retried.
const (
	exitFatal       = 1
	exitPanic       = 2
	exitInvalid     = 3
	exitTransient   = 4
	exitInterrupted = 130
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(exitPanic)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status by its class.
func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case sserrors.IsInvalid(err):
		return exitInvalid
	case sserrors.IsTransient(err):
		return exitTransient
	default:
		return exitFatal
	}
}

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath        string
	logLevel          string
	format            string
	failOnUnsupported bool
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "floci <input> <output>",
		Short: "Fuzzy OWL 2 to fuzzyDL translator",
		Long: `Floci translates fuzzy OWL 2 ontologies into fuzzyDL knowledge bases.

The input is an ontology document (YAML or JSON). The output is written
atomically; use "-" to write to standard output.

Configuration is read from ~/.config/floci/config.yaml, then floci.yaml in
the current or a parent directory, then the file given with --config.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			_, err = t.TranslateFile(cmd.Context(), args[0], args[1])
			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format ("+strings.Join(export.FormatNames(), ", ")+")")
	flags.BoolVar(&opts.failOnUnsupported, "fail-on-unsupported", false, "Fail when a construct has no fuzzyDL equivalent")

	cmd.AddCommand(batchCmd(opts))
	cmd.AddCommand(watchCmd(opts))
	cmd.AddCommand(configCmd(opts))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func batchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <pattern> <output-dir>",
		Short: "Translate every ontology matching a glob pattern",
		Long: `Translate every ontology document matching a glob pattern. Patterns may
use ** to match across directories; outputs mirror the input layout below
the pattern's base directory.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			reports, err := t.TranslateGlob(cmd.Context(), args[0], args[1])
			for _, r := range reports {
				logger.Info("Translated",
					"input", r.Input,
					"output", r.Output,
					"clauses", r.Clauses,
					"diagnostics", len(r.Diagnostics))
			}
			return err
		},
	}
}

func watchCmd(opts *globalOptions) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch <input> <output>",
		Short: "Re-translate an ontology whenever it changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			cfg := t.Config()
			if metricsAddr != "" {
				cfg.Metrics.Enabled = true
				cfg.Metrics.Addr = metricsAddr
			}
			return watch(cmd.Context(), cfg, logger, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	return cmd
}

func watch(ctx context.Context, cfg *config.Config, logger *slog.Logger, input, output string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var metrics *translator.Metrics
	if cfg.Metrics.Enabled {
		m, err := translator.NewMetrics()
		if err != nil {
			return err
		}
		metrics = m
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.Addr, logger); err != nil {
				logger.Error("Metrics server stopped", "error", err)
			}
		}()
	}

	t, err := translator.New(cfg, logger, metrics)
	if err != nil {
		return err
	}

	w, err := translator.NewWatcher(t, translator.WatcherConfig{
		Input:         input,
		Output:        output,
		DebounceDelay: cfg.Watch.Debounce,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	for ev := range w.Events() {
		if ev.Error != nil || ev.Report == nil {
			continue
		}
		logger.Info("Translated",
			"output", ev.Report.Output,
			"clauses", ev.Report.Clauses,
			"diagnostics", len(ev.Report.Diagnostics))
	}

	logger.Info("Watcher stopped")
	return nil
}

func configCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage floci configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the user config file with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			path, err := config.NewLoader(logger).EnsureUserConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(t.Config())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}

// setup loads the layered configuration, applies flag overrides and builds
// the translator and logger for a command.
func setup(cmd *cobra.Command, opts *globalOptions) (*translator.Translator, *slog.Logger, error) {
	bootstrap, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return nil, nil, sserrors.WrapInvalid(err, appName, "setup", "parse log level")
	}

	cfg, err := config.NewLoader(bootstrap).Load(opts.configPath)
	if err != nil {
		return nil, nil, sserrors.WrapInvalid(err, appName, "setup", "load config")
	}

	cfg.Merge(&config.Config{
		Translation: config.TranslationConfig{FailOnUnsupported: opts.failOnUnsupported},
		Output:      config.OutputConfig{Format: opts.format},
		Log:         config.LogConfig{Level: opts.logLevel},
	})
	if err := cfg.Validate(); err != nil {
		return nil, nil, sserrors.WrapInvalid(err, appName, "setup", "validate config")
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, nil, sserrors.WrapInvalid(err, appName, "setup", "parse log level")
	}
	slog.SetDefault(logger)

	t, err := translator.New(cfg, logger, nil)
	if err != nil {
		return nil, nil, err
	}
	return t, logger, nil
}

// newLogger logs as text on a terminal and as JSON otherwise.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}

	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
}
