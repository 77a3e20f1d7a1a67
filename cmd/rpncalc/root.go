package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/config"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/expr"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/history"
)

// app carries state shared by subcommands. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	configPath  string
	debug       bool
	precedence  string
	historyPath string

	settings config.Settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "rpncalc",
		Short:         "Evaluate infix arithmetic via postfix conversion",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (.yaml, .yml or .json)")
	flags.BoolVar(&a.debug, "debug", false, "log at debug level with source locations")
	flags.StringVar(&a.precedence, "precedence", "", "operator table: uniform or standard")
	flags.StringVar(&a.historyPath, "history", "", "SQLite file recording every evaluation")

	cmd.AddCommand(
		evalCmd(a),
		postfixCmd(a),
		historyCmd(a),
	)
	return cmd
}

// setup loads settings, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("precedence") {
		name := strings.ToLower(a.precedence)
		if _, err := expr.TableByName(name); err != nil {
			return err
		}
		s.Precedence = name
	}
	if flags.Changed("history") {
		s.HistoryPath = a.historyPath
	}
	if a.debug {
		s.LogLevel = slog.LevelDebug
	}

	a.settings = s
	a.logger = newLogger(cmd.ErrOrStderr(), s.LogLevel)
	a.logger.Debug("settings loaded",
		slog.String("config", s.Source),
		slog.String("precedence", s.Precedence),
		slog.String("history", s.HistoryPath),
	)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey && attr.Value.Kind() == slog.KindTime {
				attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return attr
		},
	}))
}

// openHistory returns nil when no history path is configured.
func (a *app) openHistory() (history.Store, error) {
	if a.settings.HistoryPath == "" {
		return nil, nil
	}
	store, err := history.NewSQLiteStore(a.settings.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", a.settings.HistoryPath, err)
	}
	return store, nil
}

func (a *app) calculator(store history.Store) (*rpncalc.Calculator, error) {
	table, err := expr.TableByName(a.settings.Precedence)
	if err != nil {
		return nil, err
	}
	opts := []rpncalc.Option{
		rpncalc.WithLogger(a.logger),
		rpncalc.WithPrecedence(table),
		rpncalc.WithMetrics(a.settings.Metrics),
		rpncalc.WithTracing(a.settings.Tracing),
	}
	if store != nil {
		opts = append(opts, rpncalc.WithHistory(store))
	}
	return rpncalc.New(opts...), nil
}
