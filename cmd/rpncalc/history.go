package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc"
	"github.com/randalmurphal/rpncalc/pkg/rpncalc/history"
)

var errNoHistory = errors.New("no history configured: pass --history or set history in the config file")

func historyCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear the evaluation tape",
	}
	c.AddCommand(historyListCmd(a), historyShowCmd(a), historyDeleteCmd(a), historyClearCmd(a))
	return c
}

func historyListCmd(a *app) *cobra.Command {
	var opts history.ListOptions

	c := &cobra.Command{
		Use:   "list",
		Short: "List recorded evaluations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.requireHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(opts)
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), records)
		},
	}

	c.Flags().IntVar(&opts.Limit, "limit", 20, "maximum records to show (0 for all)")
	c.Flags().StringVar(&opts.Expression, "expr", "", "only show this exact expression")
	return c
}

func historyShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one recorded evaluation as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.requireHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			rec, err := store.Get(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(showRecord(rec))
		},
	}
}

func historyDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete recorded evaluations by ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.requireHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			for _, id := range args {
				if err := store.Delete(id); err != nil {
					return err
				}
			}
			a.logger.Info("history records deleted", "count", len(args))
			return nil
		},
	}
}

// showRecord renders Value as FormatValue text so Inf survives JSON.
func showRecord(rec history.Record) any {
	return struct {
		history.Record
		Value string `json:"value"`
	}{rec, rpncalc.FormatValue(rec.Value)}
}

func historyClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.requireHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(); err != nil {
				return err
			}
			a.logger.Info("history cleared", "path", a.settings.HistoryPath)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return err
		},
	}
}

func (a *app) requireHistory() (history.Store, error) {
	store, err := a.openHistory()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errNoHistory
	}
	return store, nil
}

func printRecords(w io.Writer, records []history.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, rec := range records {
		result := rpncalc.FormatValue(rec.Value)
		if !rec.Success {
			result = color.New(color.FgRed).Sprint(rec.Message)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			rec.Sequence,
			rec.ID,
			rec.Timestamp.Local().Format(time.DateTime),
			rec.Expression,
			result,
		)
	}
	return tw.Flush()
}
