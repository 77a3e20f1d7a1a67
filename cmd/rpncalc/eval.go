package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc"
)

// errEvaluationFailed is returned when at least one expression failed. The
// messages were already printed.
var errEvaluationFailed = errors.New("evaluation failed")

func evalCmd(a *app) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions from arguments or stdin, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openHistory()
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			calc, err := a.calculator(store)
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			failed := false
			for _, input := range inputs {
				out := calc.Evaluate(cmd.Context(), input)
				if err := printOutcome(cmd.OutOrStdout(), cmd.ErrOrStderr(), out, asJSON); err != nil {
					return err
				}
				if !out.Success {
					failed = true
				}
			}
			if failed {
				return errEvaluationFailed
			}
			return nil
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per expression")
	return c
}

// printOutcome writes a value to stdout, or the message in red to stderr.
// In JSON mode every outcome goes to stdout.
func printOutcome(stdout, stderr io.Writer, out rpncalc.Outcome, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(stdout).Encode(out)
	}
	if !out.Success {
		_, err := color.New(color.FgRed).Fprintln(stderr, out.Message)
		return err
	}
	_, err := fmt.Fprintln(stdout, rpncalc.FormatValue(out.Value))
	return err
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
