package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func postfixCmd(a *app) *cobra.Command {
	var marked bool

	c := &cobra.Command{
		Use:   "postfix <expression>",
		Short: "Print the postfix form of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := a.calculator(nil)
			if err != nil {
				return err
			}

			p, err := calc.Postfix(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := p.String()
			if marked {
				out = p.Marked()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	c.Flags().BoolVar(&marked, "marked", false, "prefix every number with the _ marker")
	return c
}
