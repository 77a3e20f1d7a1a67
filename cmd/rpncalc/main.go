// Command rpncalc evaluates infix arithmetic from the command line.
//
// Usage:
//
//	rpncalc eval "12+34" "(2+3)*4"
//	echo "2+3*4" | rpncalc eval --precedence standard
//	rpncalc postfix --marked "12+34"
//	rpncalc --history ~/.rpncalc.db history list --limit 10
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errEvaluationFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}
		os.Exit(1)
	}
}
