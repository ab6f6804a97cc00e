// Package main provides the lvpart CLI: it reads n, the cost coefficients
// a b c and the sequence from stdin (or a file), and prints the optimal
// total cost of a contiguous partition.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	rootCmd := newRootCmd()

	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
