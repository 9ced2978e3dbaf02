package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nihei9/wlp4/wlp4"
	"github.com/spf13/cobra"
)

const (
	shiftTableFileName  = "wlp4.transitions"
	reduceTableFileName = "wlp4.reductions"
)

var tableFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table",
		Short:   "Generate the parsing table of WLP4",
		Example: `  wlp4 table -o tables`,
		Args:    cobra.NoArgs,
		RunE:    runTable,
	}
	tableFlags.output = cmd.Flags().StringP("output", "o", "", "output directory path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverPanic(&retErr)

	f, err := newFrontend()
	if err != nil {
		return err
	}
	tab := f.ParsingTable()
	defer func() {
		if retErr == nil {
			printTableSummary(f)
		}
	}()

	if *tableFlags.output == "" {
		return tab.Write(os.Stdout, os.Stdout)
	}

	err = os.MkdirAll(*tableFlags.output, 0755)
	if err != nil {
		return fmt.Errorf("Cannot create the output directory %s: %w", *tableFlags.output, err)
	}
	shiftPath := filepath.Join(*tableFlags.output, shiftTableFileName)
	shift, err := os.OpenFile(shiftPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Cannot create the shift table %s: %w", shiftPath, err)
	}
	defer shift.Close()
	reducePath := filepath.Join(*tableFlags.output, reduceTableFileName)
	reduce, err := os.OpenFile(reducePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Cannot create the reduce table %s: %w", reducePath, err)
	}
	defer reduce.Close()

	return tab.Write(shift, reduce)
}

// printTableSummary writes the sizes of the automaton, the grammar, and the table to stderr so that
// the table texts on stdout stay intact.
func printTableSummary(f *wlp4.Frontend) {
	gram := f.Grammar()
	fmt.Fprintf(os.Stderr, "automaton: %v states, grammar: %v rules and %v terminals, table: %v states\n",
		f.Automaton().StateCount(), len(gram.Rules), len(gram.Terminals()), f.ParsingTable().StateCount())
}
