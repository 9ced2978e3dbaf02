package main

import (
	"os"

	"github.com/nihei9/wlp4/driver"
	"github.com/nihei9/wlp4/wlp4"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	pretty *bool
	trace  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse a WLP4 program and print the syntax tree",
		Example: `  wlp4 parse -s prog.wlp4 --pretty`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.pretty = cmd.Flags().Bool("pretty", false, "print the tree with ruled lines")
	parseFlags.trace = cmd.Flags().Bool("trace", false, "print the actions of the parser to stderr")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverPanic(&retErr)

	f, err := newFrontend()
	if err != nil {
		return err
	}
	src, err := readSource()
	if err != nil {
		return err
	}
	return parse(f, src, *parseFlags.pretty, *parseFlags.trace)
}

func parse(f *wlp4.Frontend, src []byte, pretty, trace bool) error {
	var semAct []driver.SemanticActionSet
	if trace {
		semAct = append(semAct, driver.NewTraceActionSet(os.Stderr))
	}
	tree, err := f.Parse(src, semAct...)
	if err != nil {
		return err
	}
	printTree(tree, pretty, false)
	return nil
}

func printTree(tree *driver.Node, pretty, withTypes bool) {
	if pretty {
		driver.PrintRuledTree(os.Stdout, tree)
		return
	}
	driver.PrintTree(os.Stdout, tree, withTypes)
}
