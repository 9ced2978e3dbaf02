package main

import (
	"github.com/nihei9/wlp4/wlp4"
	"github.com/spf13/cobra"
)

var checkFlags = struct {
	types  *bool
	pretty *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Type-check a WLP4 program and print the annotated syntax tree",
		Example: `  wlp4 check -s prog.wlp4 --types`,
		Args:    cobra.NoArgs,
		RunE:    runCheck,
	}
	checkFlags.types = cmd.Flags().Bool("types", false, "append the type to each expression node")
	checkFlags.pretty = cmd.Flags().Bool("pretty", false, "print the tree with ruled lines")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverPanic(&retErr)

	f, err := newFrontend()
	if err != nil {
		return err
	}
	src, err := readSource()
	if err != nil {
		return err
	}
	return check(f, src, *checkFlags.types, *checkFlags.pretty)
}

func check(f *wlp4.Frontend, src []byte, withTypes, pretty bool) error {
	tree, _, err := f.Check(src)
	if err != nil {
		return err
	}
	printTree(tree, pretty, withTypes)
	return nil
}
