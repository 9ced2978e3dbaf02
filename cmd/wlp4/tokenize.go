package main

import (
	"os"

	"github.com/nihei9/wlp4/lexical"
	"github.com/nihei9/wlp4/wlp4"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "tokenize",
		Short:   "Tokenize a WLP4 program",
		Example: `  cat prog.wlp4 | wlp4 tokenize`,
		Args:    cobra.NoArgs,
		RunE:    runTokenize,
	}
	rootCmd.AddCommand(cmd)
}

func runTokenize(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverPanic(&retErr)

	f, err := newFrontend()
	if err != nil {
		return err
	}
	src, err := readSource()
	if err != nil {
		return err
	}
	return tokenize(f, src)
}

func tokenize(f *wlp4.Frontend, src []byte) error {
	toks, err := f.Tokenize(src)
	if err != nil {
		return err
	}
	lexical.Print(os.Stdout, toks)
	return nil
}
