package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/nihei9/wlp4/wlp4"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	source      *string
	transitions *string
	reductions  *string
	stage       *stage
}{
	stage: newStage(stageCheck),
}

var rootCmd = &cobra.Command{
	Use:   "wlp4",
	Short: "Run the front end of the WLP4 compiler",
	Long: `wlp4 runs a WLP4 program through the stages of the front end:
- tokenize splits the program into tokens.
- parse builds a syntax tree from the tokens.
- check type-checks the tree.
Without a subcommand, it runs the stages up to --stage and prints the output of the last one.`,
	Example:       `  wlp4 -s prog.wlp4 --stage parse`,
	Args:          cobra.NoArgs,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.source = rootCmd.PersistentFlags().StringP("source", "s", "", "source file path (default stdin)")
	rootFlags.transitions = rootCmd.PersistentFlags().String("transitions", "", "shift table file path (default generated from the grammar)")
	rootFlags.reductions = rootCmd.PersistentFlags().String("reductions", "", "reduce table file path (default generated from the grammar)")
	rootCmd.Flags().Var(rootFlags.stage, "stage", "the last stage to run: tokenize, parse, or check")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverPanic(&retErr)

	f, err := newFrontend()
	if err != nil {
		return err
	}
	src, err := readSource()
	if err != nil {
		return err
	}

	switch *rootFlags.stage {
	case stageTokenize:
		return tokenize(f, src)
	case stageParse:
		return parse(f, src, false, false)
	default:
		return check(f, src, true, false)
	}
}

// recoverPanic turns a panic in a command into an error and prints the stack trace.
func recoverPanic(retErr *error) {
	v := recover()
	if v == nil {
		return
	}
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("an unexpected error occurred: %v", v)
	}
	fmt.Fprintf(os.Stderr, "%v:\n%v", err, string(debug.Stack()))
	*retErr = err
}

// newFrontend builds a front end, reading its parsing table from --transitions and --reductions when
// both are given.
func newFrontend() (*wlp4.Frontend, error) {
	if *rootFlags.transitions == "" && *rootFlags.reductions == "" {
		return wlp4.NewFrontend()
	}
	if *rootFlags.transitions == "" || *rootFlags.reductions == "" {
		return nil, fmt.Errorf("--transitions and --reductions must be given together")
	}

	shift, err := os.Open(*rootFlags.transitions)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the shift table %s: %w", *rootFlags.transitions, err)
	}
	defer shift.Close()
	reduce, err := os.Open(*rootFlags.reductions)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the reduce table %s: %w", *rootFlags.reductions, err)
	}
	defer reduce.Close()

	return wlp4.NewFrontend(wlp4.Tables(shift, reduce))
}

func readSource() ([]byte, error) {
	if *rootFlags.source == "" {
		return io.ReadAll(os.Stdin)
	}
	src, err := os.ReadFile(*rootFlags.source)
	if err != nil {
		return nil, fmt.Errorf("Cannot read the source file %s: %w", *rootFlags.source, err)
	}
	return src, nil
}
