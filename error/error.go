package error

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// SpecError is an error found in one of the texts configuring the front end: an automaton
// specification, a grammar, or a parsing table.
type SpecError struct {
	Cause      error
	Detail     string
	FilePath   string
	SourceName string
	Row        int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}

	line := readLine(e.FilePath, e.Row)
	if line != "" {
		fmt.Fprintf(&b, "\n    %v", line)
	}

	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

func readLine(filePath string, row int) string {
	if filePath == "" || row <= 0 {
		return ""
	}

	f, err := os.Open(filePath)
	if err != nil {
		return ""
	}
	defer f.Close()

	i := 1
	s := bufio.NewScanner(f)
	for s.Scan() {
		if i == row {
			return s.Text()
		}
		i++
	}

	return ""
}

// Category classifies a failure by the stage of the pipeline that detected it.
type Category string

const (
	CategoryNil      = Category("")
	CategoryConfig   = Category("config")
	CategoryLexical  = Category("lexical")
	CategorySyntax   = Category("syntax")
	CategorySemantic = Category("semantic")
)

func (c Category) String() string {
	return string(c)
}

// Error is a fatal error raised while processing a source program. Row and Col are 1-based;
// zero means the position is unknown.
type Error struct {
	Category Category
	Cause    error
	Detail   string
	Row      int
	Col      int
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v:%v: ", e.Row, e.Col)
	}
	fmt.Fprintf(&b, "%v error: %v", e.Category, e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CategoryOf returns the category of err. Configuration errors are reported as SpecError, so they
// fall into CategoryConfig.
func CategoryOf(err error) Category {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Category
	}
	var sErr *SpecError
	if errors.As(err, &sErr) {
		return CategoryConfig
	}
	return CategoryNil
}
