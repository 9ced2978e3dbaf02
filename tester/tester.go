package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/wlp4/driver"
	verr "github.com/nihei9/wlp4/error"
	tspec "github.com/nihei9/wlp4/spec/test"
	"github.com/nihei9/wlp4/wlp4"
)

type TestResult struct {
	TestCasePath string
	Error        error
	Diffs        []*tspec.TreeDiff
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent1 = "    "
		const indent2 = indent1 + indent1

		msgLines := strings.Split(r.Error.Error(), "\n")
		msg := fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent1, strings.Join(msgLines, "\n"+indent1))
		if len(r.Diffs) == 0 {
			return msg
		}
		var diffLines []string
		for _, diff := range r.Diffs {
			diffLines = append(diffLines, diff.Message)
			diffLines = append(diffLines, fmt.Sprintf("%vexpected path: %v", indent1, diff.ExpectedPath))
			diffLines = append(diffLines, fmt.Sprintf("%vactual path:   %v", indent1, diff.ActualPath))
		}
		return fmt.Sprintf("%v\n%v%v", msg, indent2, strings.Join(diffLines, "\n"+indent2))
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *tspec.TestCase
	FilePath string
	Error    error
}

// ListTestCases reads the test case at testPath, or every test case under testPath when it is a
// directory. isTerminal tells the leaves of expected trees from the interior nodes.
func ListTestCases(testPath string, isTerminal func(sym string) bool) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath, isTerminal)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()), isTerminal)
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string, isTerminal func(sym string) bool) (*tspec.TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tspec.ParseTestCase(f, isTerminal)
}

type Tester struct {
	Frontend *wlp4.Frontend
	Cases    []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(t.Frontend, c))
	}
	return rs
}

// runTest runs a program through the front end. The type checker runs only when the expected
// outcome involves it: a semantic error or a tree annotated with types.
func runTest(f *wlp4.Frontend, c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	tc := c.TestCase
	check := tc.Error == verr.CategorySemantic.String() || (tc.Output != nil && tc.Output.HasType())

	var tree *driver.Node
	var err error
	if check {
		tree, _, err = f.Check(tc.Source)
	} else {
		tree, err = f.Parse(tc.Source)
	}

	if tc.Error != "" {
		if err == nil {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("expected a %v error but the program was accepted", tc.Error),
			}
		}
		if cat := verr.CategoryOf(err).String(); cat != tc.Error {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("unexpected error category: expected %v but got %v:\n%v", tc.Error, cat, err),
			}
		}
		return &TestResult{
			TestCasePath: c.FilePath,
		}
	}
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        err,
		}
	}

	diffs := tspec.DiffTree(tc.Output, genTree(tree).Fill())
	if len(diffs) > 0 {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("output mismatch"),
			Diffs:        diffs,
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}

func genTree(dTree *driver.Node) *tspec.Tree {
	var children []*tspec.Tree
	if len(dTree.Children) > 0 {
		children = make([]*tspec.Tree, len(dTree.Children))
		for i, c := range dTree.Children {
			children[i] = genTree(c)
		}
	}
	return tspec.NewTree(dTree.Label(), children...).Typed(dTree.Type)
}
