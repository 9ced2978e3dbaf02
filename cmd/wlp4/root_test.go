package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTableFlags(t *testing.T, transitions, reductions string) {
	t.Helper()

	oldTransitions, oldReductions := *rootFlags.transitions, *rootFlags.reductions
	*rootFlags.transitions = transitions
	*rootFlags.reductions = reductions
	t.Cleanup(func() {
		*rootFlags.transitions = oldTransitions
		*rootFlags.reductions = oldReductions
	})
}

func TestNewFrontend_TableFiles(t *testing.T) {
	dir := t.TempDir()
	goodShift := filepath.Join(dir, "good.transitions")
	badShift := filepath.Join(dir, "bad.transitions")
	goodReduce := filepath.Join(dir, "good.reductions")
	badReduce := filepath.Join(dir, "bad.reductions")
	require.NoError(t, os.WriteFile(goodShift, []byte(".TRANSITIONS\n0 BOF 1\n"), 0644))
	require.NoError(t, os.WriteFile(badShift, []byte(".TRANSITIONS\n0 BOF 1\n0 x\n"), 0644))
	require.NoError(t, os.WriteFile(goodReduce, []byte(".REDUCTIONS\n"), 0644))
	require.NoError(t, os.WriteFile(badReduce, []byte(".REDUCTIONS\nx 1 EOF\n"), 0644))

	tests := []struct {
		caption     string
		transitions string
		reductions  string
		path        string
		line        string
	}{
		{
			caption:     "a broken shift table",
			transitions: badShift,
			reductions:  goodReduce,
			path:        badShift,
			line:        "0 x",
		},
		{
			caption:     "a broken reduce table",
			transitions: goodShift,
			reductions:  badReduce,
			path:        badReduce,
			line:        "x 1 EOF",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			setTableFlags(t, tt.transitions, tt.reductions)

			_, err := newFrontend()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.path)
			assert.Contains(t, err.Error(), "\n    "+tt.line)
		})
	}
}

func TestNewFrontend_OneTableFile(t *testing.T) {
	setTableFlags(t, "shift.txt", "")

	_, err := newFrontend()
	assert.Error(t, err)
}
