package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Set(t *testing.T) {
	s := newStage(stageCheck)
	assert.Equal(t, "check", s.String())
	assert.Equal(t, "stage", s.Type())

	require.NoError(t, s.Set("tokenize"))
	assert.Equal(t, stageTokenize, *s)
	require.NoError(t, s.Set("parse"))
	assert.Equal(t, stageParse, *s)

	assert.Error(t, s.Set("codegen"))
	assert.Equal(t, stageParse, *s)
}
