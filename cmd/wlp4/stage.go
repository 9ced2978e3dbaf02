package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

type stage string

const (
	stageTokenize = stage("tokenize")
	stageParse    = stage("parse")
	stageCheck    = stage("check")
)

var _ pflag.Value = newStage(stageCheck)

func newStage(s stage) *stage {
	return &s
}

func (s *stage) String() string {
	return string(*s)
}

func (s *stage) Set(v string) error {
	switch stage(v) {
	case stageTokenize, stageParse, stageCheck:
		*s = stage(v)
		return nil
	}
	return fmt.Errorf("unknown stage %q: must be one of %v, %v, or %v", v, stageTokenize, stageParse, stageCheck)
}

func (s *stage) Type() string {
	return "stage"
}
