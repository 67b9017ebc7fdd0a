package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitGlobalFlagsLeadingDebug(t *testing.T) {
	args, level := splitGlobalFlags([]string{"--debug", "commit", "msg"})
	assert.Equal(t, []string{"commit", "msg"}, args)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestSplitGlobalFlagsLeavesCommandArgsAlone(t *testing.T) {
	// --debug after the command name belongs to the command
	args, level := splitGlobalFlags([]string{"commit", "enable", "--debug", "mode"})
	assert.Equal(t, []string{"commit", "enable", "--debug", "mode"}, args)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestSplitGlobalFlagsNoArgs(t *testing.T) {
	args, level := splitGlobalFlags(nil)
	assert.Empty(t, args)
	assert.Equal(t, slog.LevelInfo, level)
}
