package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/safeunion"
)

func TestRun(t *testing.T) {
	defer safeunion.SetLogger(nil)
	for _, mode := range []string{"per-element", "whole-value"} {
		var out bytes.Buffer
		require.NoError(t, run(&out, zap.NewNop(), "big", mode))

		layout, frames, ok := strings.Cut(out.String(), "#0 ")
		require.True(t, ok)
		var l safeunion.Layout
		require.NoError(t, yaml.Unmarshal([]byte(layout), &l))
		assert.Equal(t, "sample", l.Name)
		assert.Equal(t, mode, l.Mode)
		assert.Equal(t, 8, l.Size)
		assert.Len(t, l.Alternatives, 5)
		assert.Equal(t, 5, strings.Count("#0 "+frames, "\n"))
	}
}

func TestRunBadFlags(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(&out, zap.NewNop(), "middle", "per-element"))
	assert.Error(t, run(&out, zap.NewNop(), "big", "sideways"))
	assert.Empty(t, out.String())
}
