package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc/internal/config"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()

	failed := run(&out, logr.Discard(), cfg, []string{"2+3×4", "(1+2", "5÷0"})

	assert.Equal(t, 1, failed)
	assert.Equal(t, "14\n1: open bracket ( with no close bracket\n+Inf\n", out.String())
}

func TestRun_EchoAndFormat(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.Config{Format: "%.2f", Echo: true}

	failed := run(&out, logr.Discard(), cfg, []string{" 1÷3\n"})

	assert.Zero(t, failed)
	assert.Equal(t, "1÷3 : 0.33\n", out.String())
}

func TestReadExprs_Whole(t *testing.T) {
	srcs, err := readExprs(strings.NewReader("1+\n2\n"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"1+\n2\n"}, srcs)

	srcs, err = readExprs(strings.NewReader(" \n\t"), false)
	require.NoError(t, err)
	assert.Empty(t, srcs)
}

func TestReadExprs_Lines(t *testing.T) {
	srcs, err := readExprs(strings.NewReader("1+2\n\n  \n(3)×4\n"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1+2", "(3)×4"}, srcs)
}

func TestInfile(t *testing.T) {
	f, err := infile("", false)
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = infile("-", false)
	require.NoError(t, err)
	assert.NotNil(t, f)

	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("8-3-2\n"), 0644))
	f, err = infile(path, true)
	require.NoError(t, err)
	srcs, err := readExprs(f, true)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Equal(t, []string{"8-3-2"}, srcs)

	_, err = infile(filepath.Join(t.TempDir(), "missing"), false)
	assert.Error(t, err)
}
