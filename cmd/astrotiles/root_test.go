package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Asteroidea-tn/astrotiles/pkg/astropoints"
	"github.com/Asteroidea-tn/astrotiles/pkg/astrotiles"
)

const puzzleInput = "7,1\n11,1\n11,7\n9,7\n9,5\n2,5\n2,3\n7,3\n"

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		log.Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootPrintsBothAreas(t *testing.T) {
	stdout, stderr, err := execute(t, writeInput(t, puzzleInput))
	require.NoError(t, err)

	assert.Equal(t, "Biggest rectangle: 50\nBiggest rectangle with red and green tiles: 24\n", stdout)
	assert.Contains(t, stderr, "Red tiles loaded")
}

func TestRootEmptyInput(t *testing.T) {
	stdout, _, err := execute(t, writeInput(t, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "Biggest rectangle: 0\nBiggest rectangle with red and green tiles: 0\n", stdout)
}

func TestRootInputFromEnvironment(t *testing.T) {
	t.Setenv("TILES_INPUT", writeInput(t, "0,0\n0,2\n2,0\n2,2\n"))

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "Biggest rectangle: 9\nBiggest rectangle with red and green tiles: 9\n", stdout)
}

func TestRootYAMLReport(t *testing.T) {
	stdout, _, err := execute(t, writeInput(t, puzzleInput), "--format", "yaml", "--log-level", "warn")
	require.NoError(t, err)

	var report astrotiles.Report
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 8, report.Points)
	assert.Equal(t, int64(50), report.Biggest.Area)
	assert.Equal(t, int64(24), report.RedGreen.Area)
}

func TestRootFailuresPrintNothing(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"too many fields", func(t *testing.T) []string { return []string{writeInput(t, "1,2\n1,2,3\n")} }},
		{"not a number", func(t *testing.T) []string { return []string{writeInput(t, "a,b\n")} }},
		{"missing file", func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "nope")} }},
		{"unknown format", func(t *testing.T) []string { return []string{writeInput(t, puzzleInput), "--format", "xml"} }},
		{"too many args", func(t *testing.T) []string { return []string{"a", "b"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args(t)...)
			require.Error(t, err)
			assert.Empty(t, stdout)
		})
	}
}

func TestRootMalformedIsRecordError(t *testing.T) {
	_, _, err := execute(t, writeInput(t, "1,2,3\n"))
	assert.ErrorIs(t, err, astropoints.ErrMalformedRecord)
}
