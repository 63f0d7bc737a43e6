package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/codegengo/internal/cli"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	config, exit, err := cli.Parse([]string{"models"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	require.NotNil(t, config)

	assert.Equal(t, "models", config.ModelPath)
	assert.Equal(t, []string{"manifests"}, config.ManifestPaths)
	assert.Equal(t, "templates", config.TemplatePath)
	assert.Equal(t, "generated/sources", config.SourceOutput)
	assert.Equal(t, "generated/resources", config.ResourceOutput)
	assert.Empty(t, config.ResourceCompanion)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
	assert.False(t, config.DryRun)
}

func TestParseModelPathFlags(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "long flag", args: []string{"-models", "defs"}},
		{name: "shorthand", args: []string{"-m", "defs"}},
		{name: "positional", args: []string{"defs"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			config, exit, err := cli.Parse(tc.args, &out)
			require.NoError(t, err)
			require.False(t, exit)
			assert.Equal(t, "defs", config.ModelPath)
		})
	}
}

func TestParseNoModelPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	config, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseHelpFlag(t *testing.T) {
	var out bytes.Buffer
	config, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, config)
}

func TestParseManifestSearchPath(t *testing.T) {
	var out bytes.Buffer
	config, _, err := cli.Parse([]string{"-manifests", "a, b ,,c", "models"}, &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, config.ManifestPaths)
}

func TestParseOptions(t *testing.T) {
	var out bytes.Buffer
	args := []string{
		"-output", "gen",
		"-generators", "data_object,rx.*",
		"-option", "phase=final",
		"-option", "region=eu",
		"models",
	}
	config, _, err := cli.Parse(args, &out)
	require.NoError(t, err)

	assert.Equal(t, "gen", config.Options["codegen.output"])
	assert.Equal(t, "data_object,rx.*", config.Options["codegen.generators"])
	assert.Equal(t, "final", config.Options["phase"])
	assert.Equal(t, "eu", config.Options["region"])
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "malformed option", args: []string{"-option", "noequals", "models"}},
		{name: "empty option key", args: []string{"-option", "=v", "models"}},
		{name: "bad log format", args: []string{"-log-format", "xml", "models"}},
		{name: "bad log level", args: []string{"-log-level", "loud", "models"}},
		{name: "unknown flag", args: []string{"-bogus", "models"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := cli.Parse(tc.args, &out)
			require.Error(t, err)

			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParseDryRun(t *testing.T) {
	var out bytes.Buffer
	config, _, err := cli.Parse([]string{"-dry-run", "models"}, &out)
	require.NoError(t, err)
	assert.True(t, config.DryRun)
}
