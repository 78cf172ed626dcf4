package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/diffmark/internal/runner"
)

func cobraTest(t *testing.T, stdin string, args ...string) (string, string, *rootOpts, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd, opts := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), opts, err
}

func TestRootStrings(t *testing.T) {
	out, _, opts, err := cobraTest(t, "", "-s", "--color", "never", "-f", "caret", "1600", "1800")
	require.NoError(t, err)
	assert.Equal(t, runner.ExitDifferent, opts.code)
	assert.True(t, strings.HasPrefix(out, "1600\r\n ^\r\n"), "got %q", out)
}

func TestRootIdentical(t *testing.T) {
	out, _, opts, err := cobraTest(t, "", "-s", "-q", "same", "same")
	require.NoError(t, err)
	assert.Equal(t, runner.ExitSame, opts.code)
	assert.Empty(t, out)
}

func TestRootStdin(t *testing.T) {
	out, _, opts, err := cobraTest(t, "abc", "-f", "json", "-", "-")
	require.NoError(t, err)
	assert.Equal(t, runner.ExitError, opts.code)
	assert.Empty(t, out)
}

func TestRootArgs(t *testing.T) {
	_, _, _, err := cobraTest(t, "", "only-one")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestRootVerbosity(t *testing.T) {
	_, stderr, opts, err := cobraTest(t, "", "-s", "-q", "-v", "info", "--log-format", "json", "abc", "abd")
	require.NoError(t, err)
	assert.Equal(t, runner.ExitDifferent, opts.code)
	assert.Contains(t, stderr, `"msg":"computed diff"`)
	assert.Contains(t, stderr, `"matched":2`)
}

func TestRootBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"verbosity", []string{"-v", "loud", "a", "b"}, "unable to parse verbosity"},
		{"log format", []string{"--log-format", "xml", "a", "b"}, "unknown log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := cobraTest(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRootVersion(t *testing.T) {
	out, _, _, err := cobraTest(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "diffmark dev (none) unknown\n", out)
}
