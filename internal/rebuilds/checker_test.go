package rebuilds

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunChecksNoPatternNoIssue(t *testing.T) {
	// A failing command with no pattern to match is not an issue
	checks := []Check{{
		Name:    "quiet failure",
		Command: []string{"false"},
		Rebuild: "true",
	}}
	assert.Empty(t, RunChecks(checks))
}

func TestRunChecksEmptyCommand(t *testing.T) {
	assert.Empty(t, RunChecks([]Check{{Name: "empty"}}))
}

func TestRunChecksMissingBinary(t *testing.T) {
	checks := []Check{{
		Name:          "absent",
		Command:       []string{"definitely-not-a-real-binary-upkeep"},
		ErrorPatterns: []string{"anything"},
	}}
	assert.Empty(t, RunChecks(checks))
}

func TestRunChecksStderrPatternMatch(t *testing.T) {
	checks := []Check{{
		Name:          "broken plugin",
		Command:       []string{"sh", "-c", "echo 'plugin was built with a different version' >&2"},
		ErrorPatterns: []string{"different version"},
		Rebuild:       "yay -S --rebuild broken-plugin",
	}}

	issues := RunChecks(checks)
	require.Len(t, issues, 1)
	assert.Equal(t, "broken plugin", issues[0].Name)
	assert.Equal(t, "yay -S --rebuild broken-plugin", issues[0].RebuildCommand)
}

func TestRunChecksStdoutDoesNotMatch(t *testing.T) {
	// Patterns are matched against stderr only
	checks := []Check{{
		Name:          "stdout noise",
		Command:       []string{"sh", "-c", "echo 'ABI mismatch'"},
		ErrorPatterns: []string{"ABI mismatch"},
	}}
	assert.Empty(t, RunChecks(checks))
}

func TestChecksFileParsing(t *testing.T) {
	input := `
[[check]]
name = "obs-studio"
command = ["timeout", "3", "obs", "--help"]
error_patterns = ["ABI mismatch", "symbol lookup error"]
rebuild = "yay -S --rebuild obs-studio"
`
	var parsed checksFile
	require.NoError(t, toml.Unmarshal([]byte(input), &parsed))
	require.Len(t, parsed.Check, 1)
	assert.Equal(t, "obs-studio", parsed.Check[0].Name)
	assert.Equal(t, []string{"timeout", "3", "obs", "--help"}, parsed.Check[0].Command)
	assert.Len(t, parsed.Check[0].ErrorPatterns, 2)
}
