package rebuilds

import (
	"bytes"
	"os/exec"
	"strings"
)

// Issue is a check whose probe reported a rebuild is needed
type Issue struct {
	Name           string
	RebuildCommand string
	Selected       bool
}

// RunChecks executes every probe and collects the ones that show an issue
func RunChecks(checks []Check) []Issue {
	var issues []Issue
	for _, check := range checks {
		if hasIssue(check) {
			issues = append(issues, Issue{
				Name:           check.Name,
				RebuildCommand: check.Rebuild,
			})
		}
	}
	return issues
}

// hasIssue runs the probe and scans its stderr for the configured patterns.
// A probe that fails to start, or exits without matching stderr, is healthy.
func hasIssue(check Check) bool {
	if len(check.Command) == 0 {
		return false
	}

	cmd := exec.Command(check.Command[0], check.Command[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	// Exit status is irrelevant, only the stderr patterns decide
	_ = cmd.Run()

	output := stderr.String()
	for _, pattern := range check.ErrorPatterns {
		if strings.Contains(output, pattern) {
			return true
		}
	}
	return false
}
