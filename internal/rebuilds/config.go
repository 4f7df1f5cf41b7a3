// Package rebuilds detects applications that need rebuilding after library
// updates, driven by user-defined probes in checks.toml.
package rebuilds

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"upkeep/internal/config"
)

// Check is one probe from checks.toml
type Check struct {
	Name          string   `toml:"name"`
	Command       []string `toml:"command"`
	ErrorPatterns []string `toml:"error_patterns"`
	Rebuild       string   `toml:"rebuild"`
}

type checksFile struct {
	Check []Check `toml:"check"`
}

// ChecksPath returns the checks.toml location
func ChecksPath() string {
	return filepath.Join(config.Dir(), "checks.toml")
}

// LoadChecks reads the configured checks. On first run it writes a commented
// template and returns no checks.
func LoadChecks() ([]Check, error) {
	data, err := os.ReadFile(ChecksPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, writeDefaultChecks()
	}
	if err != nil {
		return nil, fmt.Errorf("reading checks: %w", err)
	}

	var parsed checksFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ChecksPath(), err)
	}
	return parsed.Check, nil
}

func writeDefaultChecks() error {
	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	content := `# Upkeep rebuild checks configuration
#
# Each [[check]] block defines an application to monitor for version mismatch issues.
# When the command outputs any of the error_patterns to stderr, the app needs rebuilding.
#
# Fields:
#   name           - Display name for the check
#   command        - Command to run (as array of arguments)
#   error_patterns - Strings to look for in stderr that indicate a rebuild is needed
#   rebuild        - Shell command to run to fix the issue

# Example check (uncomment and modify as needed):
# [[check]]
# name = "elephant"
# command = ["timeout", "3", "elephant"]
# error_patterns = ["plugin was built with a different version"]
# rebuild = "yay -S --rebuild $(pacman -Qqm | grep elephant)"

# [[check]]
# name = "obs-studio"
# command = ["timeout", "3", "obs", "--help"]
# error_patterns = ["ABI mismatch", "symbol lookup error"]
# rebuild = "yay -S --rebuild obs-studio"
`

	if err := os.WriteFile(ChecksPath(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing default checks: %w", err)
	}
	return nil
}
