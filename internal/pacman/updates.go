package pacman

import (
	"os/exec"
	"strings"
)

// CheckUpdates returns pending official-repo updates via checkupdates.
// Failures degrade to an empty list; the caller surfaces "no data" states.
func CheckUpdates() []Package {
	out, err := exec.Command("checkupdates", "--nocolor").Output()
	if err != nil && len(out) == 0 {
		return nil
	}
	return parseUpdates(string(out), SourcePacman)
}

// parseUpdates parses "name old_version -> new_version" lines
func parseUpdates(output string, source Source) []Package {
	var packages []Package
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, " -> ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		packages = append(packages, Package{
			Name:       fields[0],
			OldVersion: fields[1],
			NewVersion: fields[3],
			Source:     source,
		})
	}
	return packages
}
