package pacman

import (
	"os/exec"
	"strings"
)

// GetInstalled returns all explicitly installed packages. The foreign
// package set (pacman -Qm) decides whether a package is repo or AUR.
func GetInstalled() []InstalledPackage {
	foreign := foreignPackages()

	out, err := exec.Command("pacman", "-Qe").Output()
	if err != nil {
		return nil
	}

	var packages []InstalledPackage
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		source := SourcePacman
		if foreign[fields[0]] {
			source = SourceAur
		}
		packages = append(packages, InstalledPackage{
			Name:    fields[0],
			Version: fields[1],
			Source:  source,
		})
	}
	return packages
}

// GetOrphans returns dependency packages no longer required by anything
// (pacman -Qdt). Exit code 1 with empty output means no orphans.
func GetOrphans() []InstalledPackage {
	out, err := exec.Command("pacman", "-Qdt").Output()
	if err != nil && len(out) == 0 {
		return nil
	}

	foreign := foreignPackages()

	var packages []InstalledPackage
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		source := SourcePacman
		if foreign[fields[0]] {
			source = SourceAur
		}
		packages = append(packages, InstalledPackage{
			Name:    fields[0],
			Version: fields[1],
			Source:  source,
		})
	}
	return packages
}

// foreignPackages returns the set of packages not found in sync databases
func foreignPackages() map[string]bool {
	out, err := exec.Command("pacman", "-Qm").Output()
	if err != nil {
		return nil
	}
	foreign := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			foreign[fields[0]] = true
		}
	}
	return foreign
}

// installedNames returns every installed package name (pacman -Qq)
func installedNames() map[string]bool {
	out, err := exec.Command("pacman", "-Qq").Output()
	if err != nil {
		return nil
	}
	names := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names[line] = true
		}
	}
	return names
}
