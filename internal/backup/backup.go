// Package backup exports the explicitly installed package list, either to
// dated files under the config directory or to the system clipboard.
package backup

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"upkeep/internal/config"
)

// ExportResult describes where an export landed
type ExportResult struct {
	PackagesPath string
	AurPath      string
	Official     int
	Aur          int
}

// fetchPackages splits explicitly installed packages into official and AUR
func fetchPackages() (official, aur []string, err error) {
	out, err := exec.Command("pacman", "-Qqe").Output()
	if err != nil {
		return nil, nil, fmt.Errorf("pacman -Qqe: %w", err)
	}

	// -Qqm returns empty rather than failing when no AUR packages exist
	foreignOut, _ := exec.Command("pacman", "-Qqm").Output()
	foreign := make(map[string]bool)
	for _, name := range strings.Fields(string(foreignOut)) {
		foreign[name] = true
	}

	for _, name := range strings.Fields(string(out)) {
		if foreign[name] {
			aur = append(aur, name)
		} else {
			official = append(official, name)
		}
	}
	return official, aur, nil
}

// ExportPackages writes packages-YYYY-MM-DD.txt and aur-YYYY-MM-DD.txt
// under the config backups directory.
func ExportPackages() (ExportResult, error) {
	dir := filepath.Join(config.Dir(), "backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ExportResult{}, fmt.Errorf("creating backup dir: %w", err)
	}

	official, aur, err := fetchPackages()
	if err != nil {
		return ExportResult{}, err
	}

	date := time.Now().Format("2006-01-02")
	res := ExportResult{
		PackagesPath: filepath.Join(dir, "packages-"+date+".txt"),
		AurPath:      filepath.Join(dir, "aur-"+date+".txt"),
		Official:     len(official),
		Aur:          len(aur),
	}

	if err := writeLines(res.PackagesPath, official); err != nil {
		return ExportResult{}, err
	}
	if err := writeLines(res.AurPath, aur); err != nil {
		return ExportResult{}, err
	}
	return res, nil
}

func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// PackageList renders the installed packages as a commented text listing
func PackageList() (list string, official, aur int, err error) {
	off, foreign, err := fetchPackages()
	if err != nil {
		return "", 0, 0, err
	}

	var b strings.Builder
	b.WriteString("# Official\n")
	for _, name := range off {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	b.WriteString("\n# AUR\n")
	for _, name := range foreign {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String(), len(off), len(foreign), nil
}

// CopyToClipboard puts text on the system clipboard
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
