package pacman

import (
	"os/exec"
	"strings"
)

// FetchInfo returns detail info for a package, trying the local database
// first, then the sync databases, then the AUR RPC. Returns nil when the
// package is unknown everywhere.
func FetchInfo(name string) *PackageInfo {
	if info := infoForInstalled(name); info != nil {
		return info
	}
	if info := infoForRepo(name); info != nil {
		return info
	}
	info, err := fetchAurInfo(name)
	if err != nil {
		return nil
	}
	return info
}

// infoForInstalled reads pacman -Qi. -Qi omits the repository, so it is
// backfilled from -Si, or marked AUR for foreign packages (with maintainer
// and vote data pulled from the RPC).
func infoForInstalled(name string) *PackageInfo {
	out, err := exec.Command("pacman", "-Qi", name).Output()
	if err != nil {
		return nil
	}
	info := parseInfoOutput(string(out), true)
	if info == nil {
		return nil
	}

	if info.Repository == "" {
		if repoOut, err := exec.Command("pacman", "-Si", name).Output(); err == nil {
			if repoInfo := parseInfoOutput(string(repoOut), false); repoInfo != nil {
				info.Repository = repoInfo.Repository
			}
		}
	}
	if info.Repository == "" && isForeign(name) {
		info.Repository = "AUR"
		if aur, err := fetchAurInfo(name); err == nil {
			info.Maintainer = aur.Maintainer
			info.Votes = aur.Votes
		}
	}
	return info
}

func infoForRepo(name string) *PackageInfo {
	out, err := exec.Command("pacman", "-Si", name).Output()
	if err != nil {
		return nil
	}
	return parseInfoOutput(string(out), false)
}

func isForeign(name string) bool {
	return exec.Command("pacman", "-Qmq", name).Run() == nil
}

// parseInfoOutput parses the "Key : Value" blocks of pacman -Qi / -Si
func parseInfoOutput(output string, installed bool) *PackageInfo {
	info := &PackageInfo{}
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "Name":
			info.Name = value
		case "Version":
			info.Version = value
		case "Description":
			info.Description = value
		case "Repository":
			info.Repository = value
		case "Installed Size":
			info.Size = value
		case "Download Size":
			if !installed {
				info.Size = value
			}
		case "Install Date":
			info.InstallDate = value
		case "Install Reason":
			info.InstallReason = value
		case "URL":
			info.URL = value
		case "Build Date":
			info.BuildDate = value
		case "Required By":
			info.RequiredBy = parseNameList(value)
		case "Optional For":
			info.OptionalFor = parseNameList(value)
		}
	}
	if info.Name == "" {
		return nil
	}
	return info
}

// parseNameList splits the space-separated package lists of -Qi, where
// "None" means empty.
func parseNameList(value string) []string {
	if value == "" || value == "None" {
		return nil
	}
	return strings.Fields(value)
}
