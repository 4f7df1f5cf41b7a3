package pacman

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os/exec"
	"strings"
	"time"
)

const (
	aurRPCBase = "https://aur.archlinux.org/rpc/v5"
	// The RPC info endpoint caps the number of arg[] parameters per request
	aurBatchSize = 100
)

var aurClient = &http.Client{Timeout: 30 * time.Second}

type aurInfoResponse struct {
	ResultCount int `json:"resultcount"`
	Results     []aurPackage
}

type aurPackage struct {
	Name         string  `json:"Name"`
	Version      string  `json:"Version"`
	Description  *string `json:"Description"`
	URL          *string `json:"URL"`
	Maintainer   *string `json:"Maintainer"`
	NumVotes     int     `json:"NumVotes"`
	LastModified int64   `json:"LastModified"`
}

// CheckAurUpdates compares locally installed foreign packages against the
// AUR RPC. If the RPC is unreachable it falls back to the configured AUR
// helper's own update check.
func CheckAurUpdates(aurHelper string) []Package {
	local := localAurPackages()
	if len(local) == 0 {
		return nil
	}

	versions, err := queryAurVersions(local)
	if err != nil {
		return checkAurUpdatesFallback(aurHelper)
	}

	var updates []Package
	for _, pkg := range local {
		aurVer, ok := versions[pkg.Name]
		if !ok {
			continue
		}
		if isNewer(aurVer, pkg.Version) {
			updates = append(updates, Package{
				Name:       pkg.Name,
				OldVersion: pkg.Version,
				NewVersion: aurVer,
				Source:     SourceAur,
			})
		}
	}
	return updates
}

// localAurPackages lists foreign packages with versions (pacman -Qm)
func localAurPackages() []InstalledPackage {
	out, err := exec.Command("pacman", "-Qm").Output()
	if err != nil {
		return nil
	}
	var packages []InstalledPackage
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			packages = append(packages, InstalledPackage{Name: fields[0], Version: fields[1], Source: SourceAur})
		}
	}
	return packages
}

// queryAurVersions fetches current AUR versions in batches
func queryAurVersions(packages []InstalledPackage) (map[string]string, error) {
	versions := make(map[string]string)
	for start := 0; start < len(packages); start += aurBatchSize {
		end := min(start+aurBatchSize, len(packages))
		params := url.Values{}
		for _, pkg := range packages[start:end] {
			params.Add("arg[]", pkg.Name)
		}

		resp, err := aurClient.Get(aurRPCBase + "/info?" + params.Encode())
		if err != nil {
			return nil, err
		}
		var parsed aurInfoResponse
		err = json.NewDecoder(resp.Body).Decode(&parsed)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		for _, pkg := range parsed.Results {
			versions[pkg.Name] = pkg.Version
		}
	}
	return versions, nil
}

// isNewer reports whether newVer sorts after oldVer. vercmp understands
// pacman's epoch/pkgrel rules; if it is missing, fall back to inequality.
func isNewer(newVer, oldVer string) bool {
	if newVer == oldVer {
		return false
	}
	out, err := exec.Command("vercmp", newVer, oldVer).Output()
	if err != nil {
		return true
	}
	return strings.TrimSpace(string(out)) == "1"
}

// checkAurUpdatesFallback asks the AUR helper directly (helper -Qua)
func checkAurUpdatesFallback(aurHelper string) []Package {
	out, err := exec.Command(aurHelper, "-Qua").Output()
	if err != nil && len(out) == 0 {
		return nil
	}
	return parseUpdates(string(out), SourceAur)
}

// fetchAurInfo fetches detail info for a single package from the AUR RPC
func fetchAurInfo(name string) (*PackageInfo, error) {
	params := url.Values{"arg": {name}}
	resp, err := aurClient.Get(aurRPCBase + "/info?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed aurInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if parsed.ResultCount != 1 || len(parsed.Results) == 0 {
		return nil, fmt.Errorf("package %q not found in AUR", name)
	}

	pkg := parsed.Results[0]
	info := &PackageInfo{
		Name:       pkg.Name,
		Version:    pkg.Version,
		Repository: "AUR",
		Votes:      pkg.NumVotes,
	}
	if pkg.Description != nil {
		info.Description = *pkg.Description
	}
	if pkg.URL != nil {
		info.URL = *pkg.URL
	}
	if pkg.Maintainer != nil {
		info.Maintainer = *pkg.Maintainer
	}
	if pkg.LastModified > 0 {
		info.BuildDate = time.Unix(pkg.LastModified, 0).Format("2006-01-02")
	}
	return info, nil
}
