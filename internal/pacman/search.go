package pacman

import (
	"bufio"
	"encoding/json"
	"net/url"
	"os/exec"
	"sort"
	"strings"
)

// Search queries both the official repos (pacman -Ss) and the AUR RPC,
// deduplicates in favor of official packages, and sorts installed results
// last. Queries shorter than two characters return nothing.
func Search(query string) []SearchResult {
	if len(query) < 2 {
		return nil
	}

	installed := installedNames()

	results := searchRepos(query)
	aurResults := searchAur(query)
	for i := range aurResults {
		aurResults[i].Installed = installed[aurResults[i].Name]
	}

	// Prefer official repos over AUR for duplicate names
	repoNames := make(map[string]bool, len(results))
	for _, r := range results {
		repoNames[r.Name] = true
	}
	for _, r := range aurResults {
		if !repoNames[r.Name] {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Installed != results[j].Installed {
			return !results[i].Installed
		}
		return results[i].Name < results[j].Name
	})
	return results
}

func searchRepos(query string) []SearchResult {
	out, err := exec.Command("pacman", "-Ss", query).Output()
	if err != nil {
		return nil
	}
	return parseRepoSearch(string(out))
}

// parseRepoSearch parses pacman -Ss output:
//
//	repo/name version [installed]
//	    Description text
func parseRepoSearch(output string) []SearchResult {
	var results []SearchResult
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, " ") || !strings.Contains(line, "/") {
			// Description lines belong to the previous package
			if len(results) > 0 && strings.HasPrefix(line, "    ") && results[len(results)-1].Description == "" {
				results[len(results)-1].Description = strings.TrimSpace(line)
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		repo, name, ok := strings.Cut(fields[0], "/")
		if !ok {
			continue
		}
		results = append(results, SearchResult{
			Name:       name,
			Version:    fields[1],
			Repository: repo,
			Installed:  strings.Contains(line, "[installed"),
		})
	}
	return results
}

type aurSearchResponse struct {
	Results []aurPackage
}

func searchAur(query string) []SearchResult {
	params := url.Values{"arg": {query}}
	resp, err := aurClient.Get(aurRPCBase + "/search?" + params.Encode())
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	var parsed aurSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil
	}

	results := make([]SearchResult, 0, len(parsed.Results))
	for _, pkg := range parsed.Results {
		r := SearchResult{
			Name:       pkg.Name,
			Version:    pkg.Version,
			Repository: "AUR",
		}
		if pkg.Description != nil {
			r.Description = *pkg.Description
		}
		results = append(results, r)
	}
	return results
}
