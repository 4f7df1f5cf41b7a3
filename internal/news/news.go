// Package news fetches the Arch Linux news feed and correlates items with
// the set of installed packages.
package news

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

const feedURL = "https://archlinux.org/feeds/news/"

// Keywords that indicate manual intervention is required
var attentionKeywords = []string{
	"manual intervention",
	"action required",
	"immediately",
	"before upgrading",
	"require manual",
	"must be",
	"breaking change",
}

// Item is one entry from the news feed
type Item struct {
	Title             string
	Link              string
	Description       string
	Author            string
	PubDate           string
	RequiresAttention bool
	RelatedPackages   []string
}

// Info is the detail projection of an Item for the reading pane
type Info struct {
	Title           string
	Author          string
	Date            string
	Link            string
	Content         []string
	RelatedPackages []string
}

// ToInfo converts an item for the reading pane
func (it Item) ToInfo() Info {
	return Info{
		Title:           it.Title,
		Author:          it.Author,
		Date:            it.PubDate,
		Link:            it.Link,
		Content:         strings.Split(it.Description, "\n"),
		RelatedPackages: it.RelatedPackages,
	}
}

// Fetch downloads and parses the news feed. Each item is matched against
// the installed package names passed in; the caller re-matches later if the
// installed set arrives after the feed does.
func Fetch(installedNames []string) ([]Item, error) {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 10 * time.Second}

	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetching news feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item := Item{
			Title:       entry.Title,
			Link:        entry.Link,
			Description: StripHTML(entry.Description),
		}
		if ext, ok := entry.Extensions["dc"]["creator"]; ok && len(ext) > 0 {
			item.Author = ext[0].Value
		} else if entry.Author != nil {
			item.Author = entry.Author.Name
		}
		if entry.PublishedParsed != nil {
			item.PubDate = entry.PublishedParsed.Format("Jan 2, 2006")
		} else {
			item.PubDate = entry.Published
		}

		fullText := item.Title + " " + item.Description
		item.RequiresAttention = RequiresAttention(fullText)
		item.RelatedPackages = FindRelatedPackages(fullText, installedNames)
		items = append(items, item)
	}
	return items, nil
}

// RequiresAttention reports whether the text mentions any keyword that
// historically marks news requiring manual steps.
func RequiresAttention(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range attentionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FindRelatedPackages returns the installed packages mentioned in the text.
// A package matches on its full name or on any '-'-separated base prefix
// (news about "grub" concerns an installed "grub-btrfs"), always at word
// boundaries so "mesa" never matches inside "gamescope". Names shorter than
// three characters are skipped; they match everywhere.
func FindRelatedPackages(text string, installedNames []string) []string {
	lower := strings.ToLower(text)

	var related []string
	for _, name := range installedNames {
		if len(name) < 3 {
			continue
		}
		nameLower := strings.ToLower(name)
		if wordInText(lower, nameLower) {
			related = append(related, name)
			continue
		}
		parts := strings.Split(nameLower, "-")
		for i := 1; i < len(parts); i++ {
			base := strings.Join(parts[:i], "-")
			if len(base) >= 3 && wordInText(lower, base) {
				related = append(related, name)
				break
			}
		}
	}
	return related
}

// wordInText reports whether word occurs in text at a word boundary.
// A trailing '-' also counts as part of the word so that matching "grub"
// inside "grub-btrfs" text is rejected for the *text* side but the prefix
// rule above still applies for package names.
func wordInText(text, word string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start

		beforeOK := i == 0 || !isWordByte(text[i-1])
		end := i + len(word)
		afterOK := end >= len(text) || (!isWordByte(text[end]) && text[end] != '-')

		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

var blockTags = strings.NewReplacer(
	"<p>", "\n", "</p>", "\n",
	"<br>", "\n", "<br/>", "\n", "<br />", "\n",
	"<li>", "\n- ", "</li>", "",
	"<ul>", "\n", "</ul>", "\n",
	"<ol>", "\n", "</ol>", "\n",
	"<pre>", "\n", "</pre>", "\n",
)

var stripPolicy = bluemonday.StrictPolicy()

// StripHTML converts feed HTML to plain text: block elements become line
// breaks, every other tag is dropped, entities are decoded, and blank lines
// are collapsed.
func StripHTML(input string) string {
	text := blockTags.Replace(input)
	text = stripPolicy.Sanitize(text)
	text = html.UnescapeString(text)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// ShortDate shortens "Jan 2, 2006" to "Jan 2" for list rows
func ShortDate(date string) string {
	if i := strings.Index(date, ","); i >= 0 {
		return date[:i]
	}
	return date
}
