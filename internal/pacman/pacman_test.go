package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdates(t *testing.T) {
	output := "firefox 115.0-1 -> 116.0-1\nlinux 6.4.10-1 -> 6.4.12-1\n"
	packages := parseUpdates(output, SourcePacman)

	require.Len(t, packages, 2)
	assert.Equal(t, "firefox", packages[0].Name)
	assert.Equal(t, "115.0-1", packages[0].OldVersion)
	assert.Equal(t, "116.0-1", packages[0].NewVersion)
	assert.Equal(t, SourcePacman, packages[0].Source)
}

func TestParseUpdatesSkipsGarbage(t *testing.T) {
	output := "warning: database out of date\nfirefox 115.0-1 -> 116.0-1\nshort -> line\n"
	packages := parseUpdates(output, SourceAur)

	require.Len(t, packages, 1)
	assert.Equal(t, "firefox", packages[0].Name)
	assert.Equal(t, SourceAur, packages[0].Source)
}

func TestParseRepoSearch(t *testing.T) {
	output := `extra/firefox 116.0-1 [installed]
    Fast, Private & Safe Web Browser
core/linux 6.4.12-1
    The Linux kernel and modules
`
	results := parseRepoSearch(output)

	require.Len(t, results, 2)
	assert.Equal(t, "firefox", results[0].Name)
	assert.Equal(t, "extra", results[0].Repository)
	assert.Equal(t, "116.0-1", results[0].Version)
	assert.True(t, results[0].Installed)
	assert.Equal(t, "Fast, Private & Safe Web Browser", results[0].Description)

	assert.Equal(t, "linux", results[1].Name)
	assert.False(t, results[1].Installed)
}

func TestParseInfoOutput(t *testing.T) {
	output := `Name            : ripgrep
Version         : 14.1.0-1
Description     : A search tool that combines the usability of ag with the raw speed of grep
URL             : https://github.com/BurntSushi/ripgrep
Installed Size  : 6.19 MiB
Install Date    : Mon 01 Jul 2024
Install Reason  : Explicitly installed
Build Date      : Sat 13 Jan 2024
`
	info := parseInfoOutput(output, true)

	require.NotNil(t, info)
	assert.Equal(t, "ripgrep", info.Name)
	assert.Equal(t, "14.1.0-1", info.Version)
	assert.Equal(t, "https://github.com/BurntSushi/ripgrep", info.URL)
	assert.Equal(t, "6.19 MiB", info.Size)
	assert.Equal(t, "Explicitly installed", info.InstallReason)
}

func TestParseInfoOutputDependents(t *testing.T) {
	output := `Name            : glibc
Version         : 2.39-1
Required By     : bash coreutils
Optional For    : None
`
	info := parseInfoOutput(output, true)

	require.NotNil(t, info)
	assert.Equal(t, []string{"bash", "coreutils"}, info.RequiredBy)
	assert.Nil(t, info.OptionalFor)
}

func TestParseInfoOutputEmpty(t *testing.T) {
	assert.Nil(t, parseInfoOutput("error: package not found\n", true))
}

func TestFilterItems(t *testing.T) {
	items := []Package{
		{Name: "firefox"},
		{Name: "linux"},
		{Name: "linux-firmware"},
	}

	all := FilterItems(items, "")
	require.Len(t, all, 3)
	assert.Equal(t, 0, all[0].Index)

	filtered := FilterItems(items, "LINUX")
	require.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].Index)
	assert.Equal(t, 2, filtered[1].Index)
	assert.Equal(t, "linux-firmware", filtered[1].Item.Name)

	assert.Empty(t, FilterItems(items, "zsh"))
}
