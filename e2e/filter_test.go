//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterBar(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Packages"), "Should open on the Updates tab")

	// Enter filter mode and type a query
	tf.SendKeys("f")
	require.True(t, tf.SeePlain("Filter:"), "Filter bar should appear")

	tf.SendKeys("zsh")
	require.True(t, tf.SeePlain("Filter: zsh"), "Typed text should land in the filter")

	// Esc leaves filter mode and clears the text
	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlain("No updates available"), "Empty state should return once the filter clears")

	tf.Quit()
}

func TestSearchQueryEcho(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")

	// Walk to the Search tab
	for i := 0; i < 4; i++ {
		tf.NextTab()
	}
	require.True(t, tf.SeePlain("Type to search packages..."), "Search tab should prompt for input")

	tf.SendKeys("ripgrep")
	require.True(t, tf.SeePlain("Search: ripgrep"), "Query should echo in the search bar")

	// Esc clears the query before quitting
	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlain("Type to search packages..."), "Esc should clear the query")

	tf.Quit()
}
