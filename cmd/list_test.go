package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setListFlags(t *testing.T, pick int, sel string) {
	t.Helper()
	oldPick, oldSel := listPick, listSelection
	listPick, listSelection = pick, sel
	t.Cleanup(func() {
		listPick, listSelection = oldPick, oldSel
	})
}

func TestRunListRendersRows(t *testing.T) {
	writeFixture(t, fixtureDocument, snapshotFor)
	setListFlags(t, -1, "")

	require.NoError(t, runList(false))
}

func TestRunListPick(t *testing.T) {
	writeFixture(t, fixtureDocument, snapshotFor)
	setListFlags(t, 1, "")

	require.NoError(t, runList(true))
}

func TestRunListPickCancelled(t *testing.T) {
	writeFixture(t, fixtureDocument, snapshotFor)
	setListFlags(t, -1, "")

	require.NoError(t, runList(true))
}

func TestRunListPickOutOfRange(t *testing.T) {
	writeFixture(t, fixtureDocument, snapshotFor)
	setListFlags(t, 99, "")

	assert.Error(t, runList(true))
}

func TestRunListNoDiagnostics(t *testing.T) {
	writeFixture(t, fixtureDocument, func(string) string {
		return "version: 1\ndocuments: []\n"
	})
	setListFlags(t, -1, "")

	require.NoError(t, runList(false))
}
