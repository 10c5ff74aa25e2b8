package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setReportScope(t *testing.T, on string) {
	t.Helper()
	oldOn := reportOn
	reportOn = on
	t.Cleanup(func() { reportOn = oldOn })
}

func TestRunReportFiles(t *testing.T) {
	writeFixture(t, fixtureDocument, snapshotFor)
	setReportScope(t, "files")

	require.NoError(t, runReport(nil))
}

func TestRunReportFoldersDefaultsToProjectRoot(t *testing.T) {
	docPath, _ := writeFixture(t, fixtureDocument, snapshotFor)
	t.Chdir(filepath.Dir(docPath))
	setReportScope(t, "folders")

	require.NoError(t, runReport(nil))
}

func TestRunReportFolders(t *testing.T) {
	docPath, _ := writeFixture(t, fixtureDocument, snapshotFor)
	setReportScope(t, "folders")

	require.NoError(t, runReport([]string{filepath.Dir(docPath)}))
}

func TestRunReportBadScope(t *testing.T) {
	writeFixture(t, fixtureDocument, snapshotFor)
	setReportScope(t, "everything")

	assert.Error(t, runReport(nil))
}

func TestRunReportMissingSnapshot(t *testing.T) {
	writeFixture(t, fixtureDocument, snapshotFor)
	oldSnapshot := snapshotPath
	snapshotPath = filepath.Join(os.TempDir(), "definitely-absent.yaml")
	t.Cleanup(func() { snapshotPath = oldSnapshot })
	setReportScope(t, "files")

	assert.Error(t, runReport(nil))
}
