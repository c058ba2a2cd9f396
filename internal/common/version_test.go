package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreVersion(t *testing.T) {
	v, b, c := Version, Build, GitCommit
	t.Cleanup(func() { Version, Build, GitCommit = v, b, c })
}

func TestLoadVersionFile_FillsDefaults(t *testing.T) {
	restoreVersion(t)
	Version, Build, GitCommit = "dev", "unknown", "unknown"

	path := filepath.Join(t.TempDir(), ".version")
	require.NoError(t, os.WriteFile(path, []byte("# build info\nversion: 1.4.0\nbuild: 2026-10-01\ncommit: abc1234\nnoise\n"), 0o600))

	loadVersionFile(path)

	assert.Equal(t, VersionInfo{Version: "1.4.0", Build: "2026-10-01", Commit: "abc1234"}, GetVersionInfo())
	assert.Equal(t, "1.4.0 (build: 2026-10-01, commit: abc1234)", GetFullVersion())
}

func TestLoadVersionFile_LdflagsWin(t *testing.T) {
	restoreVersion(t)
	Version, Build, GitCommit = "2.0.0", "unknown", "unknown"

	path := filepath.Join(t.TempDir(), ".version")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0.0\nbuild: b1\n"), 0o600))

	loadVersionFile(path)

	assert.Equal(t, "2.0.0", GetVersion())
	assert.Equal(t, "b1", GetBuild())
	assert.Equal(t, "unknown", GetGitCommit())
}

func TestLoadVersionFile_Missing(t *testing.T) {
	restoreVersion(t)
	Version = "dev"
	loadVersionFile(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, "dev", GetVersion())
}
