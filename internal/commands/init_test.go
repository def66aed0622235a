package commands_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep-dev/bookkeep/internal/commands"
	"github.com/bookkeep-dev/bookkeep/internal/ledger"
	"github.com/bookkeep-dev/bookkeep/internal/store"
)

func runBookkeep(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runBookkeep(t, "init", dir, "--no-git")
	require.NoError(t, err)

	for _, d := range []string{"data", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runBookkeep(t, "init", dir, "--no-git")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "bookkeep.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "dir: data")
	assert.Contains(t, contents, "level: info")
}

func TestInit_SeedsChart(t *testing.T) {
	dir := t.TempDir()
	_, err := runBookkeep(t, "init", dir, "--no-git")
	require.NoError(t, err)

	kv := store.NewFileKV(filepath.Join(dir, "data"))

	accts, err := store.LoadAccounts(kv)
	require.NoError(t, err)
	assert.Len(t, accts, len(ledger.DefaultChart()))
	for _, a := range accts {
		assert.True(t, a.Balance.IsZero(), "account %s should start at zero", a.Code)
	}

	txns, err := store.LoadTransactions(kv)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestInit_GitRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	_, err := runBookkeep(t, "init", dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init:")
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runBookkeep(t, "init", dir, "--no-git")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "exports/")
}

func TestRoot_Version(t *testing.T) {
	out, err := runBookkeep(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
