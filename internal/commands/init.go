package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/config"
	"github.com/bookkeep-dev/bookkeep/internal/gitops"
	"github.com/bookkeep-dev/bookkeep/internal/ledger"
	"github.com/bookkeep-dev/bookkeep/internal/logging"
	"github.com/bookkeep-dev/bookkeep/internal/store"
)

func newInitCommand() *cobra.Command {
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new bookkeeping project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, noGit)
		},
	}

	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git initialization")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, noGit bool) error {
	cfg := config.Default()
	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	// Create directory structure.
	for _, d := range []string{cfg.Data.Dir, "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write bookkeep.yaml.
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the data store with the default chart of accounts and an empty
	// transaction log.
	kv := store.NewFileKV(filepath.Join(dir, cfg.Data.Dir))
	if err := store.SaveAccounts(kv, ledger.DefaultChart()); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	if err := store.SaveTransactions(kv, nil); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}

	// Write .gitignore.
	gitignore := "exports/\n*.csv\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	log.WithField("dir", dir).Info("seeded chart of accounts")

	if noGit || !cfg.Git.AutoCommit {
		cmd.Printf("Initialized bookkeeping project at %s\n", dir)
		return nil
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: seed chart of accounts", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	cmd.Printf("Initialized bookkeeping project at %s (%s)\n", dir, hash)
	return nil
}
