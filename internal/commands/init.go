package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shiftlog-dev/shiftlog/internal/blob"
	"github.com/shiftlog-dev/shiftlog/internal/config"
	"github.com/shiftlog-dev/shiftlog/internal/entries"
	"github.com/shiftlog-dev/shiftlog/internal/gitops"
	"github.com/shiftlog-dev/shiftlog/internal/log"
)

type initOptions struct {
	backend string
	order   string
	noGit   bool
}

func newInitCommand(dataDir func() string) *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a shiftlog data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := dataDir()
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.Context(), cmd.OutOrStdout(), absDir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.backend, "backend", string(blob.BackendFile), "storage backend: file or sqlite")
	cmd.Flags().StringVar(&opts.order, "order", "", "month group order: first-seen or calendar")
	cmd.Flags().BoolVar(&opts.noGit, "no-git", false, "do not create a git repository")

	return cmd
}

func runInit(ctx context.Context, out io.Writer, dir string, opts initOptions) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	cfg.Storage.Backend = opts.backend
	if blob.Backend(opts.backend) == blob.BackendSQLite {
		cfg.Storage.Path = "shiftlog.db"
	}
	if opts.order != "" {
		cfg.Display.Order = opts.order
	}
	if opts.noGit {
		cfg.Git.AutoCommit = false
	}
	if blob.Backend(cfg.Storage.Backend) == blob.BackendMemory {
		return fmt.Errorf("the memory backend cannot be initialized on disk")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// Write an empty collection so the storage file exists from the start.
	b, err := blob.Open(ctx, cfg.BlobConfig(dir))
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	persistErr := entries.New(b, log.Discard()).Persist(ctx)
	if err := b.Close(); err != nil && persistErr == nil {
		persistErr = fmt.Errorf("closing storage: %w", err)
	}
	if persistErr != nil {
		return persistErr
	}

	if !cfg.Git.AutoCommit {
		fmt.Fprintf(out, "Initialized shiftlog data directory at %s\n", dir)
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
	}
	hash, err := gitops.CommitAll(dir, "init: shiftlog data directory", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized shiftlog data directory at %s (%s)\n", dir, hash)
	return nil
}
