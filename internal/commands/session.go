package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shiftlog-dev/shiftlog/internal/blob"
	"github.com/shiftlog-dev/shiftlog/internal/config"
	"github.com/shiftlog-dev/shiftlog/internal/entries"
	"github.com/shiftlog-dev/shiftlog/internal/gitops"
	"github.com/shiftlog-dev/shiftlog/internal/log"
	"github.com/shiftlog-dev/shiftlog/internal/report"
	"github.com/shiftlog-dev/shiftlog/internal/tracker"
)

// session is everything one command invocation needs.
type session struct {
	dir     string
	cfg     *config.Config
	logger  *log.Logger
	blob    blob.Store
	tracker *tracker.Service
}

// openSession loads config and entries from dir. A directory without
// shiftlog.yaml runs on defaults.
func openSession(ctx context.Context, dir string, stderr io.Writer) (*session, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadOrDefault(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := log.ParseLevel(cfg.Log.Level)
	logger := log.New(log.Config{Level: level, Component: "shiftlog", Output: stderr})
	log.SetDefault(logger)

	b, err := blob.Open(ctx, cfg.BlobConfig(absDir))
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	store, err := entries.Load(ctx, b, logger.WithComponent("entries"))
	if err != nil {
		b.Close()
		return nil, err
	}

	opts := tracker.Options{
		Order:  report.Order(cfg.Display.Order),
		Logger: logger.WithComponent("tracker"),
	}
	if cfg.Git.AutoCommit && gitops.IsRepo(absDir) {
		opts.Committer = gitops.Committer{
			Dir:         absDir,
			AuthorName:  cfg.Git.AuthorName,
			AuthorEmail: cfg.Git.AuthorEmail,
		}
	}

	return &session{
		dir:     absDir,
		cfg:     cfg,
		logger:  logger,
		blob:    b,
		tracker: tracker.New(store, opts),
	}, nil
}

func (s *session) Close() error {
	return s.blob.Close()
}

// withSession opens a session, runs fn, and closes the session.
func withSession(ctx context.Context, dir string, stderr io.Writer, fn func(*session) error) error {
	s, err := openSession(ctx, dir, stderr)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// promptConfirm returns a ConfirmFunc that asks on out and reads y/N from in.
// assumeYes skips the question.
func promptConfirm(in io.Reader, out io.Writer, assumeYes bool) tracker.ConfirmFunc {
	if assumeYes {
		return func(string) bool { return true }
	}
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}
