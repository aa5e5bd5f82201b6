// Package tracker runs user actions against the entry store. Each action is
// one complete sequence: mutate, persist, commit, and hand back fresh state.
package tracker

import (
	"context"
	"fmt"

	"github.com/shiftlog-dev/shiftlog/internal/calendar"
	"github.com/shiftlog-dev/shiftlog/internal/entries"
	"github.com/shiftlog-dev/shiftlog/internal/log"
	"github.com/shiftlog-dev/shiftlog/internal/model"
	"github.com/shiftlog-dev/shiftlog/internal/report"
)

// Mode says whether a form submission creates an entry or edits one.
type Mode struct {
	editID string
}

// Creating is the mode for a new entry.
func Creating() Mode { return Mode{} }

// Editing is the mode for replacing the entry with the given ID.
func Editing(id string) Mode { return Mode{editID: id} }

// EditID returns the ID being edited and whether the mode is Editing.
func (m Mode) EditID() (string, bool) {
	return m.editID, m.editID != ""
}

// ConfirmFunc asks the user a yes/no question before a destructive action.
type ConfirmFunc func(prompt string) bool

// Committer records the data directory after a change. gitops.Committer satisfies it.
type Committer interface {
	Commit(message string) (string, error)
}

const (
	PromptDelete = "Are you sure you want to delete this entry?"
	PromptClear  = "Are you sure you want to delete all entries?"
)

// Service owns the entry store for the duration of a process.
type Service struct {
	store     *entries.Store
	order     report.Order
	committer Committer
	logger    *log.Logger
}

// Options configures a Service.
type Options struct {
	Order     report.Order
	Committer Committer // nil disables commits
	Logger    *log.Logger
}

// New wraps a loaded store.
func New(store *entries.Store, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	order := opts.Order
	if !order.IsValid() {
		order = report.OrderFirstSeen
	}
	return &Service{
		store:     store,
		order:     order,
		committer: opts.Committer,
		logger:    logger,
	}
}

// Submit creates or replaces an entry from form, then persists.
func (s *Service) Submit(ctx context.Context, mode Mode, form Form) (model.Entry, error) {
	e := BuildEntry(form)
	if e.DisplayDate == calendar.InvalidDate {
		s.logger.Warn("work date could not be parsed", "date", form.Date)
	}

	var (
		saved model.Entry
		err   error
		verb  string
	)
	if id, editing := mode.EditID(); editing {
		saved, err = s.store.Update(id, e)
		verb = "edit"
	} else {
		saved, err = s.store.Add(e)
		verb = "add"
	}
	if err != nil {
		return model.Entry{}, err
	}

	if err := s.persist(ctx, fmt.Sprintf("%s: %s %s %s-%s", verb, saved.RawDate, saved.Branch, saved.TimeIn, saved.TimeOut)); err != nil {
		return model.Entry{}, err
	}
	s.logger.Info("entry saved", "action", verb, "id", saved.ID, "month", saved.Month, "hours", saved.DecimalHours.String())
	return saved, nil
}

// Delete removes one entry after confirm approves. It reports whether anything was deleted.
func (s *Service) Delete(ctx context.Context, id string, confirm ConfirmFunc) (bool, error) {
	if _, ok := s.store.Get(id); !ok {
		return false, fmt.Errorf("%w: %s", entries.ErrNotFound, id)
	}
	if confirm != nil && !confirm(PromptDelete) {
		return false, nil
	}

	removed, err := s.store.Remove(id)
	if err != nil {
		return false, err
	}
	if err := s.persist(ctx, fmt.Sprintf("delete: %s %s", removed.RawDate, removed.Branch)); err != nil {
		return false, err
	}
	s.logger.Info("entry deleted", "id", id)
	return true, nil
}

// Clear removes every entry after confirm approves.
func (s *Service) Clear(ctx context.Context, confirm ConfirmFunc) (bool, error) {
	if confirm != nil && !confirm(PromptClear) {
		return false, nil
	}

	n := s.store.Len()
	s.store.Clear()
	if err := s.persist(ctx, fmt.Sprintf("clear: remove %d entries", n)); err != nil {
		return false, err
	}
	s.logger.Info("entries cleared", "count", n)
	return true, nil
}

// Import appends one entry per form and persists once.
func (s *Service) Import(ctx context.Context, forms []Form, source string) ([]model.Entry, error) {
	added := make([]model.Entry, 0, len(forms))
	for _, f := range forms {
		e, err := s.store.Add(BuildEntry(f))
		if err != nil {
			return nil, err
		}
		added = append(added, e)
	}
	if len(added) == 0 {
		return added, nil
	}
	if err := s.persist(ctx, fmt.Sprintf("import: %d entries from %s", len(added), source)); err != nil {
		return nil, err
	}
	s.logger.Info("entries imported", "count", len(added), "source", source)
	return added, nil
}

// View aggregates the current entries under a month filter.
func (s *Service) View(filter string) (report.Report, error) {
	return report.Build(s.store.All(), filter, s.order)
}

// Months returns the distinct month keys for a filter control.
func (s *Service) Months() []string {
	return report.MonthKeys(s.store.All())
}

// Entries returns every entry in display order.
func (s *Service) Entries() []model.Entry {
	return s.store.All()
}

// Get returns one entry.
func (s *Service) Get(id string) (model.Entry, bool) {
	return s.store.Get(id)
}

func (s *Service) persist(ctx context.Context, message string) error {
	if err := s.store.Persist(ctx); err != nil {
		return err
	}
	if s.committer == nil {
		return nil
	}
	hash, err := s.committer.Commit(message)
	if err != nil {
		s.logger.Warn("auto-commit failed", "error", err)
		return nil
	}
	s.logger.Debug("committed", "hash", hash, "message", message)
	return nil
}
