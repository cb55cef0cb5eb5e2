// Package budget holds the mutable budget of one user.
//
// A State owns the snapshot and every rule about changing it. Each exported
// mutation is one transition: the snapshot is cloned, the clone is changed and
// validated, the change hook (persistence) sees the result, and only then is
// the clone published. A failed transition leaves the State as it was.
package budget

import (
	"errors"
	"sync"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
)

// ChangeFunc receives the snapshot a transition is about to publish. A
// non-nil error aborts the transition.
type ChangeFunc func(snap models.Snapshot) error

// Option configures a State.
type Option func(*State)

// WithOnChange sets the hook called before every transition is published.
func WithOnChange(fn ChangeFunc) Option {
	return func(s *State) {
		s.onChange = fn
	}
}

// State is safe for concurrent use.
type State struct {
	mu       sync.RWMutex
	snap     models.Snapshot
	onChange ChangeFunc
}

// New returns an empty budget with the default categories.
func New(opts ...Option) *State {
	return FromSnapshot(models.Snapshot{}, opts...)
}

// FromSnapshot wraps a stored snapshot. When it has no categories the two
// default categories are seeded; the hook is not called for the seeding.
func FromSnapshot(snap models.Snapshot, opts ...Option) *State {
	s := &State{snap: snap.Clone()}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.snap.Categories) == 0 {
		s.snap.Categories = DefaultCategories()
	}
	return s
}

// DefaultCategories returns fresh copies of the seeded categories.
func DefaultCategories() []models.Category {
	return []models.Category{
		{Entry: models.NewEntry(), Name: models.NonDiscretionaryCategoryName, ColorTag: models.NonDiscretionaryCategoryColor},
		{Entry: models.NewEntry(), Name: models.DiscretionaryCategoryName, ColorTag: models.DiscretionaryCategoryColor},
	}
}

// Snapshot returns a copy of the current budget that later transitions do
// not affect.
func (s *State) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// apply runs one transition. mutate works on a private clone; the clone is
// published only if mutate and the change hook both succeed.
func (s *State) apply(mutate func(next *models.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	if err := mutate(&next); err != nil {
		return err
	}

	if s.onChange != nil {
		if err := s.onChange(next.Clone()); err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				return appErr
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	s.snap = next
	return nil
}
