package services

import (
	"errors"
	"sync"

	"easybudget/internal/budget"
	apperrors "easybudget/internal/errors"
	"easybudget/internal/logger"
	"easybudget/internal/models"
	"easybudget/internal/uuid"
)

// BudgetStore loads and saves whole budget snapshots.
// *database.BudgetRepository implements it.
type BudgetStore interface {
	Load(userID string) (models.Snapshot, error)
	Save(snap models.Snapshot) error
}

// Registry hands out the budget.State of each user. States are loaded on
// first use and every transition is saved through the store before it is
// published.
type Registry struct {
	store BudgetStore

	mu     sync.Mutex
	states map[string]*budget.State
}

// NewRegistry creates a Registry backed by store.
func NewRegistry(store BudgetStore) *Registry {
	return &Registry{store: store, states: make(map[string]*budget.State)}
}

// Get returns the budget of userID, creating and saving an empty budget with
// the default categories when the user has none.
func (r *Registry) Get(userID string) (*budget.State, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if state, ok := r.states[userID]; ok {
		return state, nil
	}

	snap, err := r.store.Load(userID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		snap = models.Snapshot{Budget: models.Budget{Base: models.Base{ID: uuid.New()}, UserID: userID}}
	case err != nil:
		return nil, err
	}

	seeded := len(snap.Categories) == 0
	state := budget.FromSnapshot(snap, budget.WithOnChange(r.save))
	if seeded {
		if err := r.save(state.Snapshot()); err != nil {
			return nil, err
		}
	}

	r.states[userID] = state
	return state, nil
}

func (r *Registry) save(snap models.Snapshot) error {
	if err := r.store.Save(snap); err != nil {
		logger.Named("budget").Errorw("failed to save budget",
			"error", err,
			"user_id", snap.Budget.UserID,
			"budget_id", snap.Budget.ID,
		)
		return err
	}
	return nil
}
