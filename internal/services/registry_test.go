package services

import (
	"errors"
	"sync"
	"testing"

	"easybudget/internal/database"
	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
	"easybudget/internal/testutil"

	"gorm.io/gorm"
)

// newTestRegistry returns a registry over a fresh database and a user to act as.
func newTestRegistry(t *testing.T) (*Registry, *gorm.DB, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db)
	return NewRegistry(database.NewBudgetRepository(db)), db, user.ID
}

type mockBudgetStore struct {
	LoadFn func(userID string) (models.Snapshot, error)
	SaveFn func(snap models.Snapshot) error

	mu    sync.Mutex
	loads int
	saves int
}

var _ BudgetStore = (*mockBudgetStore)(nil)

func (m *mockBudgetStore) Load(userID string) (models.Snapshot, error) {
	m.mu.Lock()
	m.loads++
	m.mu.Unlock()
	if m.LoadFn != nil {
		return m.LoadFn(userID)
	}
	return models.Snapshot{}, apperrors.ErrNotFound
}

func (m *mockBudgetStore) Save(snap models.Snapshot) error {
	m.mu.Lock()
	m.saves++
	m.mu.Unlock()
	if m.SaveFn != nil {
		return m.SaveFn(snap)
	}
	return nil
}

func TestRegistryGet(t *testing.T) {
	t.Run("seeds_and_saves_new_budget", func(t *testing.T) {
		registry, db, userID := newTestRegistry(t)

		state, err := registry.Get(userID)
		testutil.AssertNoError(t, err)

		snap := state.Snapshot()
		if snap.Budget.ID == "" {
			t.Fatal("expected a budget ID")
		}
		if len(snap.Categories) != 2 {
			t.Fatalf("expected 2 default categories, got %d", len(snap.Categories))
		}

		stored, err := database.NewBudgetRepository(db).Load(userID)
		testutil.AssertNoError(t, err)
		if stored.Budget.ID != snap.Budget.ID {
			t.Errorf("expected stored budget %s, got %s", snap.Budget.ID, stored.Budget.ID)
		}
		if len(stored.Categories) != 2 {
			t.Errorf("expected 2 stored categories, got %d", len(stored.Categories))
		}
	})

	t.Run("loads_existing_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		existing := testutil.CreateTestBudget(t, db, user.ID, "4000")

		registry := NewRegistry(database.NewBudgetRepository(db))
		state, err := registry.Get(user.ID)
		testutil.AssertNoError(t, err)

		snap := state.Snapshot()
		if snap.Budget.ID != existing.Budget.ID {
			t.Errorf("expected budget %s, got %s", existing.Budget.ID, snap.Budget.ID)
		}
		if !snap.Budget.GrossIncome.Equal(testutil.Dec("4000")) {
			t.Errorf("expected gross income 4000, got %s", snap.Budget.GrossIncome)
		}
	})

	t.Run("reuses_loaded_state", func(t *testing.T) {
		store := &mockBudgetStore{}
		registry := NewRegistry(store)

		first, err := registry.Get("user-1")
		testutil.AssertNoError(t, err)
		second, err := registry.Get("user-1")
		testutil.AssertNoError(t, err)

		if first != second {
			t.Error("expected the same state for repeated calls")
		}
		if store.loads != 1 {
			t.Errorf("expected 1 load, got %d", store.loads)
		}
	})

	t.Run("changes_survive_a_new_registry", func(t *testing.T) {
		registry, db, userID := newTestRegistry(t)

		state, err := registry.Get(userID)
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, state.SetGrossIncome(testutil.Dec("2500.50")))

		reloaded, err := NewRegistry(database.NewBudgetRepository(db)).Get(userID)
		testutil.AssertNoError(t, err)
		if got := reloaded.Snapshot().Budget.GrossIncome; !got.Equal(testutil.Dec("2500.50")) {
			t.Errorf("expected gross income 2500.50, got %s", got)
		}
	})

	t.Run("empty_user", func(t *testing.T) {
		registry := NewRegistry(&mockBudgetStore{})
		_, err := registry.Get("")
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})

	t.Run("load_failure", func(t *testing.T) {
		store := &mockBudgetStore{
			LoadFn: func(string) (models.Snapshot, error) {
				return models.Snapshot{}, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("connection refused"))
			},
		}
		_, err := NewRegistry(store).Get("user-1")
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	})

	t.Run("seed_save_failure_is_not_cached", func(t *testing.T) {
		store := &mockBudgetStore{
			SaveFn: func(models.Snapshot) error {
				return apperrors.Wrap(apperrors.ErrInternalServer, errors.New("disk full"))
			},
		}
		registry := NewRegistry(store)

		_, err := registry.Get("user-1")
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")

		store.SaveFn = nil
		_, err = registry.Get("user-1")
		testutil.AssertNoError(t, err)
		if store.loads != 2 {
			t.Errorf("expected a second load after the failed seed, got %d loads", store.loads)
		}
	})

	t.Run("failed_save_rolls_back_transition", func(t *testing.T) {
		store := &mockBudgetStore{}
		registry := NewRegistry(store)

		state, err := registry.Get("user-1")
		testutil.AssertNoError(t, err)

		store.SaveFn = func(models.Snapshot) error { return errors.New("write failed") }
		err = state.SetGrossIncome(testutil.Dec("1000"))
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")

		if !state.Snapshot().Budget.GrossIncome.IsZero() {
			t.Errorf("expected gross income to stay 0, got %s", state.Snapshot().Budget.GrossIncome)
		}
	})
}
