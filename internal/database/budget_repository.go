package database

import (
	"errors"
	"fmt"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"

	"gorm.io/gorm"
)

// BudgetRepository loads and stores whole budget snapshots.
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a repository over db.
func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Load returns the stored budget of userID with every list in position
// order. It fails with ErrNotFound when the user has no budget yet.
func (r *BudgetRepository) Load(userID string) (models.Snapshot, error) {
	var snap models.Snapshot
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&snap.Budget).Error; err != nil {
			return err
		}
		id := snap.Budget.ID
		if err := loadRows(tx, id, &snap.Categories); err != nil {
			return err
		}
		if err := loadRows(tx, id, &snap.Expenses); err != nil {
			return err
		}
		if err := loadRows(tx, id, &snap.SavingsBuckets); err != nil {
			return err
		}
		return loadRows(tx, id, &snap.Debts)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Snapshot{}, apperrors.ErrNotFound
	}
	if err != nil {
		return models.Snapshot{}, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("load budget: %w", err))
	}
	return snap, nil
}

// Save writes snap as the complete budget of snap.Budget.UserID. Rows that
// are no longer in snap are removed. snap.Budget.ID must be set.
func (r *BudgetRepository) Save(snap models.Snapshot) error {
	if snap.Budget.ID == "" || snap.Budget.UserID == "" {
		return apperrors.WithMessage(apperrors.ErrInternalServer, "budget snapshot has no identity")
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&snap.Budget).Error; err != nil {
			return err
		}
		id := snap.Budget.ID
		if err := replaceRows(tx, id, snap.Categories); err != nil {
			return err
		}
		if err := replaceRows(tx, id, snap.Expenses); err != nil {
			return err
		}
		if err := replaceRows(tx, id, snap.SavingsBuckets); err != nil {
			return err
		}
		return replaceRows(tx, id, snap.Debts)
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("save budget: %w", err))
	}
	return nil
}

func loadRows[T any](tx *gorm.DB, budgetID string, dest *[]T) error {
	if err := tx.Where("budget_id = ?", budgetID).Order("position").Find(dest).Error; err != nil {
		return err
	}
	if *dest == nil {
		*dest = []T{}
	}
	return nil
}

// replaceRows deletes every row of type T owned by budgetID and inserts rows
// in their slice order.
func replaceRows[T any, PT interface {
	*T
	Assign(budgetID string, position int)
}](tx *gorm.DB, budgetID string, rows []T) error {
	if err := tx.Where("budget_id = ?", budgetID).Delete(new(T)).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	out := make([]T, len(rows))
	copy(out, rows)
	for i := range out {
		PT(&out[i]).Assign(budgetID, i)
	}
	return tx.Create(&out).Error
}
