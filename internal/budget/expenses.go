package budget

import (
	"github.com/shopspring/decimal"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
)

// ExpenseInput is the editable part of an expense.
type ExpenseInput struct {
	Name       string
	Amount     decimal.Decimal
	CategoryID string
}

func (in ExpenseInput) validate() (string, error) {
	name, err := requireName("expense name", in.Name)
	if err != nil {
		return "", err
	}
	if err := requirePositive("amount", in.Amount); err != nil {
		return "", err
	}
	return name, nil
}

// AddExpense appends an expense to an existing category.
func (s *State) AddExpense(in ExpenseInput) (models.Expense, error) {
	name, err := in.validate()
	if err != nil {
		return models.Expense{}, err
	}

	var created models.Expense
	err = s.apply(func(next *models.Snapshot) error {
		if indexOfCategory(next.Categories, in.CategoryID) < 0 {
			return apperrors.ErrCategoryNotFound
		}
		created = models.Expense{Entry: models.NewEntry(), Name: name, Amount: in.Amount, CategoryID: in.CategoryID}
		next.Expenses = append(next.Expenses, created)
		return nil
	})
	return created, err
}

// UpdateExpense replaces the name, amount and category of an expense. It
// keeps its position in the list.
func (s *State) UpdateExpense(id string, in ExpenseInput) (models.Expense, error) {
	name, err := in.validate()
	if err != nil {
		return models.Expense{}, err
	}

	var updated models.Expense
	err = s.apply(func(next *models.Snapshot) error {
		i := indexOfExpense(next.Expenses, id)
		if i < 0 {
			return apperrors.ErrExpenseNotFound
		}
		if indexOfCategory(next.Categories, in.CategoryID) < 0 {
			return apperrors.ErrCategoryNotFound
		}
		e := &next.Expenses[i]
		e.Name = name
		e.Amount = in.Amount
		e.CategoryID = in.CategoryID
		e.Touch()
		updated = *e
		return nil
	})
	return updated, err
}

// DeleteExpense removes an expense.
func (s *State) DeleteExpense(id string) error {
	return s.apply(func(next *models.Snapshot) error {
		i := indexOfExpense(next.Expenses, id)
		if i < 0 {
			return apperrors.ErrExpenseNotFound
		}
		next.Expenses = append(next.Expenses[:i], next.Expenses[i+1:]...)
		return nil
	})
}

func indexOfExpense(expenses []models.Expense, id string) int {
	for i, e := range expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}
