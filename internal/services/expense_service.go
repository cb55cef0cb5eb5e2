package services

import (
	"easybudget/internal/budget"
	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
	"easybudget/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	registry *Registry
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(registry *Registry) ExpenseServicer {
	return &expenseService{registry: registry}
}

// CreateExpense adds an expense to the user's budget.
func (s *expenseService) CreateExpense(userID string, in budget.ExpenseInput) (*models.Expense, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	expense, err := state.AddExpense(in)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// GetUserExpenses pages the expenses in insertion order, optionally only
// those of one category.
func (s *expenseService) GetUserExpenses(userID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}

	expenses := state.Snapshot().Expenses
	if filter.CategoryID != nil {
		filtered := make([]models.Expense, 0, len(expenses))
		for _, e := range expenses {
			if e.CategoryID == *filter.CategoryID {
				filtered = append(filtered, e)
			}
		}
		expenses = filtered
	}

	resp := pagination.Slice(expenses, page)
	return &resp, nil
}

// GetExpenseByID returns one expense.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	for _, e := range state.Snapshot().Expenses {
		if e.ID == expenseID {
			return &e, nil
		}
	}
	return nil, apperrors.ErrExpenseNotFound
}

// UpdateExpense replaces the name, amount and category of an expense.
func (s *expenseService) UpdateExpense(userID, expenseID string, in budget.ExpenseInput) (*models.Expense, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	expense, err := state.UpdateExpense(expenseID, in)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	state, err := s.registry.Get(userID)
	if err != nil {
		return err
	}
	return state.DeleteExpense(expenseID)
}
