package testutil

import (
	"fmt"

	"github.com/shopspring/decimal"

	"easybudget/internal/models"
)

// Dec parses a decimal literal and panics on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NewSnapshot returns an empty budget snapshot with the given gross income.
// It has no categories, so budget.FromSnapshot will seed the defaults.
func NewSnapshot(grossIncome string) models.Snapshot {
	return models.Snapshot{
		Budget: models.Budget{GrossIncome: Dec(grossIncome)},
	}
}

// AddCategory appends a category with the given name and returns it.
func AddCategory(snap *models.Snapshot, name string) models.Category {
	c := models.Category{Entry: models.NewEntry(), Name: name, ColorTag: "#336699"}
	snap.Categories = append(snap.Categories, c)
	return c
}

// AddExpense appends an expense in categoryID and returns it.
func AddExpense(snap *models.Snapshot, categoryID, name, amount string) models.Expense {
	e := models.Expense{Entry: models.NewEntry(), Name: name, Amount: Dec(amount), CategoryID: categoryID}
	snap.Expenses = append(snap.Expenses, e)
	return e
}

// AddSavingsBucket appends a savings bucket and returns it.
func AddSavingsBucket(snap *models.Snapshot, name, goal, balance, deposit string) models.SavingsBucket {
	b := NewSavingsBucket(name, goal, balance, deposit)
	snap.SavingsBuckets = append(snap.SavingsBuckets, b)
	return b
}

// AddDebt appends a debt with a zero interest rate and returns it.
func AddDebt(snap *models.Snapshot, name, balance, minimumPayment string) models.Debt {
	d := NewDebt(name, balance, minimumPayment)
	snap.Debts = append(snap.Debts, d)
	return d
}

// NewSavingsBucket builds a savings bucket value.
func NewSavingsBucket(name, goal, balance, deposit string) models.SavingsBucket {
	return models.SavingsBucket{
		Entry:               models.NewEntry(),
		Name:                name,
		GoalAmount:          Dec(goal),
		CurrentBalance:      Dec(balance),
		DepositPerPayPeriod: Dec(deposit),
	}
}

// NewDebt builds a debt value with a zero interest rate.
func NewDebt(name, balance, minimumPayment string) models.Debt {
	return models.Debt{
		Entry:          models.NewEntry(),
		Name:           name,
		Balance:        Dec(balance),
		InterestRate:   decimal.Zero,
		MinimumPayment: Dec(minimumPayment),
	}
}

// NewDebts builds debts named "Debt 1", "Debt 2", ... from balance/minimum
// pairs.
func NewDebts(pairs ...[2]string) []models.Debt {
	debts := make([]models.Debt, 0, len(pairs))
	for i, p := range pairs {
		debts = append(debts, NewDebt(fmt.Sprintf("Debt %d", i+1), p[0], p[1]))
	}
	return debts
}
