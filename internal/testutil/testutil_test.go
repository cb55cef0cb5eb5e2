package testutil_test

import (
	"testing"

	"easybudget/internal/errors"
	"easybudget/internal/models"
	"easybudget/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	for _, table := range []string{"users", "budgets", "categories", "expenses", "savings_buckets", "debts", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	snap := testutil.CreateTestBudget(t, db, user.ID, "3200")
	if snap.Budget.ID == "" {
		t.Fatal("budget should have an ID")
	}
	if !snap.Budget.GrossIncome.Equal(testutil.Dec("3200")) {
		t.Errorf("expected gross income 3200, got %s", snap.Budget.GrossIncome)
	}

	var categories []models.Category
	if err := db.Where("budget_id = ?", snap.Budget.ID).Order("position").Find(&categories).Error; err != nil {
		t.Fatalf("failed to load categories: %v", err)
	}
	if len(categories) != 2 || !categories[0].IsNonDiscretionary() {
		t.Errorf("expected the default categories, got %+v", categories)
	}
}

func TestSnapshotBuilders(t *testing.T) {
	snap := testutil.NewSnapshot("1000")
	c := testutil.AddCategory(&snap, "Housing")
	testutil.AddExpense(&snap, c.ID, "Rent", "700")
	testutil.AddSavingsBucket(&snap, "Trip", "500", "0", "50")
	testutil.AddDebt(&snap, "Card", "300", "25")

	if len(snap.Categories) != 1 || len(snap.Expenses) != 1 || len(snap.SavingsBuckets) != 1 || len(snap.Debts) != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if snap.Expenses[0].CategoryID != c.ID {
		t.Errorf("expected expense in %s, got %s", c.ID, snap.Expenses[0].CategoryID)
	}

	debts := testutil.NewDebts([2]string{"100", "10"}, [2]string{"200", "20"})
	if debts[1].Name != "Debt 2" || !debts[1].Balance.Equal(testutil.Dec("200")) {
		t.Errorf("unexpected debt %+v", debts[1])
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrDebtNotFound, "custom message")
	testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
