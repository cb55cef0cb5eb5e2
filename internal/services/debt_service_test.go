package services

import (
	"testing"

	"easybudget/internal/budget"
	"easybudget/internal/testutil"
)

func TestDebtService(t *testing.T) {
	setup := func(t *testing.T, income string) (DebtServicer, BudgetServicer, string) {
		t.Helper()
		registry, _, userID := newTestRegistry(t)
		budgets := NewBudgetService(registry)
		_, err := budgets.SetGrossIncome(userID, testutil.Dec(income))
		testutil.AssertNoError(t, err)
		return NewDebtService(registry), budgets, userID
	}

	debt := func(name, balance, rate, minimum string) budget.DebtInput {
		return budget.DebtInput{
			Name:           name,
			Balance:        testutil.Dec(balance),
			InterestRate:   testutil.Dec(rate),
			MinimumPayment: testutil.Dec(minimum),
		}
	}

	t.Run("crud", func(t *testing.T) {
		svc, _, userID := setup(t, "3000")

		card, err := svc.CreateDebt(userID, debt("Card", "1500", "19.99", "50"))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateDebt(userID, debt("Loan", "8000", "5", "200"))
		testutil.AssertNoError(t, err)

		debts, err := svc.GetUserDebts(userID)
		testutil.AssertNoError(t, err)
		if len(debts) != 2 || debts[0].ID != card.ID {
			t.Fatalf("expected debts in insertion order, got %d", len(debts))
		}

		updated, err := svc.UpdateDebt(userID, card.ID, debt("Visa", "1200", "19.99", "60"))
		testutil.AssertNoError(t, err)
		if updated.Name != "Visa" || !updated.Balance.Equal(testutil.Dec("1200")) {
			t.Errorf("unexpected debt after update: %+v", updated)
		}

		testutil.AssertNoError(t, svc.DeleteDebt(userID, card.ID))
		testutil.AssertAppError(t, svc.DeleteDebt(userID, card.ID), "DEBT_NOT_FOUND")
	})

	t.Run("invalid_debt", func(t *testing.T) {
		svc, _, userID := setup(t, "3000")

		_, err := svc.CreateDebt(userID, debt("Card", "0", "1", "10"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateDebt(userID, debt("Card", "100", "-1", "10"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateDebt(userID, debt("Card", "100", "1", "0"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("plan_without_commit", func(t *testing.T) {
		svc, budgets, userID := setup(t, "3000")
		_, err := svc.CreateDebt(userID, debt("Loan", "10000", "4", "500"))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateDebt(userID, debt("Card", "1000", "20", "50"))
		testutil.AssertNoError(t, err)

		result, err := svc.PlanSnowball(userID, testutil.Dec("0"), false)
		testutil.AssertNoError(t, err)

		if len(result.Plans) != 2 || result.Plans[0].Debt.Name != "Card" {
			t.Fatalf("expected the smallest balance first, got %+v", result.Plans)
		}
		if result.Plans[0].MonthsToPayOff != 20 {
			t.Errorf("expected card paid off in 20 months, got %d", result.Plans[0].MonthsToPayOff)
		}
		// 10000 at 500+50 per month.
		if result.Plans[1].MonthsToPayOff != 19 {
			t.Errorf("expected loan paid off in 19 months, got %d", result.Plans[1].MonthsToPayOff)
		}
		if result.Committed {
			t.Error("expected plan not to be committed")
		}

		summary, err := budgets.GetSummary(userID)
		testutil.AssertNoError(t, err)
		if !summary.ExtraDeduction.IsZero() {
			t.Errorf("expected no deduction, got %s", summary.ExtraDeduction)
		}
	})

	t.Run("commit_deducts_remaining_income", func(t *testing.T) {
		svc, _, userID := setup(t, "3000")
		_, err := svc.CreateDebt(userID, debt("Card", "1000", "20", "50"))
		testutil.AssertNoError(t, err)

		result, err := svc.PlanSnowball(userID, testutil.Dec("150"), true)
		testutil.AssertNoError(t, err)
		if !result.Committed {
			t.Error("expected plan to be committed")
		}
		if result.Plans[0].MonthsToPayOff != 5 {
			t.Errorf("expected 5 months, got %d", result.Plans[0].MonthsToPayOff)
		}
		if !result.RemainingIncome.Equal(testutil.Dec("2850")) {
			t.Errorf("expected remaining 2850, got %s", result.RemainingIncome)
		}

		result, err = svc.PlanSnowball(userID, testutil.Dec("150"), true)
		testutil.AssertNoError(t, err)
		if !result.RemainingIncome.Equal(testutil.Dec("2700")) {
			t.Errorf("expected commits to accumulate to 2700 remaining, got %s", result.RemainingIncome)
		}
	})

	t.Run("commit_exceeding_remaining", func(t *testing.T) {
		svc, budgets, userID := setup(t, "100")
		_, err := svc.CreateDebt(userID, debt("Card", "1000", "20", "50"))
		testutil.AssertNoError(t, err)

		_, err = svc.PlanSnowball(userID, testutil.Dec("150"), true)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		summary, err := budgets.GetSummary(userID)
		testutil.AssertNoError(t, err)
		if !summary.RemainingIncome.Equal(testutil.Dec("100")) {
			t.Errorf("expected remaining income unchanged, got %s", summary.RemainingIncome)
		}
	})

	t.Run("negative_extra", func(t *testing.T) {
		svc, _, userID := setup(t, "100")
		_, err := svc.PlanSnowball(userID, testutil.Dec("-1"), false)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
