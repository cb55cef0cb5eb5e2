package snowball

import (
	"testing"

	"github.com/shopspring/decimal"

	"easybudget/internal/models"
	"easybudget/internal/testutil"
)

func TestCalculate(t *testing.T) {
	t.Run("rolls_minimum_into_next_debt", func(t *testing.T) {
		debts := testutil.NewDebts([2]string{"1000", "50"}, [2]string{"500", "25"})

		plans, err := Calculate(debts, decimal.Zero)
		testutil.AssertNoError(t, err)

		if len(plans) != 2 {
			t.Fatalf("expected 2 plans, got %d", len(plans))
		}
		if plans[0].MonthsToPayOff != 20 || !plans[0].TotalPaid.Equal(testutil.Dec("500")) {
			t.Errorf("expected first plan 20 months / 500, got %d / %s", plans[0].MonthsToPayOff, plans[0].TotalPaid)
		}
		// 1000 at 50+25 per month.
		if plans[1].MonthsToPayOff != 14 || !plans[1].TotalPaid.Equal(testutil.Dec("1000")) {
			t.Errorf("expected second plan 14 months / 1000, got %d / %s", plans[1].MonthsToPayOff, plans[1].TotalPaid)
		}
		if plans[0].Debt.Name != "Debt 2" {
			t.Errorf("expected smallest balance first, got %q", plans[0].Debt.Name)
		}
	})

	t.Run("minimum_equal_to_balance", func(t *testing.T) {
		plans, err := Calculate(testutil.NewDebts([2]string{"100", "100"}), decimal.Zero)
		testutil.AssertNoError(t, err)
		if plans[0].MonthsToPayOff != 1 || !plans[0].TotalPaid.Equal(testutil.Dec("100")) {
			t.Errorf("expected 1 month / 100, got %d / %s", plans[0].MonthsToPayOff, plans[0].TotalPaid)
		}
	})

	t.Run("extra_payment_shortens_payoff", func(t *testing.T) {
		plans, err := Calculate(testutil.NewDebts([2]string{"500", "25"}), testutil.Dec("75"))
		testutil.AssertNoError(t, err)
		if plans[0].MonthsToPayOff != 5 {
			t.Errorf("expected 5 months, got %d", plans[0].MonthsToPayOff)
		}
	})

	t.Run("last_payment_is_capped_at_balance", func(t *testing.T) {
		plans, err := Calculate(testutil.NewDebts([2]string{"100.50", "25"}), decimal.Zero)
		testutil.AssertNoError(t, err)
		if plans[0].MonthsToPayOff != 5 {
			t.Errorf("expected 5 months, got %d", plans[0].MonthsToPayOff)
		}
		if !plans[0].TotalPaid.Equal(testutil.Dec("100.50")) {
			t.Errorf("expected total paid 100.50, got %s", plans[0].TotalPaid)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		plans, err := Calculate(nil, decimal.Zero)
		testutil.AssertNoError(t, err)
		if len(plans) != 0 {
			t.Errorf("expected no plans, got %d", len(plans))
		}
	})

	t.Run("negative_extra_payment", func(t *testing.T) {
		_, err := Calculate(testutil.NewDebts([2]string{"500", "25"}), testutil.Dec("-1"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_monthly_payment", func(t *testing.T) {
		_, err := Calculate(testutil.NewDebts([2]string{"500", "0"}), decimal.Zero)
		testutil.AssertAppError(t, err, "NON_CONVERGENT")
	})

	t.Run("long_payoff", func(t *testing.T) {
		plans, err := Calculate(testutil.NewDebts([2]string{"10000", "5"}), decimal.Zero)
		testutil.AssertNoError(t, err)
		if len(plans) != 1 {
			t.Fatalf("expected 1 plan, got %d", len(plans))
		}
		if plans[0].MonthsToPayOff != 2000 {
			t.Errorf("expected 2000 months, got %d", plans[0].MonthsToPayOff)
		}
		if !plans[0].TotalPaid.Equal(testutil.Dec("10000")) {
			t.Errorf("expected total paid 10000, got %s", plans[0].TotalPaid)
		}
	})

	t.Run("dust_payment", func(t *testing.T) {
		plans, err := Calculate(testutil.NewDebts([2]string{"1000000", "0.01"}), decimal.Zero)
		testutil.AssertNoError(t, err)
		if plans[0].MonthsToPayOff != 100000000 {
			t.Errorf("expected 100000000 months, got %d", plans[0].MonthsToPayOff)
		}
	})

	t.Run("partial_last_month", func(t *testing.T) {
		plans, err := Calculate(testutil.NewDebts([2]string{"1000.01", "100"}), decimal.Zero)
		testutil.AssertNoError(t, err)
		if plans[0].MonthsToPayOff != 11 {
			t.Errorf("expected 11 months, got %d", plans[0].MonthsToPayOff)
		}
	})
}

func TestCalculateOrdering(t *testing.T) {
	t.Run("non_decreasing_balances", func(t *testing.T) {
		debts := testutil.NewDebts(
			[2]string{"900", "30"},
			[2]string{"150", "15"},
			[2]string{"4000", "120"},
			[2]string{"600", "20"},
		)
		plans, err := Calculate(debts, testutil.Dec("10"))
		testutil.AssertNoError(t, err)

		if len(plans) != len(debts) {
			t.Fatalf("expected %d plans, got %d", len(debts), len(plans))
		}
		for i := 1; i < len(plans); i++ {
			if plans[i].Debt.Balance.LessThan(plans[i-1].Debt.Balance) {
				t.Errorf("plan %d balance %s is smaller than plan %d balance %s",
					i, plans[i].Debt.Balance, i-1, plans[i-1].Debt.Balance)
			}
		}
	})

	t.Run("ties_keep_input_order", func(t *testing.T) {
		debts := testutil.NewDebts([2]string{"300", "10"}, [2]string{"300", "30"}, [2]string{"300", "20"})
		plans, err := Calculate(debts, decimal.Zero)
		testutil.AssertNoError(t, err)

		for i, want := range []string{"Debt 1", "Debt 2", "Debt 3"} {
			if plans[i].Debt.Name != want {
				t.Errorf("position %d: expected %q, got %q", i, want, plans[i].Debt.Name)
			}
		}
	})

	t.Run("input_not_mutated", func(t *testing.T) {
		debts := testutil.NewDebts([2]string{"1000", "50"}, [2]string{"500", "25"})
		before := make([]models.Debt, len(debts))
		copy(before, debts)

		_, err := Calculate(debts, decimal.Zero)
		testutil.AssertNoError(t, err)

		for i := range debts {
			if debts[i].ID != before[i].ID || !debts[i].Balance.Equal(before[i].Balance) {
				t.Errorf("debt %d changed: %+v", i, debts[i])
			}
		}
	})
}

func TestCalculateProperties(t *testing.T) {
	debts := testutil.NewDebts(
		[2]string{"2500", "75"},
		[2]string{"120.45", "35"},
		[2]string{"830", "40.10"},
		[2]string{"15000", "300"},
	)
	extra := testutil.Dec("62.50")

	plans, err := Calculate(debts, extra)
	testutil.AssertNoError(t, err)

	t.Run("paid_covers_balance", func(t *testing.T) {
		for _, p := range plans {
			if p.TotalPaid.LessThan(p.Debt.Balance) {
				t.Errorf("%s: paid %s below balance %s", p.Debt.Name, p.TotalPaid, p.Debt.Balance)
			}
			if p.MonthsToPayOff < 1 {
				t.Errorf("%s: expected at least one month, got %d", p.Debt.Name, p.MonthsToPayOff)
			}
		}
	})

	t.Run("capacity_conservation", func(t *testing.T) {
		// The monthly capacity for debt i is extra plus the minimums of
		// every debt processed up to and including i.
		capacity := extra
		for _, p := range plans {
			capacity = capacity.Add(p.Debt.MinimumPayment)
			months := decimal.NewFromInt(int64(p.MonthsToPayOff))
			ceiling := capacity.Mul(months)
			floor := capacity.Mul(months.Sub(decimal.NewFromInt(1)))
			if p.TotalPaid.GreaterThan(ceiling) {
				t.Errorf("%s: paid %s exceeds %d months of capacity %s", p.Debt.Name, p.TotalPaid, p.MonthsToPayOff, capacity)
			}
			if !p.TotalPaid.GreaterThan(floor) {
				t.Errorf("%s: paid %s could have been paid in fewer months", p.Debt.Name, p.TotalPaid)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		again, err := Calculate(debts, extra)
		testutil.AssertNoError(t, err)
		if len(again) != len(plans) {
			t.Fatalf("expected %d plans, got %d", len(plans), len(again))
		}
		for i := range plans {
			if again[i].Debt.ID != plans[i].Debt.ID ||
				again[i].MonthsToPayOff != plans[i].MonthsToPayOff ||
				!again[i].TotalPaid.Equal(plans[i].TotalPaid) {
				t.Errorf("plan %d differs between runs: %+v vs %+v", i, plans[i], again[i])
			}
		}
	})
}

func TestSummarize(t *testing.T) {
	plans, err := Calculate(testutil.NewDebts([2]string{"500", "25"}, [2]string{"1000", "50"}), decimal.Zero)
	testutil.AssertNoError(t, err)

	s := Summarize(plans)
	if s.DebtCount != 2 {
		t.Errorf("expected 2 debts, got %d", s.DebtCount)
	}
	if !s.TotalPaid.Equal(testutil.Dec("1500")) {
		t.Errorf("expected total paid 1500, got %s", s.TotalPaid)
	}
	if s.LongestPayoffMonths != 20 {
		t.Errorf("expected longest payoff 20 months, got %d", s.LongestPayoffMonths)
	}

	if empty := Summarize(nil); empty.DebtCount != 0 || !empty.TotalPaid.IsZero() {
		t.Errorf("expected empty summary, got %+v", empty)
	}
}
