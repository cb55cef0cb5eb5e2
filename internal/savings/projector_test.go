package savings

import (
	"testing"

	"easybudget/internal/testutil"
)

func TestPeriodsRemaining(t *testing.T) {
	tests := []struct {
		name                   string
		goal, balance, deposit string
		want                   int
	}{
		{"exact_division", "1000", "400", "50", 12},
		{"rounds_up", "1000", "0", "300", 4},
		{"goal_reached", "1000", "1000", "50", 0},
		{"overshoot", "1000", "1200", "50", 0},
		{"zero_deposit", "1000", "0", "0", 0},
		{"negative_deposit", "1000", "0", "-10", 0},
		{"fractional", "100", "0.01", "33.33", 3},
		{"tiny_shortfall", "1000000000000.00000001", "1000000000000", "1000000000000", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := testutil.NewSavingsBucket("Goal", tt.goal, tt.balance, tt.deposit)
			if got := PeriodsRemaining(bucket); got != tt.want {
				t.Errorf("expected %d periods, got %d", tt.want, got)
			}
		})
	}
}

func TestProject(t *testing.T) {
	t.Run("partial_progress", func(t *testing.T) {
		p := Project(testutil.NewSavingsBucket("Car", "1000", "400", "50"))
		if p.PeriodsRemaining != 12 {
			t.Errorf("expected 12 periods, got %d", p.PeriodsRemaining)
		}
		if !p.AmountRemaining.Equal(testutil.Dec("600")) {
			t.Errorf("expected 600 remaining, got %s", p.AmountRemaining)
		}
		if !p.Progress.Equal(testutil.Dec("0.4")) {
			t.Errorf("expected progress 0.4, got %s", p.Progress)
		}
	})

	t.Run("progress_capped_at_one", func(t *testing.T) {
		p := Project(testutil.NewSavingsBucket("Car", "1000", "1500", "50"))
		if !p.Progress.Equal(testutil.Dec("1")) {
			t.Errorf("expected progress 1, got %s", p.Progress)
		}
		if !p.AmountRemaining.IsZero() {
			t.Errorf("expected 0 remaining, got %s", p.AmountRemaining)
		}
	})
}

func TestApplyDeposit(t *testing.T) {
	t.Run("advances_balance_and_reduces_available", func(t *testing.T) {
		bucket := testutil.NewSavingsBucket("Trip", "1000", "400", "100")

		updated, available, err := ApplyDeposit(bucket, testutil.Dec("250"))
		testutil.AssertNoError(t, err)

		if !updated.CurrentBalance.Equal(testutil.Dec("500")) {
			t.Errorf("expected balance 500, got %s", updated.CurrentBalance)
		}
		if !available.Equal(testutil.Dec("150")) {
			t.Errorf("expected available 150, got %s", available)
		}
		if !bucket.CurrentBalance.Equal(testutil.Dec("400")) {
			t.Errorf("input bucket should not change, got %s", bucket.CurrentBalance)
		}
	})

	t.Run("insufficient_funds", func(t *testing.T) {
		bucket := testutil.NewSavingsBucket("Trip", "1000", "400", "100")

		updated, available, err := ApplyDeposit(bucket, testutil.Dec("50"))
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		if !updated.CurrentBalance.Equal(testutil.Dec("400")) {
			t.Errorf("expected balance unchanged at 400, got %s", updated.CurrentBalance)
		}
		if !available.Equal(testutil.Dec("50")) {
			t.Errorf("expected available unchanged at 50, got %s", available)
		}
	})

	t.Run("deposit_equal_to_available", func(t *testing.T) {
		bucket := testutil.NewSavingsBucket("Trip", "1000", "0", "100")

		_, available, err := ApplyDeposit(bucket, testutil.Dec("100"))
		testutil.AssertNoError(t, err)
		if !available.IsZero() {
			t.Errorf("expected 0 available, got %s", available)
		}
	})

	t.Run("overshoot_is_allowed", func(t *testing.T) {
		bucket := testutil.NewSavingsBucket("Trip", "1000", "950", "100")

		updated, _, err := ApplyDeposit(bucket, testutil.Dec("500"))
		testutil.AssertNoError(t, err)
		if !updated.CurrentBalance.Equal(testutil.Dec("1050")) {
			t.Errorf("expected balance 1050, got %s", updated.CurrentBalance)
		}
	})
}
