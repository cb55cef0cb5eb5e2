package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"easybudget/internal/budget"
	"easybudget/internal/models"
)

// PlanFile is the TOML document read by the snowball command.
type PlanFile struct {
	ExtraPayment decimal.Decimal `toml:"extra_payment"`
	Entries      []DebtEntry     `toml:"debts"`
}

// DebtEntry is one [[debts]] table.
type DebtEntry struct {
	Name           string          `toml:"name"`
	Balance        decimal.Decimal `toml:"balance"`
	MinimumPayment decimal.Decimal `toml:"minimum_payment"`
	InterestRate   decimal.Decimal `toml:"interest_rate"`
}

// LoadPlanFile reads and validates the plan file at path.
func LoadPlanFile(path string) (*PlanFile, error) {
	var pf PlanFile
	md, err := toml.DecodeFile(path, &pf)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in plan file: %v", undecoded)
	}
	if err := pf.validate(); err != nil {
		return nil, err
	}
	return &pf, nil
}

func (pf *PlanFile) validate() error {
	if pf.ExtraPayment.IsNegative() {
		return fmt.Errorf("extra_payment cannot be negative")
	}
	for i := range pf.Entries {
		name, err := pf.Entries[i].input().Validate()
		if err != nil {
			return fmt.Errorf("debt %d: %w", i+1, err)
		}
		pf.Entries[i].Name = name
	}
	return nil
}

func (e DebtEntry) input() budget.DebtInput {
	return budget.DebtInput{
		Name:           e.Name,
		Balance:        e.Balance,
		InterestRate:   e.InterestRate,
		MinimumPayment: e.MinimumPayment,
	}
}

// Debts converts the entries to the planner's input, in file order.
func (pf *PlanFile) Debts() []models.Debt {
	debts := make([]models.Debt, len(pf.Entries))
	for i, e := range pf.Entries {
		debts[i] = models.Debt{
			Entry:          models.NewEntry(),
			Name:           e.Name,
			Balance:        e.Balance,
			MinimumPayment: e.MinimumPayment,
			InterestRate:   e.InterestRate,
		}
	}
	return debts
}
