package budget

import (
	"github.com/shopspring/decimal"

	"easybudget/internal/ledger"
	"easybudget/internal/models"
)

// AddEmergencyFunds adds amount to the emergency fund balance.
func (s *State) AddEmergencyFunds(amount decimal.Decimal) (models.EmergencyFund, error) {
	if err := requirePositive("amount", amount); err != nil {
		return models.EmergencyFund{}, err
	}
	return s.updateFund(func(fund *models.EmergencyFund, _ models.Snapshot) error {
		fund.Balance = fund.Balance.Add(amount)
		return nil
	})
}

// SetEmergencyFundGoal sets the target balance.
func (s *State) SetEmergencyFundGoal(goal decimal.Decimal) (models.EmergencyFund, error) {
	if err := requirePositive("goal", goal); err != nil {
		return models.EmergencyFund{}, err
	}
	return s.updateFund(func(fund *models.EmergencyFund, _ models.Snapshot) error {
		fund.Goal = goal
		return nil
	})
}

// SetEmergencyFundGoalFromMultiplier sets the goal to multiplier times the
// total non-discretionary expenses, e.g. 6 for six months of essentials.
// The goal is zero when there are no non-discretionary expenses.
func (s *State) SetEmergencyFundGoalFromMultiplier(multiplier decimal.Decimal) (models.EmergencyFund, error) {
	if err := requirePositive("multiplier", multiplier); err != nil {
		return models.EmergencyFund{}, err
	}
	return s.updateFund(func(fund *models.EmergencyFund, snap models.Snapshot) error {
		fund.Goal = multiplier.Mul(ledger.TotalNonDiscretionaryExpenses(snap))
		return nil
	})
}

// SetEmergencyFundContribution sets the amount added by each
// ApplyEmergencyFundContribution.
func (s *State) SetEmergencyFundContribution(amount decimal.Decimal) (models.EmergencyFund, error) {
	if err := requirePositive("contribution", amount); err != nil {
		return models.EmergencyFund{}, err
	}
	return s.updateFund(func(fund *models.EmergencyFund, _ models.Snapshot) error {
		fund.Contribution = amount
		return nil
	})
}

// ApplyEmergencyFundContribution adds one pay period's contribution to the
// balance.
func (s *State) ApplyEmergencyFundContribution() (models.EmergencyFund, error) {
	return s.updateFund(func(fund *models.EmergencyFund, _ models.Snapshot) error {
		if !fund.Contribution.IsPositive() {
			return invalid("no contribution per pay period is set")
		}
		fund.Balance = fund.Balance.Add(fund.Contribution)
		return nil
	})
}

func (s *State) updateFund(change func(fund *models.EmergencyFund, snap models.Snapshot) error) (models.EmergencyFund, error) {
	var fund models.EmergencyFund
	err := s.apply(func(next *models.Snapshot) error {
		if err := change(&next.Budget.EmergencyFund, *next); err != nil {
			return err
		}
		fund = next.Budget.EmergencyFund
		return nil
	})
	return fund, err
}
