package budget

import (
	"github.com/shopspring/decimal"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/ledger"
	"easybudget/internal/models"
	"easybudget/internal/savings"
)

// SavingsBucketInput is the editable part of a savings bucket.
type SavingsBucketInput struct {
	Name                string
	GoalAmount          decimal.Decimal
	CurrentBalance      decimal.Decimal
	DepositPerPayPeriod decimal.Decimal
}

func (in SavingsBucketInput) validate() (string, error) {
	name, err := requireName("bucket name", in.Name)
	if err != nil {
		return "", err
	}
	if err := requirePositive("goal amount", in.GoalAmount); err != nil {
		return "", err
	}
	if err := requireNonNegative("current balance", in.CurrentBalance); err != nil {
		return "", err
	}
	if in.CurrentBalance.GreaterThan(in.GoalAmount) {
		return "", invalid("current balance cannot exceed the goal amount")
	}
	if err := requirePositive("deposit per pay period", in.DepositPerPayPeriod); err != nil {
		return "", err
	}
	return name, nil
}

// AddSavingsBucket appends a bucket. The deposits of all buckets, including
// the new one, must fit in the remaining income.
func (s *State) AddSavingsBucket(in SavingsBucketInput) (models.SavingsBucket, error) {
	name, err := in.validate()
	if err != nil {
		return models.SavingsBucket{}, err
	}

	var created models.SavingsBucket
	err = s.apply(func(next *models.Snapshot) error {
		created = models.SavingsBucket{
			Entry:               models.NewEntry(),
			Name:                name,
			GoalAmount:          in.GoalAmount,
			CurrentBalance:      in.CurrentBalance,
			DepositPerPayPeriod: in.DepositPerPayPeriod,
		}
		next.SavingsBuckets = append(next.SavingsBuckets, created)
		return checkDepositsFit(*next)
	})
	return created, err
}

// UpdateSavingsBucket replaces the fields of a bucket under the same rules
// as AddSavingsBucket.
func (s *State) UpdateSavingsBucket(id string, in SavingsBucketInput) (models.SavingsBucket, error) {
	name, err := in.validate()
	if err != nil {
		return models.SavingsBucket{}, err
	}

	var updated models.SavingsBucket
	err = s.apply(func(next *models.Snapshot) error {
		i := indexOfBucket(next.SavingsBuckets, id)
		if i < 0 {
			return apperrors.ErrSavingsBucketNotFound
		}
		b := &next.SavingsBuckets[i]
		b.Name = name
		b.GoalAmount = in.GoalAmount
		b.CurrentBalance = in.CurrentBalance
		b.DepositPerPayPeriod = in.DepositPerPayPeriod
		b.Touch()
		updated = *b
		return checkDepositsFit(*next)
	})
	return updated, err
}

// DeleteSavingsBucket removes a bucket.
func (s *State) DeleteSavingsBucket(id string) error {
	return s.apply(func(next *models.Snapshot) error {
		i := indexOfBucket(next.SavingsBuckets, id)
		if i < 0 {
			return apperrors.ErrSavingsBucketNotFound
		}
		next.SavingsBuckets = append(next.SavingsBuckets[:i], next.SavingsBuckets[i+1:]...)
		return nil
	})
}

// DepositToSavingsBucket applies one pay period's deposit to a bucket and
// counts it against the income available for allocation.
func (s *State) DepositToSavingsBucket(id string) (models.SavingsBucket, error) {
	var deposited models.SavingsBucket
	err := s.apply(func(next *models.Snapshot) error {
		i := indexOfBucket(next.SavingsBuckets, id)
		if i < 0 {
			return apperrors.ErrSavingsBucketNotFound
		}
		bucket, _, err := savings.ApplyDeposit(next.SavingsBuckets[i], ledger.AvailableForAllocation(*next))
		if err != nil {
			return err
		}
		bucket.Touch()
		next.SavingsBuckets[i] = bucket
		next.Budget.AllocatedSavings = next.Budget.AllocatedSavings.Add(bucket.DepositPerPayPeriod)
		deposited = bucket
		return nil
	})
	return deposited, err
}

// StartPayPeriod clears the savings allocated during the previous pay
// period so the full remaining income is available again.
func (s *State) StartPayPeriod() error {
	return s.apply(func(next *models.Snapshot) error {
		next.Budget.AllocatedSavings = decimal.Zero
		return nil
	})
}

func checkDepositsFit(snap models.Snapshot) error {
	deposits := ledger.TotalDeposits(snap)
	remaining := ledger.RemainingIncome(snap)
	if deposits.GreaterThan(remaining) {
		return apperrors.WithMessage(apperrors.ErrInsufficientFunds,
			"deposits of "+deposits.StringFixed(2)+" per pay period exceed the remaining income of "+remaining.StringFixed(2))
	}
	return nil
}

func indexOfBucket(buckets []models.SavingsBucket, id string) int {
	for i, b := range buckets {
		if b.ID == id {
			return i
		}
	}
	return -1
}
