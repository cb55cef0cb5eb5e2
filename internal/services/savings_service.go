package services

import (
	"easybudget/internal/budget"
	"easybudget/internal/ledger"
	"easybudget/internal/models"
	"easybudget/internal/savings"
)

// savingsService handles savings buckets.
type savingsService struct {
	registry *Registry
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(registry *Registry) SavingsServicer {
	return &savingsService{registry: registry}
}

// CreateBucket adds a savings bucket.
func (s *savingsService) CreateBucket(userID string, in budget.SavingsBucketInput) (*SavingsBucketView, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	bucket, err := state.AddSavingsBucket(in)
	if err != nil {
		return nil, err
	}
	return bucketView(bucket), nil
}

// GetUserBuckets lists every bucket with its projection and the allocation
// figures of the current pay period.
func (s *savingsService) GetUserBuckets(userID string) (*SavingsOverview, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}

	snap := state.Snapshot()
	overview := &SavingsOverview{
		Buckets:                make([]SavingsBucketView, 0, len(snap.SavingsBuckets)),
		RemainingIncome:        ledger.RemainingIncome(snap),
		TotalDeposits:          ledger.TotalDeposits(snap),
		AllocatedSavings:       snap.Budget.AllocatedSavings,
		AvailableForAllocation: ledger.AvailableForAllocation(snap),
	}
	for _, b := range snap.SavingsBuckets {
		overview.Buckets = append(overview.Buckets, *bucketView(b))
	}
	return overview, nil
}

// UpdateBucket replaces the fields of a bucket.
func (s *savingsService) UpdateBucket(userID, bucketID string, in budget.SavingsBucketInput) (*SavingsBucketView, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	bucket, err := state.UpdateSavingsBucket(bucketID, in)
	if err != nil {
		return nil, err
	}
	return bucketView(bucket), nil
}

// DeleteBucket removes a bucket.
func (s *savingsService) DeleteBucket(userID, bucketID string) error {
	state, err := s.registry.Get(userID)
	if err != nil {
		return err
	}
	return state.DeleteSavingsBucket(bucketID)
}

// Deposit applies one pay period's deposit to a bucket.
func (s *savingsService) Deposit(userID, bucketID string) (*SavingsBucketView, error) {
	state, err := s.registry.Get(userID)
	if err != nil {
		return nil, err
	}
	bucket, err := state.DepositToSavingsBucket(bucketID)
	if err != nil {
		return nil, err
	}
	return bucketView(bucket), nil
}

func bucketView(b models.SavingsBucket) *SavingsBucketView {
	return &SavingsBucketView{SavingsBucket: b, Projection: savings.Project(b)}
}
