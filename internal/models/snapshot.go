package models

// Snapshot is the flat, self-contained form of one user's budget: the
// aggregate row plus every list in display order. It is what the
// persistence layer loads and stores and what the calculators read.
type Snapshot struct {
	Budget         Budget          `json:"budget"`
	Categories     []Category      `json:"categories"`
	Expenses       []Expense       `json:"expenses"`
	SavingsBuckets []SavingsBucket `json:"savings_buckets"`
	Debts          []Debt          `json:"debts"`
}

// Clone returns a copy of s whose slices do not share backing arrays with s.
// Decimal values are immutable, so a shallow copy of each element is enough.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Budget:         s.Budget,
		Categories:     cloneSlice(s.Categories),
		Expenses:       cloneSlice(s.Expenses),
		SavingsBuckets: cloneSlice(s.SavingsBuckets),
		Debts:          cloneSlice(s.Debts),
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
