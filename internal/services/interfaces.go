package services

import (
	"github.com/shopspring/decimal"

	"easybudget/internal/budget"
	"easybudget/internal/ledger"
	"easybudget/internal/models"
	"easybudget/internal/pagination"
	"easybudget/internal/savings"
	"easybudget/internal/snowball"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
	GetUserAuditLogs(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

// EmergencyFundStatus is the emergency fund with its derived figures.
type EmergencyFundStatus struct {
	models.EmergencyFund
	// Ratio is balance/goal, nil when no goal is set.
	Ratio                 *decimal.Decimal `json:"ratio"`
	NonDiscretionaryTotal decimal.Decimal  `json:"non_discretionary_total"`
}

// BudgetSummary is everything the overview screen shows.
type BudgetSummary struct {
	ledger.Totals
	AllocatedSavings       decimal.Decimal     `json:"allocated_savings"`
	TotalDeposits          decimal.Decimal     `json:"total_deposits"`
	AvailableForAllocation decimal.Decimal     `json:"available_for_allocation"`
	Ratios                 ledger.RatioReport  `json:"ratios"`
	EmergencyFund          EmergencyFundStatus `json:"emergency_fund"`
}

// BudgetServicer defines the contract for budget-wide operations.
type BudgetServicer interface {
	GetSnapshot(userID string) (*models.Snapshot, error)
	GetSummary(userID string) (*BudgetSummary, error)
	SetGrossIncome(userID string, amount decimal.Decimal) (*BudgetSummary, error)
	StartPayPeriod(userID string) (*BudgetSummary, error)
}

// CategoryWithTotal is a category with the sum of its expenses.
type CategoryWithTotal struct {
	models.Category
	Total     decimal.Decimal `json:"total"`
	IsDefault bool            `json:"is_default"`
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name, color string) (*models.Category, error)
	GetUserCategories(userID string) ([]CategoryWithTotal, error)
	UpdateCategory(userID, categoryID, name, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	CategoryID *string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID string, in budget.ExpenseInput) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, in budget.ExpenseInput) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// EmergencyFundServicer defines the contract for the emergency fund.
type EmergencyFundServicer interface {
	GetEmergencyFund(userID string) (*EmergencyFundStatus, error)
	AddFunds(userID string, amount decimal.Decimal) (*EmergencyFundStatus, error)
	SetGoal(userID string, goal decimal.Decimal) (*EmergencyFundStatus, error)
	SetGoalFromMultiplier(userID string, multiplier decimal.Decimal) (*EmergencyFundStatus, error)
	SetContribution(userID string, amount decimal.Decimal) (*EmergencyFundStatus, error)
	ApplyContribution(userID string) (*EmergencyFundStatus, error)
}

// SavingsBucketView is a bucket with its projection.
type SavingsBucketView struct {
	models.SavingsBucket
	savings.Projection
}

// SavingsOverview lists every bucket against the income still available.
type SavingsOverview struct {
	Buckets                []SavingsBucketView `json:"buckets"`
	RemainingIncome        decimal.Decimal     `json:"remaining_income"`
	TotalDeposits          decimal.Decimal     `json:"total_deposits"`
	AllocatedSavings       decimal.Decimal     `json:"allocated_savings"`
	AvailableForAllocation decimal.Decimal     `json:"available_for_allocation"`
}

// SavingsServicer defines the contract for savings buckets.
type SavingsServicer interface {
	CreateBucket(userID string, in budget.SavingsBucketInput) (*SavingsBucketView, error)
	GetUserBuckets(userID string) (*SavingsOverview, error)
	UpdateBucket(userID, bucketID string, in budget.SavingsBucketInput) (*SavingsBucketView, error)
	DeleteBucket(userID, bucketID string) error
	Deposit(userID, bucketID string) (*SavingsBucketView, error)
}

// SnowballResult is a calculated payoff plan. When the extra payment was
// committed, RemainingIncome reflects the new deduction.
type SnowballResult struct {
	Plans           []snowball.Plan  `json:"plans"`
	Summary         snowball.Summary `json:"summary"`
	ExtraPayment    decimal.Decimal  `json:"extra_payment"`
	Committed       bool             `json:"committed"`
	RemainingIncome decimal.Decimal  `json:"remaining_income"`
}

// DebtServicer defines the contract for debts and the snowball plan.
type DebtServicer interface {
	CreateDebt(userID string, in budget.DebtInput) (*models.Debt, error)
	GetUserDebts(userID string) ([]models.Debt, error)
	UpdateDebt(userID, debtID string, in budget.DebtInput) (*models.Debt, error)
	DeleteDebt(userID, debtID string) error
	PlanSnowball(userID string, extraPayment decimal.Decimal, commit bool) (*SnowballResult, error)
}
