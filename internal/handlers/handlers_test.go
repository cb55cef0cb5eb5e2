package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"easybudget/internal/budget"
	"easybudget/internal/config"
	"easybudget/internal/middleware"
	"easybudget/internal/models"
	"easybudget/internal/pagination"
	"easybudget/internal/services"
	"easybudget/internal/validator"
)

const (
	testUserID     = "0190a0b4-1111-7000-8000-000000000001"
	testResourceID = "0190a0b4-2222-7000-8000-000000000002"
)

// --- mock services ---

type mockUserService struct {
	createUserFn            func(email, password, firstName, lastName string) (*models.User, error)
	getUserByEmailFn        func(email string) (*models.User, error)
	getUserByIDFn           func(id string) (*models.User, error)
	verifyPasswordFn        func(user *models.User, password string) bool
	attemptLoginFn          func(email, password string) (*models.User, error)
	storeRefreshTokenHashFn func(userID, tokenHash string) error
	getRefreshTokenHashFn   func(userID string) (string, error)
}

var _ services.UserServicer = (*mockUserService)(nil)

func (m *mockUserService) CreateUser(email, password, firstName, lastName string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password, firstName, lastName)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) StoreRefreshTokenHash(userID, tokenHash string) error {
	if m.storeRefreshTokenHashFn != nil {
		return m.storeRefreshTokenHashFn(userID, tokenHash)
	}
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(userID string) (string, error) {
	if m.getRefreshTokenHashFn != nil {
		return m.getRefreshTokenHashFn(userID)
	}
	return "", nil
}

type auditEntry struct {
	userID, action, resourceType, resourceID string
}

type mockAuditService struct {
	entries            []auditEntry
	getUserAuditLogsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

var _ services.AuditServicer = (*mockAuditService)(nil)

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID: userID, action: action, resourceType: resourceType, resourceID: resourceID})
}

func (m *mockAuditService) GetUserAuditLogs(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.getUserAuditLogsFn != nil {
		return m.getUserAuditLogsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.AuditLog{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAuditService) lastAction() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.entries[len(m.entries)-1].action
}

type mockBudgetService struct {
	getSnapshotFn    func(userID string) (*models.Snapshot, error)
	getSummaryFn     func(userID string) (*services.BudgetSummary, error)
	setGrossIncomeFn func(userID string, amount decimal.Decimal) (*services.BudgetSummary, error)
	startPayPeriodFn func(userID string) (*services.BudgetSummary, error)
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func (m *mockBudgetService) GetSnapshot(userID string) (*models.Snapshot, error) {
	if m.getSnapshotFn != nil {
		return m.getSnapshotFn(userID)
	}
	return &models.Snapshot{}, nil
}

func (m *mockBudgetService) GetSummary(userID string) (*services.BudgetSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(userID)
	}
	return &services.BudgetSummary{}, nil
}

func (m *mockBudgetService) SetGrossIncome(userID string, amount decimal.Decimal) (*services.BudgetSummary, error) {
	if m.setGrossIncomeFn != nil {
		return m.setGrossIncomeFn(userID, amount)
	}
	return &services.BudgetSummary{}, nil
}

func (m *mockBudgetService) StartPayPeriod(userID string) (*services.BudgetSummary, error) {
	if m.startPayPeriodFn != nil {
		return m.startPayPeriodFn(userID)
	}
	return &services.BudgetSummary{}, nil
}

type mockCategoryService struct {
	createCategoryFn    func(userID, name, color string) (*models.Category, error)
	getUserCategoriesFn func(userID string) ([]services.CategoryWithTotal, error)
	updateCategoryFn    func(userID, categoryID, name, color string) (*models.Category, error)
	deleteCategoryFn    func(userID, categoryID string) error
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func (m *mockCategoryService) CreateCategory(userID, name, color string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, name, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetUserCategories(userID string) ([]services.CategoryWithTotal, error) {
	if m.getUserCategoriesFn != nil {
		return m.getUserCategoriesFn(userID)
	}
	return []services.CategoryWithTotal{}, nil
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID, name, color string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, name, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

type mockExpenseService struct {
	createExpenseFn   func(userID string, in budget.ExpenseInput) (*models.Expense, error)
	getUserExpensesFn func(userID string, page pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	getExpenseByIDFn  func(userID, expenseID string) (*models.Expense, error)
	updateExpenseFn   func(userID, expenseID string, in budget.ExpenseInput) (*models.Expense, error)
	deleteExpenseFn   func(userID, expenseID string) error
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func (m *mockExpenseService) CreateExpense(userID string, in budget.ExpenseInput) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, in)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID string, page pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	if m.getUserExpensesFn != nil {
		return m.getUserExpensesFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(userID, expenseID)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID string, in budget.ExpenseInput) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(userID, expenseID, in)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

type mockEmergencyFundService struct {
	getEmergencyFundFn      func(userID string) (*services.EmergencyFundStatus, error)
	addFundsFn              func(userID string, amount decimal.Decimal) (*services.EmergencyFundStatus, error)
	setGoalFn               func(userID string, goal decimal.Decimal) (*services.EmergencyFundStatus, error)
	setGoalFromMultiplierFn func(userID string, multiplier decimal.Decimal) (*services.EmergencyFundStatus, error)
	setContributionFn       func(userID string, amount decimal.Decimal) (*services.EmergencyFundStatus, error)
	applyContributionFn     func(userID string) (*services.EmergencyFundStatus, error)
}

var _ services.EmergencyFundServicer = (*mockEmergencyFundService)(nil)

func (m *mockEmergencyFundService) GetEmergencyFund(userID string) (*services.EmergencyFundStatus, error) {
	if m.getEmergencyFundFn != nil {
		return m.getEmergencyFundFn(userID)
	}
	return &services.EmergencyFundStatus{}, nil
}

func (m *mockEmergencyFundService) AddFunds(userID string, amount decimal.Decimal) (*services.EmergencyFundStatus, error) {
	if m.addFundsFn != nil {
		return m.addFundsFn(userID, amount)
	}
	return &services.EmergencyFundStatus{}, nil
}

func (m *mockEmergencyFundService) SetGoal(userID string, goal decimal.Decimal) (*services.EmergencyFundStatus, error) {
	if m.setGoalFn != nil {
		return m.setGoalFn(userID, goal)
	}
	return &services.EmergencyFundStatus{}, nil
}

func (m *mockEmergencyFundService) SetGoalFromMultiplier(userID string, multiplier decimal.Decimal) (*services.EmergencyFundStatus, error) {
	if m.setGoalFromMultiplierFn != nil {
		return m.setGoalFromMultiplierFn(userID, multiplier)
	}
	return &services.EmergencyFundStatus{}, nil
}

func (m *mockEmergencyFundService) SetContribution(userID string, amount decimal.Decimal) (*services.EmergencyFundStatus, error) {
	if m.setContributionFn != nil {
		return m.setContributionFn(userID, amount)
	}
	return &services.EmergencyFundStatus{}, nil
}

func (m *mockEmergencyFundService) ApplyContribution(userID string) (*services.EmergencyFundStatus, error) {
	if m.applyContributionFn != nil {
		return m.applyContributionFn(userID)
	}
	return &services.EmergencyFundStatus{}, nil
}

type mockSavingsService struct {
	createBucketFn   func(userID string, in budget.SavingsBucketInput) (*services.SavingsBucketView, error)
	getUserBucketsFn func(userID string) (*services.SavingsOverview, error)
	updateBucketFn   func(userID, bucketID string, in budget.SavingsBucketInput) (*services.SavingsBucketView, error)
	deleteBucketFn   func(userID, bucketID string) error
	depositFn        func(userID, bucketID string) (*services.SavingsBucketView, error)
}

var _ services.SavingsServicer = (*mockSavingsService)(nil)

func (m *mockSavingsService) CreateBucket(userID string, in budget.SavingsBucketInput) (*services.SavingsBucketView, error) {
	if m.createBucketFn != nil {
		return m.createBucketFn(userID, in)
	}
	return &services.SavingsBucketView{}, nil
}

func (m *mockSavingsService) GetUserBuckets(userID string) (*services.SavingsOverview, error) {
	if m.getUserBucketsFn != nil {
		return m.getUserBucketsFn(userID)
	}
	return &services.SavingsOverview{Buckets: []services.SavingsBucketView{}}, nil
}

func (m *mockSavingsService) UpdateBucket(userID, bucketID string, in budget.SavingsBucketInput) (*services.SavingsBucketView, error) {
	if m.updateBucketFn != nil {
		return m.updateBucketFn(userID, bucketID, in)
	}
	return &services.SavingsBucketView{}, nil
}

func (m *mockSavingsService) DeleteBucket(userID, bucketID string) error {
	if m.deleteBucketFn != nil {
		return m.deleteBucketFn(userID, bucketID)
	}
	return nil
}

func (m *mockSavingsService) Deposit(userID, bucketID string) (*services.SavingsBucketView, error) {
	if m.depositFn != nil {
		return m.depositFn(userID, bucketID)
	}
	return &services.SavingsBucketView{}, nil
}

type mockDebtService struct {
	createDebtFn   func(userID string, in budget.DebtInput) (*models.Debt, error)
	getUserDebtsFn func(userID string) ([]models.Debt, error)
	updateDebtFn   func(userID, debtID string, in budget.DebtInput) (*models.Debt, error)
	deleteDebtFn   func(userID, debtID string) error
	planSnowballFn func(userID string, extra decimal.Decimal, commit bool) (*services.SnowballResult, error)
}

var _ services.DebtServicer = (*mockDebtService)(nil)

func (m *mockDebtService) CreateDebt(userID string, in budget.DebtInput) (*models.Debt, error) {
	if m.createDebtFn != nil {
		return m.createDebtFn(userID, in)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) GetUserDebts(userID string) ([]models.Debt, error) {
	if m.getUserDebtsFn != nil {
		return m.getUserDebtsFn(userID)
	}
	return []models.Debt{}, nil
}

func (m *mockDebtService) UpdateDebt(userID, debtID string, in budget.DebtInput) (*models.Debt, error) {
	if m.updateDebtFn != nil {
		return m.updateDebtFn(userID, debtID, in)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) DeleteDebt(userID, debtID string) error {
	if m.deleteDebtFn != nil {
		return m.deleteDebtFn(userID, debtID)
	}
	return nil
}

func (m *mockDebtService) PlanSnowball(userID string, extra decimal.Decimal, commit bool) (*services.SnowballResult, error) {
	if m.planSnowballFn != nil {
		return m.planSnowballFn(userID, extra, commit)
	}
	return &services.SnowballResult{}, nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
	config.Set(&config.Config{
		JWTSecret:        "handler-test-secret",
		JWTExpirationDur: time.Hour,
		RefreshTokenDur:  24 * time.Hour,
	})
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
