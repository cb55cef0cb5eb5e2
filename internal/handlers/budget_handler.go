package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"easybudget/internal/services"
)

// BudgetHandler handles budget-wide requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SetIncomeRequest represents the request payload for setting the gross income.
type SetIncomeRequest struct {
	GrossIncome *decimal.Decimal `json:"gross_income" binding:"required,decimal_gt0" swaggertype:"string" example:"4200.00"`
}

// GetBudget returns the whole budget of the authenticated user.
// @Summary     Export the budget
// @Description Get the budget with every category, expense, savings bucket and debt
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Snapshot "Budget snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap, err := h.budgetService.GetSnapshot(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": snap})
}

// GetSummary returns the totals, ratios and emergency fund status.
// @Summary     Get budget summary
// @Description Get totals per category, remaining income, 50/30/20 ratios and the emergency fund ratio
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.BudgetSummary "Budget summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/summary [get]
func (h *BudgetHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.budgetService.GetSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SetGrossIncome replaces the gross income of the pay period.
// @Summary     Set gross income
// @Description Set the gross income of the pay period
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetIncomeRequest true "Gross income"
// @Success     200 {object} services.BudgetSummary "Updated summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/income [put]
func (h *BudgetHandler) SetGrossIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetIncomeRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.budgetService.SetGrossIncome(userID, *req.GrossIncome)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_GROSS_INCOME", "budget", "", c.ClientIP(),
		map[string]interface{}{"gross_income": req.GrossIncome.String()})

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// StartPayPeriod resets the savings allocated during the previous pay period.
// @Summary     Start a pay period
// @Description Make the full remaining income available for savings deposits again
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.BudgetSummary "Updated summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/pay-period [post]
func (h *BudgetHandler) StartPayPeriod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.budgetService.StartPayPeriod(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "START_PAY_PERIOD", "budget", "", c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
