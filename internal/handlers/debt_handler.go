package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"easybudget/internal/budget"
	"easybudget/internal/services"
)

// DebtHandler handles debt and snowball plan requests.
type DebtHandler struct {
	debtService  services.DebtServicer
	auditService services.AuditServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer, auditService services.AuditServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService, auditService: auditService}
}

// DebtRequest represents the request payload for creating or editing a debt.
type DebtRequest struct {
	Name           string           `json:"name" binding:"required,max=100"`
	Balance        *decimal.Decimal `json:"balance" binding:"required,decimal_gt0" swaggertype:"string" example:"2500.00"`
	InterestRate   *decimal.Decimal `json:"interest_rate" binding:"omitempty,decimal_gte0" swaggertype:"string" example:"19.99"`
	MinimumPayment *decimal.Decimal `json:"minimum_payment" binding:"required,decimal_gt0" swaggertype:"string" example:"75.00"`
}

func (r DebtRequest) input() budget.DebtInput {
	return budget.DebtInput{
		Name:           r.Name,
		Balance:        *r.Balance,
		InterestRate:   valueOf(r.InterestRate),
		MinimumPayment: *r.MinimumPayment,
	}
}

// SnowballRequest represents the request payload for a snowball plan.
// With Commit set the extra payment is deducted from the remaining income.
type SnowballRequest struct {
	ExtraPayment *decimal.Decimal `json:"extra_payment" binding:"omitempty,decimal_gte0" swaggertype:"string" example:"100.00"`
	Commit       bool             `json:"commit"`
}

// CreateDebt handles the creation of a debt.
// @Summary     Create a debt
// @Description Add a debt with its balance, interest rate and minimum payment
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DebtRequest true "Debt details"
// @Success     201 {object} models.Debt "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DebtRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.CreateDebt(userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_DEBT", "debt", debt.ID, c.ClientIP(),
		map[string]interface{}{"name": debt.Name, "balance": debt.Balance.String(), "minimum_payment": debt.MinimumPayment.String()})

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetUserDebts lists the debts of the authenticated user.
// @Summary     Get debts
// @Description List the debts in the order they were added
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.Debt "Debts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetUserDebts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debts, err := h.debtService.GetUserDebts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debts": debts})
}

// UpdateDebt handles editing a debt.
// @Summary     Update a debt
// @Description Replace the fields of a debt
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string      true "Debt ID"
// @Param       request body DebtRequest true "Debt details"
// @Success     200 {object} models.Debt "Debt updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [put]
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DebtRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.UpdateDebt(userID, debtID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_DEBT", "debt", debtID, c.ClientIP(),
		map[string]interface{}{"name": debt.Name, "balance": debt.Balance.String(), "minimum_payment": debt.MinimumPayment.String()})

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt handles deleting a debt.
// @Summary     Delete a debt
// @Description Delete a debt by ID
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} map[string]string "Debt deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(userID, debtID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_DEBT", "debt", debtID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted successfully"})
}

// PlanSnowball calculates a snowball payoff plan.
// @Summary     Plan a debt snowball
// @Description Calculate the payoff of every debt, smallest balance first, optionally committing the extra payment
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SnowballRequest true "Extra payment and commit flag"
// @Success     200 {object} services.SnowballResult "Payoff plan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Insufficient funds or non-convergent plan"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/snowball [post]
func (h *DebtHandler) PlanSnowball(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SnowballRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	extra := valueOf(req.ExtraPayment)
	result, err := h.debtService.PlanSnowball(userID, extra, req.Commit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if req.Commit {
		h.auditService.Log(userID, "COMMIT_EXTRA_PAYMENT", "budget", "", c.ClientIP(),
			map[string]interface{}{"extra_payment": extra.String()})
	}

	c.JSON(http.StatusOK, gin.H{"snowball": result})
}
