package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"easybudget/internal/services"
)

// EmergencyFundHandler handles emergency fund requests.
type EmergencyFundHandler struct {
	fundService  services.EmergencyFundServicer
	auditService services.AuditServicer
}

// NewEmergencyFundHandler creates a new EmergencyFundHandler.
func NewEmergencyFundHandler(fundService services.EmergencyFundServicer, auditService services.AuditServicer) *EmergencyFundHandler {
	return &EmergencyFundHandler{fundService: fundService, auditService: auditService}
}

// AmountRequest carries a single positive amount.
type AmountRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required,decimal_gt0" swaggertype:"string" example:"250.00"`
}

// MultiplierRequest carries the multiple of non-discretionary expenses to
// save, e.g. 6 for six months of essentials.
type MultiplierRequest struct {
	Multiplier *decimal.Decimal `json:"multiplier" binding:"required,decimal_gt0" swaggertype:"string" example:"6"`
}

// GetEmergencyFund returns the emergency fund.
// @Summary     Get the emergency fund
// @Description Get the fund goal, balance and contribution with its ratio and the non-discretionary total
// @Tags        emergency-fund
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.EmergencyFundStatus "Emergency fund"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund [get]
func (h *EmergencyFundHandler) GetEmergencyFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.fundService.GetEmergencyFund(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"emergency_fund": status})
}

// AddFunds adds money to the fund balance.
// @Summary     Add funds
// @Description Add an amount to the emergency fund balance
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AmountRequest true "Amount to add"
// @Success     200 {object} services.EmergencyFundStatus "Emergency fund"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund/funds [post]
func (h *EmergencyFundHandler) AddFunds(c *gin.Context) {
	h.withAmount(c, "ADD_EMERGENCY_FUNDS", h.fundService.AddFunds)
}

// SetGoal sets the fund goal.
// @Summary     Set the goal
// @Description Set the emergency fund goal
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AmountRequest true "Goal amount"
// @Success     200 {object} services.EmergencyFundStatus "Emergency fund"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund/goal [put]
func (h *EmergencyFundHandler) SetGoal(c *gin.Context) {
	h.withAmount(c, "SET_EMERGENCY_FUND_GOAL", h.fundService.SetGoal)
}

// SetGoalFromMultiplier sets the goal from the non-discretionary expenses.
// @Summary     Set the goal from a multiplier
// @Description Set the goal to the multiplier times the non-discretionary expenses
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body MultiplierRequest true "Multiplier"
// @Success     200 {object} services.EmergencyFundStatus "Emergency fund"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund/goal/multiplier [post]
func (h *EmergencyFundHandler) SetGoalFromMultiplier(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MultiplierRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.fundService.SetGoalFromMultiplier(userID, *req.Multiplier)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_EMERGENCY_FUND_GOAL", "emergency_fund", "", c.ClientIP(),
		map[string]interface{}{"multiplier": req.Multiplier.String(), "goal": status.Goal.String()})

	c.JSON(http.StatusOK, gin.H{"emergency_fund": status})
}

// SetContribution sets the per-pay-period contribution.
// @Summary     Set the contribution
// @Description Set the amount added to the fund each pay period
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AmountRequest true "Contribution per pay period"
// @Success     200 {object} services.EmergencyFundStatus "Emergency fund"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund/contribution [put]
func (h *EmergencyFundHandler) SetContribution(c *gin.Context) {
	h.withAmount(c, "SET_EMERGENCY_FUND_CONTRIBUTION", h.fundService.SetContribution)
}

// ApplyContribution adds one pay period's contribution to the balance.
// @Summary     Apply the contribution
// @Description Add the per-pay-period contribution to the fund balance
// @Tags        emergency-fund
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.EmergencyFundStatus "Emergency fund"
// @Failure     400 {object} ErrorResponse "No contribution set"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund/contribution/apply [post]
func (h *EmergencyFundHandler) ApplyContribution(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.fundService.ApplyContribution(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "APPLY_EMERGENCY_FUND_CONTRIBUTION", "emergency_fund", "", c.ClientIP(),
		map[string]interface{}{"balance": status.Balance.String()})

	c.JSON(http.StatusOK, gin.H{"emergency_fund": status})
}

func (h *EmergencyFundHandler) withAmount(c *gin.Context, action string, fn func(userID string, amount decimal.Decimal) (*services.EmergencyFundStatus, error)) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AmountRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	status, err := fn(userID, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, action, "emergency_fund", "", c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String()})

	c.JSON(http.StatusOK, gin.H{"emergency_fund": status})
}
