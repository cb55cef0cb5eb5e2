package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"easybudget/internal/budget"
	"easybudget/internal/services"
)

// SavingsHandler handles savings bucket requests.
type SavingsHandler struct {
	savingsService services.SavingsServicer
	auditService   services.AuditServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer, auditService services.AuditServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService, auditService: auditService}
}

// SavingsBucketRequest represents the request payload for creating or editing a bucket.
type SavingsBucketRequest struct {
	Name                string           `json:"name" binding:"required,max=100"`
	GoalAmount          *decimal.Decimal `json:"goal_amount" binding:"required,decimal_gt0" swaggertype:"string" example:"5000.00"`
	CurrentBalance      *decimal.Decimal `json:"current_balance" binding:"omitempty,decimal_gte0" swaggertype:"string" example:"0"`
	DepositPerPayPeriod *decimal.Decimal `json:"deposit_per_pay_period" binding:"required,decimal_gt0" swaggertype:"string" example:"250.00"`
}

func (r SavingsBucketRequest) input() budget.SavingsBucketInput {
	return budget.SavingsBucketInput{
		Name:                r.Name,
		GoalAmount:          *r.GoalAmount,
		CurrentBalance:      valueOf(r.CurrentBalance),
		DepositPerPayPeriod: *r.DepositPerPayPeriod,
	}
}

// CreateBucket handles the creation of a savings bucket.
// @Summary     Create a savings bucket
// @Description Add a bucket; the deposits of all buckets must fit in the remaining income
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SavingsBucketRequest true "Bucket details"
// @Success     201 {object} services.SavingsBucketView "Bucket created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Insufficient funds"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-buckets [post]
func (h *SavingsHandler) CreateBucket(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsBucketRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	bucket, err := h.savingsService.CreateBucket(userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SAVINGS_BUCKET", "savings_bucket", bucket.ID, c.ClientIP(),
		map[string]interface{}{"name": bucket.Name, "goal_amount": bucket.GoalAmount.String(), "deposit_per_pay_period": bucket.DepositPerPayPeriod.String()})

	c.JSON(http.StatusCreated, gin.H{"savings_bucket": bucket})
}

// GetUserBuckets lists the savings buckets of the authenticated user.
// @Summary     Get savings buckets
// @Description List the buckets with their projections and the income available for deposits
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.SavingsOverview "Savings overview"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-buckets [get]
func (h *SavingsHandler) GetUserBuckets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.savingsService.GetUserBuckets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// UpdateBucket handles editing a savings bucket.
// @Summary     Update a savings bucket
// @Description Replace the fields of a bucket under the same rules as creation
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Bucket ID"
// @Param       request body SavingsBucketRequest true "Bucket details"
// @Success     200 {object} services.SavingsBucketView "Bucket updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Failure     422 {object} ErrorResponse "Insufficient funds"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-buckets/{id} [put]
func (h *SavingsHandler) UpdateBucket(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bucketID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsBucketRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	bucket, err := h.savingsService.UpdateBucket(userID, bucketID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SAVINGS_BUCKET", "savings_bucket", bucketID, c.ClientIP(),
		map[string]interface{}{"name": bucket.Name, "goal_amount": bucket.GoalAmount.String(), "deposit_per_pay_period": bucket.DepositPerPayPeriod.String()})

	c.JSON(http.StatusOK, gin.H{"savings_bucket": bucket})
}

// DeleteBucket handles deleting a savings bucket.
// @Summary     Delete a savings bucket
// @Description Delete a bucket by ID
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bucket ID"
// @Success     200 {object} map[string]string "Bucket deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-buckets/{id} [delete]
func (h *SavingsHandler) DeleteBucket(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bucketID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.savingsService.DeleteBucket(userID, bucketID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_SAVINGS_BUCKET", "savings_bucket", bucketID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Savings bucket deleted successfully"})
}

// Deposit applies one pay period's deposit to a bucket.
// @Summary     Deposit into a savings bucket
// @Description Add the bucket's per-pay-period deposit if the income available for allocation covers it
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bucket ID"
// @Success     200 {object} services.SavingsBucketView "Bucket after the deposit"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Failure     422 {object} ErrorResponse "Insufficient funds"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings-buckets/{id}/deposit [post]
func (h *SavingsHandler) Deposit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bucketID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bucket, err := h.savingsService.Deposit(userID, bucketID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DEPOSIT_SAVINGS_BUCKET", "savings_bucket", bucketID, c.ClientIP(),
		map[string]interface{}{"deposit": bucket.DepositPerPayPeriod.String(), "current_balance": bucket.CurrentBalance.String()})

	c.JSON(http.StatusOK, gin.H{"savings_bucket": bucket})
}
