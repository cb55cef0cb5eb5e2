package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"easybudget/internal/budget"
	apperrors "easybudget/internal/errors"
	"easybudget/internal/models"
	"easybudget/internal/savings"
	"easybudget/internal/services"
)

func setupSavingsRouter(handler *SavingsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/savings-buckets", handler.CreateBucket)
	auth.GET("/savings-buckets", handler.GetUserBuckets)
	auth.PUT("/savings-buckets/:id", handler.UpdateBucket)
	auth.DELETE("/savings-buckets/:id", handler.DeleteBucket)
	auth.POST("/savings-buckets/:id/deposit", handler.Deposit)
	return r
}

func bucketView(id, name string) *services.SavingsBucketView {
	return &services.SavingsBucketView{
		SavingsBucket: models.SavingsBucket{
			Entry:               models.Entry{ID: id},
			Name:                name,
			GoalAmount:          dec("1000"),
			DepositPerPayPeriod: dec("100"),
		},
		Projection: savings.Projection{PeriodsRemaining: 10, AmountRemaining: dec("1000"), Progress: dec("0")},
	}
}

func TestSavingsHandler_CreateBucket(t *testing.T) {
	t.Run("returns 201 and defaults the balance to zero", func(t *testing.T) {
		var got budget.SavingsBucketInput
		svc := &mockSavingsService{
			createBucketFn: func(_ string, in budget.SavingsBucketInput) (*services.SavingsBucketView, error) {
				got = in
				return bucketView(testResourceID, in.Name), nil
			},
		}
		audit := &mockAuditService{}
		r := setupSavingsRouter(NewSavingsHandler(svc, audit))

		rec := doRequest(r, "POST", "/savings-buckets",
			`{"name":"Car","goal_amount":"1000","deposit_per_pay_period":"100"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.CurrentBalance.IsZero() {
			t.Errorf("expected zero current balance, got %s", got.CurrentBalance)
		}
		bucket := parseJSON(t, rec)["savings_bucket"].(map[string]interface{})
		if bucket["periods_remaining"] != float64(10) || bucket["name"] != "Car" {
			t.Errorf("unexpected bucket: %v", bucket)
		}
		if audit.lastAction() != "CREATE_SAVINGS_BUCKET" {
			t.Errorf("unexpected audit action %q", audit.lastAction())
		}
	})

	t.Run("returns 400 on invalid payload", func(t *testing.T) {
		r := setupSavingsRouter(NewSavingsHandler(&mockSavingsService{}, &mockAuditService{}))

		bodies := []string{
			`{"goal_amount":"1000","deposit_per_pay_period":"100"}`,
			`{"name":"Car","goal_amount":"0","deposit_per_pay_period":"100"}`,
			`{"name":"Car","goal_amount":"1000","deposit_per_pay_period":"0"}`,
			`{"name":"Car","goal_amount":"1000","current_balance":"-1","deposit_per_pay_period":"100"}`,
		}
		for _, body := range bodies {
			rec := doRequest(r, "POST", "/savings-buckets", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for %s, got %d", body, rec.Code)
			}
		}
	})

	t.Run("returns 422 when deposits exceed remaining income", func(t *testing.T) {
		svc := &mockSavingsService{
			createBucketFn: func(string, budget.SavingsBucketInput) (*services.SavingsBucketView, error) {
				return nil, apperrors.ErrInsufficientFunds
			},
		}
		r := setupSavingsRouter(NewSavingsHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/savings-buckets",
			`{"name":"Car","goal_amount":"1000","deposit_per_pay_period":"100"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_FUNDS")
	})
}

func TestSavingsHandler_GetUserBuckets(t *testing.T) {
	svc := &mockSavingsService{
		getUserBucketsFn: func(string) (*services.SavingsOverview, error) {
			return &services.SavingsOverview{
				Buckets:                []services.SavingsBucketView{*bucketView(testResourceID, "Car")},
				RemainingIncome:        dec("900"),
				AvailableForAllocation: dec("800"),
			}, nil
		},
	}
	r := setupSavingsRouter(NewSavingsHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/savings-buckets", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["available_for_allocation"] != "800" {
		t.Errorf("expected available_for_allocation \"800\", got %v", result["available_for_allocation"])
	}
	if len(result["buckets"].([]interface{})) != 1 {
		t.Errorf("expected 1 bucket, got %v", result["buckets"])
	}
}

func TestSavingsHandler_UpdateAndDelete(t *testing.T) {
	t.Run("update returns 200", func(t *testing.T) {
		var gotID string
		svc := &mockSavingsService{
			updateBucketFn: func(_, bucketID string, in budget.SavingsBucketInput) (*services.SavingsBucketView, error) {
				gotID = bucketID
				return bucketView(bucketID, in.Name), nil
			},
		}
		r := setupSavingsRouter(NewSavingsHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/savings-buckets/"+testResourceID,
			`{"name":"Cars","goal_amount":"2000","current_balance":"100","deposit_per_pay_period":"100"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != testResourceID {
			t.Errorf("expected bucket ID %s, got %s", testResourceID, gotID)
		}
	})

	t.Run("delete returns 404 when not found", func(t *testing.T) {
		svc := &mockSavingsService{
			deleteBucketFn: func(_, _ string) error { return apperrors.ErrSavingsBucketNotFound },
		}
		r := setupSavingsRouter(NewSavingsHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/savings-buckets/"+testResourceID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SAVINGS_BUCKET_NOT_FOUND")
	})
}

func TestSavingsHandler_Deposit(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		audit := &mockAuditService{}
		svc := &mockSavingsService{
			depositFn: func(_, bucketID string) (*services.SavingsBucketView, error) {
				return bucketView(bucketID, "Car"), nil
			},
		}
		r := setupSavingsRouter(NewSavingsHandler(svc, audit))

		rec := doRequest(r, "POST", "/savings-buckets/"+testResourceID+"/deposit", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if audit.lastAction() != "DEPOSIT_SAVINGS_BUCKET" {
			t.Errorf("unexpected audit action %q", audit.lastAction())
		}
	})

	t.Run("returns 422 on insufficient funds", func(t *testing.T) {
		svc := &mockSavingsService{
			depositFn: func(_, _ string) (*services.SavingsBucketView, error) {
				return nil, apperrors.ErrInsufficientFunds
			},
		}
		r := setupSavingsRouter(NewSavingsHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/savings-buckets/"+testResourceID+"/deposit", "")

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})
}
