package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"easybudget/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget stores a budget for userID with the given gross income
// and the two default categories, and returns the stored snapshot.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, grossIncome string) models.Snapshot {
	t.Helper()

	snap := NewSnapshot(grossIncome)
	snap.Budget.UserID = userID
	if err := db.Create(&snap.Budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	for i, name := range []string{models.NonDiscretionaryCategoryName, models.DiscretionaryCategoryName} {
		c := AddCategory(&snap, name)
		c.BudgetID = snap.Budget.ID
		c.Position = i
		snap.Categories[i] = c
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("failed to create test category: %v", err)
		}
	}
	return snap
}
