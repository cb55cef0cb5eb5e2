package services

import (
	"encoding/json"
	"testing"

	"easybudget/internal/models"
	"easybudget/internal/pagination"
	"easybudget/internal/testutil"
)

func TestAuditService(t *testing.T) {
	t.Run("log_records_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)

		svc.Log(user.ID, "CREATE_EXPENSE", "expense", "0190a0b4-0000-7000-8000-000000000001", "127.0.0.1",
			map[string]interface{}{"name": "Rent", "amount": "1200"})

		var entries []models.AuditLog
		testutil.AssertNoError(t, db.Where("user_id = ?", user.ID).Find(&entries).Error)
		if len(entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(entries))
		}

		var changes map[string]string
		if err := json.Unmarshal([]byte(entries[0].Changes), &changes); err != nil {
			t.Fatalf("expected JSON changes, got %q", entries[0].Changes)
		}
		if changes["name"] != "Rent" {
			t.Errorf("expected name Rent in changes, got %v", changes)
		}
	})

	t.Run("nil_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)

		svc.Log(user.ID, "LOGIN", "user", user.ID, "", nil)

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %q", entry.Changes)
		}
	})

	t.Run("list_is_scoped_and_paginated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		for i := 0; i < 3; i++ {
			svc.Log(user.ID, "UPDATE_BUDGET", "budget", "", "", nil)
		}
		svc.Log(other.ID, "UPDATE_BUDGET", "budget", "", "", nil)

		page, err := svc.GetUserAuditLogs(user.ID, pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 {
			t.Errorf("expected 3 entries, got %d", page.TotalItems)
		}
		if len(page.Data) != 2 || page.TotalPages != 2 {
			t.Errorf("expected 2 entries on 2 pages, got %d on %d", len(page.Data), page.TotalPages)
		}
		for _, e := range page.Data {
			if e.UserID != user.ID {
				t.Errorf("expected only the user's entries, got one for %s", e.UserID)
			}
		}

		empty, err := svc.GetUserAuditLogs(user.ID, pagination.PageRequest{Page: 3, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(empty.Data) != 0 {
			t.Errorf("expected an empty page, got %d entries", len(empty.Data))
		}
	})
}
