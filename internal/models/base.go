package models

import (
	"time"

	"easybudget/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for top-level tables
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// Entry contains the columns shared by every row owned by a budget.
// Position keeps the user's list order across a save/load round trip.
type Entry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	BudgetID  string    `gorm:"type:uuid;not null;index" json:"-"`
	Position  int       `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntry returns an Entry with a fresh UUIDv7 and both timestamps set to now.
func NewEntry() Entry {
	now := time.Now().UTC()
	return Entry{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// Touch bumps UpdatedAt.
func (e *Entry) Touch() {
	e.UpdatedAt = time.Now().UTC()
}

// Assign attaches the row to a budget at the given list position.
func (e *Entry) Assign(budgetID string, position int) {
	e.BudgetID = budgetID
	e.Position = position
}
