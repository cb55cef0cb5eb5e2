package models

// AuditLog records budget mutations for later review.
type AuditLog struct {
	Base
	UserID       string `gorm:"type:uuid;not null;index" json:"user_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `gorm:"size:36" json:"resource_id,omitempty"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
