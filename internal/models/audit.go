// internal/models/audit.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records admin-performed mutations. Retention is capped at the most
// recent 1000 entries, oldest evicted first.
type AuditLog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminID   uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	Action    string    `json:"action" gorm:"size:100;not null;index"`
	Details   JSONB     `json:"details,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Relationships
	Admin User `json:"admin,omitempty" gorm:"foreignKey:AdminID"`
}
