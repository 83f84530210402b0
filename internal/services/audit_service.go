// internal/services/audit_service.go
package services

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/campuscell/placement-backend/internal/apperrors"
	"github.com/campuscell/placement-backend/internal/database"
	"github.com/campuscell/placement-backend/internal/models"
)

const auditRetentionLimit = 1000

// AuditService records admin actions. Recording never fails the calling
// operation; a write error is logged and swallowed.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Record appends an audit entry and evicts everything beyond the newest
// 1000 rows.
func (s *AuditService) Record(adminID uuid.UUID, action string, details models.JSONB) {
	entry := &models.AuditLog{
		AdminID: adminID,
		Action:  action,
		Details: details,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Exec(`
			DELETE FROM audit_logs
			WHERE id IN (
				SELECT id FROM audit_logs
				ORDER BY created_at DESC
				OFFSET ?
			)`, auditRetentionLimit).Error
	})
	if err != nil {
		logrus.WithError(err).WithField("action", action).Warn("Failed to record audit entry")
	}
}

// Recent returns the newest audit entries, most recent first.
func (s *AuditService) Recent(actor Actor, limit int) ([]models.AuditLog, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins can read the audit log")
	}
	if limit < 1 || limit > auditRetentionLimit {
		limit = 100
	}

	var entries []models.AuditLog
	err := s.db.Preload("Admin").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return entries, nil
}
