package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Audit actions.
const (
	AuditActionCreate       = "create"
	AuditActionUpdate       = "update"
	AuditActionDelete       = "delete"
	AuditActionStatusChange = "status_change"
)

// AuditService records clinic mutations as structured log entries.
type AuditService interface {
	LogCreate(ctx context.Context, entityName string, entityID int)
	LogUpdate(ctx context.Context, entityName string, entityID int)
	LogDelete(ctx context.Context, entityName string, entityID int)
	LogStatusChange(ctx context.Context, entityName string, entityID int, status string)
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

func (s *auditService) LogCreate(ctx context.Context, entityName string, entityID int) {
	s.entry(ctx, AuditActionCreate, entityName, entityID).Info("audit")
}

func (s *auditService) LogUpdate(ctx context.Context, entityName string, entityID int) {
	s.entry(ctx, AuditActionUpdate, entityName, entityID).Info("audit")
}

func (s *auditService) LogDelete(ctx context.Context, entityName string, entityID int) {
	s.entry(ctx, AuditActionDelete, entityName, entityID).Info("audit")
}

func (s *auditService) LogStatusChange(ctx context.Context, entityName string, entityID int, status string) {
	s.entry(ctx, AuditActionStatusChange, entityName, entityID).WithField("status", status).Info("audit")
}

func (s *auditService) entry(ctx context.Context, action, entityName string, entityID int) *logrus.Entry {
	return s.log.WithContext(ctx).WithFields(logrus.Fields{
		"audit":     true,
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
	})
}
