package service

import (
	"context"
	"fmt"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/logger"
	"association-admin-backend/internal/repository"
)

type auditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) Record(ctx context.Context, actorID int64, action string, details map[string]any, meta RequestMeta) {
	entry := &domain.AuditLog{
		ActorID:   actorID,
		Action:    action,
		Details:   details,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		// The primary mutation already committed; losing the trail entry is
		// logged loudly instead of failing the request after the fact.
		logger.Error("audit record failed", "action", action, "actor_id", actorID, "error", err)
	}
}

func (s *auditService) List(ctx context.Context, page, limit int32) (*AuditListing, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	entries, total, err := s.auditRepo.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return &AuditListing{Entries: entries, Pagination: NewPage(page, limit, total)}, nil
}
