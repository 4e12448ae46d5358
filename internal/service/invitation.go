package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/logger"
	"association-admin-backend/internal/metrics"
	"association-admin-backend/internal/repository"
)

// InvitationTTL is how long a fresh invitation stays redeemable.
const InvitationTTL = 7 * 24 * time.Hour

type invitationService struct {
	invRepo  repository.InvitationRepository
	userRepo repository.UserRepository
	emailSvc EmailService
	auditSvc AuditService
}

func NewInvitationService(
	invRepo repository.InvitationRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	auditSvc AuditService,
) InvitationService {
	return &invitationService{
		invRepo:  invRepo,
		userRepo: userRepo,
		emailSvc: emailSvc,
		auditSvc: auditSvc,
	}
}

func (s *invitationService) Create(ctx context.Context, email string, role domain.UserRole, adminID int64, meta RequestMeta) (*InvitationResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.NewValidationError("email is required",
			domain.FieldError{Field: "email", Message: "must not be empty"})
	}
	if !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("email is invalid",
			domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if role == "" {
		role = domain.UserRoleMember
	}
	if role != domain.UserRoleMember && role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role is invalid",
			domain.FieldError{Field: "role", Message: "must be MEMBER or ADMIN"})
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewConflictError("a user with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	now := time.Now().UTC()
	if _, err := s.invRepo.FindActiveByEmail(ctx, email, now); err == nil {
		return nil, domain.NewConflictError("an active invitation already exists for this email")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing invitation: %w", err)
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	inv := &domain.Invitation{
		Email:     email,
		Role:      role,
		InvitedBy: adminID,
		Token:     token,
		Status:    domain.InvitationStatusPending,
		ExpiresAt: now.Add(InvitationTTL).Format(time.RFC3339),
	}
	if err := s.invRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	emailSent := false
	if err := s.emailSvc.SendInvitation(ctx, email, role, token); err != nil {
		logger.Warn("invitation email failed", "email", email, "error", err)
		metrics.EmailSendFailures.WithLabelValues("invitation").Inc()
	} else {
		emailSent = true
	}

	s.auditSvc.Record(ctx, adminID, domain.ActionCreateInvitation, map[string]any{
		"invitation_id": inv.ID,
		"email":         email,
		"role":          role,
		"email_sent":    emailSent,
	}, meta)

	return &InvitationResult{Invitation: *inv, EmailSent: emailSent}, nil
}

func (s *invitationService) List(ctx context.Context, status domain.InvitationStatus, page, limit int32) (*InvitationListing, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	now := time.Now().UTC()
	invitations, total, err := s.invRepo.List(ctx, status, page, limit, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	stats, err := s.invRepo.Stats(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute invitation stats: %w", err)
	}
	return &InvitationListing{
		Invitations: invitations,
		Stats:       *stats,
		Pagination:  NewPage(page, limit, total),
	}, nil
}

func (s *invitationService) Delete(ctx context.Context, id, adminID int64, meta RequestMeta) error {
	inv, err := s.invRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError("invitation not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}

	if err := s.invRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("invitation not found")
		}
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	// Email and role go into the trail since the row itself is gone.
	s.auditSvc.Record(ctx, adminID, domain.ActionDeleteInvitation, map[string]any{
		"invitation_id": id,
		"email":         inv.Email,
		"role":          inv.Role,
	}, meta)

	return nil
}

func (s *invitationService) Resend(ctx context.Context, id, adminID int64, meta RequestMeta) (*InvitationResult, error) {
	inv, err := s.invRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NewNotFoundError("invitation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.Status != domain.InvitationStatusPending {
		return nil, domain.NewInvalidStatusError(fmt.Sprintf("invitation is not pending (status: %s)", inv.Status))
	}

	// Same token, same expiry. Resending never extends the window.
	emailSent := false
	if err := s.emailSvc.SendInvitation(ctx, inv.Email, inv.Role, inv.Token); err != nil {
		logger.Warn("invitation resend failed", "invitation_id", id, "error", err)
		metrics.EmailSendFailures.WithLabelValues("invitation").Inc()
	} else {
		emailSent = true
	}

	s.auditSvc.Record(ctx, adminID, domain.ActionResendInvitation, map[string]any{
		"invitation_id": id,
		"email":         inv.Email,
		"email_sent":    emailSent,
	}, meta)

	return &InvitationResult{Invitation: *inv, EmailSent: emailSent}, nil
}

func generateInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
