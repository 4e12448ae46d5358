package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/logger"
	"association-admin-backend/internal/metrics"
	"association-admin-backend/internal/repository"
)

type reviewService struct {
	userRepo repository.UserRepository
	formRepo repository.MembershipFormRepository
	seqRepo  repository.SequenceRepository
	emailSvc EmailService
	auditSvc AuditService
}

func NewReviewService(
	userRepo repository.UserRepository,
	formRepo repository.MembershipFormRepository,
	seqRepo repository.SequenceRepository,
	emailSvc EmailService,
	auditSvc AuditService,
) ReviewService {
	return &reviewService{
		userRepo: userRepo,
		formRepo: formRepo,
		seqRepo:  seqRepo,
		emailSvc: emailSvc,
		auditSvc: auditSvc,
	}
}

func (s *reviewService) ListForms(ctx context.Context, status domain.UserStatus, search string, page, limit int32) (*FormListing, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	forms, total, err := s.formRepo.ListWithApplicants(ctx, status, strings.TrimSpace(search), page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list membership forms: %w", err)
	}
	return &FormListing{Forms: forms, Pagination: NewPage(page, limit, total)}, nil
}

func (s *reviewService) Approve(ctx context.Context, userID, adminID int64, meta RequestMeta) (*ApprovalResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Status != domain.UserStatusPending {
		return nil, domain.NewInvalidStatusError(fmt.Sprintf("membership form is not pending (status: %s)", user.Status))
	}

	now := time.Now().UTC()
	year := now.Year()

	memberSeq, err := s.seqRepo.Next(ctx, repository.SequenceKindMembershipNumber, year)
	if err != nil {
		return nil, fmt.Errorf("failed to draw membership number sequence: %w", err)
	}
	formSeq, err := s.seqRepo.Next(ctx, repository.SequenceKindFormCode, year)
	if err != nil {
		return nil, fmt.Errorf("failed to draw form code sequence: %w", err)
	}

	membershipNumber := FormatMembershipNumber(year, memberSeq)
	formCode := FormatFormCode(year, formSeq)

	updated, err := s.userRepo.ApproveMembership(ctx, userID, membershipNumber, formCode, now)
	if err != nil {
		return nil, fmt.Errorf("failed to approve membership: %w", err)
	}
	if !updated {
		// A concurrent transition won the race between our read and the
		// conditional update.
		return nil, domain.NewInvalidStatusError("membership form is no longer pending")
	}

	emailSent := false
	if user.Email != "" {
		if err := s.emailSvc.SendApprovalNotification(ctx, user.Email, user.Name, membershipNumber); err != nil {
			logger.Warn("approval email failed", "user_id", userID, "error", err)
			metrics.EmailSendFailures.WithLabelValues("approval").Inc()
		} else {
			emailSent = true
		}
	}

	s.auditSvc.Record(ctx, adminID, domain.ActionApproveMembershipForm, map[string]any{
		"user_id":           userID,
		"membership_number": membershipNumber,
		"form_code":         formCode,
		"email_sent":        emailSent,
	}, meta)

	return &ApprovalResult{
		MembershipNumber: membershipNumber,
		FormCode:         formCode,
		EmailSent:        emailSent,
	}, nil
}

func (s *reviewService) Reject(ctx context.Context, userID, adminID int64, reason string, meta RequestMeta) (*RejectionResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewValidationError("rejection reason is required",
			domain.FieldError{Field: "rejection_reason", Message: "must not be empty"})
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Status != domain.UserStatusPending {
		return nil, domain.NewInvalidStatusError(fmt.Sprintf("membership form is not pending (status: %s)", user.Status))
	}

	updated, err := s.userRepo.RejectMembership(ctx, userID, adminID, reason, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to reject membership: %w", err)
	}
	if !updated {
		return nil, domain.NewInvalidStatusError("membership form is no longer pending")
	}

	emailSent := false
	if user.Email != "" {
		if err := s.emailSvc.SendRejectionNotification(ctx, user.Email, user.Name, reason); err != nil {
			logger.Warn("rejection email failed", "user_id", userID, "error", err)
			metrics.EmailSendFailures.WithLabelValues("rejection").Inc()
		} else {
			emailSent = true
		}
	}

	s.auditSvc.Record(ctx, adminID, domain.ActionRejectMembershipForm, map[string]any{
		"user_id":    userID,
		"reason":     reason,
		"email_sent": emailSent,
	}, meta)

	return &RejectionResult{Reason: reason, EmailSent: emailSent}, nil
}

// FormatMembershipNumber renders the issued membership number, e.g. the first
// approval of 2025 yields "SGM-2025-001".
func FormatMembershipNumber(year int, seq int64) string {
	return fmt.Sprintf("SGM-%d-%03d", year, seq)
}

// FormatFormCode renders the issued form code, e.g. "N°001/AGCO/M/2025".
func FormatFormCode(year int, seq int64) string {
	return fmt.Sprintf("N°%03d/AGCO/M/%d", seq, year)
}
