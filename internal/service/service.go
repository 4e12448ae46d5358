package service

import (
	"context"
	"math"

	"association-admin-backend/internal/domain"
)

// RequestMeta carries the request origin captured by the HTTP layer into the
// audit trail.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// Page is the pagination envelope shared by every listing response.
type Page struct {
	Page       int32 `json:"page"`
	Limit      int32 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewPage(page, limit int32, total int64) Page {
	var totalPages int64
	if limit > 0 {
		totalPages = int64(math.Ceil(float64(total) / float64(limit)))
	}
	return Page{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

type FormListing struct {
	Forms      []domain.FormWithApplicant `json:"forms"`
	Pagination Page                       `json:"pagination"`
}

type ApprovalResult struct {
	MembershipNumber string `json:"membership_number"`
	FormCode         string `json:"form_code"`
	EmailSent        bool   `json:"email_sent"`
}

type RejectionResult struct {
	Reason    string `json:"reason"`
	EmailSent bool   `json:"email_sent"`
}

type InvitationResult struct {
	Invitation domain.Invitation `json:"invitation"`
	EmailSent  bool              `json:"email_sent"`
}

type InvitationListing struct {
	Invitations []domain.InvitationWithInviter `json:"invitations"`
	Stats       domain.InvitationStats         `json:"stats"`
	Pagination  Page                           `json:"pagination"`
}

type Dashboard struct {
	Members    []domain.User      `json:"members"`
	Stats      domain.MemberStats `json:"stats"`
	Pagination Page               `json:"pagination"`
}

type AuditListing struct {
	Entries    []domain.AuditLog `json:"entries"`
	Pagination Page              `json:"pagination"`
}

type ReviewService interface {
	ListForms(ctx context.Context, status domain.UserStatus, search string, page, limit int32) (*FormListing, error)
	Approve(ctx context.Context, userID, adminID int64, meta RequestMeta) (*ApprovalResult, error)
	Reject(ctx context.Context, userID, adminID int64, reason string, meta RequestMeta) (*RejectionResult, error)
}

type InvitationService interface {
	Create(ctx context.Context, email string, role domain.UserRole, adminID int64, meta RequestMeta) (*InvitationResult, error)
	List(ctx context.Context, status domain.InvitationStatus, page, limit int32) (*InvitationListing, error)
	Delete(ctx context.Context, id, adminID int64, meta RequestMeta) error
	Resend(ctx context.Context, id, adminID int64, meta RequestMeta) (*InvitationResult, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context, page, limit int32) (*Dashboard, error)
}

type AuditService interface {
	// Record appends an audit entry. Failures are logged, never propagated:
	// the primary mutation has already committed by the time this runs.
	Record(ctx context.Context, actorID int64, action string, details map[string]any, meta RequestMeta)
	List(ctx context.Context, page, limit int32) (*AuditListing, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendApprovalNotification(ctx context.Context, email, name, membershipNumber string) error
	SendRejectionNotification(ctx context.Context, email, name, reason string) error
	SendInvitation(ctx context.Context, email string, role domain.UserRole, token string) error
	SendPendingReviewReminder(ctx context.Context, adminEmail, adminName string, pendingCount int64) error
}
