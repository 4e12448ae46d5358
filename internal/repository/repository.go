package repository

import (
	"context"
	"errors"
	"time"

	"association-admin-backend/internal/domain"
)

// ErrNotFound is returned when a row does not exist. The postgres
// implementations translate sql.ErrNoRows into this.
var ErrNotFound = errors.New("not found")

// Sequence kinds for issued codes.
const (
	SequenceKindMembershipNumber = "membership_number"
	SequenceKindFormCode         = "form_code"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListMembers(ctx context.Context, page, limit int32) ([]domain.User, int64, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	// ApproveMembership sets status APPROVED with the issued codes, only if
	// the row is still PENDING. Returns false when no row was updated.
	ApproveMembership(ctx context.Context, id int64, membershipNumber, formCode string, at time.Time) (bool, error)
	// RejectMembership sets status REJECTED, only if still PENDING.
	RejectMembership(ctx context.Context, id int64, rejectedBy int64, reason string, at time.Time) (bool, error)

	// Dashboard counts, all excluding ADMIN users.
	CountMembers(ctx context.Context) (int64, error)
	CountWithCredentials(ctx context.Context) (int64, error)
	CountWithSubmittedForm(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.UserStatus) (int64, error)
	CountRecentLogins(ctx context.Context, since time.Time) (int64, error)
	CountPendingSubmitted(ctx context.Context) (int64, error)
}

type MembershipFormRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.MembershipForm, error)
	// ListWithApplicants returns a page of forms joined with applicant summary
	// fields, filtered by applicant status and an optional case-insensitive
	// substring search over name/email/phone/username. Ordered by submission
	// time descending.
	ListWithApplicants(ctx context.Context, status domain.UserStatus, search string, page, limit int32) ([]domain.FormWithApplicant, int64, error)
}

type InvitationRepository interface {
	Create(ctx context.Context, inv *domain.Invitation) error
	GetByID(ctx context.Context, id int64) (*domain.Invitation, error)
	// FindActiveByEmail returns a pending, unexpired invitation for the email,
	// or ErrNotFound.
	FindActiveByEmail(ctx context.Context, email string, now time.Time) (*domain.Invitation, error)
	List(ctx context.Context, status domain.InvitationStatus, page, limit int32, now time.Time) ([]domain.InvitationWithInviter, int64, error)
	Stats(ctx context.Context, now time.Time) (*domain.InvitationStats, error)
	Delete(ctx context.Context, id int64) error
	// DeleteExpiredBefore removes pending invitations whose expiry passed
	// before the cutoff. Returns the number of rows removed.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, page, limit int32) ([]domain.AuditLog, int64, error)
}

// SequenceRepository hands out per-year sequence values with an atomic
// upsert-increment, so two concurrent approvals can never draw the same
// number.
type SequenceRepository interface {
	Next(ctx context.Context, kind string, year int) (int64, error)
}
