package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"association-admin-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListMembers(ctx context.Context, page, limit int32) ([]domain.User, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}
func (m *MockUserRepo) ApproveMembership(ctx context.Context, id int64, membershipNumber, formCode string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, membershipNumber, formCode, at)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) RejectMembership(ctx context.Context, id int64, rejectedBy int64, reason string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, rejectedBy, reason, at)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) CountMembers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) CountWithCredentials(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) CountWithSubmittedForm(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) CountByStatus(ctx context.Context, status domain.UserStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) CountRecentLogins(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) CountPendingSubmitted(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFormRepo
type MockFormRepo struct {
	mock.Mock
}

func (m *MockFormRepo) GetByUserID(ctx context.Context, userID int64) (*domain.MembershipForm, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipForm), args.Error(1)
}
func (m *MockFormRepo) ListWithApplicants(ctx context.Context, status domain.UserStatus, search string, page, limit int32) ([]domain.FormWithApplicant, int64, error) {
	args := m.Called(ctx, status, search, page, limit)
	return args.Get(0).([]domain.FormWithApplicant), args.Get(1).(int64), args.Error(2)
}

// MockInvitationRepo
type MockInvitationRepo struct {
	mock.Mock
}

func (m *MockInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvitationRepo) GetByID(ctx context.Context, id int64) (*domain.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationRepo) FindActiveByEmail(ctx context.Context, email string, now time.Time) (*domain.Invitation, error) {
	args := m.Called(ctx, email, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
func (m *MockInvitationRepo) List(ctx context.Context, status domain.InvitationStatus, page, limit int32, now time.Time) ([]domain.InvitationWithInviter, int64, error) {
	args := m.Called(ctx, status, page, limit, now)
	return args.Get(0).([]domain.InvitationWithInviter), args.Get(1).(int64), args.Error(2)
}
func (m *MockInvitationRepo) Stats(ctx context.Context, now time.Time) (*domain.InvitationStats, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvitationStats), args.Error(1)
}
func (m *MockInvitationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockInvitationRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditRepo
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditRepo) List(ctx context.Context, page, limit int32) ([]domain.AuditLog, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]domain.AuditLog), args.Get(1).(int64), args.Error(2)
}

// MockSequenceRepo
type MockSequenceRepo struct {
	mock.Mock
}

func (m *MockSequenceRepo) Next(ctx context.Context, kind string, year int) (int64, error) {
	args := m.Called(ctx, kind, year)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApprovalNotification(ctx context.Context, email, name, membershipNumber string) error {
	args := m.Called(ctx, email, name, membershipNumber)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionNotification(ctx context.Context, email, name, reason string) error {
	args := m.Called(ctx, email, name, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendInvitation(ctx context.Context, email string, role domain.UserRole, token string) error {
	args := m.Called(ctx, email, role, token)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingReviewReminder(ctx context.Context, adminEmail, adminName string, pendingCount int64) error {
	args := m.Called(ctx, adminEmail, adminName, pendingCount)
	return args.Error(0)
}

// MockAuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, actorID int64, action string, details map[string]any, meta RequestMeta) {
	m.Called(ctx, actorID, action, details, meta)
}
func (m *MockAuditService) List(ctx context.Context, page, limit int32) (*AuditListing, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AuditListing), args.Error(1)
}
