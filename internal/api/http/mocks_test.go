package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/service"
)

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) ListForms(ctx context.Context, status domain.UserStatus, search string, page, limit int32) (*service.FormListing, error) {
	args := m.Called(ctx, status, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FormListing), args.Error(1)
}

func (m *MockReviewService) Approve(ctx context.Context, userID, adminID int64, meta service.RequestMeta) (*service.ApprovalResult, error) {
	args := m.Called(ctx, userID, adminID, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ApprovalResult), args.Error(1)
}

func (m *MockReviewService) Reject(ctx context.Context, userID, adminID int64, reason string, meta service.RequestMeta) (*service.RejectionResult, error) {
	args := m.Called(ctx, userID, adminID, reason, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RejectionResult), args.Error(1)
}

type MockInvitationService struct {
	mock.Mock
}

func (m *MockInvitationService) Create(ctx context.Context, email string, role domain.UserRole, adminID int64, meta service.RequestMeta) (*service.InvitationResult, error) {
	args := m.Called(ctx, email, role, adminID, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvitationResult), args.Error(1)
}

func (m *MockInvitationService) List(ctx context.Context, status domain.InvitationStatus, page, limit int32) (*service.InvitationListing, error) {
	args := m.Called(ctx, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvitationListing), args.Error(1)
}

func (m *MockInvitationService) Delete(ctx context.Context, id, adminID int64, meta service.RequestMeta) error {
	args := m.Called(ctx, id, adminID, meta)
	return args.Error(0)
}

func (m *MockInvitationService) Resend(ctx context.Context, id, adminID int64, meta service.RequestMeta) (*service.InvitationResult, error) {
	args := m.Called(ctx, id, adminID, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvitationResult), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, page, limit int32) (*service.Dashboard, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, actorID int64, action string, details map[string]any, meta service.RequestMeta) {
	m.Called(ctx, actorID, action, details, meta)
}

func (m *MockAuditService) List(ctx context.Context, page, limit int32) (*service.AuditListing, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuditListing), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if args.Get(1) != nil {
		user = args.Get(1).(*domain.User)
	}
	return args.String(0), user, args.Error(2)
}
