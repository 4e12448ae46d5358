package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/repository"
)

func newReviewService(userRepo *MockUserRepo, formRepo *MockFormRepo, seqRepo *MockSequenceRepo, emailSvc *MockEmailService, auditSvc *MockAuditService) ReviewService {
	return NewReviewService(userRepo, formRepo, seqRepo, emailSvc, auditSvc)
}

func TestReviewService_Approve(t *testing.T) {
	ctx := context.Background()
	meta := RequestMeta{IP: "10.0.0.1", UserAgent: "test"}
	year := time.Now().UTC().Year()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		seqRepo := new(MockSequenceRepo)
		emailSvc := new(MockEmailService)
		auditSvc := new(MockAuditService)
		svc := newReviewService(userRepo, nil, seqRepo, emailSvc, auditSvc)

		user := &domain.User{ID: 1, Name: "Jean", Email: "jean@test.com", Status: domain.UserStatusPending}
		userRepo.On("GetByID", ctx, int64(1)).Return(user, nil).Once()
		seqRepo.On("Next", ctx, repository.SequenceKindMembershipNumber, year).Return(int64(7), nil).Once()
		seqRepo.On("Next", ctx, repository.SequenceKindFormCode, year).Return(int64(7), nil).Once()

		wantNumber := fmt.Sprintf("SGM-%d-007", year)
		wantCode := fmt.Sprintf("N°007/AGCO/M/%d", year)
		userRepo.On("ApproveMembership", ctx, int64(1), wantNumber, wantCode, mock.AnythingOfType("time.Time")).Return(true, nil).Once()
		emailSvc.On("SendApprovalNotification", ctx, "jean@test.com", "Jean", wantNumber).Return(nil).Once()
		auditSvc.On("Record", ctx, int64(99), domain.ActionApproveMembershipForm, mock.MatchedBy(func(d map[string]any) bool {
			return d["user_id"] == int64(1) && d["email_sent"] == true
		}), meta).Once()

		result, err := svc.Approve(ctx, 1, 99, meta)
		assert.NoError(t, err)
		assert.Equal(t, wantNumber, result.MembershipNumber)
		assert.Equal(t, wantCode, result.FormCode)
		assert.True(t, result.EmailSent)

		userRepo.AssertExpectations(t)
		seqRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
		auditSvc.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newReviewService(userRepo, nil, nil, nil, nil)

		userRepo.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Approve(ctx, 404, 99, meta)
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindNotFound, appErr.Kind)
	})

	t.Run("AlreadyApproved", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newReviewService(userRepo, nil, nil, nil, nil)

		user := &domain.User{ID: 2, Status: domain.UserStatusApproved}
		userRepo.On("GetByID", ctx, int64(2)).Return(user, nil).Once()

		_, err := svc.Approve(ctx, 2, 99, meta)
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindInvalidStatus, appErr.Kind)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("LostRace", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		seqRepo := new(MockSequenceRepo)
		svc := newReviewService(userRepo, nil, seqRepo, nil, nil)

		user := &domain.User{ID: 3, Status: domain.UserStatusPending}
		userRepo.On("GetByID", ctx, int64(3)).Return(user, nil).Once()
		seqRepo.On("Next", ctx, mock.Anything, year).Return(int64(8), nil).Twice()
		userRepo.On("ApproveMembership", ctx, int64(3), mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()

		_, err := svc.Approve(ctx, 3, 99, meta)
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindInvalidStatus, appErr.Kind)
	})

	t.Run("EmailFailureDoesNotFailRequest", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		seqRepo := new(MockSequenceRepo)
		emailSvc := new(MockEmailService)
		auditSvc := new(MockAuditService)
		svc := newReviewService(userRepo, nil, seqRepo, emailSvc, auditSvc)

		user := &domain.User{ID: 4, Name: "Ana", Email: "ana@test.com", Status: domain.UserStatusPending}
		userRepo.On("GetByID", ctx, int64(4)).Return(user, nil).Once()
		seqRepo.On("Next", ctx, mock.Anything, year).Return(int64(9), nil).Twice()
		userRepo.On("ApproveMembership", ctx, int64(4), mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
		emailSvc.On("SendApprovalNotification", ctx, "ana@test.com", "Ana", mock.Anything).Return(errors.New("smtp down")).Once()
		auditSvc.On("Record", ctx, int64(99), domain.ActionApproveMembershipForm, mock.Anything, meta).Once()

		result, err := svc.Approve(ctx, 4, 99, meta)
		assert.NoError(t, err)
		assert.False(t, result.EmailSent)
	})

	t.Run("NoEmailAddressSkipsSend", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		seqRepo := new(MockSequenceRepo)
		emailSvc := new(MockEmailService)
		auditSvc := new(MockAuditService)
		svc := newReviewService(userRepo, nil, seqRepo, emailSvc, auditSvc)

		user := &domain.User{ID: 5, Name: "NoMail", Status: domain.UserStatusPending}
		userRepo.On("GetByID", ctx, int64(5)).Return(user, nil).Once()
		seqRepo.On("Next", ctx, mock.Anything, year).Return(int64(10), nil).Twice()
		userRepo.On("ApproveMembership", ctx, int64(5), mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
		auditSvc.On("Record", ctx, int64(99), domain.ActionApproveMembershipForm, mock.Anything, meta).Once()

		result, err := svc.Approve(ctx, 5, 99, meta)
		assert.NoError(t, err)
		assert.False(t, result.EmailSent)
		emailSvc.AssertNotCalled(t, "SendApprovalNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewService_Reject(t *testing.T) {
	ctx := context.Background()
	meta := RequestMeta{IP: "10.0.0.1", UserAgent: "test"}

	t.Run("EmptyReason", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newReviewService(userRepo, nil, nil, nil, nil)

		_, err := svc.Reject(ctx, 1, 99, "   ", meta)
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindValidation, appErr.Kind)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		auditSvc := new(MockAuditService)
		svc := newReviewService(userRepo, nil, nil, emailSvc, auditSvc)

		user := &domain.User{ID: 1, Name: "Jean", Email: "jean@test.com", Status: domain.UserStatusPending}
		userRepo.On("GetByID", ctx, int64(1)).Return(user, nil).Once()
		userRepo.On("RejectMembership", ctx, int64(1), int64(99), "incomplete documents", mock.AnythingOfType("time.Time")).Return(true, nil).Once()
		emailSvc.On("SendRejectionNotification", ctx, "jean@test.com", "Jean", "incomplete documents").Return(nil).Once()
		auditSvc.On("Record", ctx, int64(99), domain.ActionRejectMembershipForm, mock.MatchedBy(func(d map[string]any) bool {
			return d["reason"] == "incomplete documents"
		}), meta).Once()

		result, err := svc.Reject(ctx, 1, 99, "incomplete documents", meta)
		assert.NoError(t, err)
		assert.Equal(t, "incomplete documents", result.Reason)
		assert.True(t, result.EmailSent)

		userRepo.AssertExpectations(t)
		auditSvc.AssertExpectations(t)
	})

	t.Run("AlreadyRejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newReviewService(userRepo, nil, nil, nil, nil)

		user := &domain.User{ID: 2, Status: domain.UserStatusRejected}
		userRepo.On("GetByID", ctx, int64(2)).Return(user, nil).Once()

		_, err := svc.Reject(ctx, 2, 99, "reason", meta)
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindInvalidStatus, appErr.Kind)
		userRepo.AssertNotCalled(t, "RejectMembership", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewService_ListForms(t *testing.T) {
	ctx := context.Background()
	formRepo := new(MockFormRepo)
	svc := newReviewService(nil, formRepo, nil, nil, nil)

	forms := []domain.FormWithApplicant{{Form: domain.MembershipForm{ID: 1, UserID: 1}}}
	formRepo.On("ListWithApplicants", ctx, domain.UserStatusPending, "jean", int32(2), int32(10)).Return(forms, int64(25), nil).Once()

	listing, err := svc.ListForms(ctx, domain.UserStatusPending, " jean ", 2, 10)
	assert.NoError(t, err)
	assert.Len(t, listing.Forms, 1)
	assert.Equal(t, int64(25), listing.Pagination.Total)
	assert.Equal(t, int64(3), listing.Pagination.TotalPages)
	formRepo.AssertExpectations(t)
}

func TestFormatCodes(t *testing.T) {
	assert.Equal(t, "SGM-2025-001", FormatMembershipNumber(2025, 1))
	assert.Equal(t, "SGM-2025-042", FormatMembershipNumber(2025, 42))
	assert.Equal(t, "SGM-2025-1000", FormatMembershipNumber(2025, 1000))
	assert.Equal(t, "N°001/AGCO/M/2025", FormatFormCode(2025, 1))
	assert.Equal(t, "N°123/AGCO/M/2025", FormatFormCode(2025, 123))
}
