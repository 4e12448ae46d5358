package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/repository"
	"association-admin-backend/internal/security"
)

func testAdmin(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	username := "admin"
	return &domain.User{
		ID:           1,
		Name:         "Admin",
		Email:        "admin@test.com",
		Username:     &username,
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", 60)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		admin := testAdmin(t, "s3cret")
		userRepo.On("GetByUsername", ctx, "admin").Return(admin, nil).Once()
		userRepo.On("UpdateLastLogin", ctx, int64(1), mock.AnythingOfType("time.Time")).Return(nil).Once()

		token, user, err := svc.Login(ctx, "admin", "s3cret")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int64(1), user.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		admin := testAdmin(t, "s3cret")
		userRepo.On("GetByUsername", ctx, "admin").Return(admin, nil).Once()

		_, _, err := svc.Login(ctx, "admin", "wrong")
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindUnauthorized, appErr.Kind)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

		_, _, err := svc.Login(ctx, "ghost", "pw")
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindUnauthorized, appErr.Kind)
	})

	t.Run("MemberCannotLogin", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		member := testAdmin(t, "s3cret")
		member.Role = domain.UserRoleMember
		userRepo.On("GetByUsername", ctx, "admin").Return(member, nil).Once()

		_, _, err := svc.Login(ctx, "admin", "s3cret")
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindUnauthorized, appErr.Kind)
	})

	t.Run("MissingInput", func(t *testing.T) {
		svc := NewAuthService(nil, tokens)
		_, _, err := svc.Login(ctx, "", "")
		appErr, ok := domain.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrorKindValidation, appErr.Kind)
	})
}
