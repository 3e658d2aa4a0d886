package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/auth"
)

func newTestAuthService(t *testing.T, repo *mockUserRepo, now time.Time) (AuthService, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "wildlife-tracker-test",
	})
	return NewAuthService(repo, jwtService, func() time.Time { return now }, zerolog.Nop()), jwtService
}

func storedUser(t *testing.T, password string, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{ID: 7, Username: "ranger", HashedPassword: hash, Role: models.RoleRanger, IsActive: active}
}

func TestLoginIssuesTokenForSubject(t *testing.T) {
	now := time.Now().UTC()
	repo := new(mockUserRepo)
	repo.On("GetByUsername", mock.Anything, "ranger").Return(storedUser(t, "s3cret-pass", true), nil)
	repo.On("UpdateLastLogin", mock.Anything, int64(7), now).Return(nil).Once()

	svc, jwtService := newTestAuthService(t, repo, now)
	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ranger", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(1800), resp.ExpiresIn)

	subject, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), subject.UserID)
	repo.AssertExpectations(t)
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, repo *mockUserRepo)
		password string
		wantErr  error
	}{
		{
			name: "unknown user",
			setup: func(t *testing.T, repo *mockUserRepo) {
				repo.On("GetByUsername", mock.Anything, "ranger").Return(nil, apperrors.ErrUserNotFound)
			},
			password: "whatever1",
			wantErr:  apperrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(t *testing.T, repo *mockUserRepo) {
				repo.On("GetByUsername", mock.Anything, "ranger").Return(storedUser(t, "right-pass", true), nil)
			},
			password: "wrong-pass",
			wantErr:  apperrors.ErrInvalidCredentials,
		},
		{
			name: "inactive account",
			setup: func(t *testing.T, repo *mockUserRepo) {
				repo.On("GetByUsername", mock.Anything, "ranger").Return(storedUser(t, "right-pass", false), nil)
			},
			password: "right-pass",
			wantErr:  apperrors.ErrAccountDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepo)
			tt.setup(t, repo)

			svc, _ := newTestAuthService(t, repo, time.Now())
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ranger", Password: tt.password})
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestLoginSurvivesLastLoginFailure(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByUsername", mock.Anything, "ranger").Return(storedUser(t, "s3cret-pass", true), nil)
	repo.On("UpdateLastLogin", mock.Anything, int64(7), mock.Anything).Return(errors.New("db down"))

	svc, _ := newTestAuthService(t, repo, time.Now())
	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ranger", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestCurrentUserForDeletedAccountIsInvalidToken(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, apperrors.ErrUserNotFound)

	svc, _ := newTestAuthService(t, repo, time.Now())
	_, err := svc.CurrentUser(context.Background(), 7)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
