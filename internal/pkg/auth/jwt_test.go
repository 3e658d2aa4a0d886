package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "wildlife-tracker",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService()

	token, expiresIn, err := svc.GenerateAccessToken(&models.User{ID: 42, Role: models.RoleRanger})
	require.NoError(t, err)
	assert.Equal(t, int64(1800), expiresIn)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), subject.UserID)
	assert.Equal(t, models.RoleRanger, subject.Role)
}

func TestValidateTokenCollapsesFailures(t *testing.T) {
	svc := newTestService()
	valid, _, err := svc.GenerateAccessToken(&models.User{ID: 7})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "another-secret", AccessTokenExp: time.Minute})
	wrongKey, _, err := other.GenerateAccessToken(&models.User{ID: 7})
	require.NoError(t, err)

	expired := newTestService()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.GenerateAccessToken(&models.User{ID: 7})
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":          "",
		"malformed":      "not.a.token",
		"tampered":       valid + "x",
		"wrong key":      wrongKey,
		"expired":        expiredToken,
		"no subject":     noSubject,
		"non numeric id": badSubject,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			subject, err := svc.ValidateToken(token)
			assert.Nil(t, subject)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic dXNlcg==", "abc.def.ghi"} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidToken, header)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
}
