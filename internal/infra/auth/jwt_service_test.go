package auth

import (
	"testing"

	"epro/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	profileID := uuid.New()

	access, refresh, err := svc.GenerateTokens(profileID, "student")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, profileID, claims.ProfileID)
	assert.Equal(t, "student", claims.Role)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, profileID, refreshClaims.ProfileID)
	assert.Empty(t, refreshClaims.Role, "refresh tokens must not carry a role")
}

func TestJWTService_TokenTypeNotInterchangeable(t *testing.T) {
	svc := newTestJWTService(t)

	access, refresh, err := svc.GenerateTokens(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err, "a refresh token must not pass access validation")

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err, "an access token must not pass refresh validation")
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	access, _, err := svc.GenerateTokens(uuid.New(), "student")
	require.NoError(t, err)

	tampered := access[:len(access)-2] + "xx"
	_, err = svc.ValidateAccessToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	svc := newTestJWTService(t)

	h1 := svc.HashToken("some-refresh-token")
	h2 := svc.HashToken("some-refresh-token")
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, svc.HashToken("another-token"))
	assert.Len(t, h1, 64)
}

func TestBcryptHasher_PasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "correct1horse", wantErr: false},
		{name: "too short", password: "ab1", wantErr: true},
		{name: "no digit", password: "onlyletters", wantErr: true},
		{name: "no letter", password: "1234567890", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("correct1horse")
	require.NoError(t, err)

	assert.True(t, hasher.Check("correct1horse", hash))
	assert.False(t, hasher.Check("wrong1horse", hash))
}
