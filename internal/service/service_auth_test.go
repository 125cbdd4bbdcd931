package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/models"
)

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newTestAuthSvc(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-id-verifier",
		TokenDuration: time.Hour,
		Users: map[string]string{
			"alice": bcryptHash(t, "alice-pw"),
			"bob":   bcryptHash(t, "bob-pw"),
		},
		Admins: []string{"alice"},
	}, logger.Nop())
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthSvc(t)

	tests := []struct {
		name     string
		user     models.User
		wantRole models.Role
		wantErr  error
	}{
		{name: "admin", user: models.User{Username: "alice", Password: "alice-pw"}, wantRole: models.RoleAdmin},
		{name: "regular user", user: models.User{Username: "bob", Password: "bob-pw"}, wantRole: models.RoleUser},
		{name: "wrong password", user: models.User{Username: "bob", Password: "nope"}, wantErr: ErrWrongCredentials},
		{name: "unknown user", user: models.User{Username: "carol", Password: "x"}, wantErr: ErrWrongCredentials},
		{name: "empty password", user: models.User{Username: "bob"}, wantErr: ErrInvalidDataProvided},
		{name: "empty username", user: models.User{Password: "x"}, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Login(context.Background(), tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got.Username)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.user.Username, got.Username)
			assert.Equal(t, tt.wantRole, got.Role)
			assert.Empty(t, got.Password)
		})
	}
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthSvc(t)
	ctx := context.Background()

	user, err := svc.Login(ctx, models.User{Username: "alice", Password: "alice-pw"})
	require.NoError(t, err)

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
	assert.True(t, parsed.IsAdmin())
}

func TestAuthService_CreateToken_MissingUsername(t *testing.T) {
	svc := newTestAuthSvc(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthSvc(t)
	ctx := context.Background()

	other := NewAuthService(config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   "go-id-verifier",
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(ctx, models.User{Username: "alice", Role: models.RoleAdmin})
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":        "not.a.jwt",
		"empty":          "",
		"wrong sign key": foreign.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
