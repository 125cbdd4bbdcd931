package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
	"github.com/MKhiriev/go-id-verifier/models"
)

// dummyHash is compared against when the username is unknown, so that a
// failed lookup costs as much as a wrong password.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z0gJ0n4KkRvmcQvWZcFZ9r1e")

// authService authenticates the operators configured in [config.App.Users]
// and issues HS256 access tokens for them.
type authService struct {
	// users maps a username to its bcrypt password hash.
	users map[string]string

	// admins get [models.RoleAdmin]; everybody else gets [models.RoleUser].
	admins []string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService builds an AuthService from the App config group.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         cfg.Users,
		admins:        cfg.Admins,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login checks the password against the configured bcrypt hash and returns
// the user with its role set. The password is cleared from the result.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("func", "*authService.Login").Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, ok := a.users[user.Username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(user.Password))
		log.Warn().Str("username", user.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(user.Password)); err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	role := models.RoleUser
	if slices.Contains(a.admins, user.Username) {
		role = models.RoleAdmin
	}

	return models.User{Username: user.Username, Role: role}, nil
}

// CreateToken issues a signed JWT for an authenticated user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates signature, issuer and expiry. Every failure is
// reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
