package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/service"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the parsed token in the
// request context under [utils.TokenCtxKey] before delegating to the next
// handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent
// ([ErrEmptyAuthorizationHeader]), is not a bearer header
// ([ErrInvalidAuthorizationHeader]) or carries an invalid or expired token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly rejects callers whose token lacks the ADMIN role with HTTP 403.
// It must run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.GetTokenFromContext(r.Context())
		if !ok || !token.IsAdmin() {
			logger.FromRequest(r).Warn().Str("username", token.Username).Msg("admin route refused")
			http.Error(w, ErrAdminRoleRequired.Error(), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
