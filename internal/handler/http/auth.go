package http

import (
	"net/http"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
	"github.com/MKhiriev/go-id-verifier/models"
)

const maxLoginBodySize = 4 << 10

// tokenValidation is the body of GET /api/auth/validate.
type tokenValidation struct {
	Valid    bool        `json:"valid"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(w, r, &user, maxLoginBodySize); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, user); err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("login failed")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("username", foundUser.Username).Str("role", string(foundUser.Role)).Msg("user logged in")

	response := models.LoginResponse{
		Token:    token.SignedString,
		Username: foundUser.Username,
		Role:     foundUser.Role,
	}
	if exp := token.ExpiresAt(); !exp.IsZero() {
		response.ExpiresIn = exp.UnixMilli()
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) validateToken(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, tokenValidation{}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, tokenValidation{Valid: true, Username: token.Username, Role: token.Role}, http.StatusOK)
}
