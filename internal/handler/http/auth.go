package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/utils"
	"github.com/MKhiriev/go-employees/models"
)

// token exchanges a form-encoded username and password for a bearer token.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	}

	credentials := models.Credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	credential, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, credential)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", credential.Username).Msg("token issued")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}
