package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Account Registration Endpoint
//	@Description	Create a new user account. Usernames are 3-32 characters (alphanumeric, underscore, hyphen) and must be unique, as must email addresses.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.RegisterRequest		true	"Registration request"
//	@Success		201		{object}	clubsdk.RegisterResponse	"user_id, username"
//	@Failure		400		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"username must be 3-32 characters: letters, digits, underscore or hyphen").WriteError(w)
		case errors.Is(err, service.ErrInvalidEmail):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"a valid email address is required").WriteError(w)
		case errors.Is(err, service.ErrInvalidPassword):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"password must be 8-128 characters").WriteError(w)
		case errors.Is(err, service.ErrUserExists):
			clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
				"username or email already in use").WriteError(w)
		default:
			log.Error("failed to register user", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clubsdk.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

type LoginHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Password Login Endpoint
//	@Description	Exchange a username and password for a short-lived bearer access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	clubsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	_, token, err := h.UserService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			clubsdk.ErrUnauthorized.WriteError(w)
		case errors.Is(err, service.ErrAccountDisabled):
			clubsdk.NewAPIError(http.StatusUnauthorized, clubsdk.ErrorCodeUnauthorized,
				"account is deactivated").WriteError(w)
		default:
			log.Error("failed to log in user", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, clubsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.UserService.AccessTTL.Seconds()),
	})
}
