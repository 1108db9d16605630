package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/playshelf/playshelf/internal/application/auth"
	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
	"github.com/playshelf/playshelf/internal/infrastructure/http/middleware"
)

// AuthHandler exposes the account lifecycle over HTTP.
type AuthHandler struct {
	createAccount        *auth.CreateAccount
	login                *auth.Login
	logout               *auth.Logout
	verifyAccount        *auth.VerifyAccount
	requestPasswordReset *auth.RequestPasswordReset
	resetPassword        *auth.ResetPassword
	updatePreferences    *auth.UpdatePreferences
	requireVerification  bool
	validate             *validator.Validate
	log                  zerolog.Logger
}

// NewAuthHandler wires the use cases.
func NewAuthHandler(createAccount *auth.CreateAccount, login *auth.Login, logout *auth.Logout, verifyAccount *auth.VerifyAccount, requestPasswordReset *auth.RequestPasswordReset, resetPassword *auth.ResetPassword, updatePreferences *auth.UpdatePreferences, requireVerification bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		createAccount:        createAccount,
		login:                login,
		logout:               logout,
		verifyAccount:        verifyAccount,
		requestPasswordReset: requestPasswordReset,
		resetPassword:        resetPassword,
		updatePreferences:    updatePreferences,
		requireVerification:  requireVerification,
		validate:             validator.New(),
		log:                  log,
	}
}

// writeAuthErr maps the closed error taxonomy onto HTTP statuses; anything
// outside the taxonomy is an internal failure and surfaces no detail.
func (h *AuthHandler) writeAuthErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domerrors.ErrInvalidEmail),
		errors.Is(err, domerrors.ErrWeakPassword),
		errors.Is(err, domerrors.ErrInvalidGamerTag),
		errors.Is(err, domerrors.ErrInvalidToken),
		errors.Is(err, domerrors.ErrTokenExpired):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domerrors.ErrInvalidCredentials),
		errors.Is(err, domerrors.ErrInvalidSession):
		writeErr(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domerrors.ErrAccountNotVerified):
		writeErr(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domerrors.ErrEmailAlreadyExists),
		errors.Is(err, domerrors.ErrGamerTagAlreadyExists):
		writeErr(w, http.StatusConflict, err.Error())
	default:
		h.log.Error().Err(err).Msg("auth operation failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

type userResponse struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	GamerTag    string              `json:"gamer_tag"`
	IsVerified  bool                `json:"is_verified"`
	Preferences *domain.Preferences `json:"preferences,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		GamerTag:    u.GamerTag,
		IsVerified:  u.IsVerified,
		Preferences: u.Preferences,
	}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,max=254"`
		Password string `json:"password" validate:"required,max=128"`
		GamerTag string `json:"gamer_tag" validate:"required,max=20"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "email, password and gamer_tag are required")
		return
	}
	result, err := h.createAccount.Execute(r.Context(), auth.CreateAccountInput{
		Email:    SanitizeEmail(body.Email),
		Password: SanitizePassword(body.Password),
		GamerTag: body.GamerTag,
	})
	if err != nil {
		AuditLog(h.log, r, "user.signup", "", false, err.Error())
		middleware.RecordAuthAttempt("signup", false)
		h.writeAuthErr(w, err)
		return
	}
	AuditLog(h.log, r, "user.signup", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("signup", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user":                    toUserResponse(result.User),
		"verification_email_sent": result.VerificationDispatched,
	})
}

// Signin handles POST /api/auth/signin.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "email and password are required")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:               SanitizeEmail(body.Email),
		Password:            SanitizePassword(body.Password),
		RequireVerification: h.requireVerification,
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		h.writeAuthErr(w, err)
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_token": result.Session.Token,
		"expires_at":    result.Session.ExpiresAt,
		"user":          toUserResponse(result.User),
	})
}

// Signout handles POST /api/auth/signout.
func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionToken string `json:"session_token" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "session_token is required")
		return
	}
	if _, err := h.logout.Execute(r.Context(), auth.LogoutInput{
		SessionToken: TruncateToken(body.SessionToken),
	}); err != nil {
		h.writeAuthErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully signed out"})
}

// VerifyEmail handles POST /api/auth/verify-email. The token may arrive as
// a query param (link click) or in the body.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		var body struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			token = body.Token
		}
	}
	if token == "" {
		writeErr(w, http.StatusBadRequest, "token is required")
		return
	}
	result, err := h.verifyAccount.Execute(r.Context(), auth.VerifyAccountInput{
		Token: TruncateToken(token),
	})
	if err != nil {
		AuditLog(h.log, r, "user.verify_email", "", false, err.Error())
		h.writeAuthErr(w, err)
		return
	}
	AuditLog(h.log, r, "user.verify_email", result.User.ID.String(), true, "")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Email verified successfully",
		"user":    toUserResponse(result.User),
	})
}

// RequestPasswordReset handles POST /api/auth/request-password-reset. The
// response is identical whether or not an account exists.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "email is required")
		return
	}
	_, _ = h.requestPasswordReset.Execute(r.Context(), auth.RequestPasswordResetInput{
		Email: SanitizeEmail(body.Email),
	})
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "If an account exists with this email, a password reset link has been sent.",
	})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "token and new_password are required")
		return
	}
	result, err := h.resetPassword.Execute(r.Context(), auth.ResetPasswordInput{
		Token:       TruncateToken(body.Token),
		NewPassword: SanitizePassword(body.NewPassword),
	})
	if err != nil {
		AuditLog(h.log, r, "user.reset_password", "", false, err.Error())
		h.writeAuthErr(w, err)
		return
	}
	AuditLog(h.log, r, "user.reset_password", result.User.ID.String(), true, "")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Password reset successfully",
		"user":    toUserResponse(result.User),
	})
}

// Me handles GET /api/auth/me (session required).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "missing or invalid session")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdatePreferences handles PUT /api/auth/me/preferences (session
// required).
func (h *AuthHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "missing or invalid session")
		return
	}
	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	result, err := h.updatePreferences.Execute(r.Context(), auth.UpdatePreferencesInput{
		UserID:      user.ID,
		Preferences: &prefs,
	})
	if err != nil {
		h.writeAuthErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(result.User))
}
