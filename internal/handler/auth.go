package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mavesys/foodcourt-api/internal/payload"
	"github.com/mavesys/foodcourt-api/internal/usecase"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

// AuthHandler serves login, forgot-password and reset-password.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validation.Validator
	logger      zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validation.Validator,
	logger zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeMessage(w, http.StatusBadRequest, "Invalid Credentials")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in user")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, payload.LoginResponse{
		Message:    "Login Successfully",
		StatusCode: http.StatusOK,
		Token:      token,
		User: payload.LoginUser{
			ID:        user.ID.Hex(),
			Username:  user.Username,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req payload.ForgotPasswordRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authUsecase.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailNotRegistered):
			writeMessage(w, http.StatusBadRequest, "No user found with this email address")
		case errors.Is(err, usecase.ErrSendingEmail):
			writeMessage(w, http.StatusInternalServerError, "Error sending email")
		default:
			h.logger.Error().Err(err).Msg("failed to request password reset")
			writeMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeMessage(w, http.StatusOK, "Password reset email sent successfully")
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req payload.ResetPasswordRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.authUsecase.ResetPassword(r.Context(), token, req.Password); err != nil {
		if errors.Is(err, usecase.ErrResetTokenInvalid) {
			writeMessage(w, http.StatusBadRequest, "Invalid or expired reset token")
			return
		}

		h.logger.Error().Err(err).Msg("failed to reset password")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":      "Password successfully updated",
		"confirmation": "Your password has been successfully changed.",
	})
}
