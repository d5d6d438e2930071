package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/payload"
	"github.com/mavesys/foodcourt-api/internal/usecase"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

// UserHandler serves the user CRUD endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validation.Validator
	logger      zerolog.Logger
}

func NewUserHandler(
	userUsecase usecase.UserUsecase,
	validator *validation.Validator,
	logger zerolog.Logger,
) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
		logger:      logger,
	}
}

type listUsersResponse struct {
	Users      []*model.User       `json:"users"`
	Pagination listUsersPagination `json:"pagination"`
}

type listUsersPagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalUser   int64 `json:"totalUser"`
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := readJSON(r, &req); err != nil {
		writeErrorField(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeErrorField(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), usecase.RegisterParams{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			writeErrorField(w, http.StatusBadRequest, "User already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to create user")
		writeErrorField(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page := queryPage(r)

	users, total, err := h.userUsecase.ListUsers(r.Context(), page)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list users")
		writeErrorField(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	writeJSON(w, http.StatusOK, listUsersResponse{
		Users: users,
		Pagination: listUsersPagination{
			CurrentPage: page.Number,
			TotalPages:  page.TotalPages(total),
			TotalUser:   total,
		},
	})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUsecase.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch user")
		writeErrorField(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateUserRequest
	if err := readJSON(r, &req); err != nil {
		writeErrorField(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeErrorField(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), chi.URLParam(r, "id"), usecase.UpdateUserParams{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			writeErrorField(w, http.StatusBadRequest, "Username or email already taken")
		default:
			h.logger.Error().Err(err).Msg("failed to update user")
			writeErrorField(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userUsecase.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete user")
		writeErrorField(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	writeMessage(w, http.StatusOK, "User deleted successfully")
}
