package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/payload"
	"github.com/mavesys/foodcourt-api/internal/repository"
	"github.com/mavesys/foodcourt-api/internal/usecase"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

// MoodActivityHandler serves the mood app's activity endpoints: lightweight
// registration counting, open tracking and the service switch.
type MoodActivityHandler struct {
	activityUsecase usecase.MoodActivityUsecase
	activityRepo    repository.MoodActivityRepository
	validator       *validation.Validator
	logger          zerolog.Logger
}

func NewMoodActivityHandler(
	activityUsecase usecase.MoodActivityUsecase,
	activityRepo repository.MoodActivityRepository,
	validator *validation.Validator,
	logger zerolog.Logger,
) *MoodActivityHandler {
	return &MoodActivityHandler{
		activityUsecase: activityUsecase,
		activityRepo:    activityRepo,
		validator:       validator,
		logger:          logger,
	}
}

func (h *MoodActivityHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterMoodUserRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, created, err := h.activityUsecase.RegisterMoodUser(r.Context(), req.Name, req.Email)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to register mood user")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message":    "Error processing registration",
			"statusCode": http.StatusInternalServerError,
		})
		return
	}

	status := http.StatusOK
	message := "User registered again successfully"
	if created {
		status = http.StatusCreated
		message = "User registered successfully"
	}

	writeJSON(w, status, map[string]any{
		"message":    message,
		"statusCode": status,
		"user": map[string]any{
			"name":              user.Name,
			"email":             user.Email,
			"registrationCount": user.RegistrationCount,
		},
	})
}

func (h *MoodActivityHandler) RecordAppOpen(w http.ResponseWriter, r *http.Request) {
	userAgent := r.Header.Get("User-Agent")

	appData, err := h.activityUsecase.RecordAppOpen(r.Context(), userAgent)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to record app open")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message":    "Internal Server Error",
			"statusCode": http.StatusInternalServerError,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     fmt.Sprintf("App has been opened on a %s", appData.DeviceInfo),
		"totalOpens":  appData.TotalOpens,
		"deviceOpens": appData.DeviceVisits[repository.SanitizeVisitKey(userAgent)],
		"statusCode":  http.StatusOK,
	})
}

func (h *MoodActivityHandler) SetServiceStatus(w http.ResponseWriter, r *http.Request) {
	var req payload.SwitchServiceRequest
	if err := readJSON(r, &req); err != nil || req.Number == nil {
		writeServiceError(w, http.StatusBadRequest, "Please provide a valid number.")
		return
	}

	status, err := h.activityRepo.SetServiceStatus(r.Context(), *req.Number)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to set service status")
		writeServiceError(w, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	data := 1
	if status.Number == 0 {
		data = 0
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"statusCode": http.StatusOK,
		"data":       data,
	})
}

func (h *MoodActivityHandler) GetServiceStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.activityRepo.GetServiceStatus(r.Context())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeServiceError(w, http.StatusNotFound, "No data found.")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch service status")
		writeServiceError(w, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"statusCode": http.StatusOK,
		"data":       status.Number,
	})
}

func (h *MoodActivityHandler) UpdateServiceStatus(w http.ResponseWriter, r *http.Request) {
	var req payload.SwitchServiceRequest
	if err := readJSON(r, &req); err != nil || req.Number == nil {
		writeServiceError(w, http.StatusBadRequest, "Please provide a valid number.")
		return
	}

	status, err := h.activityRepo.UpdateServiceStatus(r.Context(), *req.Number)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeServiceError(w, http.StatusNotFound, "No data found to update.")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update service status")
		writeServiceError(w, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"statusCode": http.StatusOK,
		"data":       status.Number,
	})
}

func writeServiceError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"status":     "error",
		"statusCode": status,
		"error":      message,
	})
}
