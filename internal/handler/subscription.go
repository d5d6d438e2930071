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

// SubscriptionHandler serves the meal subscription endpoints.
type SubscriptionHandler struct {
	subscriptionUsecase usecase.SubscriptionUsecase
	validator           *validation.Validator
	logger              zerolog.Logger
}

func NewSubscriptionHandler(
	subscriptionUsecase usecase.SubscriptionUsecase,
	validator *validation.Validator,
	logger zerolog.Logger,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUsecase: subscriptionUsecase,
		validator:           validator,
		logger:              logger,
	}
}

func (h *SubscriptionHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateSubscriptionRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.subscriptionUsecase.CreateTemplate(r.Context(), usecase.CreateTemplateParams{
		Plan:         model.SubscriptionPlan(req.Plan),
		MealType:     model.MealType(req.MealType),
		Price:        req.Price,
		MealCount:    req.MealCount,
		FreeDelivery: req.FreeDelivery,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create subscription template")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Subscription created successfully",
		"subscription": sub,
	})
}

func (h *SubscriptionHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptionUsecase.ListSubscriptions(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list subscriptions")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

func (h *SubscriptionHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptionUsecase.ListTemplates(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list subscription templates")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req payload.SubscribeRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.subscriptionUsecase.Subscribe(r.Context(), req.User, req.SubscriptionID)
	if err != nil {
		if errors.Is(err, usecase.ErrSubscriptionNotFound) {
			writeMessage(w, http.StatusNotFound, "Subscription not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to subscribe user")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Subscribed successfully",
		"subscription": sub,
	})
}

func (h *SubscriptionHandler) ListUserSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptionUsecase.ListUserSubscriptions(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list user subscriptions")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, subs)
}
