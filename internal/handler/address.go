package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mavesys/foodcourt-api/internal/payload"
	"github.com/mavesys/foodcourt-api/internal/usecase"
	"github.com/mavesys/foodcourt-api/shared/middleware"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

// AddressHandler serves the user address endpoints.
type AddressHandler struct {
	addressUsecase usecase.AddressUsecase
	validator      *validation.Validator
	logger         zerolog.Logger
}

func NewAddressHandler(
	addressUsecase usecase.AddressUsecase,
	validator *validation.Validator,
	logger zerolog.Logger,
) *AddressHandler {
	return &AddressHandler{
		addressUsecase: addressUsecase,
		validator:      validator,
		logger:         logger,
	}
}

func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateAddressRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	subjectID, _ := middleware.UserIDFromContext(r.Context())

	address, err := h.addressUsecase.CreateAddress(r.Context(), subjectID, usecase.CreateAddressParams{
		UserID:    req.UserID,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNotOwner) {
			writeMessage(w, http.StatusForbidden, "You are not authorized to create addresses for this user")
			return
		}

		h.logger.Error().Err(err).Msg("failed to create address")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Address created successfully",
		"address": address,
	})
}

func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressUsecase.ListAddresses(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list addresses")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Address fetch successfully",
		"address": addresses,
	})
}

func (h *AddressHandler) ListAddressesByUser(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressUsecase.ListAddressesByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list addresses by user")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if len(addresses) == 0 {
		writeMessage(w, http.StatusNotFound, "No addresses found for this user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Address fetch successfully",
		"address": addresses,
	})
}

func (h *AddressHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.addressUsecase.GetAddress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrAddressNotFound) {
			writeMessage(w, http.StatusNotFound, "Address not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch address")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Address fetch successfully",
		"address": address,
	})
}

func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateAddressRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	subjectID, _ := middleware.UserIDFromContext(r.Context())

	address, err := h.addressUsecase.UpdateAddress(
		r.Context(),
		subjectID,
		chi.URLParam(r, "id"),
		usecase.UpdateAddressParams{
			Street:    req.Street,
			City:      req.City,
			State:     req.State,
			ZipCode:   req.ZipCode,
			Country:   req.Country,
			IsPrimary: req.IsPrimary,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAddressNotFound):
			writeMessage(w, http.StatusNotFound, "Address not found")
		case errors.Is(err, usecase.ErrNotOwner):
			writeMessage(w, http.StatusForbidden, "You are not authorized to update this address")
		default:
			h.logger.Error().Err(err).Msg("failed to update address")
			writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Address updated successfully",
		"address": address,
	})
}

func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	subjectID, _ := middleware.UserIDFromContext(r.Context())

	err := h.addressUsecase.DeleteAddress(r.Context(), subjectID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAddressNotFound):
			writeMessage(w, http.StatusNotFound, "Address not found")
		case errors.Is(err, usecase.ErrNotOwner):
			writeMessage(w, http.StatusForbidden, "You are not authorized to delete this address")
		default:
			h.logger.Error().Err(err).Msg("failed to delete address")
			writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeMessage(w, http.StatusOK, "Address deleted successfully")
}
