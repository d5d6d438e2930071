package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/payload"
	"github.com/mavesys/foodcourt-api/internal/repository"
	"github.com/mavesys/foodcourt-api/internal/usecase"
	"github.com/mavesys/foodcourt-api/shared/middleware"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

// OrderHandler serves the order endpoints.
type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
	validator    *validation.Validator
	logger       zerolog.Logger
}

func NewOrderHandler(
	orderUsecase usecase.OrderUsecase,
	validator *validation.Validator,
	logger zerolog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
		logger:       logger,
	}
}

type listOrdersResponse struct {
	Message    string               `json:"message"`
	Order      []*model.Order       `json:"order"`
	Pagination listOrdersPagination `json:"pagination"`
}

type listOrdersPagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalOrders int64 `json:"totalOrders"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateOrderRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := orderItemsFromRequest(req.Items)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid food item ID")
		return
	}

	subjectID, _ := middleware.UserIDFromContext(r.Context())

	order, err := h.orderUsecase.CreateOrder(r.Context(), subjectID, usecase.CreateOrderParams{
		UserID:      req.UserID,
		Items:       items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyOrder):
			writeMessage(w, http.StatusBadRequest, "Order must have at least one item.")
		case errors.Is(err, usecase.ErrNotOwner):
			writeMessage(w, http.StatusForbidden, "You are not authorized to place orders for this user")
		default:
			h.logger.Error().Err(err).Msg("failed to place order")
			writeMessage(w, http.StatusInternalServerError, "Error placing order")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Order created successfully",
		"order":   order,
	})
}

func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if _, err := bson.ObjectIDFromHex(userID); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid User ID")
		return
	}

	params := repository.FilterOrdersParams{
		UserID: userID,
		Page:   queryPage(r),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := model.OrderStatus(s)
		if !status.Valid() {
			writeMessage(w, http.StatusBadRequest, "Invalid order status")
			return
		}
		params.Status = &status
	}

	orders, total, err := h.orderUsecase.ListUserOrders(r.Context(), params)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list orders")
		writeMessage(w, http.StatusBadRequest, "Failed to fetch orders")
		return
	}

	writeJSON(w, http.StatusOK, listOrdersResponse{
		Message: "Items fetched successfully",
		Order:   orders,
		Pagination: listOrdersPagination{
			CurrentPage: params.Page.Number,
			TotalPages:  params.Page.TotalPages(total),
			TotalOrders: total,
		},
	})
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateOrderRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	params := usecase.UpdateOrderParams{}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		params.Status = &status
	}
	if req.Items != nil {
		items, err := orderItemsFromRequest(req.Items)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid food item ID")
			return
		}
		params.Items = items
	}

	// The path carries the user the caller claims to act as; the token decides.
	subjectID, _ := middleware.UserIDFromContext(r.Context())
	if chi.URLParam(r, "userId") != subjectID {
		writeMessage(w, http.StatusForbidden, "You are not authorized to update this order")
		return
	}

	order, err := h.orderUsecase.UpdateOrder(r.Context(), subjectID, chi.URLParam(r, "orderId"), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			writeMessage(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, usecase.ErrNotOwner):
			writeMessage(w, http.StatusForbidden, "You are not authorized to update this order")
		case errors.Is(err, usecase.ErrInvalidOrderStatus):
			writeMessage(w, http.StatusBadRequest, "Invalid order status")
		default:
			h.logger.Error().Err(err).Msg("failed to update order")
			writeMessage(w, http.StatusInternalServerError, "Error updating order")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Order updated successfully",
		"order":   order,
	})
}

func orderItemsFromRequest(reqItems []payload.OrderItemRequest) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(reqItems))
	for _, item := range reqItems {
		foodID, err := bson.ObjectIDFromHex(item.FoodItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.OrderItem{
			FoodID:   foodID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return items, nil
}
