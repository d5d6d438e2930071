package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/payload"
	"github.com/mavesys/foodcourt-api/internal/repository"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

// ItemHandler serves the generic catalog item endpoints.
type ItemHandler struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	validator    *validation.Validator
	logger       zerolog.Logger
}

func NewItemHandler(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	validator *validation.Validator,
	logger zerolog.Logger,
) *ItemHandler {
	return &ItemHandler{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		validator:    validator,
		logger:       logger,
	}
}

type listItemsResponse struct {
	Message    string              `json:"message"`
	Item       []*model.Item       `json:"item"`
	Pagination listItemsPagination `json:"pagination"`
}

type listItemsPagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalItem   int64 `json:"totalItem"`
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateItemRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	categoryID, err := bson.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		writeErrorField(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	if _, err := h.categoryRepo.GetCategory(r.Context(), req.CategoryID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeErrorField(w, http.StatusBadRequest, "Invalid category ID")
			return
		}

		h.logger.Error().Err(err).Msg("failed to look up item category")
		writeMessage(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	saved, err := h.itemRepo.CreateItem(r.Context(), &model.Item{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		CategoryID:  categoryID,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create item")
		writeMessage(w, http.StatusBadRequest, "Failed to create item")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Item created successfully",
		"savedItem": saved,
	})
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	page := queryPage(r)

	items, err := h.itemRepo.ListItems(r.Context(), page)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list items")
		writeMessage(w, http.StatusBadRequest, "Failed to fetch items")
		return
	}

	total, err := h.itemRepo.CountItems(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to count items")
		writeMessage(w, http.StatusBadRequest, "Failed to fetch items")
		return
	}

	writeJSON(w, http.StatusOK, listItemsResponse{
		Message: "Items fetched successfully",
		Item:    items,
		Pagination: listItemsPagination{
			CurrentPage: page.Number,
			TotalPages:  page.TotalPages(total),
			TotalItem:   total,
		},
	})
}

func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.itemRepo.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Item not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch item")
		writeMessage(w, http.StatusBadRequest, "Failed to fetch item")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) ListItemsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if _, err := bson.ObjectIDFromHex(categoryID); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	items, err := h.itemRepo.ListItemsByCategory(r.Context(), categoryID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list items by category")
		writeMessage(w, http.StatusBadRequest, "Failed to fetch items")
		return
	}

	if len(items) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"message": "No items found for this category",
			"items":   items,
		})
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateItemRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.itemRepo.UpdateItem(r.Context(), chi.URLParam(r, "id"), repository.UpdateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Item not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update item")
		writeMessage(w, http.StatusBadRequest, "Failed to update item")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if _, err := h.itemRepo.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Item not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete item")
		writeMessage(w, http.StatusBadRequest, "Failed to delete item")
		return
	}

	writeMessage(w, http.StatusOK, "Item deleted successfully")
}
