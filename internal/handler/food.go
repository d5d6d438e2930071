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

// FoodHandler serves the menu endpoints. The food catalog is plain CRUD with
// filters, so the handler talks to the repository directly.
type FoodHandler struct {
	foodRepo     repository.FoodRepository
	categoryRepo repository.CategoryRepository
	validator    *validation.Validator
	logger       zerolog.Logger
}

func NewFoodHandler(
	foodRepo repository.FoodRepository,
	categoryRepo repository.CategoryRepository,
	validator *validation.Validator,
	logger zerolog.Logger,
) *FoodHandler {
	return &FoodHandler{
		foodRepo:     foodRepo,
		categoryRepo: categoryRepo,
		validator:    validator,
		logger:       logger,
	}
}

type listFoodResponse struct {
	Message    string             `json:"message"`
	FoodItems  []*model.Food      `json:"foodItems"`
	Pagination listFoodPagination `json:"pagination"`
}

type listFoodPagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalFood   int64 `json:"totalFood"`
}

func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateFoodRequest
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
		writeErrorField(w, http.StatusBadRequest, "Invalid food category ID")
		return
	}
	if _, err := h.categoryRepo.GetCategory(r.Context(), req.CategoryID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeErrorField(w, http.StatusBadRequest, "Invalid food category ID")
			return
		}

		h.logger.Error().Err(err).Msg("failed to look up food category")
		writeMessage(w, http.StatusInternalServerError, "Error adding food item")
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	food := &model.Food{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    model.DietCategory(req.Category),
		CategoryID:  categoryID,
		Ingredients: req.Ingredients,
		IsAvailable: isAvailable,
		Rating:      req.Rating,
		Servings:    req.Servings,
		Coords:      coordsFromRequest(req.Coords),
	}

	saved, err := h.foodRepo.CreateFood(r.Context(), food)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create food item")
		writeMessage(w, http.StatusInternalServerError, "Error adding food item")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":       "Food item added successfully",
		"savedFoodItem": saved,
	})
}

func (h *FoodHandler) ListFood(w http.ResponseWriter, r *http.Request) {
	params := repository.FilterFoodParams{Page: queryPage(r)}

	query := r.URL.Query()
	if c := query.Get("category"); c != "" {
		category := model.DietCategory(c)
		if !category.Valid() {
			writeMessage(w, http.StatusBadRequest, "Invalid food category")
			return
		}
		params.Category = &category
	}
	if v := query.Get("isAvailable"); v != "" {
		available := v == "true"
		params.IsAvailable = &available
	}
	if v, err := parseFloatParam(query.Get("minPrice")); err == nil {
		params.MinPrice = v
	}
	if v, err := parseFloatParam(query.Get("maxPrice")); err == nil {
		params.MaxPrice = v
	}

	foodItems, err := h.foodRepo.ListFood(r.Context(), params)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list food items")
		writeMessage(w, http.StatusInternalServerError, "Error fetching food items")
		return
	}

	total, err := h.foodRepo.CountFood(r.Context(), params)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to count food items")
		writeMessage(w, http.StatusInternalServerError, "Error fetching food items")
		return
	}

	writeJSON(w, http.StatusOK, listFoodResponse{
		Message:   "Food items fetched successfully",
		FoodItems: foodItems,
		Pagination: listFoodPagination{
			CurrentPage: params.Page.Number,
			TotalPages:  params.Page.TotalPages(total),
			TotalFood:   total,
		},
	})
}

func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	food, err := h.foodRepo.GetFood(r.Context(), chi.URLParam(r, "foodId"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Food item not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch food item")
		writeMessage(w, http.StatusInternalServerError, "Error fetching food item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Food item fetched successfully",
		"foodItem": food,
	})
}

func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateFoodRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	params := repository.UpdateFoodParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Ingredients: req.Ingredients,
		IsAvailable: req.IsAvailable,
		Rating:      req.Rating,
		Servings:    req.Servings,
		Coords:      coordsFromRequest(req.Coords),
	}
	if req.Category != nil {
		category := model.DietCategory(*req.Category)
		params.Category = &category
	}

	if req.Name == nil && req.Description == nil && req.Price == nil && req.Image == nil &&
		req.Category == nil && req.Ingredients == nil && req.IsAvailable == nil &&
		req.Rating == nil && req.Servings == nil && req.Coords == nil {
		writeMessage(w, http.StatusBadRequest, "No fields to update")
		return
	}

	updated, err := h.foodRepo.UpdateFood(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Food item not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update food item")
		writeMessage(w, http.StatusInternalServerError, "Error updating food item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Food item updated successfully",
		"updatedFoodItem": updated,
	})
}

func coordsFromRequest(reqCoords []payload.CoordinateRequest) []model.Coordinate {
	if reqCoords == nil {
		return nil
	}
	coords := make([]model.Coordinate, 0, len(reqCoords))
	for _, c := range reqCoords {
		coords = append(coords, model.Coordinate{
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		})
	}
	return coords
}
