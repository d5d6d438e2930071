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

// MoodContentHandler serves the mood app's content endpoints: categories,
// photos, stories, onboarding slides and reels.
type MoodContentHandler struct {
	contentRepo repository.MoodContentRepository
	validator   *validation.Validator
	logger      zerolog.Logger
}

func NewMoodContentHandler(
	contentRepo repository.MoodContentRepository,
	validator *validation.Validator,
	logger zerolog.Logger,
) *MoodContentHandler {
	return &MoodContentHandler{
		contentRepo: contentRepo,
		validator:   validator,
		logger:      logger,
	}
}

func (h *MoodContentHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateMoodCategoryRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.contentRepo.CreateMoodCategory(r.Context(), &model.MoodCategory{
		Name:        req.Name,
		Description: req.Description,
		CreatorName: req.CreatorName,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeErrorField(w, http.StatusBadRequest, "Category already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to create mood category")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

func (h *MoodContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.contentRepo.ListMoodCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list mood categories")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *MoodContentHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.contentRepo.GetMoodCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Category not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch mood category")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *MoodContentHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateMoodCategoryRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.contentRepo.UpdateMoodCategory(
		r.Context(),
		chi.URLParam(r, "id"),
		repository.UpdateMoodCategoryParams{
			Name:        req.Name,
			Description: req.Description,
		},
	)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Category not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update mood category")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *MoodContentHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := h.contentRepo.DeleteMoodCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Category not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete mood category")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeMessage(w, http.StatusOK, "Category deleted successfully")
}

func (h *MoodContentHandler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateMoodPhotoRequest
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
		writeErrorField(w, http.StatusBadRequest, "Category not found")
		return
	}
	if _, err := h.contentRepo.GetMoodCategory(r.Context(), req.CategoryID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeErrorField(w, http.StatusBadRequest, "Category not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to look up mood category")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	photo, err := h.contentRepo.CreateMoodPhoto(r.Context(), &model.MoodPhoto{
		URI:        req.URI,
		Shape:      model.MediaShape(req.Shape),
		Type:       model.MediaType(req.Type),
		CategoryID: categoryID,
		Category:   req.Category,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create mood photo")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, photo)
}

func (h *MoodContentHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	photos, err := h.contentRepo.ListMoodPhotos(r.Context(), category)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list mood photos")
		writeErrorField(w, http.StatusInternalServerError, "Error fetching photos")
		return
	}

	writeJSON(w, http.StatusOK, photos)
}

func (h *MoodContentHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	photo, err := h.contentRepo.GetMoodPhoto(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Photo not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch mood photo")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, photo)
}

func (h *MoodContentHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateMoodPhotoRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	params := repository.UpdateMoodPhotoParams{URI: req.URI}
	if req.Shape != nil {
		shape := model.MediaShape(*req.Shape)
		params.Shape = &shape
	}
	if req.Type != nil {
		mediaType := model.MediaType(*req.Type)
		params.Type = &mediaType
	}

	photo, err := h.contentRepo.UpdateMoodPhoto(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Photo not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update mood photo")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, photo)
}

func (h *MoodContentHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	if _, err := h.contentRepo.DeleteMoodPhoto(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Photo not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete mood photo")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeMessage(w, http.StatusOK, "Photo deleted successfully")
}

func (h *MoodContentHandler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateMoodStoryRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	story, err := h.contentRepo.CreateMoodStory(r.Context(), &model.MoodStory{
		Title:    req.Title,
		Content:  req.Content,
		Summary:  req.Summary,
		Category: req.Category,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create mood story")
		writeMessage(w, http.StatusBadRequest, "Error creating story")
		return
	}

	writeJSON(w, http.StatusCreated, story)
}

func (h *MoodContentHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.contentRepo.ListMoodStories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list mood stories")
		writeMessage(w, http.StatusInternalServerError, "Failed to retrieve stories")
		return
	}

	writeJSON(w, http.StatusOK, stories)
}

func (h *MoodContentHandler) GetStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.contentRepo.GetMoodStory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Story not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch mood story")
		writeMessage(w, http.StatusInternalServerError, "Failed to retrieve story")
		return
	}

	writeJSON(w, http.StatusOK, story)
}

func (h *MoodContentHandler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateMoodStoryRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	story, err := h.contentRepo.UpdateMoodStory(
		r.Context(),
		chi.URLParam(r, "id"),
		repository.UpdateMoodStoryParams{
			Title:    req.Title,
			Content:  req.Content,
			Summary:  req.Summary,
			Category: req.Category,
		},
	)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Story not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update mood story")
		writeMessage(w, http.StatusBadRequest, "Error updating story")
		return
	}

	writeJSON(w, http.StatusOK, story)
}

func (h *MoodContentHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	if _, err := h.contentRepo.DeleteMoodStory(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeMessage(w, http.StatusNotFound, "Story not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete mood story")
		writeMessage(w, http.StatusInternalServerError, "Error deleting story")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MoodContentHandler) CreateOnboard(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateMoodOnboardRequest
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeErrorField(w, http.StatusBadRequest, "title, sub_title, and image URL are required.")
		return
	}

	onboard, err := h.contentRepo.CreateMoodOnboard(r.Context(), &model.MoodOnboard{
		Title:    req.Title,
		SubTitle: req.SubTitle,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create onboarding slide")
		writeErrorField(w, http.StatusInternalServerError, "Error adding data")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Data added successfully",
		"data":    onboard,
	})
}

func (h *MoodContentHandler) ListOnboards(w http.ResponseWriter, r *http.Request) {
	onboards, err := h.contentRepo.ListMoodOnboards(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list onboarding slides")
		writeErrorField(w, http.StatusInternalServerError, "Error retrieving data")
		return
	}

	writeJSON(w, http.StatusOK, onboards)
}

func (h *MoodContentHandler) ListReels(w http.ResponseWriter, r *http.Request) {
	reels, err := h.contentRepo.ListMoodReels(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list reels")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message":    "Internal Server Error",
			"statusCode": http.StatusInternalServerError,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Success",
		"statusCode": http.StatusOK,
		"data":       reels,
	})
}
