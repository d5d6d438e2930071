package handler

import (
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
)

// CategoryHandler serves a catalog of image-backed categories. The same
// handler backs both the item catalog and the food catalog; only the
// repository instance differs.
type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
	uploader     *Uploader
	logger       zerolog.Logger
}

func NewCategoryHandler(
	categoryRepo repository.CategoryRepository,
	uploader *Uploader,
	logger zerolog.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		uploader:     uploader,
		logger:       logger,
	}
}

type listCategoriesResponse struct {
	Categories []*model.Category      `json:"categories"`
	Pagination listCategoryPagination `json:"pagination"`
}

type listCategoryPagination struct {
	CurrentPage   int64 `json:"currentPage"   xml:"currentPage"`
	TotalPages    int64 `json:"totalPages"    xml:"totalPages"`
	TotalCategory int64 `json:"totalCategory" xml:"totalCategory"`
}

// xmlCategoriesResponse mirrors the JSON listing with object IDs rendered as
// strings, rooted at <response>.
type xmlCategoriesResponse struct {
	XMLName    xml.Name               `xml:"response"`
	Categories []xmlCategory          `xml:"categories"`
	Pagination listCategoryPagination `xml:"pagination"`
}

type xmlCategory struct {
	ID    string `xml:"id"`
	Name  string `xml:"categoryName"`
	Image string `xml:"categoryImage"`
}

// CreateCategory accepts a multipart form with a categoryName field and a
// categoryImage file.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	filename, _, err := h.uploader.Save(r, "categoryImage")
	if err != nil {
		if errors.Is(err, errNotAnImage) {
			writeErrorField(w, http.StatusBadRequest, "Only images are allowed!")
			return
		}
		writeErrorField(w, http.StatusBadRequest, "No image uploaded")
		return
	}

	name := r.FormValue("categoryName")
	if name == "" {
		writeErrorField(w, http.StatusBadRequest, "categoryName is required")
		return
	}

	if _, err := h.categoryRepo.GetCategoryByName(r.Context(), name); err == nil {
		writeErrorField(w, http.StatusBadRequest, "Category already exists")
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.logger.Error().Err(err).Msg("failed to look up category")
		writeErrorField(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	saved, err := h.categoryRepo.CreateCategory(r.Context(), &model.Category{
		Name:  name,
		Image: filename,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeErrorField(w, http.StatusBadRequest, "Category already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to create category")
		writeErrorField(w, http.StatusBadRequest, "Failed to create category")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":       "Category created successfully",
		"savedCategory": saved,
	})
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listPage(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list categories")
		writeErrorField(w, http.StatusBadRequest, "Failed to fetch categories")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListCategoriesXML serves the same listing as ListCategories but rendered as
// an XML document rooted at <response>.
func (h *CategoryHandler) ListCategoriesXML(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listPage(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list categories")
		writeErrorField(w, http.StatusBadRequest, "Failed to fetch categories")
		return
	}

	xmlResp := xmlCategoriesResponse{
		Categories: make([]xmlCategory, 0, len(resp.Categories)),
		Pagination: resp.Pagination,
	}
	for _, c := range resp.Categories {
		xmlResp.Categories = append(xmlResp.Categories, xmlCategory{
			ID:    c.ID.Hex(),
			Name:  c.Name,
			Image: c.Image,
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_ = xml.NewEncoder(w).Encode(xmlResp)
}

func (h *CategoryHandler) listPage(r *http.Request) (*listCategoriesResponse, error) {
	page := queryPage(r)

	categories, err := h.categoryRepo.ListCategories(r.Context(), page)
	if err != nil {
		return nil, err
	}

	total, err := h.categoryRepo.CountCategories(r.Context())
	if err != nil {
		return nil, err
	}

	return &listCategoriesResponse{
		Categories: categories,
		Pagination: listCategoryPagination{
			CurrentPage:   page.Number,
			TotalPages:    page.TotalPages(total),
			TotalCategory: total,
		},
	}, nil
}
