package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxUploadSize caps uploaded images at 5MB.
const maxUploadSize = 5 << 20

var errNotAnImage = errors.New("only images are allowed")

var allowedImageExts = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// Uploader stores multipart image uploads on disk under a single directory
// and produces public URLs for them.
type Uploader struct {
	dir     string
	baseURL string
}

// NewUploader creates the upload directory if it does not exist yet.
func NewUploader(dir, baseURL string) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Uploader{dir: dir, baseURL: baseURL}, nil
}

// Save reads the named multipart file field, verifies it is an image within
// the size limit and writes it under a random filename. It returns the stored
// filename and the path on disk.
func (u *Uploader) Save(r *http.Request, field string) (string, string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", "", err
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return "", "", fmt.Errorf("file exceeds the %d byte limit", maxUploadSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if err := checkImageType(ext, header); err != nil {
		return "", "", err
	}

	filename := uuid.NewString() + ext
	path := filepath.Join(u.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, maxUploadSize)); err != nil {
		os.Remove(path)
		return "", "", err
	}

	return filename, path, nil
}

// URL returns the public URL for a stored filename.
func (u *Uploader) URL(filename string) string {
	return fmt.Sprintf("%s/uploads/%s", u.baseURL, filename)
}

func checkImageType(ext string, header *multipart.FileHeader) error {
	mimeType, ok := allowedImageExts[ext]
	if !ok {
		return errNotAnImage
	}

	if declared := header.Header.Get("Content-Type"); declared != "" && declared != mimeType {
		return errNotAnImage
	}

	return nil
}

// UploadHandler serves the standalone image upload endpoint.
type UploadHandler struct {
	uploader *Uploader
	logger   zerolog.Logger
}

func NewUploadHandler(uploader *Uploader, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, logger: logger}
}

func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	filename, path, err := h.uploader.Save(r, "image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeMessage(w, http.StatusBadRequest, "No file uploaded!")
			return
		}
		if errors.Is(err, errNotAnImage) {
			writeMessage(w, http.StatusBadRequest, "Only images are allowed!")
			return
		}

		h.logger.Error().Err(err).Msg("failed to store uploaded image")
		writeMessage(w, http.StatusBadRequest, "Failed to upload image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Image uploaded successfully!",
		"filename": filename,
		"file":     path,
		"url":      h.uploader.URL(filename),
	})
}
