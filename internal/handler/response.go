package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mavesys/foodcourt-api/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeMessage answers with the API's common `{"message": ...}` shape.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeErrorField answers with the `{"error": ...}` shape a few endpoints use
// instead of `{"message": ...}`.
func writeErrorField(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// parseFloatParam parses an optional float query parameter. An empty value is
// not an error; it simply yields nil.
func parseFloatParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// queryPage reads the page and limit query parameters. Missing or malformed
// values fall back to the defaults applied by Page.Normalize.
func queryPage(r *http.Request) repository.Page {
	page := repository.Page{}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64); err == nil {
		page.Number = v
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil {
		page.Limit = v
	}
	return page.Normalize()
}
