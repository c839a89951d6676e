package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
	"github.com/changmai/sabang-qoo10-rincos/internal/fileio"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 {
		return def
	}
	return i
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// readUpload parses one uploaded sheet. A missing part is MissingInput,
// anything unreadable is MalformedInput.
func readUpload(r *http.Request, field string, headerRow int) (*fileio.Table, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, &model.MissingFileError{Field: field}
		}
		return nil, fmt.Errorf("%w: %s: %w", model.ErrMalformedInput, field, err)
	}
	defer f.Close()
	return readSheet(f, hdr, field, headerRow)
}

func readSheet(f multipart.File, hdr *multipart.FileHeader, field string, headerRow int) (*fileio.Table, error) {
	t, err := fileio.ReadTable(f, hdr.Filename, headerRow)
	if err != nil {
		if errors.Is(err, fileio.ErrUnsupportedFile) {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return nil, fmt.Errorf("%w: %s (%s): %w", model.ErrMalformedInput, field, hdr.Filename, err)
	}
	return t, nil
}

// classify переводит ошибку прогона в HTTP-статус и короткий код для UI.
func classify(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, model.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "catalog_unavailable"
	case errors.Is(err, fileio.ErrUnsupportedFile):
		return http.StatusUnsupportedMediaType, "unsupported_file"
	case errors.Is(err, model.ErrMissingInput):
		return http.StatusBadRequest, "missing_input"
	case errors.Is(err, model.ErrMalformedInput):
		return http.StatusUnprocessableEntity, "malformed_input"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, kind := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal"
	}
	_ = writeJSON(w, status, map[string]string{"error": msg, "kind": kind})
}

func writeAttachment(w http.ResponseWriter, filename string, body []byte) error {
	w.Header().Set("Content-Type", xlsxMime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(body)
	return err
}
