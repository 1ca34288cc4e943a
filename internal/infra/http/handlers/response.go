package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/homepilot/homepilot-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// writeUsecaseError maps the error taxonomy onto HTTP: validation and
// not-found are reported as-is, technical errors stay generic.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsNotFound(err):
		writeFailure(w, http.StatusNotFound, err.Error())
	case usecase.IsDomainError(err):
		writeFailure(w, http.StatusBadRequest, err.Error())
	default:
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
	}
}
