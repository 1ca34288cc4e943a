package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/homepilot/homepilot-api/internal/usecase"
)

type FollowupHandler struct {
	ApplyFollowup *usecase.ApplyFollowupUseCase
}

func NewFollowupHandler(applyFollowup *usecase.ApplyFollowupUseCase) *FollowupHandler {
	return &FollowupHandler{ApplyFollowup: applyFollowup}
}

func (h *FollowupHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ApplyFollowupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	if err := h.ApplyFollowup.Execute(r.Context(), input); err != nil {
		switch {
		case usecase.IsNotFound(err):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		case usecase.IsDomainError(err):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
