package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/homepilot/homepilot-api/internal/infra/http/middleware"
	"github.com/homepilot/homepilot-api/internal/usecase"
)

// AdminHandler serves the reviewer surface: listing, moderation and the
// CSV export. Routes using it sit behind the operator auth middleware.
type AdminHandler struct {
	Moderate *usecase.ModerateSubmissionUseCase
	Export   *usecase.ExportSubmissionsUseCase
}

func NewAdminHandler(
	moderate *usecase.ModerateSubmissionUseCase,
	export *usecase.ExportSubmissionsUseCase,
) *AdminHandler {
	return &AdminHandler{
		Moderate: moderate,
		Export:   export,
	}
}

func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	onlyWantsOwn := r.URL.Query().Get("wants_own_homepilot") == "yes"

	submissions, err := h.Export.List(r.Context(), onlyWantsOwn)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    submissions,
	})
}

func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input usecase.ModerateSubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.Moderate.Execute(r.Context(), input); err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordModeration(input.Status)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Status updated",
	})
}

func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	onlyWantsOwn := r.URL.Query().Get("wants_own_homepilot") == "yes"

	csv, err := h.Export.ExportCSV(r.Context(), onlyWantsOwn)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+usecase.ExportFilename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}
