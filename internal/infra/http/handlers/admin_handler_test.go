package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/homepilot/homepilot-api/internal/entity"
	"github.com/homepilot/homepilot-api/internal/infra/http/handlers"
	"github.com/homepilot/homepilot-api/internal/usecase"
)

func newAdminHandler(mockRepo *MockSubmissionRepository) *handlers.AdminHandler {
	return handlers.NewAdminHandler(
		usecase.NewModerateSubmissionUseCase(mockRepo),
		usecase.NewExportSubmissionsUseCase(mockRepo),
	)
}

func TestAdminListSubmissions(t *testing.T) {
	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("ListByScore", mock.Anything, false).Return([]entity.Submission{
		{ID: "sub-1", Name: "Jane", Email: "jane@x.com", Message: "m", Score: 5,
			Status: entity.StatusPending, CreatedAt: time.Now()},
		{ID: "sub-2", Name: "Bob", Email: "bob@x.com", Message: "m", Score: 2,
			Status: entity.StatusPending, CreatedAt: time.Now()},
	}, nil)

	handler := newAdminHandler(mockRepo)

	req := httptest.NewRequest("GET", "/api/admin/submissions", nil)
	w := httptest.NewRecorder()

	handler.ListSubmissions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool                `json:"success"`
		Data    []entity.Submission `json:"data"`
	}
	json.NewDecoder(w.Body).Decode(&response)

	assert.True(t, response.Success)
	assert.Len(t, response.Data, 2)
	assert.Equal(t, "sub-1", response.Data[0].ID)
}

func TestAdminListSubmissionsFiltered(t *testing.T) {
	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("ListByScore", mock.Anything, true).Return([]entity.Submission{}, nil)

	handler := newAdminHandler(mockRepo)

	req := httptest.NewRequest("GET", "/api/admin/submissions?wants_own_homepilot=yes", nil)
	w := httptest.NewRecorder()

	handler.ListSubmissions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertCalled(t, "ListByScore", mock.Anything, true)
}

func TestAdminUpdateStatus(t *testing.T) {
	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("UpdateStatus", mock.Anything, "sub-1", entity.StatusInvited).Return(int64(1), nil)

	handler := newAdminHandler(mockRepo)

	body, _ := json.Marshal(usecase.ModerateSubmissionInput{ID: "sub-1", Status: entity.StatusInvited})

	// issued twice: the second call is an idempotent no-op success
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("PUT", "/api/admin/submissions/status", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.UpdateStatus(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		json.NewDecoder(w.Body).Decode(&response)
		assert.Equal(t, true, response["success"])
		assert.Equal(t, "Status updated", response["message"])
	}

	mockRepo.AssertNumberOfCalls(t, "UpdateStatus", 2)
}

func TestAdminUpdateStatusNotFound(t *testing.T) {
	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("UpdateStatus", mock.Anything, "missing", entity.StatusIgnored).Return(int64(0), nil)

	handler := newAdminHandler(mockRepo)

	body, _ := json.Marshal(usecase.ModerateSubmissionInput{ID: "missing", Status: entity.StatusIgnored})
	req := httptest.NewRequest("PUT", "/api/admin/submissions/status", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.UpdateStatus(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminUpdateStatusRejectsPending(t *testing.T) {
	mockRepo := new(MockSubmissionRepository)
	handler := newAdminHandler(mockRepo)

	body, _ := json.Marshal(usecase.ModerateSubmissionInput{ID: "sub-1", Status: entity.StatusPending})
	req := httptest.NewRequest("PUT", "/api/admin/submissions/status", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.UpdateStatus(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestAdminExportCSV(t *testing.T) {
	yes := "yes"
	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("ListByScore", mock.Anything, false).Return([]entity.Submission{
		{ID: "sub-1", Name: "Jane", Email: "jane@x.com", Message: "m", Score: 4,
			Status: entity.StatusPending, WantsOwnHomepilot: &yes,
			CreatedAt: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
	}, nil)

	handler := newAdminHandler(mockRepo)

	req := httptest.NewRequest("GET", "/api/admin/submissions/export", nil)
	w := httptest.NewRecorder()

	handler.ExportCSV(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "homepilot-submissions-")
	assert.Contains(t, w.Body.String(), `"Jane","jane@x.com"`)
}
