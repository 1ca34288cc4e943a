package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/homepilot/homepilot-api/internal/usecase"
)

type LeadHandler struct {
	CaptureLead *usecase.CaptureLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(captureLead *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{
		CaptureLead: captureLead,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeFailure(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.CaptureLead.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeSuccess(w, "Lead captured", output)
}
