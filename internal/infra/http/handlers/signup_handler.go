package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/homepilot/homepilot-api/internal/infra/http/middleware"
	"github.com/homepilot/homepilot-api/internal/usecase"
)

type SignupHandler struct {
	SubmitSignup *usecase.SubmitSignupUseCase
	rateLimiter  *RateLimiter
}

func NewSignupHandler(submitSignup *usecase.SubmitSignupUseCase) *SignupHandler {
	return &SignupHandler{
		SubmitSignup: submitSignup,
		rateLimiter:  NewRateLimiter(10, time.Minute),
	}
}

func (h *SignupHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeFailure(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitSignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.SubmitSignup.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordSignup(strconv.Itoa(output.Score))
	writeSuccess(w, "Signup successful", output)
}
