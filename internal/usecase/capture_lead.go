package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homepilot/homepilot-api/internal/entity"
)

const defaultLeadRef = "LP1"

type CaptureLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewCaptureLeadUseCase(repo entity.LeadRepositoryInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Repo: repo}
}

// Execute validates and appends a funnel lead. The extended variant shows
// its extra fields in a second UI step, but persistence is a single insert:
// there is no partially-saved intermediate state.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	validationErrors := ValidateCaptureLeadInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(validationErrors),
		}
	}

	ref := strings.TrimSpace(input.Ref)
	if ref == "" {
		ref = defaultLeadRef
	}

	lead := &entity.Lead{
		ID:               uuid.New().String(),
		Ref:              ref,
		Salutation:       input.Salutation,
		Name:             strings.TrimSpace(input.Name),
		Email:            strings.TrimSpace(input.Email),
		Address:          strings.TrimSpace(input.Address),
		WillingToSell:    normalizeOptional(input.WillingToSell),
		PriceExpectation: normalizeOptional(input.PriceExpectation),
		MoveTiming:       normalizeOptional(input.MoveTiming),
		CreatedAt:        time.Now(),
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	return &CaptureLeadOutput{ID: lead.ID}, nil
}

// normalizeOptional keeps the persisted row fixed-width: blank answers
// become NULL, never empty strings.
func normalizeOptional(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
