package usecase

import (
	"context"

	"github.com/homepilot/homepilot-api/internal/entity"
)

type ModerateSubmissionUseCase struct {
	Repo entity.SubmissionRepositoryInterface
}

func NewModerateSubmissionUseCase(repo entity.SubmissionRepositoryInterface) *ModerateSubmissionUseCase {
	return &ModerateSubmissionUseCase{Repo: repo}
}

// Execute moves a submission to a terminal review state. Only invited and
// ignored are reachable; pending is the initial state and nothing ever
// transitions back into it. The write is an unconditional single-column
// update keyed by id, so re-issuing the same status is an idempotent no-op.
func (uc *ModerateSubmissionUseCase) Execute(ctx context.Context, input ModerateSubmissionInput) error {
	if input.ID == "" {
		return &DomainError{
			Code:    CodeValidation,
			Message: "id is required",
		}
	}

	if input.Status != entity.StatusInvited && input.Status != entity.StatusIgnored {
		return &DomainError{
			Code:    CodeValidation,
			Message: "status must be invited or ignored",
		}
	}

	affected, err := uc.Repo.UpdateStatus(ctx, input.ID, input.Status)
	if err != nil {
		return &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to update status: " + err.Error(),
		}
	}

	if affected == 0 {
		return &DomainError{
			Code:    CodeNotFound,
			Message: "submission not found",
		}
	}

	return nil
}
