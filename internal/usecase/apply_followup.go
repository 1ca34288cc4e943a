package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/homepilot/homepilot-api/internal/entity"
	"github.com/homepilot/homepilot-api/internal/infra/queue"
)

const wantsOwnYes = "yes"

type ApplyFollowupUseCase struct {
	Repo     entity.SubmissionRepositoryInterface
	Producer NotificationProducerInterface
}

func NewApplyFollowupUseCase(
	repo entity.SubmissionRepositoryInterface,
	producer NotificationProducerInterface,
) *ApplyFollowupUseCase {
	return &ApplyFollowupUseCase{
		Repo:     repo,
		Producer: producer,
	}
}

// Execute merges second-step answers into the submission the follow-up
// belongs to. The form only carries (name, email), so the lookup is a weak
// identity: when several submissions share the pair the most recent one is
// patched. Two concurrent follow-ups against the same pair interleave
// field-by-field; the repository documents this as a non-serializable path.
func (uc *ApplyFollowupUseCase) Execute(ctx context.Context, input ApplyFollowupInput) error {
	validationErrors := ValidateApplyFollowupInput(input)
	if len(validationErrors) > 0 {
		return &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(validationErrors),
		}
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	submission, err := uc.Repo.FindLatestByNameEmail(ctx, name, email)
	if err != nil {
		return &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to look up submission: " + err.Error(),
		}
	}
	if submission == nil {
		return &DomainError{
			Code:    CodeNotFound,
			Message: "no submission found for this name and email",
		}
	}

	patch := entity.FollowupPatch{
		FollowupIntent: input.FollowupIntent,
		FollowupValue:  input.FollowupValue,
	}
	if input.WantsOwnHomepilot != "" {
		wants := input.WantsOwnHomepilot
		patch.WantsOwnHomepilot = &wants
	}

	if err := uc.Repo.ApplyFollowup(ctx, submission.ID, patch); err != nil {
		return &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to apply follow-up: " + err.Error(),
		}
	}

	// The patch is the durable effect; the invite mail is best-effort.
	// A publish failure is logged and swallowed.
	if input.WantsOwnHomepilot == wantsOwnYes {
		payload := queue.NotificationPayload{
			SubmissionID: submission.ID,
			Name:         name,
			Email:        email,
			Origin:       "FOLLOWUP_FORM",
		}
		if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
			log.Error().Err(err).Str("submission_id", submission.ID).
				Msg("follow-up applied but notification publish failed")
		}
	}

	return nil
}
