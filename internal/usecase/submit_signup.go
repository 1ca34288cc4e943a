package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/homepilot/homepilot-api/internal/entity"
)

// scoringTimeout bounds the external model call so one slow request can
// never block a signup.
const scoringTimeout = 8 * time.Second

type SubmitSignupUseCase struct {
	Repo   entity.SubmissionRepositoryInterface
	Scorer IntentScorer
}

func NewSubmitSignupUseCase(
	repo entity.SubmissionRepositoryInterface,
	scorer IntentScorer,
) *SubmitSignupUseCase {
	return &SubmitSignupUseCase{
		Repo:   repo,
		Scorer: scorer,
	}
}

func (uc *SubmitSignupUseCase) Execute(ctx context.Context, input SubmitSignupInput) (*SubmitSignupOutput, error) {
	validationErrors := ValidateSubmitSignupInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(validationErrors),
		}
	}

	// Scoring is enrichment, never a gate: any failure falls back to the
	// minimum score and the signup still goes through.
	score := entity.ScoreMin
	scoreCtx, cancel := context.WithTimeout(ctx, scoringTimeout)
	defer cancel()

	if s, err := uc.Scorer.Score(scoreCtx, input.Message); err != nil {
		log.Warn().Err(err).Msg("intent scoring failed, using fallback score")
	} else {
		score = clampScore(s)
	}

	submission := &entity.Submission{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Message:   input.Message,
		Social:    input.Social,
		Score:     score,
		Status:    entity.StatusPending,
		CreatedAt: time.Now(),
	}

	if err := uc.Repo.Create(ctx, submission); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist submission: " + err.Error(),
		}
	}

	return &SubmitSignupOutput{
		ID:      submission.ID,
		Name:    submission.Name,
		Email:   submission.Email,
		Message: submission.Message,
		Social:  submission.Social,
		Score:   submission.Score,
		Status:  submission.Status,
	}, nil
}

func clampScore(s int) int {
	if s < entity.ScoreMin {
		return entity.ScoreMin
	}
	if s > entity.ScoreMax {
		return entity.ScoreMax
	}
	return s
}
