package entity

import (
	"context"
	"time"
)

const (
	StatusPending = "pending"
	StatusInvited = "invited"
	StatusIgnored = "ignored"
)

const (
	ScoreMin = 1
	ScoreMax = 5
)

type Submission struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Social  string `json:"social,omitempty"`
	Score   int    `json:"score"`
	Status  string `json:"status"` // pending, invited, ignored

	FollowupIntent    *string `json:"followup_intent,omitempty"`
	FollowupValue     *string `json:"followup_value,omitempty"`
	WantsOwnHomepilot *string `json:"wants_own_homepilot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// FollowupPatch carries only the columns the second-step form may change.
// Score, status and created_at are never part of a patch.
type FollowupPatch struct {
	FollowupIntent    string
	FollowupValue     string
	WantsOwnHomepilot *string
}

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, s *Submission) error

	// FindLatestByNameEmail resolves the weak (name, email) identity the
	// follow-up form carries. When several submissions share the pair, the
	// most recent one wins (created_at DESC, id DESC). Returns (nil, nil)
	// when nothing matches.
	FindLatestByNameEmail(ctx context.Context, name, email string) (*Submission, error)

	ApplyFollowup(ctx context.Context, id string, patch FollowupPatch) error

	// UpdateStatus is an unconditional single-column write keyed by id.
	// Returns the number of affected rows.
	UpdateStatus(ctx context.Context, id, status string) (int64, error)

	// ListByScore returns all submissions ordered by score descending,
	// insertion order on ties. When onlyWantsOwn is set, only records whose
	// wants_own_homepilot answer is "yes" are returned.
	ListByScore(ctx context.Context, onlyWantsOwn bool) ([]Submission, error)
}
