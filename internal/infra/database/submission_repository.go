package database

import (
	"context"
	"database/sql"

	"github.com/homepilot/homepilot-api/internal/entity"
)

type SubmissionRepository struct {
	DB *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *entity.Submission) error {
	query := `
		INSERT INTO submissions (id, name, email, message, social, score, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		s.ID,
		s.Name,
		s.Email,
		s.Message,
		nullString(s.Social),
		s.Score,
		s.Status,
		s.CreatedAt,
	)

	return err
}

// FindLatestByNameEmail applies the deterministic weak-identity rule:
// nothing enforces (name, email) uniqueness at intake, so ties are broken
// toward the most recent submission.
func (r *SubmissionRepository) FindLatestByNameEmail(ctx context.Context, name, email string) (*entity.Submission, error) {
	query := `
		SELECT id, name, email, message, COALESCE(social, ''), score, status,
		       followup_intent, followup_value, wants_own_homepilot, created_at
		FROM submissions
		WHERE name = $1 AND email = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var s entity.Submission
	err := r.DB.QueryRowContext(ctx, query, name, email).Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Message,
		&s.Social,
		&s.Score,
		&s.Status,
		&s.FollowupIntent,
		&s.FollowupValue,
		&s.WantsOwnHomepilot,
		&s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// ApplyFollowup patches only the follow-up columns; score, status and
// created_at are untouched. Concurrent follow-ups against the same
// submission are last-write-wins per column (non-serializable, accepted).
func (r *SubmissionRepository) ApplyFollowup(ctx context.Context, id string, patch entity.FollowupPatch) error {
	query := `
		UPDATE submissions
		SET followup_intent = $2,
		    followup_value = $3,
		    wants_own_homepilot = COALESCE($4, wants_own_homepilot)
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		id,
		patch.FollowupIntent,
		patch.FollowupValue,
		patch.WantsOwnHomepilot,
	)

	return err
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE submissions SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *SubmissionRepository) ListByScore(ctx context.Context, onlyWantsOwn bool) ([]entity.Submission, error) {
	query := `
		SELECT id, name, email, message, COALESCE(social, ''), score, status,
		       followup_intent, followup_value, wants_own_homepilot, created_at
		FROM submissions
	`
	if onlyWantsOwn {
		query += ` WHERE wants_own_homepilot = 'yes'`
	}
	query += ` ORDER BY score DESC, created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []entity.Submission
	for rows.Next() {
		var s entity.Submission
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Message,
			&s.Social,
			&s.Score,
			&s.Status,
			&s.FollowupIntent,
			&s.FollowupValue,
			&s.WantsOwnHomepilot,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
