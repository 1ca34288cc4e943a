package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/homepilot/homepilot-api/internal/entity"
)

// csvHeader is the fixed column set of the reviewer export.
var csvHeader = []string{
	"name", "email", "message", "social", "score", "status",
	"followup_intent", "followup_value", "wants_own_homepilot", "created_at",
}

type ExportSubmissionsUseCase struct {
	Repo entity.SubmissionRepositoryInterface
}

func NewExportSubmissionsUseCase(repo entity.SubmissionRepositoryInterface) *ExportSubmissionsUseCase {
	return &ExportSubmissionsUseCase{Repo: repo}
}

// List returns the submission set ordered by score descending, insertion
// order on ties. Pure read, no mutation.
func (uc *ExportSubmissionsUseCase) List(ctx context.Context, onlyWantsOwn bool) ([]entity.Submission, error) {
	submissions, err := uc.Repo.ListByScore(ctx, onlyWantsOwn)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to list submissions: " + err.Error(),
		}
	}
	return submissions, nil
}

// ExportCSV serializes the (optionally filtered) submission set. Every
// field is quoted, absent optional fields render as empty string.
func (uc *ExportSubmissionsUseCase) ExportCSV(ctx context.Context, onlyWantsOwn bool) (string, error) {
	submissions, err := uc.List(ctx, onlyWantsOwn)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeCSVRow(&b, csvHeader)

	for _, s := range submissions {
		writeCSVRow(&b, []string{
			s.Name,
			s.Email,
			s.Message,
			s.Social,
			strconv.Itoa(s.Score),
			s.Status,
			derefOrEmpty(s.FollowupIntent),
			derefOrEmpty(s.FollowupValue),
			derefOrEmpty(s.WantsOwnHomepilot),
			s.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return b.String(), nil
}

// ExportFilename embeds the given date, matching the reviewer's download
// convention.
func ExportFilename(now time.Time) string {
	return "homepilot-submissions-" + now.UTC().Format("2006-01-02") + ".csv"
}

// writeCSVRow force-quotes every field (the export format quotes
// unconditionally, which rules out encoding/csv's minimal quoting).
// Embedded quotes are doubled per RFC 4180.
func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func derefOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
