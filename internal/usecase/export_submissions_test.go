package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/homepilot/homepilot-api/internal/entity"
	"github.com/homepilot/homepilot-api/internal/usecase"
)

func TestExportCSVQuotesEveryField(t *testing.T) {
	ctx := context.Background()

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	yes := "yes"
	intent := "buy"
	value := "this quarter"

	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("ListByScore", mock.Anything, false).Return([]entity.Submission{
		{
			ID: "sub-1", Name: "Jane", Email: "jane@x.com",
			Message: "I need this now", Social: "@jane",
			Score: 5, Status: entity.StatusInvited,
			FollowupIntent: &intent, FollowupValue: &value, WantsOwnHomepilot: &yes,
			CreatedAt: created,
		},
		{
			ID: "sub-2", Name: "Bob", Email: "bob@x.com",
			Message: `he said "soon"`,
			Score:   2, Status: entity.StatusPending,
			CreatedAt: created,
		},
	}, nil)

	uc := usecase.NewExportSubmissionsUseCase(mockRepo)

	csv, err := uc.ExportCSV(ctx, false)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	assert.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t,
		`"name","email","message","social","score","status","followup_intent","followup_value","wants_own_homepilot","created_at"`,
		lines[0])
	assert.Equal(t,
		`"Jane","jane@x.com","I need this now","@jane","5","invited","buy","this quarter","yes","2026-08-30T12:00:00Z"`,
		lines[1])
	// embedded quotes doubled, absent optional fields as empty string
	assert.Equal(t,
		`"Bob","bob@x.com","he said ""soon""","","2","pending","","","","2026-08-30T12:00:00Z"`,
		lines[2])
}

func TestExportCSVRowCountMatchesFilter(t *testing.T) {
	ctx := context.Background()

	yes := "yes"
	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("ListByScore", mock.Anything, true).Return([]entity.Submission{
		{ID: "sub-1", Name: "Jane", Email: "jane@x.com", Message: "m", Score: 4,
			Status: entity.StatusPending, WantsOwnHomepilot: &yes, CreatedAt: time.Now()},
	}, nil)

	uc := usecase.NewExportSubmissionsUseCase(mockRepo)

	csv, err := uc.ExportCSV(ctx, true)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	assert.Len(t, lines, 2)
	mockRepo.AssertCalled(t, "ListByScore", mock.Anything, true)
}

func TestExportCSVEmptySet(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("ListByScore", mock.Anything, false).Return([]entity.Submission{}, nil)

	uc := usecase.NewExportSubmissionsUseCase(mockRepo)

	csv, err := uc.ExportCSV(ctx, false)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestExportFilenameEmbedsDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "homepilot-submissions-2026-08-30.csv", usecase.ExportFilename(now))
}
