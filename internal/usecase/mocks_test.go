package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/homepilot/homepilot-api/internal/entity"
	"github.com/homepilot/homepilot-api/internal/infra/queue"
)

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, s *entity.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubmissionRepository) FindLatestByNameEmail(ctx context.Context, name, email string) (*entity.Submission, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ApplyFollowup(ctx context.Context, id string, patch entity.FollowupPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockSubmissionRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubmissionRepository) ListByScore(ctx context.Context, onlyWantsOwn bool) ([]entity.Submission, error) {
	args := m.Called(ctx, onlyWantsOwn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Submission), args.Error(1)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

type MockIntentScorer struct {
	mock.Mock
}

func (m *MockIntentScorer) Score(ctx context.Context, message string) (int, error) {
	args := m.Called(ctx, message)
	return args.Int(0), args.Error(1)
}

type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
