package mocks

import (
	"context"
	"ot-tracking-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAssessmentCompleted(ctx context.Context, event *requests.AssessmentCompletedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
