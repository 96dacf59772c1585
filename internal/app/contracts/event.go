package contracts

import (
	"context"
	"ot-tracking-service/internal/pkg/dto/requests"
)

type EventPublisher interface {
	PublishAssessmentCompleted(ctx context.Context, event *requests.AssessmentCompletedEvent) error
}
