package messaging

import (
	"context"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

// NotifyAssessmentCompleted publishes the event without failing the caller;
// a nil publisher disables events.
func NotifyAssessmentCompleted(ctx context.Context, publisher contracts.EventPublisher, log *zap.Logger, event *requests.AssessmentCompletedEvent) {
	if publisher == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event.Event = constvars.EventAssessmentCompleted

	if err := publisher.PublishAssessmentCompleted(ctx, event); err != nil {
		log.Warn("messaging.NotifyAssessmentCompleted failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, event.AssessmentID),
			zap.Error(err),
		)
		return
	}
	log.Info("messaging.NotifyAssessmentCompleted published event",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, event.AssessmentID),
		zap.String("kind", event.Kind),
	)
}
