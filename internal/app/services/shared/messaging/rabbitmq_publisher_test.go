package messaging

import (
	"context"
	"errors"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	queue    string
	messages []amqp091.Publishing
	err      error
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.queue = key
	c.messages = append(c.messages, msg)
	return nil
}

type fakePublisher struct {
	events []*requests.AssessmentCompletedEvent
	err    error
}

func (p *fakePublisher) PublishAssessmentCompleted(ctx context.Context, event *requests.AssessmentCompletedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func TestPublishAssessmentCompleted(t *testing.T) {
	event := &requests.AssessmentCompletedEvent{
		Event:        constvars.EventAssessmentCompleted,
		Kind:         constvars.AssessmentKindProgram,
		AssessmentID: "a1",
		PatientID:    "p1",
		UserID:       "u1",
		Type:         constvars.AssessmentTypePre,
		CompletedAt:  time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		Summary:      map[string]interface{}{"total_score": 51},
	}

	t.Run("Publishes JSON To Queue", func(t *testing.T) {
		channel := &fakeChannel{}
		publisher := &rabbitMQPublisher{Channel: channel, Queue: "assessment-events"}

		require.NoError(t, publisher.PublishAssessmentCompleted(context.Background(), event))
		require.Len(t, channel.messages, 1)
		assert.Equal(t, "assessment-events", channel.queue)
		assert.Equal(t, constvars.MIMEApplicationJSON, channel.messages[0].ContentType)
		assert.Equal(t, amqp091.Persistent, channel.messages[0].DeliveryMode)

		var decoded requests.AssessmentCompletedEvent
		require.NoError(t, json.Unmarshal(channel.messages[0].Body, &decoded))
		assert.Equal(t, "a1", decoded.AssessmentID)
		assert.Equal(t, constvars.EventAssessmentCompleted, decoded.Event)
	})

	t.Run("Wraps Channel Error", func(t *testing.T) {
		publisher := &rabbitMQPublisher{Channel: &fakeChannel{err: errors.New("channel closed")}, Queue: "q"}
		assert.Error(t, publisher.PublishAssessmentCompleted(context.Background(), event))
	})
}

func TestNotifyAssessmentCompleted(t *testing.T) {
	t.Run("Failure Is Swallowed", func(t *testing.T) {
		publisher := &fakePublisher{err: errors.New("broker down")}
		assert.NotPanics(t, func() {
			NotifyAssessmentCompleted(context.Background(), publisher, zap.NewNop(), &requests.AssessmentCompletedEvent{AssessmentID: "a1"})
		})
		require.Len(t, publisher.events, 1)
		assert.Equal(t, constvars.EventAssessmentCompleted, publisher.events[0].Event)
	})

	t.Run("Nil Publisher", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NotifyAssessmentCompleted(context.Background(), nil, zap.NewNop(), &requests.AssessmentCompletedEvent{})
		})
	})
}
