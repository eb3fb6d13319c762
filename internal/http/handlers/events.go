package handlers

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/roster-api/internal/metrics"
	"github.com/mauv0809/roster-api/internal/pubsub"
)

const publishTimeout = 5 * time.Second

// EventPublisher announces roster writes. Publishing is best effort: a
// failure is logged and counted but never fails the request that caused it.
type EventPublisher struct {
	client  pubsub.PubSubClient
	metrics metrics.Metrics
}

func NewEventPublisher(client pubsub.PubSubClient, m metrics.Metrics) *EventPublisher {
	return &EventPublisher{client: client, metrics: m}
}

func (p *EventPublisher) Publish(ctx context.Context, t pubsub.EventType, playerID int, passportIDs []int) {
	// Detached from the request: the write is already committed.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := pubsub.NewEvent(t, playerID, passportIDs)
	if err := p.client.SendMessage(ctx, t, event); err != nil {
		log.Warn("Failed to publish roster event", "type", t, "playerID", playerID, "eventID", event.ID, "error", err)
		p.metrics.IncEventPublishFailed(string(t))
		return
	}
	log.Debug("Published roster event", "type", t, "playerID", playerID, "eventID", event.ID)
}
