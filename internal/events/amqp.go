package events

import (
	"context"
	"encoding/json"

	"github.com/courtbook/backend/pkg/logger"
	"github.com/courtbook/backend/pkg/rabbitmq"
)

type amqpPublisher struct {
	client *rabbitmq.Client
	logger logger.Interface
}

// NewAmqpPublisher publishes domain events as persistent JSON messages.
func NewAmqpPublisher(client *rabbitmq.Client, l logger.Interface) Publisher {
	return &amqpPublisher{
		client: client,
		logger: l,
	}
}

func (p *amqpPublisher) ReservationCreated(ctx context.Context, event ReservationCreatedEvent) error {
	event.Name = NameReservationCreated

	return p.publish(ctx, event)
}

func (p *amqpPublisher) ReservationDeleted(ctx context.Context, event ReservationDeletedEvent) error {
	event.Name = NameReservationDeleted

	return p.publish(ctx, event)
}

func (p *amqpPublisher) publish(ctx context.Context, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("events - failed to marshal event: %s", err.Error())

		return err
	}

	if err := p.client.Publish(ctx, body); err != nil {
		p.logger.Error("events - failed to publish event: %s", err.Error())

		return err
	}

	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when the broker is disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) ReservationCreated(_ context.Context, _ ReservationCreatedEvent) error {
	return nil
}

func (noopPublisher) ReservationDeleted(_ context.Context, _ ReservationDeletedEvent) error {
	return nil
}
