package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/kafka/producer"
	"github.com/segmentio/kafka-go"
)

type EventProducer struct {
	*producer.Producer
}

func NewEventProducer(producer *producer.Producer) *EventProducer {
	return &EventProducer{producer}
}

// SendEvent writes one event keyed by the image id (or user id for auth
// events) so events for the same image stay ordered within a partition.
func (ep *EventProducer) SendEvent(ctx context.Context, event entity.GalleryEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("EventProducer - SendEvent - json.Marshal: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(eventKey(event)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID.String())},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	err = ep.Writer.WriteMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("EventProducer - SendEvent - ep.Writer.WriteMessages: %w", err)
	}

	return nil
}

func (ep *EventProducer) Close() error {
	err := ep.Producer.Close()
	if err != nil {
		return fmt.Errorf("EventProducer - Close: %w", err)
	}

	return nil
}

func eventKey(event entity.GalleryEvent) string {
	switch {
	case event.ImageID != nil:
		return event.ImageID.String()
	case event.UserID != nil:
		return event.UserID.String()
	default:
		return event.ID.String()
	}
}
