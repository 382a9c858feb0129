package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"hri-companion-be/internal/pkg/logger"
	"hri-companion-be/pkg/events"
)

// IConsumerService drains the audit topic and writes each event to the
// structured log. Runs for the lifetime of the process.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	log        logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, log logger.ILogger) IConsumerService {
	return &consumerService{subscriber: subscriber, log: log}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, events.AuditTopic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var event events.BaseEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			s.log.Warn("consumer", "dropping malformed audit event", map[string]interface{}{
				"message_id": msg.UUID,
				"error":      err.Error(),
			})
			msg.Ack()
			continue
		}

		s.log.Info("audit", event.Type, event.Data)
		msg.Ack()
	}
	return nil
}
