package service

import (
	"context"
	"encoding/json"

	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
)

// NotificationConsumer turns interest-submitted events into back-office
// emails. It runs for the lifetime of the process; a failed send is logged
// and the message acked anyway, since the record itself is already stored.
type NotificationConsumer struct {
	subscriber  message.Subscriber
	topic       string
	mailer      mailer.IEmailService
	officeEmail string
	logger      logger.ILogger
}

func NewNotificationConsumer(subscriber message.Subscriber, topic string, mail mailer.IEmailService, officeEmail string, log logger.ILogger) *NotificationConsumer {
	return &NotificationConsumer{
		subscriber:  subscriber,
		topic:       topic,
		mailer:      mail,
		officeEmail: officeEmail,
		logger:      log,
	}
}

func (c *NotificationConsumer) Start(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return err
	}
	go c.consume(messages)
	return nil
}

func (c *NotificationConsumer) consume(messages <-chan *message.Message) {
	for msg := range messages {
		var payload InterestSubmittedPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.logger.Warn("Notifier", "Malformed interest payload", map[string]interface{}{"error": err.Error()})
			msg.Ack()
			continue
		}

		var err error
		switch payload.Kind {
		case "profile":
			err = c.mailer.SendProfileInterestNotification(c.officeEmail, payload.Name, payload.MemId, payload.ProfileName, payload.ProfileMemId)
		default:
			err = c.mailer.SendInterestNotification(c.officeEmail, payload.Name, payload.ContactNo, payload.Message)
		}
		if err != nil {
			c.logger.Warn("Notifier", "Notification mail failed", map[string]interface{}{
				"kind":  payload.Kind,
				"error": err.Error(),
			})
		}
		msg.Ack()
	}
}
