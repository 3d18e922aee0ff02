package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/stashlop/sillora/internal/config"
	"github.com/stashlop/sillora/internal/utils"
)

// Publisher publishes domain events. Publishing is best-effort: failures are
// logged and never propagated to the request path.
type Publisher struct {
	publisher message.Publisher
	logger    utils.Logger
}

// NewPublisher builds a Kafka-backed publisher when brokers are configured,
// falling back to an in-process pub/sub otherwise.
func NewPublisher(cfg *config.Config, logger utils.Logger) (*Publisher, error) {
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := kafka.NewPublisher(
			kafka.PublisherConfig{
				Brokers:   cfg.KafkaBrokers,
				Marshaler: kafka.DefaultMarshaler{},
			},
			watermill.NopLogger{},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		logger.Info("event publisher initialized", "backend", "kafka", "brokers", cfg.KafkaBrokers)
		return &Publisher{publisher: kafkaPublisher, logger: logger}, nil
	}

	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	logger.Info("event publisher initialized", "backend", "gochannel")
	return &Publisher{publisher: pubsub, logger: logger}, nil
}

// NewGoChannelPublisher builds an in-process publisher, used in tests and as
// the default backend.
func NewGoChannelPublisher(logger utils.Logger) *Publisher {
	return &Publisher{
		publisher: gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}),
		logger:    logger,
	}
}

// Publish serializes the payload and publishes it on the topic. A nil
// Publisher is a no-op so callers never have to guard.
func (p *Publisher) Publish(ctx context.Context, topic string, payload interface{}) {
	if p == nil || p.publisher == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		utils.FromContext(ctx, p.logger).Error("failed to marshal event payload", "topic", topic, "error", err)
		return
	}

	msg := message.NewMessage(uuid.New().String(), data)
	msg.Metadata.Set("topic", topic)

	if err := p.publisher.Publish(topic, msg); err != nil {
		utils.FromContext(ctx, p.logger).Error("failed to publish event", "topic", topic, "error", err)
	}
}

// Close shuts the underlying publisher down.
func (p *Publisher) Close() error {
	if p == nil || p.publisher == nil {
		return nil
	}
	return p.publisher.Close()
}
