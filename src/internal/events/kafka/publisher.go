package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/whiteshadows42/AccountManager/src/internal/events"
)

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) PublishMovementRecorded(ctx context.Context, event events.MovementRecorded) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		// Keyed by origin account so movements of one account stay ordered
		// within a partition.
		Key:   []byte(strconv.FormatInt(event.OriginAccount, 10)),
		Value: data,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
