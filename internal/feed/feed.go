package feed

import (
	"context"

	"github.com/segmentio/kafka-go"
)

type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewReader returns a latest-offset reader without a consumer group:
// every subscriber sees all events from subscribe time on, and nothing
// before. The feed carries no history by contract.
func NewReader(brokers []string, topic string) Reader {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
	})
	// ReaderConfig.StartOffset only applies to consumer-group readers;
	// a group-less reader defaults to FirstOffset and replays the whole
	// topic. SetOffset is the group-less equivalent and cannot fail
	// without a GroupID.
	r.SetOffset(kafka.LastOffset)
	return r
}

func NewWriter(brokers []string, topic string) Writer {
	return kafka.NewWriter(kafka.WriterConfig{
		Brokers: brokers,
		Topic:   topic,
	})
}
