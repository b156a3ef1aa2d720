package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// KafkaClient publishes and consumes engagement events on a single topic.
// The event name travels in the message key, the JSON payload in the value.
type KafkaClient struct {
	writer *kafka.Writer
	reader *kafka.Reader
}

func NewKafkaClient(host string, port string, topic string, group string) (*KafkaClient, error) {
	address := fmt.Sprintf("%s:%s", host, port)

	writer := &kafka.Writer{
		Addr:     kafka.TCP(address),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{address},
		Topic:   topic,
		GroupID: group,
	})

	return &KafkaClient{
		writer: writer,
		reader: reader,
	}, nil
}

// Publish marshals the message and writes it under the given event name.
func (c *KafkaClient) Publish(ctx context.Context, event string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return c.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event),
		Value: payload,
	})
}

// ReadMessage blocks until the next event arrives and returns its name and
// raw payload.
func (c *KafkaClient) ReadMessage(ctx context.Context) (string, []byte, error) {
	message, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return "", nil, err
	}
	return string(message.Key), message.Value, nil
}

func (c *KafkaClient) Close() error {
	writerErr := c.writer.Close()
	readerErr := c.reader.Close()
	if writerErr != nil {
		return writerErr
	}
	return readerErr
}
