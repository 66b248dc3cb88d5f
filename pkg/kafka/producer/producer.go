package producer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
	_defaultBatchTimeout = 10 * time.Millisecond
	_defaultWriteTimeout = 5 * time.Second
)

type Producer struct {
	connAttempts int
	connTimeout  time.Duration
	batchTimeout time.Duration
	writeTimeout time.Duration

	brokers []string
	topic   string
	Writer  *kafka.Writer
}

// New builds a writer bound to topic. Messages are written one at a time by the
// gallery, so the batch timeout is kept short.
func New(ctx context.Context, brokers []string, topic string, opts ...Option) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("Kafka Producer - New: no brokers configured")
	}

	p := &Producer{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		batchTimeout: _defaultBatchTimeout,
		writeTimeout: _defaultWriteTimeout,
		brokers:      brokers,
		topic:        topic,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.Writer = &kafka.Writer{
		Addr:                   kafka.TCP(p.brokers...),
		Topic:                  p.topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           p.batchTimeout,
		WriteTimeout:           p.writeTimeout,
		AllowAutoTopicCreation: true,
	}

	var err error
	for p.connAttempts > 0 {
		err = p.ping(ctx)
		if err == nil {
			break
		}

		log.Printf("Kafka producer is trying to connect, attempts left: %d", p.connAttempts)

		time.Sleep(p.connTimeout)

		p.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("Kafka Producer - New - connAttempts == 0: %w", err)
	}

	return p, nil
}

// ping succeeds as soon as one broker answers with cluster metadata.
func (p *Producer) ping(ctx context.Context) error {
	var errs []error

	for _, broker := range p.brokers {
		err := pingBroker(ctx, broker)
		if err == nil {
			return nil
		}

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func pingBroker(ctx context.Context, broker string) error {
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return fmt.Errorf("Kafka Producer - kafka.DialContext - broker=%s: %w", broker, err)
	}
	defer conn.Close()

	_, err = conn.Brokers()
	if err != nil {
		return fmt.Errorf("Kafka Producer - conn.Brokers - broker=%s: %w", broker, err)
	}

	return nil
}

func (p *Producer) Close() error {
	if p.Writer != nil {
		return p.Writer.Close()
	}

	return nil
}
