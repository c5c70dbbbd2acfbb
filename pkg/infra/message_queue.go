package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fystack/caaj-indexer/pkg/common/logger"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

var (
	ErrPermament = errors.New("permanent messaging error")

	// MaxMsgSize bounds one published journal batch.
	MaxMsgSize = 1 << 20
)

const streamMaxAge = 7 * 24 * time.Hour

type MessageQueue interface {
	Enqueue(ctx context.Context, topic string, message []byte, options *EnqueueOptions) error
	// handler shouldn't block: a message not acked in time is redelivered.
	Dequeue(ctx context.Context, handler func(subject string, message []byte) error) error
	Close()
}

type EnqueueOptions struct {
	IdempotententKey string
}

type msgQueue struct {
	consumerName    string
	js              jetstream.JetStream
	consumer        jetstream.Consumer
	consumerContext jetstream.ConsumeContext
}

type NATsMessageQueueManager struct {
	queueName string
	subjects  []string
	js        jetstream.JetStream
}

// NewNATsMessageQueueManager creates or updates the stream queueName,
// capturing subjectWildCards. Messages are kept by age, not removed on ack,
// so several readers can replay the same journals.
func NewNATsMessageQueueManager(ctx context.Context, queueName string, subjectWildCards []string, nc *nats.Conn) (*NATsMessageQueueManager, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	if stream, err := js.Stream(ctx, queueName); err != nil {
		logger.Warn("Stream not found, creating new stream", "stream", queueName)
	} else if info, err := stream.Info(ctx); err == nil {
		logger.Info("Stream found", "name", info.Config.Name, "subjects", info.Config.Subjects, "msgs", info.State.Msgs)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        queueName,
		Description: "Journal entries for " + queueName,
		Subjects:    subjectWildCards,
		MaxMsgSize:  int32(MaxMsgSize),
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      streamMaxAge,
		Duplicates:  time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("create stream %s: %w", queueName, err)
	}
	logger.Info("NATS JetStream stream ready", "stream", queueName, "subjects", subjectWildCards)

	return &NATsMessageQueueManager{
		queueName: queueName,
		subjects:  subjectWildCards,
		js:        js,
	}, nil
}

// NewPublisher returns a queue that only publishes.
func (m *NATsMessageQueueManager) NewPublisher() MessageQueue {
	return &msgQueue{js: m.js}
}

// NewMessageQueue binds a durable consumer filtered on filterSubject.
func (m *NATsMessageQueueManager) NewMessageQueue(ctx context.Context, consumerName, filterSubject string) (MessageQueue, error) {
	cfg := jetstream.ConsumerConfig{
		Name:           consumerName,
		Durable:        consumerName,
		MaxAckPending:  4,
		FilterSubjects: []string{filterSubject},
		MaxDeliver:     3,
		DeliverPolicy:  jetstream.DeliverAllPolicy,
		AckPolicy:      jetstream.AckExplicitPolicy,
	}
	logger.Info("Creating consumer for subject", "name", cfg.Name, "filterSubjects", cfg.FilterSubjects)
	consumer, err := m.js.CreateOrUpdateConsumer(ctx, m.queueName, cfg)
	if err != nil {
		return nil, fmt.Errorf("create consumer %s: %w", consumerName, err)
	}
	return &msgQueue{consumerName: consumerName, js: m.js, consumer: consumer}, nil
}

func (mq *msgQueue) Enqueue(ctx context.Context, topic string, message []byte, options *EnqueueOptions) error {
	logger.Debug("Enqueueing message", "topic", topic, "size", len(message))
	header := nats.Header{}
	if options != nil && options.IdempotententKey != "" {
		header.Add(jetstream.MsgIDHeader, options.IdempotententKey)
	}

	_, err := mq.js.PublishMsg(ctx, &nats.Msg{
		Subject: topic,
		Data:    message,
		Header:  header,
	})
	if err != nil {
		return fmt.Errorf("error enqueueing message: %w", err)
	}
	return nil
}

func (mq *msgQueue) Dequeue(ctx context.Context, handler func(subject string, message []byte) error) error {
	if mq.consumer == nil {
		return errors.New("dequeue on a publish-only queue")
	}
	c, err := mq.consumer.Consume(func(msg jetstream.Msg) {
		meta, _ := msg.Metadata()
		if err := handler(msg.Subject(), msg.Data()); err != nil {
			if errors.Is(err, ErrPermament) {
				logger.Warn("Permanent error on message", "subject", msg.Subject(), "meta", meta)
				_ = msg.Term()
				return
			}
			logger.Error("Error handling message", "err", err)
			_ = msg.Nak()
			return
		}
		if err := msg.Ack(); err != nil {
			logger.Error("Error acknowledging message", "err", err)
		}
	})
	if err != nil {
		return err
	}
	mq.consumerContext = c

	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return nil
}

func (mq *msgQueue) Close() {
	if mq.consumerContext != nil {
		mq.consumerContext.Stop()
	}
}
