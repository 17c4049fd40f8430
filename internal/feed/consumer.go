package feed

import (
	"context"
	"fmt"
	"time"

	"DexLedger/internal/observability"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// Handler processes one validated feed message. Returning an error NAKs the
// NATS message for redelivery.
type Handler func(ctx context.Context, msg *Message) error

// Consumer attaches a durable JetStream consumer to the event feed.
type Consumer struct {
	js      jetstream.JetStream
	durable string
	log     zerolog.Logger

	consumeCtx jetstream.ConsumeContext
}

func NewConsumer(js jetstream.JetStream, durable string) *Consumer {
	return &Consumer{
		js:      js,
		durable: durable,
		log:     observability.NewLogger("feed-consumer"),
	}
}

// Subscribe starts delivering feed messages to handler. filterKind narrows
// the subscription to one event kind; empty subscribes to all kinds.
func (c *Consumer) Subscribe(ctx context.Context, filterKind string, handler Handler) error {
	filter := SubjectPrefix + ".>"
	if filterKind != "" {
		filter = fmt.Sprintf("%s.%s", SubjectPrefix, filterKind)
	}

	consumer, err := c.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       c.durable,
		FilterSubject: filter,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return fmt.Errorf("create consumer %s: %w", c.durable, err)
	}

	c.consumeCtx, err = consumer.Consume(func(natsMsg jetstream.Msg) {
		msg, err := ParseMessage(natsMsg.Data())
		if err != nil {
			// Malformed messages never become valid; drop them.
			c.log.Error().Err(err).Str("subject", natsMsg.Subject()).Msg("dropping malformed feed message")
			natsMsg.Term()
			return
		}

		if err := handler(ctx, msg); err != nil {
			c.log.Warn().Err(err).Int64("sequence", msg.Sequence).Msg("handler failed, requeueing")
			natsMsg.Nak()
			return
		}
		natsMsg.Ack()
	})
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.durable, err)
	}

	c.log.Info().Str("filter", filter).Str("durable", c.durable).Msg("subscribed to event feed")
	return nil
}

// Stop drains the subscription.
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
	}
}
