package feed

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"DexLedger/internal/core"
	"DexLedger/internal/observability"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// StreamName is the JetStream stream carrying the public event feed.
const StreamName = "DEX_LEDGER_EVENTS"

// SubjectPrefix is the subject root; each event kind gets its own child
// subject, e.g. dex.ledger.events.Deposit.
const SubjectPrefix = "dex.ledger.events"

// Message is the wire format of one feed entry. Payload is the same JSON
// document stored in the event log.
type Message struct {
	Sequence  int64           `json:"sequence"`
	EventID   string          `json:"event_id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	StateHash string          `json:"state_hash"`
	PrevHash  string          `json:"prev_hash"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher pushes committed events onto the NATS feed. Publishing is best
// effort: consumers that miss messages catch up from the event log.
type Publisher struct {
	js      jetstream.JetStream
	input   <-chan core.CoreOutput
	metrics *observability.Metrics
	log     zerolog.Logger
}

func NewPublisher(js jetstream.JetStream, input <-chan core.CoreOutput, metrics *observability.Metrics) *Publisher {
	return &Publisher{
		js:      js,
		input:   input,
		metrics: metrics,
		log:     observability.NewLogger("feed"),
	}
}

// Run publishes until ctx is cancelled or the input channel closes.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out, ok := <-p.input:
			if !ok {
				return nil
			}
			if err := p.publish(ctx, out); err != nil {
				p.log.Warn().Err(err).
					Int64("sequence", out.Envelope.Sequence).
					Msg("feed publish failed")
				if p.metrics != nil {
					p.metrics.FeedPublishErrors.Inc()
				}
				continue
			}
			if p.metrics != nil {
				p.metrics.FeedPublished.Inc()
			}
		}
	}
}

func (p *Publisher) publish(ctx context.Context, out core.CoreOutput) error {
	env := out.Envelope
	msg := Message{
		Sequence:  env.Sequence,
		EventID:   env.EventID,
		Kind:      env.Kind.String(),
		Payload:   env.Payload,
		StateHash: hex.EncodeToString(env.StateHash[:]),
		PrevHash:  hex.EncodeToString(env.PrevHash[:]),
		Timestamp: env.Timestamp,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal feed message: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", SubjectPrefix, msg.Kind)
	_, err = p.js.Publish(ctx, subject, data)
	return err
}

// EnsureFeedStream creates the feed stream if it doesn't exist.
func EnsureFeedStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{SubjectPrefix + ".>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("create feed stream: %w", err)
	}
	return nil
}

// ConnectNATS dials NATS and opens a JetStream context.
func ConnectNATS(url string) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("open jetstream context: %w", err)
	}
	return nc, js, nil
}
