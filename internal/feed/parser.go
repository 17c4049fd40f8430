package feed

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"DexLedger/internal/event"
)

// ParseMessage decodes and validates one feed message.
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("malformed feed message: %w", err)
	}

	if msg.Sequence < 0 {
		return nil, fmt.Errorf("negative sequence %d", msg.Sequence)
	}
	if msg.EventID == "" {
		return nil, fmt.Errorf("missing event_id at sequence %d", msg.Sequence)
	}
	if event.KindFromString(msg.Kind) == event.KindUnknown {
		return nil, fmt.Errorf("unknown event kind %q at sequence %d", msg.Kind, msg.Sequence)
	}
	if _, err := decodeHash(msg.StateHash); err != nil {
		return nil, fmt.Errorf("state_hash at sequence %d: %w", msg.Sequence, err)
	}
	if _, err := decodeHash(msg.PrevHash); err != nil {
		return nil, fmt.Errorf("prev_hash at sequence %d: %w", msg.Sequence, err)
	}

	return &msg, nil
}

// Envelope converts a validated feed message back into the engine's
// envelope form, e.g. to feed a replica via ApplyLogged.
func (m *Message) Envelope() (*event.Envelope, error) {
	stateHash, err := decodeHash(m.StateHash)
	if err != nil {
		return nil, err
	}
	prevHash, err := decodeHash(m.PrevHash)
	if err != nil {
		return nil, err
	}

	env := &event.Envelope{
		Sequence:  m.Sequence,
		EventID:   m.EventID,
		Kind:      event.KindFromString(m.Kind),
		Timestamp: m.Timestamp,
		Payload:   m.Payload,
	}
	copy(env.StateHash[:], stateHash)
	copy(env.PrevHash[:], prevHash)
	return env, nil
}

func decodeHash(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("not hex: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("hash is %d bytes, want 32", len(b))
	}
	return b, nil
}
