package feed_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"DexLedger/internal/event"
	"DexLedger/internal/feed"
)

func validMessage(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(feed.Message{
		Sequence:  7,
		EventID:   "550e8400-e29b-41d4-a716-446655440000",
		Kind:      "Deposit",
		Payload:   json.RawMessage(`{"user":"0x00000000000000000000000000000000000000a1","asset_id":1,"amount":50}`),
		StateHash: strings.Repeat("ab", 32),
		PrevHash:  strings.Repeat("cd", 32),
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestParseMessage(t *testing.T) {
	msg, err := feed.ParseMessage(validMessage(t))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if msg.Sequence != 7 {
		t.Errorf("sequence: got %d, want 7", msg.Sequence)
	}
	if msg.Kind != "Deposit" {
		t.Errorf("kind: got %s, want Deposit", msg.Kind)
	}

	env, err := msg.Envelope()
	if err != nil {
		t.Fatalf("envelope: %v", err)
	}
	if env.Kind != event.KindDeposit {
		t.Errorf("envelope kind: got %v, want KindDeposit", env.Kind)
	}
	if env.StateHash[0] != 0xab || env.PrevHash[0] != 0xcd {
		t.Error("hashes not decoded")
	}

	var p event.Deposit
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.Amount != 50 {
		t.Errorf("payload amount: got %d, want 50", p.Amount)
	}
}

func TestParseMessage_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*feed.Message)
	}{
		{"unknown kind", func(m *feed.Message) { m.Kind = "OrderFilled" }},
		{"missing event id", func(m *feed.Message) { m.EventID = "" }},
		{"short state hash", func(m *feed.Message) { m.StateHash = "abcd" }},
		{"non-hex prev hash", func(m *feed.Message) { m.PrevHash = strings.Repeat("zz", 32) }},
		{"negative sequence", func(m *feed.Message) { m.Sequence = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var msg feed.Message
			if err := json.Unmarshal(validMessage(t), &msg); err != nil {
				t.Fatal(err)
			}
			tc.mutate(&msg)
			data, err := json.Marshal(msg)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := feed.ParseMessage(data); err == nil {
				t.Error("expected parse error")
			}
		})
	}

	if _, err := feed.ParseMessage([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
