package query

import (
	"encoding/json"
	"time"
)

// BalanceView is the answer to a balance query.
type BalanceView struct {
	User      string `json:"user"`
	AssetID   uint32 `json:"asset_id"`
	Available int64  `json:"available"`
	Locked    int64  `json:"locked"`
}

// EventView is one event log row as served to clients.
type EventView struct {
	Sequence  int64           `json:"sequence"`
	EventID   string          `json:"event_id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	StateHash string          `json:"state_hash"`
	PrevHash  string          `json:"prev_hash"`
	Timestamp time.Time       `json:"timestamp"`
}

// OrderView is one projected order row, including closed ones.
type OrderView struct {
	OrderID    uint64     `json:"order_id"`
	Maker      string     `json:"maker"`
	HaveAsset  uint32     `json:"have_asset"`
	HaveAmount int64      `json:"have_amount"`
	WantAsset  uint32     `json:"want_asset"`
	WantAmount int64      `json:"want_amount"`
	FillAmount int64      `json:"fill_amount"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// IntegrityReport summarizes a hash chain verification pass.
type IntegrityReport struct {
	FromSequence int64  `json:"from_sequence"`
	ToSequence   int64  `json:"to_sequence"`
	Checked      int64  `json:"checked"`
	Intact       bool   `json:"intact"`
	BrokenAt     *int64 `json:"broken_at,omitempty"`
}
