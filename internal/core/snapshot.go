package core

import (
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"DexLedger/internal/asset"
	"DexLedger/internal/book"
	"DexLedger/internal/ledger"
)

// SnapshotState is the full engine state serialized at a sequence boundary.
// Restoring it and replaying the event log from Sequence yields the exact
// live state, hash chain included.
type SnapshotState struct {
	Sequence    int64          `json:"sequence"`
	StateHash   string         `json:"state_hash"` // hex of the chain tip
	Balances    []BalanceEntry `json:"balances"`
	Assets      []asset.Entry  `json:"assets"`
	Orders      []*book.Order  `json:"orders"`
	NextOrderID book.OrderID   `json:"next_order_id"`
	CreatedAt   time.Time      `json:"created_at"`
}

// BalanceEntry pairs a structured account key with its balance so restore
// never parses account paths.
type BalanceEntry struct {
	Account ledger.AccountKey `json:"account"`
	Balance int64             `json:"balance"`
}

// CreateSnapshot captures the full engine state under the engine lock.
func (x *Exchange) CreateSnapshot() *SnapshotState {
	x.mu.Lock()
	defer x.mu.Unlock()

	balances := x.tracker.Snapshot()
	entries := make([]BalanceEntry, 0, len(balances))
	for key, balance := range balances {
		entries = append(entries, BalanceEntry{Account: key, Balance: balance})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Account.AccountPath() < entries[j].Account.AccountPath()
	})

	tip := x.hasher.PrevHash()

	return &SnapshotState{
		Sequence:    x.sequence,
		StateHash:   hex.EncodeToString(tip[:]),
		Balances:    entries,
		Assets:      x.registry.Entries(),
		Orders:      x.book.Open(),
		NextOrderID: x.book.NextID(),
		CreatedAt:   x.clock.Now(),
	}
}

// RestoreSnapshot loads a snapshot into a freshly constructed engine.
// It must run before any operation or replay.
func (x *Exchange) RestoreSnapshot(s *SnapshotState) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.sequence != 0 {
		return fmt.Errorf("cannot restore into an engine at sequence %d", x.sequence)
	}

	tip, err := hex.DecodeString(s.StateHash)
	if err != nil || len(tip) != 32 {
		return fmt.Errorf("malformed snapshot state hash %q", s.StateHash)
	}

	for _, e := range s.Balances {
		x.tracker.SetBalance(e.Account, e.Balance)
	}
	x.registry.Restore(s.Assets)
	x.book.Restore(s.Orders, s.NextOrderID)

	var hash [32]byte
	copy(hash[:], tip)
	x.hasher.SetPrevHash(hash)
	x.sequence = s.Sequence

	if err := x.validator.ValidateGlobalBalance(); err != nil {
		return fmt.Errorf("snapshot violates zero-sum invariant: %w", err)
	}
	if x.metrics != nil {
		x.metrics.CoreSequence.Set(float64(x.sequence))
	}
	return nil
}
