package ledger

import (
	"fmt"

	"DexLedger/internal/asset"

	"github.com/ethereum/go-ethereum/common"
)

// BalanceTracker maintains in-memory account balances
type BalanceTracker struct {
	balances map[AccountKey]int64
}

func NewBalanceTracker() *BalanceTracker {
	return &BalanceTracker{
		balances: make(map[AccountKey]int64),
	}
}

// ApplyJournal applies a single journal entry to balances
func (bt *BalanceTracker) ApplyJournal(j Journal) {
	bt.balances[j.DebitAccount] += j.Amount
	bt.balances[j.CreditAccount] -= j.Amount
}

// ApplyBatch applies all journals in a batch
func (bt *BalanceTracker) ApplyBatch(batch *Batch) error {
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	for _, j := range batch.Journals {
		bt.ApplyJournal(j)
	}

	return nil
}

// RevertBatch undoes a previously applied batch by applying each entry in
// reverse. Used to roll an operation back when a later sub-step fails.
func (bt *BalanceTracker) RevertBatch(batch *Batch) {
	for i := len(batch.Journals) - 1; i >= 0; i-- {
		j := batch.Journals[i]
		bt.balances[j.DebitAccount] -= j.Amount
		bt.balances[j.CreditAccount] += j.Amount
	}
}

// GetBalance returns the current balance for an account
func (bt *BalanceTracker) GetBalance(key AccountKey) int64 {
	return bt.balances[key]
}

// SetBalance overwrites an account balance; used only during snapshot restore.
func (bt *BalanceTracker) SetBalance(key AccountKey, balance int64) {
	bt.balances[key] = balance
}

// Available returns the user's freely spendable balance for an asset.
// Untouched pairs read as zero.
func (bt *BalanceTracker) Available(user common.Address, assetID asset.ID) int64 {
	return bt.balances[NewAvailableKey(user, assetID)]
}

// Locked returns the user's order-committed balance for an asset.
func (bt *BalanceTracker) Locked(user common.Address, assetID asset.ID) int64 {
	return bt.balances[NewLockedKey(user, assetID)]
}

// CustodianHeld returns the net amount the custodian holds for an asset,
// as seen by the ledger. Always non-positive in a healthy ledger: it mirrors
// the sum of all user balances for that asset.
func (bt *BalanceTracker) CustodianHeld(assetID asset.ID) int64 {
	return bt.balances[NewCustodianKey(assetID)]
}

// ValidateSufficientAvailable checks if user has enough available balance
func (bt *BalanceTracker) ValidateSufficientAvailable(user common.Address, assetID asset.ID, required int64) error {
	available := bt.Available(user, assetID)
	if available < required {
		return fmt.Errorf("insufficient available balance: have=%d, need=%d", available, required)
	}
	return nil
}

// ValidateNonNegative checks user balances for an asset after a mutation.
// Both available and locked must never go below zero.
func (bt *BalanceTracker) ValidateNonNegative(user common.Address, assetID asset.ID) error {
	if available := bt.Available(user, assetID); available < 0 {
		return fmt.Errorf("user %s has negative available balance for asset %d: %d",
			user.Hex(), assetID, available)
	}
	if locked := bt.Locked(user, assetID); locked < 0 {
		return fmt.Errorf("user %s has negative locked balance for asset %d: %d",
			user.Hex(), assetID, locked)
	}
	return nil
}

// ComputeGlobalBalance sums all account balances per asset
// (should be 0 for every asset in a zero-sum ledger)
func (bt *BalanceTracker) ComputeGlobalBalance() map[asset.ID]int64 {
	totals := make(map[asset.ID]int64)

	for key, balance := range bt.balances {
		totals[key.Asset] += balance
	}

	return totals
}

// Snapshot returns a copy of all balances
func (bt *BalanceTracker) Snapshot() map[AccountKey]int64 {
	snapshot := make(map[AccountKey]int64, len(bt.balances))
	for k, v := range bt.balances {
		snapshot[k] = v
	}
	return snapshot
}
