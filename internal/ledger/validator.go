package ledger

import (
	"fmt"

	"DexLedger/internal/asset"

	"github.com/ethereum/go-ethereum/common"
)

// InvariantValidator checks ledger-wide invariants after mutations.
type InvariantValidator struct {
	tracker *BalanceTracker
}

func NewInvariantValidator(tracker *BalanceTracker) *InvariantValidator {
	return &InvariantValidator{tracker: tracker}
}

// ValidateGlobalBalance verifies the zero-sum invariant: for every asset,
// the sum of all user balances and the external custodian account is zero.
// A non-zero total means funds were created or destroyed.
func (v *InvariantValidator) ValidateGlobalBalance() error {
	totals := v.tracker.ComputeGlobalBalance()
	for assetID, total := range totals {
		if total != 0 {
			return fmt.Errorf("global balance non-zero for asset %d: %d", assetID, total)
		}
	}
	return nil
}

// ValidateUserBalances verifies both balance fields are non-negative for a
// (user, asset) pair touched by an operation.
func (v *InvariantValidator) ValidateUserBalances(user common.Address, assetID asset.ID) error {
	return v.tracker.ValidateNonNegative(user, assetID)
}
