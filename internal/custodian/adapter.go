package custodian

import (
	"context"

	"DexLedger/internal/asset"

	"github.com/ethereum/go-ethereum/common"
)

// Adapter abstracts the external subsystem that actually holds and moves
// funds on the ledger's behalf. The engine treats both calls as single
// synchronous steps with an error outcome; it never retries. A failed pull
// or push surfaces to the caller, who may retry the whole operation.
type Adapter interface {
	// Pull moves amount of an asset from the user's external holdings into
	// exchange custody. For a token this is an allowance-based transfer and
	// fails when the user's balance or prior approval is insufficient. For
	// the native currency the amount is the value the caller attached to
	// the triggering call.
	Pull(ctx context.Context, assetID asset.ID, from common.Address, amount int64) error

	// Push moves amount of an asset out of exchange custody back to the
	// recipient's external holdings.
	Push(ctx context.Context, assetID asset.ID, to common.Address, amount int64) error
}
