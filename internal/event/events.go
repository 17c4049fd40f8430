package event

import (
	"time"

	"DexLedger/internal/asset"
	"DexLedger/internal/book"

	"github.com/ethereum/go-ethereum/common"
)

// Payload structs are the canonical wire format of the event feed and the
// event_log payload column. Field names use snake_case to match downstream
// consumers.

// AssetRegistered records a new asset whitelisting.
type AssetRegistered struct {
	Address common.Address `json:"address"`
	AssetID asset.ID       `json:"asset_id"`
}

// Deposit records funds pulled from a user into custody and credited to
// the user's available balance.
type Deposit struct {
	User    common.Address `json:"user"`
	AssetID asset.ID       `json:"asset_id"`
	Amount  int64          `json:"amount"`
}

// Withdraw records funds debited from a user's available balance and pushed
// back out of custody.
type Withdraw struct {
	User    common.Address `json:"user"`
	AssetID asset.ID       `json:"asset_id"`
	Amount  int64          `json:"amount"`
}

// OrderPlaced records a new open order. Pulled is the amount freshly pulled
// from the custodian to cover the lock's shortfall (zero when the maker's
// available balance already covered it); replay needs it to rebuild the
// ledger without consulting the custodian.
type OrderPlaced struct {
	OrderID    book.OrderID   `json:"order_id"`
	Maker      common.Address `json:"maker"`
	HaveAsset  asset.ID       `json:"have_asset"`
	HaveAmount int64          `json:"have_amount"`
	WantAsset  asset.ID       `json:"want_asset"`
	WantAmount int64          `json:"want_amount"`
	Pulled     int64          `json:"pulled"`
	CreatedAt  time.Time      `json:"created_at"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
}

// OrderCancelled records an order leaving the open set. Unlocked is the
// remaining have amount returned to the maker's available balance.
type OrderCancelled struct {
	OrderID  book.OrderID   `json:"order_id"`
	Maker    common.Address `json:"maker"`
	AssetID  asset.ID       `json:"asset_id"`
	Unlocked int64          `json:"unlocked"`
}
