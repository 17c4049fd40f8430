package event

import (
	"time"
)

// Kind discriminates event payloads in the log and on the feed.
type Kind int32

const (
	KindUnknown Kind = iota
	KindAssetRegistered
	KindDeposit
	KindWithdraw
	KindOrderPlaced
	KindOrderCancelled
)

// Envelope wraps every entry in the append-only event log. An envelope is
// written if and only if the state mutation it describes committed, so a
// consumer replaying the log from sequence 0 reconstructs the exact ledger
// and order-book state.
type Envelope struct {
	// Global monotonic sequence assigned by the engine
	Sequence int64

	// Stable identifier, also the journal batch's event_ref
	EventID string

	// Payload discriminator
	Kind Kind

	// Operation timestamp from the engine's clock
	Timestamp time.Time

	// JSON-encoded event payload
	Payload []byte

	// SHA-256 of affected state AFTER applying this event
	StateHash [32]byte

	// Previous event's state hash (chain integrity)
	PrevHash [32]byte
}

func (k Kind) String() string {
	switch k {
	case KindAssetRegistered:
		return "AssetRegistered"
	case KindDeposit:
		return "Deposit"
	case KindWithdraw:
		return "Withdraw"
	case KindOrderPlaced:
		return "OrderPlaced"
	case KindOrderCancelled:
		return "OrderCancelled"
	default:
		return "Unknown"
	}
}

// KindFromString is the inverse of Kind.String, used when decoding
// persisted rows and feed messages.
func KindFromString(s string) Kind {
	switch s {
	case "AssetRegistered":
		return KindAssetRegistered
	case "Deposit":
		return KindDeposit
	case "Withdraw":
		return KindWithdraw
	case "OrderPlaced":
		return KindOrderPlaced
	case "OrderCancelled":
		return KindOrderCancelled
	default:
		return KindUnknown
	}
}
