package core

import "errors"

// Sentinel errors for every engine rejection. Callers match with errors.Is;
// the gRPC layer maps them onto status codes. Asset and order lookups reuse
// the sentinels of their owning packages (asset.ErrUnknownAsset,
// asset.ErrAlreadyRegistered, asset.ErrInvalidAddress, book.ErrUnknownOrder).
var (
	// ErrUnauthorized rejects an operation whose caller lacks the required
	// identity (non-admin registration, non-maker cancellation).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInsufficientFunds rejects a debit that available funds cannot cover.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTransferFailed surfaces a custodian pull or push that did not
	// complete. The operation it belonged to was rolled back in full.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrExpired rejects cancellation of an order whose cancellable window
	// has passed. The order and its locked funds are left untouched.
	ErrExpired = errors.New("order expired")

	// ErrInvalidOrder rejects degenerate order shapes before any funds move.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrInvalidAmount rejects non-positive deposit or withdrawal amounts.
	ErrInvalidAmount = errors.New("invalid amount")
)
