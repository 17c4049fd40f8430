package ledger

import (
	"fmt"

	"DexLedger/internal/asset"

	"github.com/ethereum/go-ethereum/common"
)

// AccountScope represents the top-level account namespace
type AccountScope uint8

const (
	AccountScopeUser AccountScope = iota
	AccountScopeExternal
)

// AccountSubType represents the account purpose
type AccountSubType uint8

const (
	// User sub-types
	SubTypeAvailable AccountSubType = iota
	SubTypeLocked

	// External sub-types
	SubTypeCustodian
)

// AccountKey is the in-memory key for balance tracking.
// User accounts are keyed by the user's external address; the single
// external account per asset represents funds held by the custodian on
// the exchange's behalf. The external account carries the negative mirror
// of all user balances, so the ledger sums to zero per asset.
type AccountKey struct {
	Scope   AccountScope
	Owner   common.Address
	SubType AccountSubType
	Asset   asset.ID
}

// NewAvailableKey creates the key for a user's freely spendable balance.
func NewAvailableKey(user common.Address, assetID asset.ID) AccountKey {
	return AccountKey{
		Scope:   AccountScopeUser,
		Owner:   user,
		SubType: SubTypeAvailable,
		Asset:   assetID,
	}
}

// NewLockedKey creates the key for a user's order-committed balance.
func NewLockedKey(user common.Address, assetID asset.ID) AccountKey {
	return AccountKey{
		Scope:   AccountScopeUser,
		Owner:   user,
		SubType: SubTypeLocked,
		Asset:   assetID,
	}
}

// NewCustodianKey creates the key for the external custodian boundary account.
func NewCustodianKey(assetID asset.ID) AccountKey {
	return AccountKey{
		Scope:   AccountScopeExternal,
		SubType: SubTypeCustodian,
		Asset:   assetID,
	}
}

// AccountPath returns the string representation for storage/logging
func (k AccountKey) AccountPath() string {
	switch k.Scope {
	case AccountScopeUser:
		return fmt.Sprintf("user:%s:%s:%d", k.Owner.Hex(), k.subTypeName(), k.Asset)
	case AccountScopeExternal:
		return fmt.Sprintf("external:%s:%d", k.subTypeName(), k.Asset)
	}
	return "unknown"
}

func (k AccountKey) subTypeName() string {
	switch k.SubType {
	case SubTypeAvailable:
		return "available"
	case SubTypeLocked:
		return "locked"
	case SubTypeCustodian:
		return "custodian"
	default:
		return "unknown"
	}
}
