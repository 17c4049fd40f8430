package asset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// ID is the internal short handle for a registered asset.
// NativeID (0) always denotes the native currency and never needs registration.
type ID uint32

const NativeID ID = 0

// NativeAddress is the sentinel address that resolves to NativeID.
var NativeAddress = common.Address{}

var (
	ErrUnknownAsset      = errors.New("unknown asset")
	ErrAlreadyRegistered = errors.New("asset already registered")
	ErrInvalidAddress    = errors.New("invalid asset address")
)

// Entry pairs an asset ID with its external contract address.
type Entry struct {
	ID      ID             `json:"id"`
	Address common.Address `json:"address"`
}

// Registry maps whitelisted external asset addresses to internal IDs.
// IDs are assigned sequentially starting at 1 and are never reused;
// a registered asset cannot be removed or re-numbered.
type Registry struct {
	byAddress map[common.Address]ID
	byID      map[ID]common.Address
	nextID    ID
}

func NewRegistry() *Registry {
	return &Registry{
		byAddress: make(map[common.Address]ID),
		byID:      make(map[ID]common.Address),
		nextID:    1,
	}
}

// Register assigns the next sequential ID to address.
// The zero address is reserved for the native currency and is rejected.
func (r *Registry) Register(address common.Address) (ID, error) {
	if address == NativeAddress {
		return 0, fmt.Errorf("%w: zero address", ErrInvalidAddress)
	}
	if id, ok := r.byAddress[address]; ok {
		return 0, fmt.Errorf("%w: %s is asset %d", ErrAlreadyRegistered, address.Hex(), id)
	}

	id := r.nextID
	r.nextID++
	r.byAddress[address] = id
	r.byID[id] = address
	return id, nil
}

// Resolve returns the ID for an external address.
// The zero address resolves to NativeID without registration.
func (r *Registry) Resolve(address common.Address) (ID, error) {
	if address == NativeAddress {
		return NativeID, nil
	}
	id, ok := r.byAddress[address]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAsset, address.Hex())
	}
	return id, nil
}

// AddressOf returns the external address for an ID.
func (r *Registry) AddressOf(id ID) (common.Address, error) {
	if id == NativeID {
		return NativeAddress, nil
	}
	address, ok := r.byID[id]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: id %d", ErrUnknownAsset, id)
	}
	return address, nil
}

// Exists reports whether id refers to the native currency or a registered asset.
func (r *Registry) Exists(id ID) bool {
	if id == NativeID {
		return true
	}
	_, ok := r.byID[id]
	return ok
}

// Entries returns all registered assets ordered by ID, for snapshots.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.byID))
	for id, address := range r.byID {
		entries = append(entries, Entry{ID: id, Address: address})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Restore loads registry state from snapshot entries.
func (r *Registry) Restore(entries []Entry) {
	for _, e := range entries {
		r.byAddress[e.Address] = e.ID
		r.byID[e.ID] = e.Address
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
}
