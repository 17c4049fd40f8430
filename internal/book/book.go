package book

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"DexLedger/internal/asset"

	"github.com/ethereum/go-ethereum/common"
)

var ErrUnknownOrder = errors.New("unknown order")

// OrderID is the stable integer handle assigned to an order at placement.
type OrderID uint64

// Order is an open trade order. While the order is open, HaveAmount of
// HaveAsset is held in the maker's locked balance. FillAmount tracks the
// portion of HaveAmount already consumed by partial fills and never exceeds
// HaveAmount. Orders are mutated only by cancellation and fill bookkeeping.
type Order struct {
	ID         OrderID
	Maker      common.Address
	HaveAsset  asset.ID
	HaveAmount int64
	WantAsset  asset.ID
	WantAmount int64
	CreatedAt  time.Time
	ExpiresAt  *time.Time // nil means the order never expires
	FillAmount int64
}

// Remaining returns the unfilled portion of the order's have amount.
func (o *Order) Remaining() int64 {
	return o.HaveAmount - o.FillAmount
}

// Expired reports whether the order's cancellable window has passed.
func (o *Order) Expired(now time.Time) bool {
	return o.ExpiresAt != nil && now.After(*o.ExpiresAt)
}

func (o *Order) clone() *Order {
	c := *o
	if o.ExpiresAt != nil {
		t := *o.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}

// Book is the arena of open orders, indexed by their sequential handle.
// IDs start at 1 and are never reused, so an ID observed once refers to the
// same order content forever, even after the order leaves the open set.
type Book struct {
	orders map[OrderID]*Order
	nextID OrderID
}

func New() *Book {
	return &Book{
		orders: make(map[OrderID]*Order),
		nextID: 1,
	}
}

// Place inserts a new order and assigns the next sequential ID.
func (b *Book) Place(
	maker common.Address,
	haveAsset asset.ID, haveAmount int64,
	wantAsset asset.ID, wantAmount int64,
	createdAt time.Time,
	expiresAt *time.Time,
) *Order {
	o := &Order{
		ID:         b.nextID,
		Maker:      maker,
		HaveAsset:  haveAsset,
		HaveAmount: haveAmount,
		WantAsset:  wantAsset,
		WantAmount: wantAmount,
		CreatedAt:  createdAt,
		ExpiresAt:  expiresAt,
	}
	b.nextID++
	b.orders[o.ID] = o
	return o
}

// Get returns a copy of the order so callers cannot mutate book state.
func (b *Book) Get(id OrderID) (*Order, error) {
	o, ok := b.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, id)
	}
	return o.clone(), nil
}

// Remove deletes an order from the open set.
func (b *Book) Remove(id OrderID) error {
	if _, ok := b.orders[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, id)
	}
	delete(b.orders, id)
	return nil
}

// Filling returns the filled portion of an order's have amount.
// Absent orders read as zero.
func (b *Book) Filling(id OrderID) int64 {
	o, ok := b.orders[id]
	if !ok {
		return 0
	}
	return o.FillAmount
}

// RecordFill advances an order's fill bookkeeping.
func (b *Book) RecordFill(id OrderID, amount int64) error {
	o, ok := b.orders[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, id)
	}
	if amount <= 0 {
		return fmt.Errorf("fill amount must be positive: %d", amount)
	}
	if o.FillAmount+amount > o.HaveAmount {
		return fmt.Errorf("fill %d exceeds remaining %d of order %d", amount, o.Remaining(), id)
	}
	o.FillAmount += amount
	return nil
}

// Len returns the number of open orders.
func (b *Book) Len() int {
	return len(b.orders)
}

// Open returns copies of all open orders ordered by ID, for snapshots.
func (b *Book) Open() []*Order {
	orders := make([]*Order, 0, len(b.orders))
	for _, o := range b.orders {
		orders = append(orders, o.clone())
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

// NextID returns the next handle that Place would assign.
func (b *Book) NextID() OrderID {
	return b.nextID
}

// Restore loads book state from a snapshot. nextID must be at least one past
// the highest ID ever assigned, including orders no longer open.
func (b *Book) Restore(orders []*Order, nextID OrderID) {
	for _, o := range orders {
		b.orders[o.ID] = o.clone()
		if o.ID >= b.nextID {
			b.nextID = o.ID + 1
		}
	}
	if nextID > b.nextID {
		b.nextID = nextID
	}
}
