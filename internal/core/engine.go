package core

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"DexLedger/internal/asset"
	"DexLedger/internal/book"
	"DexLedger/internal/custodian"
	"DexLedger/internal/event"
	"DexLedger/internal/ledger"
	"DexLedger/internal/observability"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// Full zero-sum scan interval, in committed events.
const globalCheckInterval = 1024

// CoreOutput carries one committed event plus its journal batch to the
// persistence and projection workers.
type CoreOutput struct {
	Envelope *event.Envelope
	Batch    *ledger.Batch
}

// Exchange is the accounting and order-lifecycle engine. All state lives
// in memory behind a single mutex; every operation either commits in full
// and appends exactly one event, or leaves no trace.
type Exchange struct {
	mu sync.Mutex

	admin     common.Address
	clock     Clock
	custodian custodian.Adapter

	registry  *asset.Registry
	tracker   *ledger.BalanceTracker
	journals  *ledger.JournalGenerator
	validator *ledger.InvariantValidator
	book      *book.Book

	hasher   *StateHasher
	sequence int64

	metrics *observability.Metrics

	persistChan    chan<- CoreOutput
	projectionChan chan<- CoreOutput
}

// NewExchange creates an engine at sequence 0 with empty state. admin is the
// only address allowed to register assets. metrics and the output channels
// may be nil, in which case the engine runs without instrumentation or
// downstream workers (tests, replay tooling).
func NewExchange(
	admin common.Address,
	adapter custodian.Adapter,
	clock Clock,
	metrics *observability.Metrics,
	persistChan, projectionChan chan<- CoreOutput,
) *Exchange {
	tracker := ledger.NewBalanceTracker()

	return &Exchange{
		admin:          admin,
		clock:          clock,
		custodian:      adapter,
		registry:       asset.NewRegistry(),
		tracker:        tracker,
		journals:       ledger.NewJournalGenerator(),
		validator:      ledger.NewInvariantValidator(tracker),
		book:           book.New(),
		hasher:         NewStateHasher(),
		metrics:        metrics,
		persistChan:    persistChan,
		projectionChan: projectionChan,
	}
}

// RegisterAsset whitelists an external asset address and assigns it the next
// sequential ID. Only the admin may call it.
func (x *Exchange) RegisterAsset(ctx context.Context, caller, address common.Address) (asset.ID, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	start := time.Now()

	if caller != x.admin {
		return 0, x.reject("unauthorized",
			fmt.Errorf("%w: %s is not the exchange admin", ErrUnauthorized, caller.Hex()))
	}

	id, err := x.registry.Register(address)
	if err != nil {
		return 0, x.reject(rejectReason(err), err)
	}

	x.commit(event.KindAssetRegistered, uuid.New().String(), x.clock.Now(), start,
		event.AssetRegistered{Address: address, AssetID: id}, nil)
	return id, nil
}

// Deposit pulls amount from the user's external holdings into custody and
// credits the user's available balance. Nothing is credited if the pull fails.
func (x *Exchange) Deposit(ctx context.Context, user common.Address, assetID asset.ID, amount int64) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	start := time.Now()

	if amount <= 0 {
		return x.reject("invalid_amount", fmt.Errorf("%w: deposit of %d", ErrInvalidAmount, amount))
	}
	if !x.registry.Exists(assetID) {
		return x.reject("unknown_asset", fmt.Errorf("%w: id %d", asset.ErrUnknownAsset, assetID))
	}

	if err := x.custodian.Pull(ctx, assetID, user, amount); err != nil {
		return x.reject("transfer_failed", fmt.Errorf("%w: %v", ErrTransferFailed, err))
	}

	now := x.clock.Now()
	eventID := uuid.New().String()
	batch := x.journals.GenerateDeposit(user, assetID, amount, eventID, x.sequence, now.UnixMicro())
	if err := x.tracker.ApplyBatch(batch); err != nil {
		panic(fmt.Sprintf("FATAL: deposit batch rejected after custodian pull: %v", err))
	}
	x.postCheck(user, assetID)

	x.commit(event.KindDeposit, eventID, now, start,
		event.Deposit{User: user, AssetID: assetID, Amount: amount}, batch)
	return nil
}

// Withdraw debits the user's available balance and pushes the funds back to
// the user's external holdings. A failed push reverts the debit in full.
func (x *Exchange) Withdraw(ctx context.Context, user common.Address, assetID asset.ID, amount int64) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	start := time.Now()

	if amount <= 0 {
		return x.reject("invalid_amount", fmt.Errorf("%w: withdrawal of %d", ErrInvalidAmount, amount))
	}
	if !x.registry.Exists(assetID) {
		return x.reject("unknown_asset", fmt.Errorf("%w: id %d", asset.ErrUnknownAsset, assetID))
	}
	if err := x.tracker.ValidateSufficientAvailable(user, assetID, amount); err != nil {
		return x.reject("insufficient_funds", fmt.Errorf("%w: %v", ErrInsufficientFunds, err))
	}

	now := x.clock.Now()
	eventID := uuid.New().String()
	batch := x.journals.GenerateWithdraw(user, assetID, amount, eventID, x.sequence, now.UnixMicro())
	if err := x.tracker.ApplyBatch(batch); err != nil {
		panic(fmt.Sprintf("FATAL: withdraw batch rejected: %v", err))
	}

	// Debit before push: the custodian must never release funds the ledger
	// still counts as available.
	if err := x.custodian.Push(ctx, assetID, user, amount); err != nil {
		x.tracker.RevertBatch(batch)
		return x.reject("transfer_failed", fmt.Errorf("%w: %v", ErrTransferFailed, err))
	}
	x.postCheck(user, assetID)

	x.commit(event.KindWithdraw, eventID, now, start,
		event.Withdraw{User: user, AssetID: assetID, Amount: amount}, batch)
	return nil
}

// PlaceOrder opens an order offering haveAmount of haveAsset for wantAmount
// of wantAsset and locks haveAmount from the maker's balance. A shortfall
// between the maker's available balance and haveAmount is covered by a fresh
// pull: for the native asset from attached value (any excess is pushed back),
// for tokens by pulling exactly the shortfall from the maker's allowance.
func (x *Exchange) PlaceOrder(
	ctx context.Context,
	maker common.Address,
	haveAsset asset.ID, haveAmount int64,
	wantAsset asset.ID, wantAmount int64,
	attached int64,
	expiresAt *time.Time,
) (book.OrderID, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	start := time.Now()

	if haveAmount <= 0 || wantAmount <= 0 {
		return 0, x.reject("invalid_order",
			fmt.Errorf("%w: amounts must be positive (have=%d, want=%d)", ErrInvalidOrder, haveAmount, wantAmount))
	}
	if haveAsset == wantAsset {
		return 0, x.reject("invalid_order",
			fmt.Errorf("%w: have and want asset are both %d", ErrInvalidOrder, haveAsset))
	}
	if !x.registry.Exists(haveAsset) {
		return 0, x.reject("unknown_asset", fmt.Errorf("%w: have asset %d", asset.ErrUnknownAsset, haveAsset))
	}
	if !x.registry.Exists(wantAsset) {
		return 0, x.reject("unknown_asset", fmt.Errorf("%w: want asset %d", asset.ErrUnknownAsset, wantAsset))
	}
	if attached < 0 {
		return 0, x.reject("invalid_amount", fmt.Errorf("%w: attached value %d", ErrInvalidAmount, attached))
	}
	if attached > 0 && haveAsset != asset.NativeID {
		return 0, x.reject("invalid_order",
			fmt.Errorf("%w: native value attached to an order offering asset %d", ErrInvalidOrder, haveAsset))
	}

	available := x.tracker.Available(maker, haveAsset)
	shortfall := haveAmount - available
	if shortfall < 0 {
		shortfall = 0
	}

	var pulled int64
	if haveAsset == asset.NativeID {
		if available+attached < haveAmount {
			return 0, x.reject("insufficient_funds",
				fmt.Errorf("%w: available %d plus attached %d cannot cover %d",
					ErrInsufficientFunds, available, attached, haveAmount))
		}
		if attached > 0 {
			if err := x.custodian.Pull(ctx, haveAsset, maker, attached); err != nil {
				return 0, x.reject("transfer_failed", fmt.Errorf("%w: %v", ErrTransferFailed, err))
			}
			pulled = attached
			if excess := attached - shortfall; excess > 0 {
				if err := x.custodian.Push(ctx, haveAsset, maker, excess); err == nil {
					pulled = shortfall
				}
				// On a failed refund push the excess stays pulled and lands
				// in the maker's available balance instead.
			}
		}
	} else if shortfall > 0 {
		if err := x.custodian.Pull(ctx, haveAsset, maker, shortfall); err != nil {
			return 0, x.reject("transfer_failed", fmt.Errorf("%w: %v", ErrTransferFailed, err))
		}
		pulled = shortfall
	}

	now := x.clock.Now()
	eventID := uuid.New().String()
	batch := x.journals.GenerateOrderLock(maker, haveAsset, pulled, haveAmount, eventID, x.sequence, now.UnixMicro())
	if err := x.tracker.ApplyBatch(batch); err != nil {
		panic(fmt.Sprintf("FATAL: order lock batch rejected after custodian pull: %v", err))
	}
	o := x.book.Place(maker, haveAsset, haveAmount, wantAsset, wantAmount, now, expiresAt)
	x.postCheck(maker, haveAsset)

	x.commit(event.KindOrderPlaced, eventID, now, start, event.OrderPlaced{
		OrderID:    o.ID,
		Maker:      maker,
		HaveAsset:  haveAsset,
		HaveAmount: haveAmount,
		WantAsset:  wantAsset,
		WantAmount: wantAmount,
		Pulled:     pulled,
		CreatedAt:  now,
		ExpiresAt:  expiresAt,
	}, batch)
	return o.ID, nil
}

// CancelOrder removes an open order, moves its unfilled locked funds back to
// the maker's available balance, and reports the amount unlocked. Only the
// maker may cancel, and only while the order's cancellable window is open.
func (x *Exchange) CancelOrder(ctx context.Context, caller common.Address, id book.OrderID) (int64, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	start := time.Now()

	o, err := x.book.Get(id)
	if err != nil {
		return 0, x.reject("unknown_order", err)
	}
	if caller != o.Maker {
		return 0, x.reject("unauthorized",
			fmt.Errorf("%w: only the maker may cancel order %d", ErrUnauthorized, id))
	}
	now := x.clock.Now()
	if o.Expired(now) {
		return 0, x.reject("expired",
			fmt.Errorf("%w: order %d expired at %s", ErrExpired, id, o.ExpiresAt.Format(time.RFC3339)))
	}

	remaining := o.Remaining()
	eventID := uuid.New().String()
	var batch *ledger.Batch
	if remaining > 0 {
		batch = x.journals.GenerateOrderUnlock(o.Maker, o.HaveAsset, remaining, eventID, x.sequence, now.UnixMicro())
		if err := x.tracker.ApplyBatch(batch); err != nil {
			panic(fmt.Sprintf("FATAL: order unlock batch rejected: %v", err))
		}
	}
	if err := x.book.Remove(id); err != nil {
		panic(fmt.Sprintf("FATAL: order %d vanished mid-cancel: %v", id, err))
	}
	x.postCheck(o.Maker, o.HaveAsset)

	x.commit(event.KindOrderCancelled, eventID, now, start, event.OrderCancelled{
		OrderID:  id,
		Maker:    o.Maker,
		AssetID:  o.HaveAsset,
		Unlocked: remaining,
	}, batch)
	return remaining, nil
}

// BalanceOf returns the user's available and locked balances for an asset.
// Untouched pairs read as zero.
func (x *Exchange) BalanceOf(user common.Address, assetID asset.ID) (available, locked int64) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.tracker.Available(user, assetID), x.tracker.Locked(user, assetID)
}

// GetOrder returns a copy of an open order.
func (x *Exchange) GetOrder(id book.OrderID) (*book.Order, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.book.Get(id)
}

// GetOrderFilling returns the filled portion of an order's have amount;
// absent orders read as zero.
func (x *Exchange) GetOrderFilling(id book.OrderID) int64 {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.book.Filling(id)
}

// OpenOrders returns copies of all open orders ordered by ID.
func (x *Exchange) OpenOrders() []*book.Order {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.book.Open()
}

// ResolveAsset returns the internal ID for an external asset address.
func (x *Exchange) ResolveAsset(address common.Address) (asset.ID, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.registry.Resolve(address)
}

// AssetAddress returns the external address for an internal asset ID.
func (x *Exchange) AssetAddress(id asset.ID) (common.Address, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.registry.AddressOf(id)
}

// Assets returns all registered assets ordered by ID.
func (x *Exchange) Assets() []asset.Entry {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.registry.Entries()
}

// Admin returns the exchange admin address.
func (x *Exchange) Admin() common.Address {
	return x.admin
}

// Sequence returns the sequence the next committed event will carry.
func (x *Exchange) Sequence() int64 {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.sequence
}

// StateHash returns the current tip of the state hash chain.
func (x *Exchange) StateHash() [32]byte {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.hasher.PrevHash()
}

// commit seals a mutation: it advances the hash chain, appends the envelope
// to the output channels and bumps the sequence. Must be the last step of an
// operation, after all state changes and invariant checks.
func (x *Exchange) commit(
	kind event.Kind,
	eventID string,
	ts, start time.Time,
	payload any,
	batch *ledger.Batch,
) *event.Envelope {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("FATAL: cannot encode %s payload: %v", kind, err))
	}

	digest := x.computeStateDigest(batch)
	prev := x.hasher.PrevHash()
	hash := x.hasher.ComputeHash(x.sequence, digest)

	env := &event.Envelope{
		Sequence:  x.sequence,
		EventID:   eventID,
		Kind:      kind,
		Timestamp: ts,
		Payload:   raw,
		StateHash: hash,
		PrevHash:  prev,
	}

	out := CoreOutput{Envelope: env, Batch: batch}

	// Persistence gets a blocking send: the engine stalls rather than lose
	// an event. Projections get a non-blocking send and rebuild from the
	// event log when they fall behind.
	if x.persistChan != nil {
		x.persistChan <- out
	}
	if x.projectionChan != nil {
		select {
		case x.projectionChan <- out:
		default:
			if x.metrics != nil {
				x.metrics.ProjectionDropped.Inc()
			}
		}
	}

	x.sequence++

	if x.metrics != nil {
		x.metrics.OpsApplied.WithLabelValues(kind.String()).Inc()
		x.metrics.OpDuration.WithLabelValues(kind.String()).Observe(time.Since(start).Seconds())
		x.metrics.CoreSequence.Set(float64(x.sequence))
		x.metrics.OpenOrders.Set(float64(x.book.Len()))
	}

	return env
}

func (x *Exchange) reject(reason string, err error) error {
	if x.metrics != nil {
		x.metrics.OpsRejected.WithLabelValues(reason).Inc()
	}
	return err
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, asset.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, asset.ErrInvalidAddress):
		return "invalid_address"
	default:
		return "internal"
	}
}

// postCheck runs the non-negativity check on the touched balances after
// every mutation and a full zero-sum scan periodically. A violation here
// means the engine itself is broken, so it halts the process.
func (x *Exchange) postCheck(user common.Address, assetID asset.ID) {
	if err := x.validator.ValidateUserBalances(user, assetID); err != nil {
		panic(fmt.Sprintf("FATAL: invariant violated: %v", err))
	}
	if x.sequence%globalCheckInterval == 0 {
		if err := x.validator.ValidateGlobalBalance(); err != nil {
			panic(fmt.Sprintf("FATAL: invariant violated: %v", err))
		}
	}
}

// computeStateDigest builds the canonical byte string hashed into the state
// chain: for every account the batch touched, in AccountPath order, the path
// bytes followed by the post-apply balance. Journal IDs never enter the
// digest, so replayed batches digest identically.
func (x *Exchange) computeStateDigest(batch *ledger.Batch) []byte {
	if batch == nil {
		return nil
	}

	affected := make(map[ledger.AccountKey]bool)
	for _, j := range batch.Journals {
		affected[j.DebitAccount] = true
		affected[j.CreditAccount] = true
	}

	accounts := make([]ledger.AccountKey, 0, len(affected))
	for key := range affected {
		accounts = append(accounts, key)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountPath() < accounts[j].AccountPath()
	})

	digest := make([]byte, 0, len(accounts)*64)
	for _, key := range accounts {
		digest = append(digest, []byte(key.AccountPath())...)

		var balBuf [8]byte
		binary.LittleEndian.PutUint64(balBuf[:], uint64(x.tracker.GetBalance(key)))
		digest = append(digest, balBuf[:]...)
	}

	return digest
}
