package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"DexLedger/internal/asset"
	"DexLedger/internal/book"
	"DexLedger/internal/core"
	"DexLedger/internal/custodian"
	"DexLedger/internal/event"

	"github.com/ethereum/go-ethereum/common"
)

var (
	admin = common.HexToAddress("0xad")
	alice = common.HexToAddress("0xa1")
	bob   = common.HexToAddress("0xb0")

	tokenAddr = common.HexToAddress("0x1000")
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestExchange(t *testing.T) (*core.Exchange, *custodian.Memory, *fakeClock) {
	t.Helper()
	cust := custodian.NewMemory()
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	x := core.NewExchange(admin, cust, clock, nil, nil, nil)
	return x, cust, clock
}

// registerToken whitelists tokenAddr as asset 1.
func registerToken(t *testing.T, x *core.Exchange) asset.ID {
	t.Helper()
	id, err := x.RegisterAsset(context.Background(), admin, tokenAddr)
	if err != nil {
		t.Fatalf("register token: %v", err)
	}
	return id
}

func TestRegisterAsset_AdminOnly(t *testing.T) {
	x, _, _ := newTestExchange(t)
	ctx := context.Background()

	if _, err := x.RegisterAsset(ctx, alice, tokenAddr); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("non-admin registration: got %v, want ErrUnauthorized", err)
	}

	id, err := x.RegisterAsset(ctx, admin, tokenAddr)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id != 1 {
		t.Errorf("first asset ID: got %d, want 1", id)
	}

	// Re-registration fails and must not consume an ID.
	if _, err := x.RegisterAsset(ctx, admin, tokenAddr); !errors.Is(err, asset.ErrAlreadyRegistered) {
		t.Fatalf("duplicate registration: got %v, want ErrAlreadyRegistered", err)
	}
	next, err := x.RegisterAsset(ctx, admin, common.HexToAddress("0x2000"))
	if err != nil {
		t.Fatalf("register second asset: %v", err)
	}
	if next != 2 {
		t.Errorf("second asset ID: got %d, want 2", next)
	}
}

func TestDeposit_TokenAllowance(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(token, alice, 100)
	cust.Approve(token, alice, 50)

	// Pulling past the allowance fails and credits nothing.
	if err := x.Deposit(ctx, alice, token, 60); !errors.Is(err, core.ErrTransferFailed) {
		t.Fatalf("deposit beyond allowance: got %v, want ErrTransferFailed", err)
	}
	if avail, _ := x.BalanceOf(alice, token); avail != 0 {
		t.Errorf("available after failed deposit: got %d, want 0", avail)
	}
	if got := cust.BalanceOf(token, alice); got != 100 {
		t.Errorf("external balance after failed deposit: got %d, want 100", got)
	}

	if err := x.Deposit(ctx, alice, token, 50); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if avail, locked := x.BalanceOf(alice, token); avail != 50 || locked != 0 {
		t.Errorf("balances after deposit: got %d/%d, want 50/0", avail, locked)
	}
	if got := cust.Custody(token); got != 50 {
		t.Errorf("custody after deposit: got %d, want 50", got)
	}

	if err := x.Withdraw(ctx, alice, token, 50); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if avail, _ := x.BalanceOf(alice, token); avail != 0 {
		t.Errorf("available after withdraw: got %d, want 0", avail)
	}
	if got := cust.BalanceOf(token, alice); got != 100 {
		t.Errorf("external balance after round trip: got %d, want 100", got)
	}
	if got := cust.Custody(token); got != 0 {
		t.Errorf("custody after round trip: got %d, want 0", got)
	}
}

func TestDeposit_Native(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()

	// Native deposits need no allowance.
	cust.SetBalance(asset.NativeID, alice, 25)
	if err := x.Deposit(ctx, alice, asset.NativeID, 25); err != nil {
		t.Fatalf("native deposit: %v", err)
	}
	if avail, _ := x.BalanceOf(alice, asset.NativeID); avail != 25 {
		t.Errorf("available: got %d, want 25", avail)
	}
}

func TestDeposit_Rejections(t *testing.T) {
	x, _, _ := newTestExchange(t)
	ctx := context.Background()

	if err := x.Deposit(ctx, alice, 42, 10); !errors.Is(err, asset.ErrUnknownAsset) {
		t.Errorf("unknown asset: got %v, want ErrUnknownAsset", err)
	}
	if err := x.Deposit(ctx, alice, asset.NativeID, 0); !errors.Is(err, core.ErrInvalidAmount) {
		t.Errorf("zero amount: got %v, want ErrInvalidAmount", err)
	}
	if err := x.Deposit(ctx, alice, asset.NativeID, -5); !errors.Is(err, core.ErrInvalidAmount) {
		t.Errorf("negative amount: got %v, want ErrInvalidAmount", err)
	}
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()

	cust.SetBalance(asset.NativeID, alice, 30)
	if err := x.Deposit(ctx, alice, asset.NativeID, 30); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := x.Withdraw(ctx, alice, asset.NativeID, 31); !errors.Is(err, core.ErrInsufficientFunds) {
		t.Fatalf("overdraw: got %v, want ErrInsufficientFunds", err)
	}
	if avail, _ := x.BalanceOf(alice, asset.NativeID); avail != 30 {
		t.Errorf("available after rejected withdraw: got %d, want 30", avail)
	}
}

func TestWithdraw_PushFailureRollsBack(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()

	cust.SetBalance(asset.NativeID, alice, 100)
	if err := x.Deposit(ctx, alice, asset.NativeID, 100); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	seqBefore := x.Sequence()

	cust.FailPushes(errors.New("rpc timeout"))
	if err := x.Withdraw(ctx, alice, asset.NativeID, 40); !errors.Is(err, core.ErrTransferFailed) {
		t.Fatalf("withdraw with failing push: got %v, want ErrTransferFailed", err)
	}

	// The debit was reverted and no event was committed.
	if avail, _ := x.BalanceOf(alice, asset.NativeID); avail != 100 {
		t.Errorf("available after rollback: got %d, want 100", avail)
	}
	if got := cust.Custody(asset.NativeID); got != 100 {
		t.Errorf("custody after rollback: got %d, want 100", got)
	}
	if x.Sequence() != seqBefore {
		t.Errorf("sequence advanced on a rolled-back operation")
	}

	cust.FailPushes(nil)
	if err := x.Withdraw(ctx, alice, asset.NativeID, 40); err != nil {
		t.Fatalf("withdraw after clearing fault: %v", err)
	}
	if avail, _ := x.BalanceOf(alice, asset.NativeID); avail != 60 {
		t.Errorf("available: got %d, want 60", avail)
	}
}

func TestPlaceOrder_LocksHaveAmount(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(token, alice, 100)
	cust.Approve(token, alice, 100)
	if err := x.Deposit(ctx, alice, token, 100); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	id, err := x.PlaceOrder(ctx, alice, token, 60, asset.NativeID, 30, 0, nil)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if id != 1 {
		t.Errorf("order ID: got %d, want 1", id)
	}

	if avail, locked := x.BalanceOf(alice, token); avail != 40 || locked != 60 {
		t.Errorf("balances after place: got %d/%d, want 40/60", avail, locked)
	}

	o, err := x.GetOrder(id)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if o.Maker != alice || o.HaveAsset != token || o.HaveAmount != 60 ||
		o.WantAsset != asset.NativeID || o.WantAmount != 30 {
		t.Errorf("order fields wrong: %+v", o)
	}
	if got := x.GetOrderFilling(id); got != 0 {
		t.Errorf("filling of fresh order: got %d, want 0", got)
	}
}

func TestPlaceOrder_TokenShortfallPull(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(token, alice, 100)
	cust.Approve(token, alice, 100)
	if err := x.Deposit(ctx, alice, token, 10); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	// Locking 50 with 10 available pulls exactly the 40 shortfall.
	if _, err := x.PlaceOrder(ctx, alice, token, 50, asset.NativeID, 25, 0, nil); err != nil {
		t.Fatalf("place: %v", err)
	}
	if avail, locked := x.BalanceOf(alice, token); avail != 0 || locked != 50 {
		t.Errorf("balances: got %d/%d, want 0/50", avail, locked)
	}
	if got := cust.BalanceOf(token, alice); got != 50 {
		t.Errorf("external balance: got %d, want 50", got)
	}
	if got := cust.Custody(token); got != 50 {
		t.Errorf("custody: got %d, want 50", got)
	}
}

func TestPlaceOrder_TokenShortfallPullFails(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(token, alice, 100)
	// No allowance, so the shortfall pull must fail.
	if _, err := x.PlaceOrder(ctx, alice, token, 50, asset.NativeID, 25, 0, nil); !errors.Is(err, core.ErrTransferFailed) {
		t.Fatalf("place with failing pull: got %v, want ErrTransferFailed", err)
	}
	if avail, locked := x.BalanceOf(alice, token); avail != 0 || locked != 0 {
		t.Errorf("balances after failed place: got %d/%d, want 0/0", avail, locked)
	}
	if got := x.Sequence(); got != 1 {
		t.Errorf("sequence: got %d, want 1 (registration only)", got)
	}
}

func TestPlaceOrder_NativeExcessRefunded(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(asset.NativeID, alice, 10)

	// Locking 2 with 3 attached pulls 3, keeps the 2 shortfall and pushes
	// 1 straight back.
	if _, err := x.PlaceOrder(ctx, alice, asset.NativeID, 2, token, 7, 3, nil); err != nil {
		t.Fatalf("place: %v", err)
	}
	if avail, locked := x.BalanceOf(alice, asset.NativeID); avail != 0 || locked != 2 {
		t.Errorf("balances: got %d/%d, want 0/2", avail, locked)
	}
	if got := cust.BalanceOf(asset.NativeID, alice); got != 8 {
		t.Errorf("external balance: got %d, want 8", got)
	}
	if got := cust.Custody(asset.NativeID); got != 2 {
		t.Errorf("custody: got %d, want 2", got)
	}
}

func TestPlaceOrder_NativeRefundPushFailure(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(asset.NativeID, alice, 10)
	cust.FailPushes(errors.New("rpc timeout"))

	// The refund push fails, so the full 5 stays pulled and the 3 excess
	// is credited to available rather than destroyed.
	if _, err := x.PlaceOrder(ctx, alice, asset.NativeID, 2, token, 7, 5, nil); err != nil {
		t.Fatalf("place: %v", err)
	}
	if avail, locked := x.BalanceOf(alice, asset.NativeID); avail != 3 || locked != 2 {
		t.Errorf("balances: got %d/%d, want 3/2", avail, locked)
	}
	if got := cust.Custody(asset.NativeID); got != 5 {
		t.Errorf("custody: got %d, want 5", got)
	}
}

func TestPlaceOrder_Rejections(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(asset.NativeID, alice, 10)

	if _, err := x.PlaceOrder(ctx, alice, token, 0, asset.NativeID, 5, 0, nil); !errors.Is(err, core.ErrInvalidOrder) {
		t.Errorf("zero have amount: got %v, want ErrInvalidOrder", err)
	}
	if _, err := x.PlaceOrder(ctx, alice, token, 5, token, 5, 0, nil); !errors.Is(err, core.ErrInvalidOrder) {
		t.Errorf("have == want asset: got %v, want ErrInvalidOrder", err)
	}
	if _, err := x.PlaceOrder(ctx, alice, 42, 5, asset.NativeID, 5, 0, nil); !errors.Is(err, asset.ErrUnknownAsset) {
		t.Errorf("unknown have asset: got %v, want ErrUnknownAsset", err)
	}
	if _, err := x.PlaceOrder(ctx, alice, token, 5, asset.NativeID, 5, 3, nil); !errors.Is(err, core.ErrInvalidOrder) {
		t.Errorf("value attached to token order: got %v, want ErrInvalidOrder", err)
	}
	if _, err := x.PlaceOrder(ctx, alice, asset.NativeID, 20, token, 5, 5, nil); !errors.Is(err, core.ErrInsufficientFunds) {
		t.Errorf("underfunded native order: got %v, want ErrInsufficientFunds", err)
	}
}

func TestCancelOrder_MakerOnly(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(token, alice, 100)
	cust.Approve(token, alice, 100)
	id, err := x.PlaceOrder(ctx, alice, token, 60, asset.NativeID, 30, 0, nil)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if _, err := x.CancelOrder(ctx, bob, id); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("non-maker cancel: got %v, want ErrUnauthorized", err)
	}
	if _, locked := x.BalanceOf(alice, token); locked != 60 {
		t.Errorf("locked after rejected cancel: got %d, want 60", locked)
	}

	unlocked, err := x.CancelOrder(ctx, alice, id)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if unlocked != 60 {
		t.Errorf("unlocked: got %d, want 60", unlocked)
	}
	if avail, locked := x.BalanceOf(alice, token); avail != 60 || locked != 0 {
		t.Errorf("balances after cancel: got %d/%d, want 60/0", avail, locked)
	}
	if _, err := x.GetOrder(id); !errors.Is(err, book.ErrUnknownOrder) {
		t.Errorf("cancelled order still readable: %v", err)
	}
	if _, err := x.CancelOrder(ctx, alice, id); !errors.Is(err, book.ErrUnknownOrder) {
		t.Errorf("double cancel: got %v, want ErrUnknownOrder", err)
	}
}

func TestCancelOrder_Expired(t *testing.T) {
	x, cust, clock := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(asset.NativeID, alice, 10)
	expiry := clock.Now().Add(time.Hour)
	id, err := x.PlaceOrder(ctx, alice, asset.NativeID, 2, token, 7, 2, &expiry)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	clock.advance(2 * time.Hour)

	// An expired order cannot be cancelled; its funds stay locked.
	if _, err := x.CancelOrder(ctx, alice, id); !errors.Is(err, core.ErrExpired) {
		t.Fatalf("cancel after expiry: got %v, want ErrExpired", err)
	}
	if _, locked := x.BalanceOf(alice, asset.NativeID); locked != 2 {
		t.Errorf("locked after rejected cancel: got %d, want 2", locked)
	}
	if _, err := x.GetOrder(id); err != nil {
		t.Errorf("expired order must stay in the book: %v", err)
	}
}

// Runs a mixed scenario and checks that custody always equals the sum of the
// internal balances it backs.
func TestConservation(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(token, alice, 1000)
	cust.Approve(token, alice, 1000)
	cust.SetBalance(token, bob, 500)
	cust.Approve(token, bob, 500)
	cust.SetBalance(asset.NativeID, alice, 200)

	check := func(step string) {
		t.Helper()
		for _, a := range []asset.ID{asset.NativeID, token} {
			var internal int64
			for _, u := range []common.Address{alice, bob} {
				avail, locked := x.BalanceOf(u, a)
				internal += avail + locked
			}
			if got := cust.Custody(a); got != internal {
				t.Fatalf("%s: custody of asset %d is %d, internal balances sum to %d", step, a, got, internal)
			}
		}
	}

	if err := x.Deposit(ctx, alice, token, 300); err != nil {
		t.Fatal(err)
	}
	check("after deposit")

	if err := x.Deposit(ctx, bob, token, 500); err != nil {
		t.Fatal(err)
	}
	orderID, err := x.PlaceOrder(ctx, alice, token, 400, asset.NativeID, 100, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	check("after token order with shortfall pull")

	if _, err := x.PlaceOrder(ctx, alice, asset.NativeID, 50, token, 10, 80, nil); err != nil {
		t.Fatal(err)
	}
	check("after native order with refund")

	if _, err := x.CancelOrder(ctx, alice, orderID); err != nil {
		t.Fatal(err)
	}
	if err := x.Withdraw(ctx, bob, token, 200); err != nil {
		t.Fatal(err)
	}
	check("after cancel and withdraw")
}

func TestReplay_RebuildsStateAndHashChain(t *testing.T) {
	persist := make(chan core.CoreOutput, 64)
	cust := custodian.NewMemory()
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	x := core.NewExchange(admin, cust, clock, nil, persist, nil)
	ctx := context.Background()

	token, err := x.RegisterAsset(ctx, admin, tokenAddr)
	if err != nil {
		t.Fatal(err)
	}
	cust.SetBalance(token, alice, 1000)
	cust.Approve(token, alice, 1000)
	cust.SetBalance(asset.NativeID, alice, 100)

	if err := x.Deposit(ctx, alice, token, 300); err != nil {
		t.Fatal(err)
	}
	first, err := x.PlaceOrder(ctx, alice, token, 400, asset.NativeID, 100, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := x.PlaceOrder(ctx, alice, asset.NativeID, 50, token, 10, 80, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := x.CancelOrder(ctx, alice, first); err != nil {
		t.Fatal(err)
	}
	if err := x.Withdraw(ctx, alice, token, 100); err != nil {
		t.Fatal(err)
	}
	close(persist)

	var log []*event.Envelope
	for out := range persist {
		log = append(log, out.Envelope)
	}
	if len(log) != 6 {
		t.Fatalf("event log length: got %d, want 6", len(log))
	}

	replica := core.NewExchange(admin, custodian.NewMemory(), clock, nil, nil, nil)
	for _, env := range log {
		if err := replica.ApplyLogged(env); err != nil {
			t.Fatalf("replay sequence %d (%s): %v", env.Sequence, env.Kind, err)
		}
	}

	if replica.Sequence() != x.Sequence() {
		t.Errorf("sequence: replica %d, live %d", replica.Sequence(), x.Sequence())
	}
	if replica.StateHash() != x.StateHash() {
		t.Error("state hash diverged after replay")
	}
	for _, a := range []asset.ID{asset.NativeID, token} {
		wantAvail, wantLocked := x.BalanceOf(alice, a)
		gotAvail, gotLocked := replica.BalanceOf(alice, a)
		if gotAvail != wantAvail || gotLocked != wantLocked {
			t.Errorf("asset %d balances: replica %d/%d, live %d/%d", a, gotAvail, gotLocked, wantAvail, wantLocked)
		}
	}
	if got, want := len(replica.OpenOrders()), len(x.OpenOrders()); got != want {
		t.Errorf("open orders: replica %d, live %d", got, want)
	}
}

func TestReplay_RejectsGapsAndTampering(t *testing.T) {
	persist := make(chan core.CoreOutput, 8)
	cust := custodian.NewMemory()
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	x := core.NewExchange(admin, cust, clock, nil, persist, nil)
	ctx := context.Background()

	if _, err := x.RegisterAsset(ctx, admin, tokenAddr); err != nil {
		t.Fatal(err)
	}
	cust.SetBalance(asset.NativeID, alice, 10)
	if err := x.Deposit(ctx, alice, asset.NativeID, 10); err != nil {
		t.Fatal(err)
	}
	close(persist)

	var log []*event.Envelope
	for out := range persist {
		log = append(log, out.Envelope)
	}

	replica := core.NewExchange(admin, custodian.NewMemory(), clock, nil, nil, nil)
	if err := replica.ApplyLogged(log[1]); err == nil {
		t.Error("replay starting at sequence 1 must fail")
	}

	if err := replica.ApplyLogged(log[0]); err != nil {
		t.Fatal(err)
	}
	tampered := *log[1]
	tampered.Payload = []byte(`{"user":"0x00000000000000000000000000000000000000a1","asset_id":0,"amount":9999}`)
	if err := replica.ApplyLogged(&tampered); err == nil {
		t.Error("tampered payload must break the hash chain")
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	x, cust, clock := newTestExchange(t)
	ctx := context.Background()
	token := registerToken(t, x)

	cust.SetBalance(token, alice, 1000)
	cust.Approve(token, alice, 1000)
	if err := x.Deposit(ctx, alice, token, 600); err != nil {
		t.Fatal(err)
	}
	if _, err := x.PlaceOrder(ctx, alice, token, 250, asset.NativeID, 50, 0, nil); err != nil {
		t.Fatal(err)
	}

	snap := x.CreateSnapshot()
	if snap.Sequence != x.Sequence() {
		t.Errorf("snapshot sequence: got %d, want %d", snap.Sequence, x.Sequence())
	}

	restored := core.NewExchange(admin, cust, clock, nil, nil, nil)
	if err := restored.RestoreSnapshot(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.StateHash() != x.StateHash() {
		t.Error("state hash diverged after restore")
	}
	if avail, locked := restored.BalanceOf(alice, token); avail != 350 || locked != 250 {
		t.Errorf("balances after restore: got %d/%d, want 350/250", avail, locked)
	}
	if _, err := restored.ResolveAsset(tokenAddr); err != nil {
		t.Errorf("registry lost in snapshot: %v", err)
	}

	// Identical next operations must produce identical hash chains.
	liveID, err := x.PlaceOrder(ctx, alice, token, 100, asset.NativeID, 20, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	restoredID, err := restored.PlaceOrder(ctx, alice, token, 100, asset.NativeID, 20, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if liveID != restoredID {
		t.Errorf("order ID after restore: got %d, want %d", restoredID, liveID)
	}
	if restored.StateHash() != x.StateHash() {
		t.Error("hash chains diverged after identical post-restore operations")
	}
}

func TestRestoreSnapshot_RejectsUsedEngine(t *testing.T) {
	x, cust, _ := newTestExchange(t)
	ctx := context.Background()

	cust.SetBalance(asset.NativeID, alice, 10)
	if err := x.Deposit(ctx, alice, asset.NativeID, 10); err != nil {
		t.Fatal(err)
	}

	if err := x.RestoreSnapshot(&core.SnapshotState{Sequence: 5}); err == nil {
		t.Error("restore into a non-fresh engine must fail")
	}
}
