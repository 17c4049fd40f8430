package persistence_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"DexLedger/internal/asset"
	"DexLedger/internal/core"
	"DexLedger/internal/custodian"
	"DexLedger/internal/persistence"
	"DexLedger/internal/testutil"

	"github.com/ethereum/go-ethereum/common"
)

var (
	admin = common.HexToAddress("0xad")
	alice = common.HexToAddress("0xa1")
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	t.Cleanup(cleanup)
	if err := persistence.NewMigrator(db, "../../migrations").Up(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// sampleExchange runs a deposit and a withdrawal against a fresh engine and
// returns it together with everything it committed.
func sampleExchange(t *testing.T) (*core.Exchange, []core.CoreOutput) {
	t.Helper()
	persistCh := make(chan core.CoreOutput, 16)
	cust := custodian.NewMemory()
	x := core.NewExchange(admin, cust, core.SystemClock(), nil, persistCh, nil)
	ctx := context.Background()

	cust.SetBalance(asset.NativeID, alice, 1_000)
	if err := x.Deposit(ctx, alice, asset.NativeID, 400); err != nil {
		t.Fatal(err)
	}
	if err := x.Withdraw(ctx, alice, asset.NativeID, 150); err != nil {
		t.Fatal(err)
	}
	close(persistCh)

	var outs []core.CoreOutput
	for out := range persistCh {
		outs = append(outs, out)
	}
	return x, outs
}

func TestEventLogWriter_FlushIsIdempotent(t *testing.T) {
	db := setupDB(t)
	writer := persistence.NewEventLogWriter(db)
	ctx := context.Background()
	_, outs := sampleExchange(t)

	var events []persistence.EventRow
	var journals []persistence.JournalRow
	for _, out := range outs {
		row, rows := persistence.RowsFromOutput(out)
		events = append(events, row)
		journals = append(journals, rows...)
	}

	if err := writer.Flush(ctx, events, journals); err != nil {
		t.Fatalf("flush: %v", err)
	}
	// Redelivering an already-flushed batch must change nothing.
	if err := writer.Flush(ctx, events, journals); err != nil {
		t.Fatalf("second flush: %v", err)
	}

	latest, err := writer.LatestSequence(ctx)
	if err != nil {
		t.Fatalf("latest sequence: %v", err)
	}
	if want := int64(len(outs)) - 1; latest != want {
		t.Fatalf("latest sequence: got %d, want %d", latest, want)
	}

	rows, err := writer.ReadEventsFrom(ctx, 0, 10)
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	if len(rows) != len(outs) {
		t.Fatalf("read back %d events, want %d", len(rows), len(outs))
	}
	for i, row := range rows {
		env, err := persistence.EnvelopeFromRow(row)
		if err != nil {
			t.Fatalf("envelope from row %d: %v", i, err)
		}
		want := outs[i].Envelope
		if env.Sequence != want.Sequence || env.EventID != want.EventID ||
			env.Kind != want.Kind || env.StateHash != want.StateHash || env.PrevHash != want.PrevHash {
			t.Errorf("row %d round trip mismatch: got %+v, want %+v", i, env, want)
		}
	}
}

func TestWorker_FlushesRemainderOnClose(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	_, outs := sampleExchange(t)

	input := make(chan core.CoreOutput, 16)
	for _, out := range outs {
		input <- out
	}
	close(input)

	// Batch size larger than the event count: nothing flushes until the
	// channel close forces the remainder out.
	worker := persistence.NewWorker(db, input, 50, 10*time.Millisecond, nil)
	if err := worker.Run(ctx); err != nil {
		t.Fatalf("worker run: %v", err)
	}

	latest, err := worker.Writer().LatestSequence(ctx)
	if err != nil {
		t.Fatalf("latest sequence: %v", err)
	}
	if want := int64(len(outs)) - 1; latest != want {
		t.Fatalf("latest sequence after close: got %d, want %d", latest, want)
	}
}

func TestSnapshotManager_SaveLoadVerify(t *testing.T) {
	db := setupDB(t)
	mgr := persistence.NewSnapshotManager(db)
	ctx := context.Background()
	x, _ := sampleExchange(t)

	snap := x.CreateSnapshot()
	if err := mgr.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	// Unverified snapshots must not be offered for restore.
	loaded, err := mgr.LoadLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if loaded != nil {
		t.Fatal("unverified snapshot returned by LoadLatestSnapshot")
	}

	if err := mgr.MarkVerified(ctx, snap.Sequence); err != nil {
		t.Fatalf("mark verified: %v", err)
	}
	loaded, err = mgr.LoadLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if loaded == nil {
		t.Fatal("verified snapshot not returned")
	}
	if loaded.Sequence != snap.Sequence || loaded.StateHash != snap.StateHash {
		t.Fatalf("loaded snapshot mismatch: got seq %d hash %s, want seq %d hash %s",
			loaded.Sequence, loaded.StateHash, snap.Sequence, snap.StateHash)
	}

	replica := core.NewExchange(admin, nil, core.SystemClock(), nil, nil, nil)
	if err := replica.RestoreSnapshot(loaded); err != nil {
		t.Fatalf("restore loaded snapshot: %v", err)
	}
	wantAvail, wantLocked := x.BalanceOf(alice, asset.NativeID)
	if avail, locked := replica.BalanceOf(alice, asset.NativeID); avail != wantAvail || locked != wantLocked {
		t.Errorf("restored balances: got %d/%d, want %d/%d", avail, locked, wantAvail, wantLocked)
	}
	if replica.StateHash() != x.StateHash() {
		t.Error("restored state hash differs from source engine")
	}
}

func TestMigrator_UpIsIdempotent(t *testing.T) {
	db := setupDB(t)
	// setupDB already ran Up once; a second run must be a no-op.
	if err := persistence.NewMigrator(db, "../../migrations").Up(context.Background()); err != nil {
		t.Fatalf("second migrate up: %v", err)
	}
}
