package projection_test

import (
	"context"
	"database/sql"
	"testing"

	"DexLedger/internal/asset"
	"DexLedger/internal/core"
	"DexLedger/internal/custodian"
	"DexLedger/internal/persistence"
	"DexLedger/internal/projection"
	"DexLedger/internal/testutil"

	"github.com/ethereum/go-ethereum/common"
)

var (
	admin     = common.HexToAddress("0xad")
	alice     = common.HexToAddress("0xa1")
	tokenAddr = common.HexToAddress("0x1000")
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

// runScenario registers a token, deposits, places an order, cancels it and
// withdraws, returning the engine and everything it committed.
func runScenario(t *testing.T) (*core.Exchange, []core.CoreOutput) {
	t.Helper()
	persistCh := make(chan core.CoreOutput, 16)
	cust := custodian.NewMemory()
	x := core.NewExchange(admin, cust, core.SystemClock(), nil, persistCh, nil)
	ctx := context.Background()

	token, err := x.RegisterAsset(ctx, admin, tokenAddr)
	if err != nil {
		t.Fatal(err)
	}
	cust.SetBalance(token, alice, 500)
	cust.Approve(token, alice, 500)
	if err := x.Deposit(ctx, alice, token, 300); err != nil {
		t.Fatal(err)
	}
	id, err := x.PlaceOrder(ctx, alice, token, 200, asset.NativeID, 50, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := x.CancelOrder(ctx, alice, id); err != nil {
		t.Fatal(err)
	}
	if err := x.Withdraw(ctx, alice, token, 100); err != nil {
		t.Fatal(err)
	}
	close(persistCh)

	var outs []core.CoreOutput
	for out := range persistCh {
		outs = append(outs, out)
	}
	return x, outs
}

func checkProjectedState(t *testing.T, db *sql.DB, x *core.Exchange) {
	t.Helper()
	token, err := x.ResolveAsset(tokenAddr)
	if err != nil {
		t.Fatal(err)
	}

	var avail, locked int64
	err = db.QueryRow(`
		SELECT available, locked FROM projections.balances
		WHERE user_address = $1 AND asset_id = $2
	`, alice.Hex(), uint32(token)).Scan(&avail, &locked)
	if err != nil {
		t.Fatalf("query balance row: %v", err)
	}
	wantAvail, wantLocked := x.BalanceOf(alice, token)
	if avail != wantAvail || locked != wantLocked {
		t.Errorf("projected balance: got %d/%d, want %d/%d", avail, locked, wantAvail, wantLocked)
	}

	var status string
	var fill int64
	if err := db.QueryRow(`
		SELECT status, fill_amount FROM projections.orders WHERE maker = $1
	`, alice.Hex()).Scan(&status, &fill); err != nil {
		t.Fatalf("query order row: %v", err)
	}
	if status != "cancelled" || fill != 0 {
		t.Errorf("projected order: got status %q fill %d, want cancelled/0", status, fill)
	}

	var assets int
	if err := db.QueryRow(`SELECT COUNT(*) FROM projections.assets`).Scan(&assets); err != nil {
		t.Fatalf("count assets: %v", err)
	}
	if assets != 1 {
		t.Errorf("projected assets: got %d, want 1", assets)
	}

	var watermark int64
	if err := db.QueryRow(`SELECT last_sequence FROM projections.watermark WHERE id = 1`).Scan(&watermark); err != nil {
		t.Fatalf("query watermark: %v", err)
	}
	if want := x.Sequence() - 1; watermark != want {
		t.Errorf("watermark: got %d, want %d", watermark, want)
	}
}

func TestWorker_ApplyEnvelope(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	x, outs := runScenario(t)

	w := projection.NewWorker(db, nil, nil)
	for _, out := range outs {
		if err := w.ApplyEnvelope(ctx, out.Envelope); err != nil {
			t.Fatalf("apply sequence %d: %v", out.Envelope.Sequence, err)
		}
	}
	checkProjectedState(t, db, x)
}

func TestWorker_Rebuild(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	x, outs := runScenario(t)

	writer := persistence.NewEventLogWriter(db)
	var events []persistence.EventRow
	var journals []persistence.JournalRow
	for _, out := range outs {
		row, rows := persistence.RowsFromOutput(out)
		events = append(events, row)
		journals = append(journals, rows...)
	}
	if err := writer.Flush(ctx, events, journals); err != nil {
		t.Fatalf("flush event log: %v", err)
	}

	// Seed a stale row that the rebuild must wipe.
	if _, err := db.Exec(`
		INSERT INTO projections.balances (user_address, asset_id, available, locked, updated_sequence)
		VALUES ($1, 99, 12345, 0, 0)
	`, alice.Hex()); err != nil {
		t.Fatalf("seed stale row: %v", err)
	}

	w := projection.NewWorker(db, nil, nil)
	if err := w.Rebuild(ctx, writer); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	checkProjectedState(t, db, x)

	var stale int
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM projections.balances WHERE asset_id = 99
	`).Scan(&stale); err != nil {
		t.Fatalf("count stale rows: %v", err)
	}
	if stale != 0 {
		t.Error("stale balance row survived rebuild")
	}
}
