package ledger_test

import (
	"testing"

	"DexLedger/internal/asset"
	"DexLedger/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

const tokenAsset = asset.ID(1)

// ============================================================================
// Test: AccountKey
// ============================================================================

func TestAccountKey_UserPath(t *testing.T) {
	user := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	key := ledger.NewAvailableKey(user, tokenAsset)

	path := key.AccountPath()
	expected := "user:" + user.Hex() + ":available:1"
	if path != expected {
		t.Errorf("got %q, want %q", path, expected)
	}
}

func TestAccountKey_LockedPath(t *testing.T) {
	user := common.HexToAddress("0xbb")
	key := ledger.NewLockedKey(user, asset.NativeID)

	path := key.AccountPath()
	expected := "user:" + user.Hex() + ":locked:0"
	if path != expected {
		t.Errorf("got %q, want %q", path, expected)
	}
}

func TestAccountKey_CustodianPath(t *testing.T) {
	key := ledger.NewCustodianKey(tokenAsset)

	if path := key.AccountPath(); path != "external:custodian:1" {
		t.Errorf("got %q, want %q", path, "external:custodian:1")
	}
}

// ============================================================================
// Test: BalanceTracker
// ============================================================================

func TestBalanceTracker_InitialBalanceZero(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	user := common.HexToAddress("0x01")

	if bt.Available(user, tokenAsset) != 0 {
		t.Error("untouched available balance should be 0")
	}
	if bt.Locked(user, tokenAsset) != 0 {
		t.Error("untouched locked balance should be 0")
	}
}

func TestBalanceTracker_DepositThenLock(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	gen := ledger.NewJournalGenerator()
	user := common.HexToAddress("0x01")

	deposit := gen.GenerateDeposit(user, tokenAsset, 1_000, "evt-1", 1, 0)
	if err := bt.ApplyBatch(deposit); err != nil {
		t.Fatalf("apply deposit: %v", err)
	}

	lock := gen.GenerateOrderLock(user, tokenAsset, 0, 300, "evt-2", 2, 0)
	if err := bt.ApplyBatch(lock); err != nil {
		t.Fatalf("apply lock: %v", err)
	}

	if got := bt.Available(user, tokenAsset); got != 700 {
		t.Errorf("available: got %d, want 700", got)
	}
	if got := bt.Locked(user, tokenAsset); got != 300 {
		t.Errorf("locked: got %d, want 300", got)
	}
	if got := bt.CustodianHeld(tokenAsset); got != -1_000 {
		t.Errorf("custodian mirror: got %d, want -1000", got)
	}
}

func TestBalanceTracker_RevertBatch(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	gen := ledger.NewJournalGenerator()
	user := common.HexToAddress("0x01")

	deposit := gen.GenerateDeposit(user, tokenAsset, 500, "evt-1", 1, 0)
	if err := bt.ApplyBatch(deposit); err != nil {
		t.Fatalf("apply: %v", err)
	}

	withdraw := gen.GenerateWithdraw(user, tokenAsset, 200, "evt-2", 2, 0)
	if err := bt.ApplyBatch(withdraw); err != nil {
		t.Fatalf("apply withdraw: %v", err)
	}
	bt.RevertBatch(withdraw)

	if got := bt.Available(user, tokenAsset); got != 500 {
		t.Errorf("available after revert: got %d, want 500", got)
	}
	if got := bt.CustodianHeld(tokenAsset); got != -500 {
		t.Errorf("custodian after revert: got %d, want -500", got)
	}
}

func TestBalanceTracker_GlobalBalanceZeroSum(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	gen := ledger.NewJournalGenerator()
	alice := common.HexToAddress("0x0a")
	bob := common.HexToAddress("0x0b")

	bt.ApplyBatch(gen.GenerateDeposit(alice, tokenAsset, 1_000, "evt-1", 1, 0))
	bt.ApplyBatch(gen.GenerateDeposit(bob, tokenAsset, 250, "evt-2", 2, 0))
	bt.ApplyBatch(gen.GenerateOrderLock(alice, tokenAsset, 0, 400, "evt-3", 3, 0))
	bt.ApplyBatch(gen.GenerateWithdraw(bob, tokenAsset, 100, "evt-4", 4, 0))

	totals := bt.ComputeGlobalBalance()
	for assetID, total := range totals {
		if total != 0 {
			t.Errorf("asset %d has non-zero global balance: %d", assetID, total)
		}
	}
}

func TestBalanceTracker_ValidateSufficientAvailable(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	gen := ledger.NewJournalGenerator()
	user := common.HexToAddress("0x01")

	if err := bt.ValidateSufficientAvailable(user, tokenAsset, 100); err == nil {
		t.Error("expected error for insufficient balance")
	}

	bt.ApplyBatch(gen.GenerateDeposit(user, tokenAsset, 1_000, "evt-1", 1, 0))

	if err := bt.ValidateSufficientAvailable(user, tokenAsset, 1_000); err != nil {
		t.Errorf("should have sufficient balance: %v", err)
	}
	if err := bt.ValidateSufficientAvailable(user, tokenAsset, 1_001); err == nil {
		t.Error("expected error for 1_001 > 1_000")
	}
}

func TestBalanceTracker_Snapshot(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	gen := ledger.NewJournalGenerator()
	user := common.HexToAddress("0x01")

	bt.ApplyBatch(gen.GenerateDeposit(user, tokenAsset, 999, "evt-1", 1, 0))

	snap := bt.Snapshot()
	if len(snap) == 0 {
		t.Fatal("snapshot should not be empty")
	}

	// Mutating snapshot should not affect tracker
	for k := range snap {
		snap[k] = 0
	}

	if bt.Available(user, tokenAsset) != 999 {
		t.Error("tracker balance should not be affected by snapshot mutation")
	}
}

// ============================================================================
// Test: Batch Validation
// ============================================================================

func TestBatchValidate_EmptyBatch_Fails(t *testing.T) {
	batch := &ledger.Batch{
		BatchID:  uuid.New(),
		Journals: []ledger.Journal{},
	}

	if err := batch.Validate(); err == nil {
		t.Error("empty batch should fail validation")
	}
}

func TestBatchValidate_ZeroAmount_Fails(t *testing.T) {
	batchID := uuid.New()
	user := common.HexToAddress("0x01")

	batch := &ledger.Batch{
		BatchID: batchID,
		Journals: []ledger.Journal{
			{
				JournalID:     uuid.New(),
				BatchID:       batchID,
				DebitAccount:  ledger.NewAvailableKey(user, tokenAsset),
				CreditAccount: ledger.NewCustodianKey(tokenAsset),
				Asset:         tokenAsset,
				Amount:        0,
			},
		},
	}

	if err := batch.Validate(); err == nil {
		t.Error("zero amount should fail validation")
	}
}

func TestBatchValidate_SelfTransfer_Fails(t *testing.T) {
	batchID := uuid.New()
	same := ledger.NewAvailableKey(common.HexToAddress("0x01"), tokenAsset)

	batch := &ledger.Batch{
		BatchID: batchID,
		Journals: []ledger.Journal{
			{
				JournalID:     uuid.New(),
				BatchID:       batchID,
				DebitAccount:  same,
				CreditAccount: same,
				Asset:         tokenAsset,
				Amount:        100,
			},
		},
	}

	if err := batch.Validate(); err == nil {
		t.Error("self-transfer should fail validation")
	}
}

func TestBatchValidate_AssetMismatch_Fails(t *testing.T) {
	batchID := uuid.New()
	user := common.HexToAddress("0x01")

	batch := &ledger.Batch{
		BatchID: batchID,
		Journals: []ledger.Journal{
			{
				JournalID:     uuid.New(),
				BatchID:       batchID,
				DebitAccount:  ledger.NewAvailableKey(user, tokenAsset),
				CreditAccount: ledger.NewCustodianKey(asset.NativeID),
				Asset:         tokenAsset,
				Amount:        100,
			},
		},
	}

	if err := batch.Validate(); err == nil {
		t.Error("cross-asset journal should fail validation")
	}
}

func TestBatchValidate_MismatchedBatchID_Fails(t *testing.T) {
	batchID := uuid.New()
	user := common.HexToAddress("0x01")

	batch := &ledger.Batch{
		BatchID: batchID,
		Journals: []ledger.Journal{
			{
				JournalID:     uuid.New(),
				BatchID:       uuid.New(), // Different batch ID
				DebitAccount:  ledger.NewAvailableKey(user, tokenAsset),
				CreditAccount: ledger.NewCustodianKey(tokenAsset),
				Asset:         tokenAsset,
				Amount:        100,
			},
		},
	}

	if err := batch.Validate(); err == nil {
		t.Error("mismatched batch ID should fail validation")
	}
}

// ============================================================================
// Test: InvariantValidator
// ============================================================================

func TestInvariantValidator_GlobalBalanceZero(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	v := ledger.NewInvariantValidator(bt)
	gen := ledger.NewJournalGenerator()

	// Empty ledger should pass
	if err := v.ValidateGlobalBalance(); err != nil {
		t.Errorf("empty ledger should have zero global balance: %v", err)
	}

	user := common.HexToAddress("0x01")
	bt.ApplyBatch(gen.GenerateDeposit(user, tokenAsset, 1_000_000, "evt-1", 1, 0))

	if err := v.ValidateGlobalBalance(); err != nil {
		t.Errorf("balanced ledger should have zero global balance: %v", err)
	}
}

func TestInvariantValidator_NegativeBalanceDetected(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	v := ledger.NewInvariantValidator(bt)
	gen := ledger.NewJournalGenerator()
	user := common.HexToAddress("0x01")

	// Force an over-withdrawal directly through the tracker; the engine
	// prevents this path, the validator is the backstop.
	bt.ApplyBatch(gen.GenerateWithdraw(user, tokenAsset, 50, "evt-1", 1, 0))

	if err := v.ValidateUserBalances(user, tokenAsset); err == nil {
		t.Error("negative available balance should be detected")
	}
}
