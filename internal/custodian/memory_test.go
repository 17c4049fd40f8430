package custodian_test

import (
	"context"
	"testing"

	"DexLedger/internal/asset"
	"DexLedger/internal/custodian"

	"github.com/ethereum/go-ethereum/common"
)

const token = asset.ID(1)

func TestMemory_TokenPullRequiresAllowance(t *testing.T) {
	m := custodian.NewMemory()
	holder := common.HexToAddress("0x01")
	m.SetBalance(token, holder, 100)

	if err := m.Pull(context.Background(), token, holder, 50); err == nil {
		t.Fatal("pull without approval should fail")
	}

	m.Approve(token, holder, 50)
	if err := m.Pull(context.Background(), token, holder, 50); err != nil {
		t.Fatalf("pull after approval: %v", err)
	}

	if got := m.BalanceOf(token, holder); got != 50 {
		t.Errorf("holder balance: got %d, want 50", got)
	}
	if got := m.Custody(token); got != 50 {
		t.Errorf("custody: got %d, want 50", got)
	}
}

func TestMemory_TokenPullExceedingBalance(t *testing.T) {
	m := custodian.NewMemory()
	holder := common.HexToAddress("0x01")
	m.SetBalance(token, holder, 100)
	m.Approve(token, holder, 10_000)

	if err := m.Pull(context.Background(), token, holder, 10_000); err == nil {
		t.Fatal("pull beyond balance should fail")
	}
	if got := m.BalanceOf(token, holder); got != 100 {
		t.Errorf("failed pull must not move funds: got %d, want 100", got)
	}
}

func TestMemory_NativePullSkipsAllowance(t *testing.T) {
	m := custodian.NewMemory()
	holder := common.HexToAddress("0x01")
	m.SetBalance(asset.NativeID, holder, 5)

	if err := m.Pull(context.Background(), asset.NativeID, holder, 3); err != nil {
		t.Fatalf("native pull: %v", err)
	}
	if got := m.Custody(asset.NativeID); got != 3 {
		t.Errorf("custody: got %d, want 3", got)
	}
}

func TestMemory_PushReturnsFunds(t *testing.T) {
	m := custodian.NewMemory()
	holder := common.HexToAddress("0x01")
	m.SetBalance(asset.NativeID, holder, 10)
	m.Pull(context.Background(), asset.NativeID, holder, 10)

	if err := m.Push(context.Background(), asset.NativeID, holder, 4); err != nil {
		t.Fatalf("push: %v", err)
	}
	if got := m.BalanceOf(asset.NativeID, holder); got != 4 {
		t.Errorf("holder balance: got %d, want 4", got)
	}

	if err := m.Push(context.Background(), asset.NativeID, holder, 100); err == nil {
		t.Error("push beyond custody should fail")
	}
}
