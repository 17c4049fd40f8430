package asset_test

import (
	"errors"
	"testing"

	"DexLedger/internal/asset"

	"github.com/ethereum/go-ethereum/common"
)

func TestRegistry_SequentialIDs(t *testing.T) {
	r := asset.NewRegistry()

	first, err := r.Register(common.HexToAddress("0x01"))
	if err != nil {
		t.Fatalf("register first: %v", err)
	}
	if first != 1 {
		t.Errorf("first asset ID: got %d, want 1", first)
	}

	second, err := r.Register(common.HexToAddress("0x02"))
	if err != nil {
		t.Fatalf("register second: %v", err)
	}
	if second != 2 {
		t.Errorf("second asset ID: got %d, want 2", second)
	}
}

func TestRegistry_DuplicateAddress(t *testing.T) {
	r := asset.NewRegistry()
	address := common.HexToAddress("0xbeef")

	id, err := r.Register(address)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := r.Register(address); !errors.Is(err, asset.ErrAlreadyRegistered) {
		t.Errorf("second registration: got %v, want ErrAlreadyRegistered", err)
	}

	// The original assignment must be untouched.
	got, err := r.Resolve(address)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != id {
		t.Errorf("ID changed after failed re-registration: got %d, want %d", got, id)
	}
}

func TestRegistry_ZeroAddressRejected(t *testing.T) {
	r := asset.NewRegistry()
	if _, err := r.Register(common.Address{}); !errors.Is(err, asset.ErrInvalidAddress) {
		t.Errorf("got %v, want ErrInvalidAddress", err)
	}
}

func TestRegistry_NativeResolvesWithoutRegistration(t *testing.T) {
	r := asset.NewRegistry()

	id, err := r.Resolve(common.Address{})
	if err != nil {
		t.Fatalf("resolve native: %v", err)
	}
	if id != asset.NativeID {
		t.Errorf("native ID: got %d, want %d", id, asset.NativeID)
	}

	address, err := r.AddressOf(asset.NativeID)
	if err != nil {
		t.Fatalf("address of native: %v", err)
	}
	if address != asset.NativeAddress {
		t.Errorf("native address: got %s, want zero address", address.Hex())
	}

	if !r.Exists(asset.NativeID) {
		t.Error("native asset should always exist")
	}
}

func TestRegistry_UnknownLookups(t *testing.T) {
	r := asset.NewRegistry()

	if _, err := r.Resolve(common.HexToAddress("0xdead")); !errors.Is(err, asset.ErrUnknownAsset) {
		t.Errorf("resolve: got %v, want ErrUnknownAsset", err)
	}
	if _, err := r.AddressOf(7); !errors.Is(err, asset.ErrUnknownAsset) {
		t.Errorf("address of: got %v, want ErrUnknownAsset", err)
	}
	if r.Exists(7) {
		t.Error("unregistered ID should not exist")
	}
}

func TestRegistry_SnapshotRoundTrip(t *testing.T) {
	r := asset.NewRegistry()
	r.Register(common.HexToAddress("0x01"))
	r.Register(common.HexToAddress("0x02"))

	restored := asset.NewRegistry()
	restored.Restore(r.Entries())

	id, err := restored.Resolve(common.HexToAddress("0x02"))
	if err != nil || id != 2 {
		t.Fatalf("resolve after restore: id=%d err=%v", id, err)
	}

	// Next registration continues the sequence.
	next, err := restored.Register(common.HexToAddress("0x03"))
	if err != nil {
		t.Fatalf("register after restore: %v", err)
	}
	if next != 3 {
		t.Errorf("next ID after restore: got %d, want 3", next)
	}
}
