package book_test

import (
	"errors"
	"testing"
	"time"

	"DexLedger/internal/book"

	"github.com/ethereum/go-ethereum/common"
)

var maker = common.HexToAddress("0x01")

func TestBook_PlaceAssignsSequentialIDs(t *testing.T) {
	b := book.New()
	now := time.Now()

	first := b.Place(maker, 1, 100, 2, 200, now, nil)
	second := b.Place(maker, 2, 50, 1, 25, now, nil)

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("IDs: got %d, %d, want 1, 2", first.ID, second.ID)
	}
	if b.Len() != 2 {
		t.Errorf("open orders: got %d, want 2", b.Len())
	}
}

func TestBook_IDsNotReusedAfterRemove(t *testing.T) {
	b := book.New()
	now := time.Now()

	o := b.Place(maker, 1, 100, 2, 200, now, nil)
	if err := b.Remove(o.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	next := b.Place(maker, 1, 100, 2, 200, now, nil)
	if next.ID != 2 {
		t.Errorf("ID after removal: got %d, want 2", next.ID)
	}
}

func TestBook_GetReturnsCopy(t *testing.T) {
	b := book.New()
	o := b.Place(maker, 1, 100, 2, 200, time.Now(), nil)

	got, err := b.Get(o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.HaveAmount = 9999

	again, _ := b.Get(o.ID)
	if again.HaveAmount != 100 {
		t.Error("mutating a Get result must not affect the book")
	}
}

func TestBook_UnknownOrder(t *testing.T) {
	b := book.New()

	if _, err := b.Get(42); !errors.Is(err, book.ErrUnknownOrder) {
		t.Errorf("get: got %v, want ErrUnknownOrder", err)
	}
	if err := b.Remove(42); !errors.Is(err, book.ErrUnknownOrder) {
		t.Errorf("remove: got %v, want ErrUnknownOrder", err)
	}
	if got := b.Filling(42); got != 0 {
		t.Errorf("filling of absent order: got %d, want 0", got)
	}
}

func TestBook_RecordFill(t *testing.T) {
	b := book.New()
	o := b.Place(maker, 1, 100, 2, 200, time.Now(), nil)

	if err := b.RecordFill(o.ID, 30); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got := b.Filling(o.ID); got != 30 {
		t.Errorf("filling: got %d, want 30", got)
	}

	got, _ := b.Get(o.ID)
	if got.Remaining() != 70 {
		t.Errorf("remaining: got %d, want 70", got.Remaining())
	}

	// Filling past HaveAmount must be rejected.
	if err := b.RecordFill(o.ID, 71); err == nil {
		t.Error("over-fill should fail")
	}
	if err := b.RecordFill(o.ID, 0); err == nil {
		t.Error("zero fill should fail")
	}
}

func TestOrder_Expired(t *testing.T) {
	now := time.Now()
	expiry := now.Add(time.Hour)

	b := book.New()
	o := b.Place(maker, 1, 100, 2, 200, now, &expiry)

	got, _ := b.Get(o.ID)
	if got.Expired(now) {
		t.Error("order should not be expired before its expiry")
	}
	if !got.Expired(expiry.Add(time.Second)) {
		t.Error("order should be expired after its expiry")
	}

	open := b.Place(maker, 1, 100, 2, 200, now, nil)
	gotOpen, _ := b.Get(open.ID)
	if gotOpen.Expired(now.Add(1000 * time.Hour)) {
		t.Error("order without expiry never expires")
	}
}

func TestBook_RestoreContinuesIDSequence(t *testing.T) {
	b := book.New()
	now := time.Now()
	b.Place(maker, 1, 100, 2, 200, now, nil)
	b.Place(maker, 1, 10, 2, 20, now, nil)
	b.Place(maker, 2, 5, 1, 5, now, nil)
	b.Remove(2)

	restored := book.New()
	restored.Restore(b.Open(), b.NextID())

	if restored.Len() != 2 {
		t.Errorf("restored open orders: got %d, want 2", restored.Len())
	}

	next := restored.Place(maker, 1, 1, 2, 1, now, nil)
	if next.ID != 4 {
		t.Errorf("ID after restore: got %d, want 4", next.ID)
	}
}
