package main

import (
	"context"
	"testing"

	"DexLedger/internal/core"
	"DexLedger/internal/event"
)

func output(sequence int64) core.CoreOutput {
	return core.CoreOutput{Envelope: &event.Envelope{Sequence: sequence}}
}

func TestRunBridge_ForwardsToBothChannels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.CoreOutput, 4)
	persistCh := make(chan core.CoreOutput, 4)
	feedCh := make(chan core.CoreOutput, 4)
	go runBridge(ctx, in, persistCh, feedCh)

	in <- output(0)
	in <- output(1)
	close(in)

	for want := int64(0); want < 2; want++ {
		got, ok := <-persistCh
		if !ok || got.Envelope.Sequence != want {
			t.Fatalf("persist recv %d: got %+v ok=%v", want, got.Envelope, ok)
		}
	}
	if _, ok := <-persistCh; ok {
		t.Fatal("persist channel not closed after input close")
	}

	for want := int64(0); want < 2; want++ {
		got, ok := <-feedCh
		if !ok || got.Envelope.Sequence != want {
			t.Fatalf("feed recv %d: got %+v ok=%v", want, got.Envelope, ok)
		}
	}
	if _, ok := <-feedCh; ok {
		t.Fatal("feed channel not closed after input close")
	}
}

func TestRunBridge_DrainsBufferedEventsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan core.CoreOutput, 4)
	persistCh := make(chan core.CoreOutput, 4)
	feedCh := make(chan core.CoreOutput, 4)

	// Events committed by the engine but not yet bridged when the
	// shutdown signal arrives.
	in <- output(0)
	in <- output(1)
	in <- output(2)
	cancel()

	runBridge(ctx, in, persistCh, feedCh)

	for want := int64(0); want < 3; want++ {
		got, ok := <-persistCh
		if !ok || got.Envelope.Sequence != want {
			t.Fatalf("persist recv %d: got %+v ok=%v", want, got.Envelope, ok)
		}
	}
	if _, ok := <-persistCh; ok {
		t.Fatal("persist channel not closed after drain")
	}
	// The feed is best effort during shutdown; it only has to be closed.
	for range feedCh {
	}
}
