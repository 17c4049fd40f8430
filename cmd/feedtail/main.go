// feedtail follows the public event feed and prints each message as one
// JSON line, for debugging and for checking what downstream consumers see.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"DexLedger/internal/feed"
	"DexLedger/internal/observability"
)

func main() {
	var (
		natsURL = flag.String("nats", envOrDefault("DEX_NATS_URL", "nats://localhost:4222"), "NATS server URL")
		durable = flag.String("durable", "feedtail", "durable consumer name")
		kind    = flag.String("kind", "", "only show one event kind (e.g. Deposit)")
	)
	flag.Parse()

	log := observability.NewLogger("feedtail")

	nc, js, err := feed.ConnectNATS(*natsURL)
	if err != nil {
		log.Fatal().Err(err).Msg("nats connect")
	}
	defer nc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enc := json.NewEncoder(os.Stdout)
	consumer := feed.NewConsumer(js, *durable)
	err = consumer.Subscribe(ctx, *kind, func(ctx context.Context, msg *feed.Message) error {
		return enc.Encode(msg)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("subscribe")
	}
	defer consumer.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
