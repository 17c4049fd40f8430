package projection

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"DexLedger/internal/core"
	"DexLedger/internal/event"
	"DexLedger/internal/observability"
	"DexLedger/internal/persistence"

	"github.com/rs/zerolog"
)

// Worker maintains the read-side tables (projections.balances, orders,
// assets) from the engine's projection channel. The engine sends on that
// channel non-blockingly, so events can be dropped under load; Rebuild
// reconstructs the tables from the durable event log.
type Worker struct {
	db      *sql.DB
	input   <-chan core.CoreOutput
	metrics *observability.Metrics
	log     zerolog.Logger
}

func NewWorker(db *sql.DB, input <-chan core.CoreOutput, metrics *observability.Metrics) *Worker {
	return &Worker{
		db:      db,
		input:   input,
		metrics: metrics,
		log:     observability.NewLogger("projection"),
	}
}

// Run applies events until ctx is cancelled or the input channel closes.
// Application errors are logged and skipped; the projection self-heals on
// the next Rebuild.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out, ok := <-w.input:
			if !ok {
				return nil
			}
			if err := w.ApplyEnvelope(ctx, out.Envelope); err != nil {
				w.log.Error().Err(err).
					Int64("sequence", out.Envelope.Sequence).
					Str("kind", out.Envelope.Kind.String()).
					Msg("projection apply failed")
				if w.metrics != nil {
					w.metrics.ProjectionErrors.Inc()
				}
				continue
			}
			if w.metrics != nil {
				w.metrics.ProjectionApplied.Inc()
			}
		}
	}
}

// ApplyEnvelope applies one event's effects to the read-side tables in a
// single transaction, watermark included. Event payloads carry every number
// the projection needs, so journals are never consulted.
func (w *Worker) ApplyEnvelope(ctx context.Context, env *event.Envelope) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin projection tx: %w", err)
	}
	defer tx.Rollback()

	switch env.Kind {
	case event.KindAssetRegistered:
		var p event.AssetRegistered
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.assets (asset_id, address, registered_sequence)
			VALUES ($1, $2, $3)
			ON CONFLICT (asset_id) DO NOTHING
		`, p.AssetID, p.Address.Hex(), env.Sequence); err != nil {
			return err
		}

	case event.KindDeposit:
		var p event.Deposit
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return err
		}
		if err := upsertBalance(ctx, tx, p.User.Hex(), uint32(p.AssetID), p.Amount, 0, env.Sequence); err != nil {
			return err
		}

	case event.KindWithdraw:
		var p event.Withdraw
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return err
		}
		if err := upsertBalance(ctx, tx, p.User.Hex(), uint32(p.AssetID), -p.Amount, 0, env.Sequence); err != nil {
			return err
		}

	case event.KindOrderPlaced:
		var p event.OrderPlaced
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return err
		}
		// available gains the pull and loses the lock; locked gains the lock.
		if err := upsertBalance(ctx, tx, p.Maker.Hex(), uint32(p.HaveAsset),
			p.Pulled-p.HaveAmount, p.HaveAmount, env.Sequence); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.orders
				(order_id, maker, have_asset, have_amount, want_asset, want_amount, fill_amount, status, created_at, expires_at)
			VALUES ($1, $2, $3, $4, $5, $6, 0, 'open', $7, $8)
			ON CONFLICT (order_id) DO NOTHING
		`, p.OrderID, p.Maker.Hex(), p.HaveAsset, p.HaveAmount, p.WantAsset, p.WantAmount,
			p.CreatedAt, p.ExpiresAt); err != nil {
			return err
		}

	case event.KindOrderCancelled:
		var p event.OrderCancelled
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return err
		}
		if err := upsertBalance(ctx, tx, p.Maker.Hex(), uint32(p.AssetID),
			p.Unlocked, -p.Unlocked, env.Sequence); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE projections.orders
			SET status = 'cancelled', fill_amount = have_amount - $2
			WHERE order_id = $1
		`, p.OrderID, p.Unlocked); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown event kind %d at sequence %d", env.Kind, env.Sequence)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.watermark (id, last_sequence, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET last_sequence = $1, updated_at = NOW()
	`, env.Sequence); err != nil {
		return err
	}

	return tx.Commit()
}

func upsertBalance(ctx context.Context, tx *sql.Tx, user string, assetID uint32, dAvail, dLocked, sequence int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (user_address, asset_id, available, locked, updated_sequence)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_address, asset_id) DO UPDATE SET
			available = projections.balances.available + $3,
			locked = projections.balances.locked + $4,
			updated_sequence = $5
	`, user, assetID, dAvail, dLocked, sequence)
	return err
}

// Rebuild truncates the read-side tables and replays the full event log.
// Used after projection drops or a schema change.
func (w *Worker) Rebuild(ctx context.Context, reader *persistence.EventLogWriter) error {
	if _, err := w.db.ExecContext(ctx, `
		TRUNCATE projections.balances, projections.orders, projections.assets, projections.watermark
	`); err != nil {
		return fmt.Errorf("truncate projections: %w", err)
	}

	const pageSize = 1000
	var from int64
	for {
		rows, err := reader.ReadEventsFrom(ctx, from, pageSize)
		if err != nil {
			return fmt.Errorf("read events from %d: %w", from, err)
		}
		if len(rows) == 0 {
			return nil
		}
		for _, row := range rows {
			env, err := persistence.EnvelopeFromRow(row)
			if err != nil {
				return err
			}
			if err := w.ApplyEnvelope(ctx, env); err != nil {
				return fmt.Errorf("rebuild at sequence %d: %w", env.Sequence, err)
			}
		}
		from = rows[len(rows)-1].Sequence + 1
	}
}
