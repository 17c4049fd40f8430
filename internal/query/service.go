package query

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"DexLedger/internal/asset"
	"DexLedger/internal/book"
	"DexLedger/internal/core"
	"DexLedger/internal/observability"

	"github.com/ethereum/go-ethereum/common"
)

// Service answers read queries. Hot state (balances, open orders, the asset
// registry) is served straight from the engine, which is authoritative;
// history queries go to the event log and the projections in Postgres.
type Service struct {
	engine  *core.Exchange
	db      *sql.DB
	metrics *observability.Metrics
}

func NewService(engine *core.Exchange, db *sql.DB, metrics *observability.Metrics) *Service {
	return &Service{
		engine:  engine,
		db:      db,
		metrics: metrics,
	}
}

func (s *Service) observe(method string, start time.Time) {
	if s.metrics != nil {
		s.metrics.QueriesServed.WithLabelValues(method).Inc()
		s.metrics.QueryDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}

// ResolveAsset maps an external asset address to its internal ID.
func (s *Service) ResolveAsset(address common.Address) (asset.ID, error) {
	defer s.observe("resolve_asset", time.Now())
	return s.engine.ResolveAsset(address)
}

// AssetAddress maps an internal asset ID back to its external address.
func (s *Service) AssetAddress(id asset.ID) (common.Address, error) {
	defer s.observe("asset_address", time.Now())
	return s.engine.AssetAddress(id)
}

// Assets lists all registered assets.
func (s *Service) Assets() []asset.Entry {
	defer s.observe("assets", time.Now())
	return s.engine.Assets()
}

// Balance returns a user's available and locked balance for an asset.
func (s *Service) Balance(user common.Address, assetID asset.ID) BalanceView {
	defer s.observe("balance", time.Now())
	available, locked := s.engine.BalanceOf(user, assetID)
	return BalanceView{
		User:      user.Hex(),
		AssetID:   uint32(assetID),
		Available: available,
		Locked:    locked,
	}
}

// Order returns an open order.
func (s *Service) Order(id book.OrderID) (*book.Order, error) {
	defer s.observe("order", time.Now())
	return s.engine.GetOrder(id)
}

// OrderFilling returns the filled portion of an order's have amount.
func (s *Service) OrderFilling(id book.OrderID) int64 {
	defer s.observe("order_filling", time.Now())
	return s.engine.GetOrderFilling(id)
}

// OpenOrders lists all open orders.
func (s *Service) OpenOrders() []*book.Order {
	defer s.observe("open_orders", time.Now())
	return s.engine.OpenOrders()
}

// Events pages through the durable event log in sequence order.
func (s *Service) Events(ctx context.Context, fromSequence int64, limit int) ([]EventView, error) {
	defer s.observe("events", time.Now())
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT sequence, event_id, kind, payload, state_hash, prev_hash, timestamp
		FROM event_log.events
		WHERE sequence >= $1
		ORDER BY sequence ASC
		LIMIT $2
	`, fromSequence, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []EventView
	for rows.Next() {
		var v EventView
		var stateHash, prevHash []byte
		if err := rows.Scan(&v.Sequence, &v.EventID, &v.Kind, &v.Payload,
			&stateHash, &prevHash, &v.Timestamp); err != nil {
			return nil, err
		}
		v.StateHash = hex.EncodeToString(stateHash)
		v.PrevHash = hex.EncodeToString(prevHash)
		events = append(events, v)
	}
	return events, rows.Err()
}

// UserOrders lists a maker's projected orders, optionally filtered by status
// ("open", "cancelled"; empty means all).
func (s *Service) UserOrders(ctx context.Context, maker common.Address, status string) ([]OrderView, error) {
	defer s.observe("user_orders", time.Now())

	q := `
		SELECT order_id, maker, have_asset, have_amount, want_asset, want_amount,
		       fill_amount, status, created_at, expires_at
		FROM projections.orders
		WHERE maker = $1`
	args := []interface{}{maker.Hex()}
	if status != "" {
		q += ` AND status = $2`
		args = append(args, status)
	}
	q += ` ORDER BY order_id ASC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []OrderView
	for rows.Next() {
		var v OrderView
		if err := rows.Scan(&v.OrderID, &v.Maker, &v.HaveAsset, &v.HaveAmount,
			&v.WantAsset, &v.WantAmount, &v.FillAmount, &v.Status,
			&v.CreatedAt, &v.ExpiresAt); err != nil {
			return nil, err
		}
		orders = append(orders, v)
	}
	return orders, rows.Err()
}

// VerifyIntegrity walks the persisted event log from fromSequence and checks
// that every row's prev_hash links to its predecessor's state_hash.
func (s *Service) VerifyIntegrity(ctx context.Context, fromSequence int64) (*IntegrityReport, error) {
	defer s.observe("verify_integrity", time.Now())

	report := &IntegrityReport{FromSequence: fromSequence, ToSequence: fromSequence - 1, Intact: true}

	const pageSize = 1000
	var prevStateHash []byte
	cursor := fromSequence

	for {
		rows, err := s.db.QueryContext(ctx, `
			SELECT sequence, state_hash, prev_hash
			FROM event_log.events
			WHERE sequence >= $1
			ORDER BY sequence ASC
			LIMIT $2
		`, cursor, pageSize)
		if err != nil {
			return nil, err
		}

		var page int
		for rows.Next() {
			var seq int64
			var stateHash, prevHash []byte
			if err := rows.Scan(&seq, &stateHash, &prevHash); err != nil {
				rows.Close()
				return nil, err
			}
			page++

			if seq != report.ToSequence+1 || (prevStateHash != nil && !bytes.Equal(prevHash, prevStateHash)) {
				rows.Close()
				report.Intact = false
				report.BrokenAt = &seq
				if s.metrics != nil {
					s.metrics.IntegrityFailures.Inc()
				}
				return report, nil
			}
			prevStateHash = stateHash
			report.ToSequence = seq
			report.Checked++
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()

		if page < pageSize {
			return report, nil
		}
		cursor = report.ToSequence + 1
	}
}

// StateHash returns the engine's current chain tip as hex.
func (s *Service) StateHash() string {
	tip := s.engine.StateHash()
	return fmt.Sprintf("%x", tip[:])
}
