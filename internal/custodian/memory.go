package custodian

import (
	"context"
	"fmt"
	"sync"

	"DexLedger/internal/asset"

	"github.com/ethereum/go-ethereum/common"
)

type holding struct {
	assetID asset.ID
	holder  common.Address
}

// Memory is a deterministic in-memory Adapter used by tests and local runs.
// It models external token balances with allowance-based transfers (a token
// pull requires a prior Approve) and native-currency wallets (a native pull
// only requires sufficient balance, standing in for value attached to the
// call). Failure injection lets tests exercise the engine's rollback paths.
type Memory struct {
	mu         sync.Mutex
	balances   map[holding]int64
	allowances map[holding]int64
	custody    map[asset.ID]int64

	pullErr error
	pushErr error
}

func NewMemory() *Memory {
	return &Memory{
		balances:   make(map[holding]int64),
		allowances: make(map[holding]int64),
		custody:    make(map[asset.ID]int64),
	}
}

// SetBalance seeds a holder's external balance for an asset.
func (m *Memory) SetBalance(assetID asset.ID, holder common.Address, amount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[holding{assetID, holder}] = amount
}

// Approve grants the exchange an allowance to pull a holder's tokens.
// Mirrors ERC20 approve: the value replaces any prior allowance.
func (m *Memory) Approve(assetID asset.ID, holder common.Address, amount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allowances[holding{assetID, holder}] = amount
}

// BalanceOf returns a holder's external balance for an asset.
func (m *Memory) BalanceOf(assetID asset.ID, holder common.Address) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[holding{assetID, holder}]
}

// Custody returns the total amount held in exchange custody for an asset.
func (m *Memory) Custody(assetID asset.ID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.custody[assetID]
}

// FailPulls makes every subsequent Pull return err (nil clears).
func (m *Memory) FailPulls(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pullErr = err
}

// FailPushes makes every subsequent Push return err (nil clears).
func (m *Memory) FailPushes(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushErr = err
}

// Pull implements Adapter.
func (m *Memory) Pull(ctx context.Context, assetID asset.ID, from common.Address, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pullErr != nil {
		return m.pullErr
	}
	if amount <= 0 {
		return fmt.Errorf("pull amount must be positive: %d", amount)
	}

	key := holding{assetID, from}
	if m.balances[key] < amount {
		return fmt.Errorf("holder %s has %d of asset %d, need %d",
			from.Hex(), m.balances[key], assetID, amount)
	}

	// Token pulls are allowance-gated; native pulls stand in for value
	// attached to the call, so no prior approval exists or is needed.
	if assetID != asset.NativeID {
		if m.allowances[key] < amount {
			return fmt.Errorf("holder %s approved %d of asset %d, need %d",
				from.Hex(), m.allowances[key], assetID, amount)
		}
		m.allowances[key] -= amount
	}

	m.balances[key] -= amount
	m.custody[assetID] += amount
	return nil
}

// Push implements Adapter.
func (m *Memory) Push(ctx context.Context, assetID asset.ID, to common.Address, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pushErr != nil {
		return m.pushErr
	}
	if amount <= 0 {
		return fmt.Errorf("push amount must be positive: %d", amount)
	}
	if m.custody[assetID] < amount {
		return fmt.Errorf("custody holds %d of asset %d, need %d", m.custody[assetID], assetID, amount)
	}

	m.custody[assetID] -= amount
	m.balances[holding{assetID, to}] += amount
	return nil
}
