package ledger

import (
	"DexLedger/internal/asset"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// JournalGenerator builds the journal batches for each ledger operation.
// Every operation maps to one balanced batch; the engine applies the batch
// atomically and reverts it wholesale on a downstream failure.
type JournalGenerator struct{}

func NewJournalGenerator() *JournalGenerator {
	return &JournalGenerator{}
}

func newJournal(batch *Batch, debit, credit AccountKey, assetID asset.ID, amount int64, jt JournalType) Journal {
	return Journal{
		JournalID:     uuid.New(),
		BatchID:       batch.BatchID,
		EventRef:      batch.EventRef,
		Sequence:      batch.Sequence,
		DebitAccount:  debit,
		CreditAccount: credit,
		Asset:         assetID,
		Amount:        amount,
		JournalType:   jt,
		Timestamp:     batch.Timestamp,
	}
}

func newBatch(eventRef string, sequence, timestamp int64) *Batch {
	return &Batch{
		BatchID:   uuid.New(),
		EventRef:  eventRef,
		Sequence:  sequence,
		Timestamp: timestamp,
	}
}

// GenerateDeposit credits a user's available balance with funds the
// custodian pulled in: external:custodian → user:available.
func (g *JournalGenerator) GenerateDeposit(
	user common.Address,
	assetID asset.ID,
	amount int64,
	eventRef string,
	sequence, timestamp int64,
) *Batch {
	batch := newBatch(eventRef, sequence, timestamp)
	batch.Journals = append(batch.Journals, newJournal(
		batch,
		NewAvailableKey(user, assetID),
		NewCustodianKey(assetID),
		assetID,
		amount,
		JournalTypeDeposit,
	))
	return batch
}

// GenerateWithdraw debits a user's available balance for funds the custodian
// pushes back out: user:available → external:custodian.
func (g *JournalGenerator) GenerateWithdraw(
	user common.Address,
	assetID asset.ID,
	amount int64,
	eventRef string,
	sequence, timestamp int64,
) *Batch {
	batch := newBatch(eventRef, sequence, timestamp)
	batch.Journals = append(batch.Journals, newJournal(
		batch,
		NewCustodianKey(assetID),
		NewAvailableKey(user, assetID),
		assetID,
		amount,
		JournalTypeWithdraw,
	))
	return batch
}

// GenerateOrderLock moves lockAmount into the maker's locked balance,
// optionally preceded by a fresh deposit of pulledAmount covering the
// shortfall (or more, when a native excess refund could not be returned).
func (g *JournalGenerator) GenerateOrderLock(
	maker common.Address,
	assetID asset.ID,
	pulledAmount, lockAmount int64,
	eventRef string,
	sequence, timestamp int64,
) *Batch {
	batch := newBatch(eventRef, sequence, timestamp)

	if pulledAmount > 0 {
		batch.Journals = append(batch.Journals, newJournal(
			batch,
			NewAvailableKey(maker, assetID),
			NewCustodianKey(assetID),
			assetID,
			pulledAmount,
			JournalTypeDeposit,
		))
	}

	batch.Journals = append(batch.Journals, newJournal(
		batch,
		NewLockedKey(maker, assetID),
		NewAvailableKey(maker, assetID),
		assetID,
		lockAmount,
		JournalTypeOrderLock,
	))

	return batch
}

// GenerateOrderUnlock returns an order's remaining locked funds to the
// maker's available balance: user:locked → user:available.
func (g *JournalGenerator) GenerateOrderUnlock(
	maker common.Address,
	assetID asset.ID,
	amount int64,
	eventRef string,
	sequence, timestamp int64,
) *Batch {
	batch := newBatch(eventRef, sequence, timestamp)
	batch.Journals = append(batch.Journals, newJournal(
		batch,
		NewAvailableKey(maker, assetID),
		NewLockedKey(maker, assetID),
		assetID,
		amount,
		JournalTypeOrderUnlock,
	))
	return batch
}
