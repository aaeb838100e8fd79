// Package slots implements the punished-slots ledger (spec §3/§4.6): two
// per-batch bitsets of slot numbers that lost rewards or were jailed (Jail
// registers its range in both), plus per-validator epoch jail ranges. Slot numbers are sparse,
// small integers within SlotsPerEpoch — exactly the workload
// github.com/RoaringBitmap/roaring was built for, so the bitsets are
// roaring.Bitmap rather than a hand-rolled []bool.
package slots

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/albatross-network/staking/addr"
)

// Range is a half-open slot range [From, To): From is included, To is not.
type Range struct {
	From uint16
	To   uint16
}

// Ledger is the contract-wide punished-slots bookkeeping.
type Ledger struct {
	PreviousBatch *roaring.Bitmap
	CurrentBatch  *roaring.Bitmap

	// CurrentEpochJailRanges records, per jailed validator, the slot ranges
	// registered as jailed during the current epoch.
	CurrentEpochJailRanges map[addr.Address][]Range
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		PreviousBatch:          roaring.New(),
		CurrentBatch:           roaring.New(),
		CurrentEpochJailRanges: make(map[addr.Address][]Range),
	}
}

// Clone deep-copies the ledger: both bitsets and the jail-range map.
func (l *Ledger) Clone() *Ledger {
	ranges := make(map[addr.Address][]Range, len(l.CurrentEpochJailRanges))
	for k, v := range l.CurrentEpochJailRanges {
		ranges[k] = append([]Range(nil), v...)
	}
	return &Ledger{
		PreviousBatch:          l.PreviousBatch.Clone(),
		CurrentBatch:           l.CurrentBatch.Clone(),
		CurrentEpochJailRanges: ranges,
	}
}

// RegisterRange marks every slot in [from, to) as punished in both batch
// bitsets, as Jail does, and records the range for the epoch.
func (l *Ledger) RegisterRange(validator addr.Address, r Range) {
	for s := r.From; s < r.To; s++ {
		l.PreviousBatch.Add(uint32(s))
		l.CurrentBatch.Add(uint32(s))
	}
	l.CurrentEpochJailRanges[validator] = append(l.CurrentEpochJailRanges[validator], r)
}

// RegisterSlotPreviousBatch marks slot as punished in the previous batch
// bitset only, reporting whether it was newly added.
func (l *Ledger) RegisterSlotPreviousBatch(slot uint16) (newlyPunished bool) {
	return l.PreviousBatch.CheckedAdd(uint32(slot))
}

// RegisterSlotCurrentBatch marks slot as punished in the current batch
// bitset only, reporting whether it was newly added.
func (l *Ledger) RegisterSlotCurrentBatch(slot uint16) (newlyPunished bool) {
	return l.CurrentBatch.CheckedAdd(uint32(slot))
}

// FinalizeBatch rotates CurrentBatch into PreviousBatch and clears
// CurrentBatch (spec §4.6). It has no inverse: FinalizeBatch is never
// reverted (spec invariant §6/§9).
func (l *Ledger) FinalizeBatch() {
	l.PreviousBatch = l.CurrentBatch
	l.CurrentBatch = roaring.New()
}

// FinalizeEpoch clears the epoch-scoped jail ranges.
func (l *Ledger) FinalizeEpoch() {
	l.CurrentEpochJailRanges = make(map[addr.Address][]Range)
}

// Restore replaces the ledger's two bitsets wholesale, used by Jail revert
// to restore the pre-commit bitsets exactly. CurrentEpochJailRanges is not
// touched.
func (l *Ledger) Restore(previous, current *roaring.Bitmap) {
	l.PreviousBatch = previous
	l.CurrentBatch = current
}
