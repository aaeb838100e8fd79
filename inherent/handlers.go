package inherent

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/albatross-network/staking/aggregate"
	"github.com/albatross-network/staking/blockstate"
	"github.com/albatross-network/staking/receipt"
	"github.com/albatross-network/staking/slots"
	"github.com/albatross-network/staking/store"
	"github.com/albatross-network/staking/txlog"
)

// commitJail implements spec §4.6's Jail: deactivate the validator if
// active, set jailed_from, register every slot in the range as punished in
// both batch bitsets. Re-jailing an already-jailed validator is idempotent:
// jailed_from is overwritten, and the prior value is carried in the receipt
// so revert restores whatever it was, not merely nil.
func commitJail(ledger *slots.Ledger, ag *aggregate.State, bs blockstate.BlockState, inh Inherent, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	v, err := w.ExpectValidator(inh.Validator)
	if err != nil {
		return nil, err
	}

	oldPrevious, err := ledger.PreviousBatch.ToBytes()
	if err != nil {
		return nil, err
	}
	oldCurrent, err := ledger.CurrentBatch.ToBytes()
	if err != nil {
		return nil, err
	}

	newlyDeactivated := v.IsActive()
	oldJailedFrom := v.JailedFrom

	block := bs.Number
	v.JailedFrom = &block
	if err := w.PutValidator(inh.Validator, v); err != nil {
		return nil, err
	}
	ag.Active.Remove(inh.Validator)

	ledger.RegisterRange(inh.Validator, inh.Range)

	log.Push(txlog.Entry{Kind: txlog.Jail, Address: inh.Validator})

	old := receipt.Jail{
		NewlyDeactivated: newlyDeactivated,
		OldPreviousBatch: oldPrevious,
		OldCurrentBatch:  oldCurrent,
		OldJailedFrom:    oldJailedFrom,
	}
	return receipt.Encode(receipt.KindJail, old)
}

func revertJail(ledger *slots.Ledger, ag *aggregate.State, inh Inherent, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.Jail](r, receipt.KindJail)
	if err != nil {
		return err
	}

	previous := roaring.New()
	if _, err := previous.FromBuffer(old.OldPreviousBatch); err != nil {
		return err
	}
	current := roaring.New()
	if _, err := current.FromBuffer(old.OldCurrentBatch); err != nil {
		return err
	}
	ledger.Restore(previous, current)
	delete(ledger.CurrentEpochJailRanges, inh.Validator)

	v, err := w.ExpectValidator(inh.Validator)
	if err != nil {
		return err
	}
	v.JailedFrom = old.OldJailedFrom
	if err := w.PutValidator(inh.Validator, v); err != nil {
		return err
	}
	if old.NewlyDeactivated {
		if v.IsActive() {
			ag.Active.Add(inh.Validator, v.TotalStake)
		}
	}

	log.Push(txlog.Entry{Kind: txlog.Jail, Address: inh.Validator})
	return nil
}

// commitPenalize implements spec §4.6's Penalize: deactivate the validator
// on first occurrence, register the single offending slot in whichever
// batch bitset(s) the offense falls into.
func commitPenalize(ledger *slots.Ledger, ag *aggregate.State, bs blockstate.BlockState, inh Inherent, w store.Writer, log *txlog.Log) (*receipt.Receipt, error) {
	v, err := w.ExpectValidator(inh.Validator)
	if err != nil {
		return nil, err
	}

	newlyDeactivated := v.IsActive()
	if newlyDeactivated {
		block := bs.Number
		v.JailedFrom = &block
		if err := w.PutValidator(inh.Validator, v); err != nil {
			return nil, err
		}
		ag.Active.Remove(inh.Validator)
	}

	var newlyPunishedPrevious, newlyPunishedCurrent bool
	if inh.RegisterPreviousBatch {
		newlyPunishedPrevious = ledger.RegisterSlotPreviousBatch(inh.Slot)
	}
	if inh.RegisterCurrentBatch {
		newlyPunishedCurrent = ledger.RegisterSlotCurrentBatch(inh.Slot)
	}

	log.Push(txlog.Entry{Kind: txlog.Penalize, Address: inh.Validator})

	old := receipt.Penalize{
		NewlyDeactivated:           newlyDeactivated,
		NewlyPunishedPreviousBatch: newlyPunishedPrevious,
		NewlyPunishedCurrentBatch:  newlyPunishedCurrent,
		Slot:                       inh.Slot,
	}
	return receipt.Encode(receipt.KindPenalize, old)
}

func revertPenalize(ledger *slots.Ledger, ag *aggregate.State, inh Inherent, r *receipt.Receipt, w store.Writer, log *txlog.Log) error {
	old, err := receipt.Decode[receipt.Penalize](r, receipt.KindPenalize)
	if err != nil {
		return err
	}

	if old.NewlyPunishedPreviousBatch {
		ledger.PreviousBatch.Remove(uint32(old.Slot))
	}
	if old.NewlyPunishedCurrentBatch {
		ledger.CurrentBatch.Remove(uint32(old.Slot))
	}

	if old.NewlyDeactivated {
		v, err := w.ExpectValidator(inh.Validator)
		if err != nil {
			return err
		}
		v.JailedFrom = nil
		if err := w.PutValidator(inh.Validator, v); err != nil {
			return err
		}
		if v.IsActive() {
			ag.Active.Add(inh.Validator, v.TotalStake)
		}
	}

	log.Push(txlog.Entry{Kind: txlog.Penalize, Address: inh.Validator})
	return nil
}
