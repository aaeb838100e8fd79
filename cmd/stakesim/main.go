// stakesim replays a JSON script of staking transactions and inherents
// against a fresh in-memory contract and prints the resulting state and
// logs. It is a smoke-test harness, not a node: it reads a file instead of
// a socket, the one place this module's "no networking" boundary is
// deliberately crossed for operator convenience (spec §1 treats block
// production as an external collaborator; this tool stands in for it).
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/albatross-network/staking/addr"
	"github.com/albatross-network/staking/blockstate"
	"github.com/albatross-network/staking/coin"
	"github.com/albatross-network/staking/contract"
	"github.com/albatross-network/staking/inherent"
	"github.com/albatross-network/staking/protocol"
	"github.com/albatross-network/staking/slots"
	"github.com/albatross-network/staking/staking"
	"github.com/albatross-network/staking/store"
	"github.com/albatross-network/staking/txlog"
)

var flags = []cli.Flag{
	cli.StringFlag{
		Name:  "script",
		Usage: "path to the JSON replay script",
	},
	cli.IntFlag{
		Name:  "verbosity",
		Value: int(log.LvlInfo),
		Usage: "log verbosity (0-9)",
	},
}

func main() {
	app := cli.App{
		Name:  "stakesim",
		Usage: "replay a staking transaction/inherent script against an in-memory contract",
		Flags: flags,
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	logHandler := log.NewGlogHandler(log.StreamHandler(os.Stderr, log.TerminalFormat(true)))
	logHandler.Verbosity(log.Lvl(ctx.Int("verbosity")))
	log.Root().SetHandler(logHandler)

	scriptPath := ctx.String("script")
	if scriptPath == "" {
		return errors.New("-script is required")
	}
	raw, err := os.ReadFile(scriptPath)
	if err != nil {
		return errors.Wrap(err, "-script")
	}

	var sc script
	if err := json.Unmarshal(raw, &sc); err != nil {
		return errors.Wrap(err, "parsing script")
	}

	c := contract.New(protocol.Default())
	w := store.NewMemStore()
	log.Root().Info("replay starting", "transactions", len(sc.Transactions), "inherents", len(sc.Inherents))

	for _, inh := range sc.Inherents {
		bs := blockstate.BlockState{Number: inh.Block, Epoch: inh.Epoch, Batch: inh.Batch}
		ilog := txlog.New()
		parsed, err := inh.parse()
		if err != nil {
			return errors.Wrapf(err, "inherent %s", inh.Kind)
		}
		if _, err := c.CommitInherent(parsed, bs, w, ilog); err != nil {
			return errors.Wrapf(err, "commit inherent %s", inh.Kind)
		}
		log.Root().Info("committed inherent", "kind", inh.Kind, "entries", ilog.Kinds())
	}

	for _, te := range sc.Transactions {
		bs := blockstate.BlockState{Number: te.Block, Epoch: te.Epoch, Batch: te.Batch}
		tlog := txlog.New()
		tx, err := te.parse()
		if err != nil {
			return errors.Wrapf(err, "transaction %s", te.Kind)
		}

		var commitErr error
		switch te.Direction {
		case "outgoing":
			_, commitErr = c.CommitOutgoingTransaction(tx, bs, w, tlog)
		case "failed":
			_, commitErr = c.CommitFailedTransaction(tx, bs, w, tlog)
		default:
			_, commitErr = c.CommitIncomingTransaction(tx, bs, w, tlog)
		}
		if commitErr != nil {
			return errors.Wrapf(commitErr, "commit transaction %s", te.Kind)
		}
		log.Root().Info("committed transaction", "kind", te.Kind, "entries", tlog.Kinds())
	}

	fmt.Printf("balance: %d\n", c.Balance())
	fmt.Printf("active validators: %d\n", c.ActiveValidatorCount())
	return nil
}

type script struct {
	Transactions []txEntry       `json:"transactions"`
	Inherents    []inherentEntry `json:"inherents"`
}

type txEntry struct {
	Kind       string `json:"kind"`
	Direction  string `json:"direction"` // "incoming" (default), "outgoing", "failed"
	Block      uint32 `json:"block"`
	Epoch      uint32 `json:"epoch"`
	Batch      uint32 `json:"batch"`
	Signer     string `json:"signer"`
	Validator  string `json:"validator"`
	Fee        uint64 `json:"fee"`
	Value      uint64 `json:"value"`
	TotalValue uint64 `json:"total_value"`

	NewSigningKey    string `json:"new_signing_key"`
	NewRewardAddress string `json:"new_reward_address"`

	Delegation         string `json:"delegation"`
	DelegationSet      bool   `json:"delegation_set"`
	ReactivateAllStake bool   `json:"reactivate_all_stake"`

	NewActive uint64 `json:"new_active"`
	Amount    uint64 `json:"amount"`
}

var txKinds = map[string]staking.Kind{
	"create_validator":     staking.KindCreateValidator,
	"update_validator":     staking.KindUpdateValidator,
	"deactivate_validator": staking.KindDeactivateValidator,
	"reactivate_validator": staking.KindReactivateValidator,
	"retire_validator":     staking.KindRetireValidator,
	"create_staker":        staking.KindCreateStaker,
	"add_stake":            staking.KindAddStake,
	"update_staker":        staking.KindUpdateStaker,
	"set_active_stake":     staking.KindSetActiveStake,
	"retire_stake":         staking.KindRetireStake,
	"delete_validator":     staking.KindDeleteValidator,
	"remove_stake":         staking.KindRemoveStake,
}

func parseAddress(s string) (addr.Address, error) {
	if s == "" {
		return addr.Zero, nil
	}
	b, err := hex.DecodeString(trimHexPrefix(s))
	if err != nil {
		return addr.Zero, err
	}
	return addr.FromBytes(b), nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func (e txEntry) parse() (staking.Transaction, error) {
	kind, ok := txKinds[e.Kind]
	if !ok {
		return staking.Transaction{}, errors.Errorf("unknown transaction kind %q", e.Kind)
	}
	signer, err := parseAddress(e.Signer)
	if err != nil {
		return staking.Transaction{}, errors.Wrap(err, "signer")
	}
	validator, err := parseAddress(e.Validator)
	if err != nil {
		return staking.Transaction{}, errors.Wrap(err, "validator")
	}

	tx := staking.Transaction{
		Kind:       kind,
		Signer:     signer,
		Validator:  validator,
		Fee:        coin.Coin(e.Fee),
		Value:      coin.Coin(e.Value),
		TotalValue: coin.Coin(e.TotalValue),
		NewActive:  coin.Coin(e.NewActive),
		Amount:     coin.Coin(e.Amount),

		DelegationSet:      e.DelegationSet,
		ReactivateAllStake: e.ReactivateAllStake,
	}

	if e.NewSigningKey != "" {
		a, err := parseAddress(e.NewSigningKey)
		if err != nil {
			return staking.Transaction{}, errors.Wrap(err, "new_signing_key")
		}
		tx.NewSigningKey = &a
	}
	if e.NewRewardAddress != "" {
		a, err := parseAddress(e.NewRewardAddress)
		if err != nil {
			return staking.Transaction{}, errors.Wrap(err, "new_reward_address")
		}
		tx.NewRewardAddress = &a
	}
	if e.DelegationSet && e.Delegation != "" {
		a, err := parseAddress(e.Delegation)
		if err != nil {
			return staking.Transaction{}, errors.Wrap(err, "delegation")
		}
		tx.Delegation = &a
	}

	return tx, nil
}

type inherentEntry struct {
	Kind       string `json:"kind"`
	Block      uint32 `json:"block"`
	Epoch      uint32 `json:"epoch"`
	Batch      uint32 `json:"batch"`
	Validator  string `json:"validator"`
	SlotFrom   uint16 `json:"slot_from"`
	SlotTo     uint16 `json:"slot_to"`
	Slot       uint16 `json:"slot"`
	PreviousOK bool   `json:"register_previous_batch"`
	CurrentOK  bool   `json:"register_current_batch"`
}

func (e inherentEntry) parse() (inherent.Inherent, error) {
	validator, err := parseAddress(e.Validator)
	if err != nil {
		return inherent.Inherent{}, errors.Wrap(err, "validator")
	}

	switch e.Kind {
	case "jail":
		return inherent.Inherent{
			Kind:      inherent.KindJail,
			Validator: validator,
			Range:     slots.Range{From: e.SlotFrom, To: e.SlotTo},
		}, nil
	case "penalize":
		return inherent.Inherent{
			Kind:                  inherent.KindPenalize,
			Validator:             validator,
			Slot:                  e.Slot,
			RegisterPreviousBatch: e.PreviousOK,
			RegisterCurrentBatch:  e.CurrentOK,
		}, nil
	case "finalize_batch":
		return inherent.Inherent{Kind: inherent.KindFinalizeBatch}, nil
	case "finalize_epoch":
		return inherent.Inherent{Kind: inherent.KindFinalizeEpoch}, nil
	case "reward":
		return inherent.Inherent{Kind: inherent.KindReward}, nil
	default:
		return inherent.Inherent{}, errors.Errorf("unknown inherent kind %q", e.Kind)
	}
}
