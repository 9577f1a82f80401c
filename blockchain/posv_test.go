// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/r3vcoin-project/r3vcoin/chaincfg"
	"github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"
	"github.com/r3vcoin-project/r3vcoin/wire"
)

func TestCheckCoinStakeTimestamp(t *testing.T) {
	if !CheckCoinStakeTimestamp(100, 100) {
		t.Error("equal timestamps should be accepted")
	}
	if CheckCoinStakeTimestamp(100, 101) {
		t.Error("unequal timestamps should be rejected")
	}
}

type fakeTxIndex map[chainhash.Hash]struct {
	tx    *wire.MsgTx
	block chainhash.Hash
}

func (f fakeTxIndex) GetTransaction(txid chainhash.Hash) (*wire.MsgTx, chainhash.Hash, bool) {
	entry, ok := f[txid]
	if !ok {
		return nil, chainhash.Hash{}, false
	}
	return entry.tx, entry.block, true
}

func TestCheckProofOfStakeRejectsNonCoinstake(t *testing.T) {
	cfg := chaincfg.MainNetParams()
	tx := &wire.MsgTx{
		TxIn:  []*wire.TxIn{{}},
		TxOut: []*wire.TxOut{{Value: 1, PkScript: []byte{0x51}}},
	}
	_, _, err := CheckProofOfStake(cfg, tx, 0x1d00ffff, cfg.ModifierInterval, fakeTxIndex{}, newFakeChain(), nil, nil, false)
	if !isErrorKind(err, ErrCoinstakeTxViolation) {
		t.Errorf("got %v, want ErrCoinstakeTxViolation", err)
	}
}

func TestCheckProofOfStakeMissingTxPrev(t *testing.T) {
	cfg := chaincfg.MainNetParams()
	tx := &wire.MsgTx{
		TxIn: []*wire.TxIn{{PreviousOutPoint: wire.OutPoint{Hash: chainhash.HashH([]byte("missing"))}}},
		TxOut: []*wire.TxOut{
			{Value: 0, PkScript: nil},
			{Value: 1, PkScript: []byte{0x51}},
		},
	}
	_, _, err := CheckProofOfStake(cfg, tx, 0x1d00ffff, cfg.ModifierInterval, fakeTxIndex{}, newFakeChain(), nil, nil, false)
	if err == nil {
		t.Fatal("expected DataUnavailableError for missing txPrev")
	}
}
