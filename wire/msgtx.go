// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the bare transaction and outpoint types the
// consensus kernel operates on. It intentionally omits wire encoding,
// network framing, and script interpretation; those concerns belong to
// the node's transport and script-execution layers, outside this module.
package wire

import "github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"

// NullIndex is the index used in an OutPoint to indicate the witness of a
// generation (coinbase) transaction, which has no real previous output.
const NullIndex = 0xffffffff

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// MsgTx implements the transaction surface the consensus kernel validates
// against: a PPCoin/PoSV-style transaction carries an explicit nTime field
// in addition to the familiar Bitcoin input/output/locktime layout.
type MsgTx struct {
	Version  int32
	Time     uint32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// IsCoinBase determines whether the transaction is a coinbase transaction.
// A coinbase transaction is a special transaction created by miners that
// has no inputs. This is represented in the block chain by a transaction
// with a single input that has a previous output transaction index set to
// the maximum value along with a zero hash.
func (tx *MsgTx) IsCoinBase() bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	prevOut := &tx.TxIn[0].PreviousOutPoint
	return prevOut.Index == NullIndex && prevOut.Hash == (chainhash.Hash{})
}

// IsCoinStake determines whether the transaction is a proof-of-stake
// coinstake transaction. A coinstake transaction is the first non-empty
// input/output pair of a proof-of-stake block: a null-script first output
// followed by the staked coin and any split outputs.
func (tx *MsgTx) IsCoinStake() bool {
	if len(tx.TxIn) < 1 || len(tx.TxOut) < 2 {
		return false
	}
	return len(tx.TxOut[0].PkScript) == 0 && tx.TxOut[0].Value == 0
}
