// Copyright (c) 2012-2013 The PPCoin developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/r3vcoin-project/r3vcoin/chaincfg"
	"github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"
	"github.com/r3vcoin-project/r3vcoin/wire"
)

// CheckProofOfStake validates that tx is a well-formed coinstake whose
// kernel (input 0) meets the stake hash target for bits, and that input
// 0's signature is valid against the transaction output it spends; the
// signature check is skipped when sigVerifier is nil. On success it returns the kernel proof hash and coin-day-weighted target
// so the caller can persist them on the resulting block index entry.
func CheckProofOfStake(
	cfg *chaincfg.Params,
	tx *wire.MsgTx,
	bits uint32,
	modifierInterval int64,
	txIndex TxIndex,
	chain ChainView,
	sigVerifier SignatureVerifier,
	clock Clock,
	printProofOfStake bool,
) (hashProofOfStake, targetProofOfStake chainhash.Hash, err error) {
	if !tx.IsCoinStake() {
		return hashProofOfStake, targetProofOfStake, ruleError(ErrCoinstakeTxViolation,
			"CheckProofOfStake: called on non-coinstake transaction")
	}

	txin := tx.TxIn[0]
	txPrev, blockHash, found := txIndex.GetTransaction(txin.PreviousOutPoint.Hash)
	if !found {
		return hashProofOfStake, targetProofOfStake, dataUnavailablef(
			"CheckProofOfStake: read txPrev failed for %s", txin.PreviousOutPoint.Hash)
	}

	if sigVerifier != nil && !sigVerifier.VerifySignature(txPrev, tx, 0) {
		return hashProofOfStake, targetProofOfStake, ruleError(ErrBadSignature,
			"CheckProofOfStake: VerifySignature failed on coinstake")
	}

	blockIdx, found := chain.ByHash(blockHash)
	if !found {
		return hashProofOfStake, targetProofOfStake, dataUnavailablef(
			"CheckProofOfStake: block not indexed: %s", blockHash)
	}

	return CheckStakeKernelHash(
		cfg, bits, blockIdx.BlockTime, blockHash, txin.PreviousOutPoint.Index,
		txPrev, txin.PreviousOutPoint, tx.Time, modifierInterval, chain, clock, printProofOfStake,
	)
}

// CheckCoinStakeTimestamp reports whether a coinstake transaction's
// timestamp matches its containing block's timestamp, as required by the
// v0.3 protocol.
func CheckCoinStakeTimestamp(blockTime, txTime int64) bool {
	return blockTime == txTime
}
