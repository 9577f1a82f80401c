// Copyright (c) 2012-2013 The PPCoin developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/binary"
	"math/big"

	"github.com/r3vcoin-project/r3vcoin/blockchain/standalone"
	"github.com/r3vcoin-project/r3vcoin/chaincfg"
	"github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"
	"github.com/r3vcoin-project/r3vcoin/wire"
)

// CheckStakeKernelHash validates that a proposed proof-of-stake kernel
// meets the protocol's hash-below-coin-day-weighted-target rule.
//
// blockFromTime/blockFromHash describe the block containing the
// transaction output being staked (txPrev), txPrevOffset is that
// transaction's byte offset within blockFrom (kept as an opaque
// de-correlating value, per the protocol's design rather than anything
// this module interprets), txPrev is the full spent transaction, prevout
// identifies which of its outputs is being staked, and timeTx is the
// coinstake transaction's own timestamp.
//
// It returns the computed kernel proof hash and coin-day-weighted target
// on success so the caller can record them in the block index.
func CheckStakeKernelHash(
	cfg *chaincfg.Params,
	bits uint32,
	blockFromTime int64,
	blockFromHash chainhash.Hash,
	txPrevOffset uint32,
	txPrev *wire.MsgTx,
	prevout wire.OutPoint,
	timeTx uint32,
	modifierInterval int64,
	chain ChainView,
	clock Clock,
	printProofOfStake bool,
) (hashProofOfStake, targetProofOfStake chainhash.Hash, err error) {
	timeTxPrev := txPrev.Time
	if timeTxPrev == 0 {
		// Deal with missing timestamps in proof-of-work blocks.
		timeTxPrev = uint32(blockFromTime)
	}

	if timeTx < timeTxPrev {
		return hashProofOfStake, targetProofOfStake, ruleError(ErrKernelTimeViolation,
			"CheckStakeKernelHash: nTime violation: nTimeTx < txPrev.nTime")
	}
	if blockFromTime+cfg.StakeMinAge > int64(timeTx) {
		return hashProofOfStake, targetProofOfStake, ruleError(ErrStakeMinAgeViolation,
			"CheckStakeKernelHash: min age violation")
	}

	idx := int(prevout.Index)
	if idx < 0 || idx >= len(txPrev.TxOut) {
		return hashProofOfStake, targetProofOfStake, ruleError(ErrCoinstakeTxViolation,
			"CheckStakeKernelHash: prevout index out of range")
	}
	valueIn := txPrev.TxOut[idx].Value

	targetPerCoinDay := standalone.CompactToBig(bits)
	coinAgeWeight := CoinAgeWeight(int64(timeTxPrev), int64(timeTx), cfg)

	coinDayWeight := new(big.Int).Mul(big.NewInt(valueIn), big.NewInt(coinAgeWeight))
	coinDayWeight.Div(coinDayWeight, big.NewInt(Coin))
	coinDayWeight.Div(coinDayWeight, big.NewInt(secondsPerDay))

	targetBig := new(big.Int).Mul(coinDayWeight, targetPerCoinDay)
	targetProofOfStake = bigToHash(targetBig)

	modifier, ok, err := GetKernelStakeModifier(blockFromHash, modifierInterval, chain, clock, cfg.StakeMinAge, printProofOfStake)
	if err != nil {
		return hashProofOfStake, targetProofOfStake, err
	}
	if !ok {
		return hashProofOfStake, targetProofOfStake, dataUnavailablef(
			"CheckStakeKernelHash: stake modifier unavailable for block %s", blockFromHash)
	}

	hashProofOfStake = kernelProofHash(modifier, uint32(blockFromTime), txPrevOffset, timeTxPrev, prevout.Index, timeTx)

	if bigFromHash(hashProofOfStake).Cmp(bigFromHash(targetProofOfStake)) > 0 {
		return hashProofOfStake, targetProofOfStake, ruleError(ErrKernelHashTooHigh,
			"CheckStakeKernelHash: proof hash exceeds target")
	}

	return hashProofOfStake, targetProofOfStake, nil
}

// kernelProofHash computes the double SHA-256 of the kernel's 28-byte
// little-endian preimage:
//
//	nStakeModifier(8) || nTimeBlockFrom(4) || nTxPrevOffset(4) ||
//	nTimeTxPrev(4) || prevout.n(4) || nTimeTx(4)
//
// Field order is consensus-critical and must not be reordered.
func kernelProofHash(stakeModifier uint64, timeBlockFrom, txPrevOffset, timeTxPrev, prevoutIndex, timeTx uint32) chainhash.Hash {
	buf := make([]byte, 28)
	binary.LittleEndian.PutUint64(buf[0:8], stakeModifier)
	binary.LittleEndian.PutUint32(buf[8:12], timeBlockFrom)
	binary.LittleEndian.PutUint32(buf[12:16], txPrevOffset)
	binary.LittleEndian.PutUint32(buf[16:20], timeTxPrev)
	binary.LittleEndian.PutUint32(buf[20:24], prevoutIndex)
	binary.LittleEndian.PutUint32(buf[24:28], timeTx)
	return chainhash.DoubleHashH(buf)
}

func bigFromHash(h chainhash.Hash) *big.Int {
	// Hash bytes are stored internally in the same byte order as a
	// little-endian 256-bit integer (index 0 is the least significant
	// byte), matching the wire representation of block/proof hashes.
	reversed := make([]byte, chainhash.HashSize)
	for i := 0; i < chainhash.HashSize; i++ {
		reversed[i] = h[chainhash.HashSize-1-i]
	}
	return new(big.Int).SetBytes(reversed)
}

func bigToHash(n *big.Int) chainhash.Hash {
	var h chainhash.Hash
	b := n.Bytes()
	for i := 0; i < len(b) && i < chainhash.HashSize; i++ {
		h[i] = b[len(b)-1-i]
	}
	return h
}
