// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2009-2016 The Bitcoin Core developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/r3vcoin-project/r3vcoin/blockchain/standalone"
	"github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"
)

// CheckProofOfWork ensures the block hash for the provided block header
// does not exceed the provided target difficulty, after validating that the
// target itself is sane (non-negative, non-overflowing, and no looser
// than powLimit).
func CheckProofOfWork(hash chainhash.Hash, bits uint32, powLimit *big.Int) error {
	target, isNegative, isOverflow := compactToBigChecked(bits)
	if isNegative {
		return ruleError(ErrNegativeOrOverflowTarget, "CheckProofOfWork: target is negative")
	}
	if target.Sign() == 0 {
		return ruleError(ErrNegativeOrOverflowTarget, "CheckProofOfWork: target is zero")
	}
	if isOverflow {
		return ruleError(ErrNegativeOrOverflowTarget, "CheckProofOfWork: target overflows 256 bits")
	}
	if target.Cmp(powLimit) > 0 {
		return ruleError(ErrTargetTooHigh, "CheckProofOfWork: target exceeds powLimit")
	}

	hashNum := bigFromHash(hash)
	if hashNum.Cmp(target) > 0 {
		return ruleError(ErrHighHash, "CheckProofOfWork: hash does not meet target difficulty")
	}
	return nil
}

// compactToBigChecked is CompactToBig plus the negative/overflow flags
// the reference implementation's arith_uint256::SetCompact exposes,
// needed because CheckProofOfWork must reject those cases explicitly
// rather than simply getting back an unusable target value.
func compactToBigChecked(compact uint32) (n *big.Int, isNegative, isOverflow bool) {
	mantissa := compact & 0x007fffff
	isNegative = compact&0x00800000 != 0
	exponent := compact >> 24

	isOverflow = mantissa != 0 &&
		((exponent > 34) ||
			(mantissa > 0xff && exponent > 33) ||
			(mantissa > 0xffff && exponent > 32))

	return standalone.CompactToBig(compact), isNegative, isOverflow
}
