// Copyright (c) 2012-2013 The PPCoin developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math"
	"math/big"

	"github.com/r3vcoin-project/r3vcoin/chaincfg"
	"github.com/r3vcoin-project/r3vcoin/wire"
)

// Coin and Cent are the smallest-unit scaling factors used when
// converting coin-days weights into cent-seconds and coin-days totals,
// matching the reference node's COIN/CENT constants.
const (
	Coin = 100000000
	Cent = 1000000

	secondsPerDay = 24 * 60 * 60
)

// CoinAgeWeight returns the non-linear coin-age weight, in seconds, of a
// coin confirmed at intervalBeginning and spent at intervalEnd.
//
// WARNING: the coefficients below are not arbitrary tuning constants.
// They are the particular solution to a curve-fitting problem chosen to
// balance minting incentives against network security at this network's
// specific target block time and stake-age parameters. Do not adjust
// them without re-deriving the curve; a linear coin-age function
// (weight == age, clamped to [StakeMinAge, StakeMaxAge]) is the safe
// fallback if the network's other timing parameters change.
func CoinAgeWeight(intervalBeginning, intervalEnd int64, cfg *chaincfg.Params) int64 {
	if intervalBeginning <= 0 {
		return 0
	}

	seconds := intervalEnd - intervalBeginning - cfg.StakeMinAge
	if seconds < 0 {
		seconds = 0
	}
	days := float64(seconds) / secondsPerDay

	var weight float64
	if days <= 7 {
		weight = -0.00408163*math.Pow(days, 3) + 0.05714286*math.Pow(days, 2) + days
	} else {
		weight = 8.4*math.Log(days) - 7.94564525
	}

	weightSeconds := int64(weight * secondsPerDay)
	if weightSeconds > cfg.StakeMaxAge {
		return cfg.StakeMaxAge
	}
	return weightSeconds
}

// CoinAgeOfTransaction returns the total coin age spent by tx, in whole
// coin-days, summed over every input whose previous output has reached
// the network's minimum stake age. Inputs whose previous transaction
// cannot be located are simply skipped, mirroring the reference behavior
// of tolerating an incomplete transaction index rather than failing the
// whole computation; an input whose previous transaction is found but
// whose containing block is not in chain, or which fails the internal
// timestamp-ordering invariant, forces the entire result to zero, also
// per the reference implementation.
func CoinAgeOfTransaction(tx *wire.MsgTx, cfg *chaincfg.Params, txIndex TxIndex, chain ChainView) uint64 {
	if tx.IsCoinBase() {
		return 0
	}

	centSecond := new(big.Int)
	for _, txin := range tx.TxIn {
		prevTx, blockHash, found := txIndex.GetTransaction(txin.PreviousOutPoint.Hash)
		if !found {
			continue
		}
		blockIdx, found := chain.ByHash(blockHash)
		if !found {
			return 0
		}
		if blockIdx.BlockTime+cfg.StakeMinAge > int64(tx.Time) {
			continue
		}

		prevTime := int64(prevTx.Time)
		if !blockIdx.IsProofOfStake {
			prevTime = blockIdx.BlockTime
		}
		if int64(tx.Time) < prevTime {
			return 0
		}

		idx := int(txin.PreviousOutPoint.Index)
		if idx < 0 || idx >= len(prevTx.TxOut) {
			continue
		}
		valueIn := prevTx.TxOut[idx].Value
		timeWeight := CoinAgeWeight(prevTime, int64(tx.Time), cfg)

		term := new(big.Int).Mul(big.NewInt(valueIn), big.NewInt(timeWeight))
		term.Div(term, big.NewInt(Cent))
		centSecond.Add(centSecond, term)
	}

	coinDay := new(big.Int).Mul(centSecond, big.NewInt(Cent))
	coinDay.Div(coinDay, big.NewInt(Coin))
	coinDay.Div(coinDay, big.NewInt(secondsPerDay))
	return coinDay.Uint64()
}

// CoinAgeOfBlock returns the total coin age spent across every
// transaction in a block, in coin-days.
func CoinAgeOfBlock(txs []*wire.MsgTx, cfg *chaincfg.Params, txIndex TxIndex, chain ChainView) uint64 {
	var total uint64
	for _, tx := range txs {
		total += CoinAgeOfTransaction(tx, cfg, txIndex, chain)
	}
	return total
}
