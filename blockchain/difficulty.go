// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2009-2016 The Bitcoin Core developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math"
	"math/big"

	"github.com/r3vcoin-project/r3vcoin/blockchain/standalone"
	"github.com/r3vcoin-project/r3vcoin/chaincfg"
)

var (
	// bigZero is 0 represented as a big.Int. It is defined here to
	// avoid the overhead of creating it multiple times.
	bigZero = big.NewInt(0)

	// posResetBits is the difficulty reset target used for the first
	// PastBlocksMin proof-of-stake blocks following the proof-of-work
	// era, before the Kimoto Gravity Well has enough history to average
	// over: 4 zero bytes followed by 28 all-ones bytes, matching the
	// reference node's bnProofOfStakeReset value.
	posResetBits = standalone.BigToCompact(func() *big.Int {
		n, _ := new(big.Int).SetString("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff", 16)
		return n
	}())
)

// NextWorkRequired returns the compact-encoded target difficulty
// required for the block that extends prevIdx, under the Kimoto Gravity
// Well retargeting algorithm.
//
// The algorithm walks backward from prevIdx, accumulating a cumulative
// average difficulty and a cumulative average block interval, until
// either PastBlocksMax blocks have been examined or the ratio between
// the target and actual block rate crosses an "event horizon" threshold
// that tightens as more blocks are averaged. The final average is then
// scaled by the actual-to-target rate ratio to produce the new target.
func NextWorkRequired(cfg *chaincfg.Params, prevIdx *BlockIndex, chain ChainView) uint32 {
	if prevIdx == nil {
		return standalone.BigToCompact(cfg.PowLimit)
	}

	if cfg.NoRetargeting {
		return prevIdx.Bits
	}

	isProofOfStake := prevIdx.Height >= cfg.LastPowHeight

	if cfg.AllowMinDifficulty {
		if !isProofOfStake {
			return standalone.BigToCompact(cfg.PowLimit)
		}
		return standalone.BigToCompact(cfg.PosLimit)
	}

	if prevIdx.Height == 0 || !isProofOfStake {
		return standalone.BigToCompact(cfg.PowLimit)
	}

	pastBlocksMin := cfg.StakeMinAge / cfg.PowTargetSpacing
	pastBlocksMax := int64(604800) / cfg.PowTargetSpacing // 1 week

	if prevIdx.Height-cfg.LastPowHeight < pastBlocksMin {
		// Difficulty is reset at the first pastBlocksMin PoSV blocks,
		// which will be used to calculate the past difficulty average
		// later.
		return posResetBits
	}

	return kimotoGravityWell(cfg, prevIdx, chain, isProofOfStake, pastBlocksMin, pastBlocksMax)
}

func kimotoGravityWell(cfg *chaincfg.Params, prevIdx *BlockIndex, chain ChainView, isProofOfStake bool, pastBlocksMin, pastBlocksMax int64) uint32 {
	blockLastSolved := prevIdx
	blockReading := prevIdx

	var (
		pastBlocksMass        int64
		pastRateActualSeconds int64
		pastRateTargetSeconds int64
	)
	pastRateAdjustmentRatio := 1.0
	pastDifficultyAverage := new(big.Int)
	pastDifficultyAveragePrev := new(big.Int)

	floorHeight := cfg.LastPowHeight
	if !isProofOfStake {
		floorHeight = 0
	}

	for i := int64(1); blockReading != nil && blockReading.Height > floorHeight; i++ {
		if pastBlocksMax > 0 && i > pastBlocksMax {
			break
		}
		pastBlocksMass++

		blockDifficulty := standalone.CompactToBig(blockReading.Bits)
		if i == 1 {
			pastDifficultyAverage.Set(blockDifficulty)
		} else {
			blockDifficultyAverage := new(big.Int).Div(blockDifficulty, big.NewInt(i))
			pastDifficultyAverage = new(big.Int).Mul(pastDifficultyAveragePrev, big.NewInt(i-1))
			pastDifficultyAverage.Div(pastDifficultyAverage, big.NewInt(i))
			pastDifficultyAverage.Add(pastDifficultyAverage, blockDifficultyAverage)
		}
		pastDifficultyAveragePrev = pastDifficultyAverage

		pastRateActualSeconds = blockLastSolved.BlockTime - blockReading.BlockTime
		pastRateTargetSeconds = cfg.PowTargetSpacing * pastBlocksMass
		pastRateAdjustmentRatio = 1.0

		if pastRateActualSeconds < 0 {
			pastRateActualSeconds = 0
		}
		if pastRateActualSeconds != 0 && pastRateTargetSeconds != 0 {
			pastRateAdjustmentRatio = float64(pastRateTargetSeconds) / float64(pastRateActualSeconds)
		}

		eventHorizonDeviation := 1 + 0.7084*math.Pow(float64(pastBlocksMass)/144, -1.228)
		eventHorizonDeviationFast := eventHorizonDeviation
		eventHorizonDeviationSlow := 1 / eventHorizonDeviation

		if pastBlocksMass >= pastBlocksMin {
			if pastRateAdjustmentRatio <= eventHorizonDeviationSlow || pastRateAdjustmentRatio >= eventHorizonDeviationFast {
				break
			}
		}

		parent, ok := chain.Parent(blockReading)
		if !ok {
			break
		}
		blockReading = parent
	}

	bnNew := new(big.Int).Set(pastDifficultyAverage)
	if pastRateActualSeconds != 0 && pastRateTargetSeconds != 0 {
		bnNew.Mul(bnNew, big.NewInt(pastRateActualSeconds))
		bnNew.Div(bnNew, big.NewInt(pastRateTargetSeconds))
	}

	limit := cfg.PowLimit
	if isProofOfStake {
		limit = cfg.PosLimit
	}
	if bnNew.Cmp(limit) > 0 {
		bnNew = limit
	}

	nextBits := standalone.BigToCompact(bnNew)
	log.Debugf("KGW retarget at height %d: mass=%d ratio=%g new target %08x (%064x)",
		prevIdx.Height+1, pastBlocksMass, pastRateAdjustmentRatio, nextBits, standalone.CompactToBig(nextBits))
	return nextBits
}

// CheckUnexpectedDifficulty returns a RuleError wrapping
// ErrUnexpectedDifficulty if bits does not equal the difficulty computed
// by NextWorkRequired for the block extending prevIdx.
func CheckUnexpectedDifficulty(cfg *chaincfg.Params, prevIdx *BlockIndex, chain ChainView, bits uint32) error {
	want := NextWorkRequired(cfg, prevIdx, chain)
	if bits != want {
		return ruleError(ErrUnexpectedDifficulty,
			fmt.Sprintf("block difficulty of %08x is not the expected value of %08x", bits, want))
	}
	return nil
}
