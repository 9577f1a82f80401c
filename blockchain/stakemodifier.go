// Copyright (c) 2012-2013 The PPCoin developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/binary"
	"sort"

	"github.com/jrick/bitset"

	"github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"
)

// modifierIntervalRatio governs how the 64-round selection window is
// distributed across the modifier interval: later rounds get
// progressively longer selection windows than earlier ones, per the
// selection-interval-section formula below.
const modifierIntervalRatio = 3

// selectionRounds is the number of blocks selected to build a new stake
// modifier; each round contributes exactly one entropy bit to the
// resulting 64-bit word.
const selectionRounds = 64

// stakeModifierSelectionIntervalSection returns the length, in seconds,
// of the window assigned to selection round section. Earlier rounds (low
// section numbers) get shorter windows than later ones.
func stakeModifierSelectionIntervalSection(modifierInterval int64, section int) int64 {
	return modifierInterval * (selectionRounds - 1) /
		((selectionRounds - 1) + int64(selectionRounds-1-section)*(modifierIntervalRatio-1))
}

// stakeModifierSelectionInterval returns the total length, in seconds, of
// the stake modifier selection window: the sum of all 64 per-round
// section lengths.
func stakeModifierSelectionInterval(modifierInterval int64) int64 {
	var total int64
	for section := 0; section < selectionRounds; section++ {
		total += stakeModifierSelectionIntervalSection(modifierInterval, section)
	}
	return total
}

// lastStakeModifier walks back from idx to the nearest ancestor (inclusive)
// that generated a stake modifier, returning that modifier and the time it
// was generated.
func lastStakeModifier(idx *BlockIndex, chain ChainView) (modifier uint64, modifierTime int64, err error) {
	cur := idx
	for cur != nil {
		parent, ok := chain.Parent(cur)
		if !cur.GeneratedStakeModifier && ok {
			cur = parent
			continue
		}
		break
	}
	if cur == nil || !cur.GeneratedStakeModifier {
		return 0, 0, ruleError(ErrNoStakeModifier, "lastStakeModifier: no generation at genesis block")
	}
	return cur.StakeModifier, cur.BlockTime, nil
}

type timestampedCandidate struct {
	timestamp int64
	hash      chainhash.Hash
}

// selectBlockFromCandidates scans candidates (sorted ascending by
// timestamp) for the block with the lowest selection hash among those not
// yet marked selected and whose timestamp does not exceed
// selectionIntervalStop, once at least one candidate has been accepted.
func selectBlockFromCandidates(
	candidates []timestampedCandidate,
	selected bitset.Bytes,
	selectionIntervalStop int64,
	stakeModifierPrev uint64,
	chain ChainView,
) (*BlockIndex, int, bool) {
	var (
		haveBest    bool
		bestHash    chainhash.Hash
		bestIdx     *BlockIndex
		bestIdxSlot int
	)

	for i, cand := range candidates {
		idx, ok := chain.ByHash(cand.hash)
		if !ok {
			continue
		}
		if haveBest && idx.BlockTime > selectionIntervalStop {
			break
		}
		if selected.Get(i) {
			continue
		}

		selectionHash := kernelSelectionHash(idx.HashProof, stakeModifierPrev)
		if idx.IsProofOfStake {
			// Proof-of-stake blocks are favored over proof-of-work
			// blocks by dividing their effective selection value by 2^32.
			shiftRight32(&selectionHash)
		}

		if !haveBest || lessHash(selectionHash, bestHash) {
			haveBest = true
			bestHash = selectionHash
			bestIdx = idx
			bestIdxSlot = i
		}
	}

	return bestIdx, bestIdxSlot, haveBest
}

// kernelSelectionHash computes the selection value for a stake-modifier
// candidate: the double SHA-256 of the candidate's recorded proof hash
// concatenated with the previous stake modifier, little-endian encoded.
func kernelSelectionHash(hashProof chainhash.Hash, stakeModifierPrev uint64) chainhash.Hash {
	buf := make([]byte, chainhash.HashSize+8)
	copy(buf, hashProof[:])
	binary.LittleEndian.PutUint64(buf[chainhash.HashSize:], stakeModifierPrev)
	return chainhash.DoubleHashH(buf)
}

// shiftRight32 shifts a 256-bit hash, interpreted as a big-endian unsigned
// integer, right by 32 bits in place.
func shiftRight32(h *chainhash.Hash) {
	var shifted chainhash.Hash
	for i := 0; i < chainhash.HashSize; i++ {
		if i < 4 {
			shifted[i] = 0
		} else {
			shifted[i] = h[i-4]
		}
	}
	*h = shifted
}

// lessHash compares two hashes as big-endian unsigned integers.
func lessHash(a, b chainhash.Hash) bool {
	for i := 0; i < chainhash.HashSize; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// ComputeNextStakeModifier derives the stake modifier effective for the
// block that extends prevIdx and reports whether it was freshly generated
// (fGenerated). If prevIdx is
// nil, this is the genesis block and the modifier is zero by definition.
// If the currently active modifier has not yet aged past its interval
// boundary, it is carried forward unchanged and fGenerated is false.
func ComputeNextStakeModifier(prevIdx *BlockIndex, modifierInterval int64, chain ChainView) (modifier uint64, fGenerated bool, err error) {
	if prevIdx == nil {
		return 0, true, nil
	}

	modifier, modifierTime, err := lastStakeModifier(prevIdx, chain)
	if err != nil {
		return 0, false, err
	}

	if modifierTime/modifierInterval >= prevIdx.BlockTime/modifierInterval {
		return modifier, false, nil
	}

	selectionInterval := stakeModifierSelectionInterval(modifierInterval)
	selectionIntervalStart := (prevIdx.BlockTime/modifierInterval)*modifierInterval - selectionInterval

	var candidates []timestampedCandidate
	for cur := prevIdx; cur != nil && cur.BlockTime >= selectionIntervalStart; {
		candidates = append(candidates, timestampedCandidate{timestamp: cur.BlockTime, hash: cur.Hash})
		parent, ok := chain.Parent(cur)
		if !ok {
			break
		}
		cur = parent
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].timestamp != candidates[j].timestamp {
			return candidates[i].timestamp < candidates[j].timestamp
		}
		return lessHash(candidates[i].hash, candidates[j].hash)
	})

	rounds := selectionRounds
	if len(candidates) < rounds {
		rounds = len(candidates)
	}

	selected := bitset.NewBytes(len(candidates))
	var newModifier uint64
	selectionIntervalStop := selectionIntervalStart
	for round := 0; round < rounds; round++ {
		selectionIntervalStop += stakeModifierSelectionIntervalSection(modifierInterval, round)
		idx, slot, ok := selectBlockFromCandidates(candidates, selected, selectionIntervalStop, modifier, chain)
		if !ok {
			return 0, false, ruleError(ErrNoStakeModifier,
				"ComputeNextStakeModifier: unable to select block at round")
		}
		newModifier |= uint64(idx.StakeEntropyBit) << uint(round)
		selected.Set(slot)
	}

	return newModifier, true, nil
}

// GetKernelStakeModifier returns the stake modifier that must be used to
// validate a stake kernel whose coin was confirmed in the block
// identified by hashBlockFrom: the modifier in effect a full selection
// interval later than that block's own timestamp.
//
// If the walk reaches the chain tip before the selection interval has
// elapsed, this function returns a DataUnavailableError when
// printProofOfStake is set or when the last block reached, plus
// stakeMinAge and minus the selection interval, is later than the clock's
// adjusted time. Otherwise it returns (0, false, nil) rather than an error —
// this silent non-error false return is intentional and matches the
// reference node's behavior for a coin too young relative to the synced
// chain height (as opposed to too young relative to stake-min-age, which
// is rejected earlier in CheckStakeKernelHash). Callers must check the ok
// return value; a false ok does not necessarily mean the kernel is
// invalid, only that it cannot yet be evaluated.
func GetKernelStakeModifier(hashBlockFrom chainhash.Hash, modifierInterval int64, chain ChainView, clock Clock, stakeMinAge int64, printProofOfStake bool) (modifier uint64, ok bool, err error) {
	idxFrom, found := chain.ByHash(hashBlockFrom)
	if !found {
		return 0, false, dataUnavailablef("GetKernelStakeModifier: block not indexed")
	}

	selectionInterval := stakeModifierSelectionInterval(modifierInterval)
	idx := idxFrom
	stakeModifierTime := idxFrom.BlockTime

	for stakeModifierTime < idxFrom.BlockTime+selectionInterval {
		next, hasNext := chain.Next(idx)
		if !hasNext {
			behind := clock != nil && idx.BlockTime+stakeMinAge-selectionInterval > clock.AdjustedNow()
			if printProofOfStake || behind {
				return 0, false, dataUnavailablef(
					"GetKernelStakeModifier: reached best block at height %d from block at height %d",
					idx.Height, idxFrom.Height)
			}
			return 0, false, nil
		}
		idx = next
		stakeModifierTime = idx.BlockTime
	}

	return idx.StakeModifier, true, nil
}
