// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/r3vcoin-project/r3vcoin/blockchain/standalone"
	"github.com/r3vcoin-project/r3vcoin/chaincfg"
)

func TestNextWorkRequiredGenesis(t *testing.T) {
	cfg := chaincfg.MainNetParams()
	got := NextWorkRequired(cfg, nil, nil)
	want := standalone.BigToCompact(cfg.PowLimit)
	if got != want {
		t.Errorf("NextWorkRequired(genesis) = %#08x, want %#08x", got, want)
	}
}

func TestNextWorkRequiredNoRetargeting(t *testing.T) {
	cfg := *chaincfg.RegTestParams()
	cfg.NoRetargeting = true

	chain := newFakeChain()
	node := chain.append(1, 0x207fffff, false, 0)

	got := NextWorkRequired(&cfg, node, chain)
	if got != node.Bits {
		t.Errorf("NextWorkRequired with NoRetargeting = %#08x, want unchanged %#08x", got, node.Bits)
	}
}

func TestNextWorkRequiredBelowMinDifficultyWindowUsesResetTarget(t *testing.T) {
	cfg := *chaincfg.MainNetParams()
	cfg.LastPowHeight = 100
	cfg.StakeMinAge = 1000 // pastBlocksMin = StakeMinAge/PowTargetSpacing

	chain := newFakeChain()
	var node *BlockIndex
	for i := int64(0); i <= cfg.LastPowHeight+1; i++ {
		isPos := i > cfg.LastPowHeight
		node = chain.append(i*cfg.PowTargetSpacing, standalone.BigToCompact(cfg.PowLimit), isPos, 0)
	}

	got := NextWorkRequired(&cfg, node, chain)
	if got != posResetBits {
		t.Errorf("NextWorkRequired just after the PoW/PoS boundary = %#08x, want reset target %#08x", got, posResetBits)
	}

	// posResetBits itself must be the reference node's bnProofOfStakeReset
	// value: 4 zero bytes followed by 28 bytes of 0xff, compact-encoded.
	const wantResetBits = 0x1d00ffff
	if posResetBits != wantResetBits {
		t.Errorf("posResetBits = %#08x, want %#08x", posResetBits, uint32(wantResetBits))
	}
}

func TestNextWorkRequiredAllowMinDifficulty(t *testing.T) {
	cfg := *chaincfg.TestNetParams()
	cfg.AllowMinDifficulty = true

	chain := newFakeChain()
	powNode := chain.append(1, 0x1d00ffff, false, 0)
	gotPow := NextWorkRequired(&cfg, powNode, chain)
	if gotPow != standalone.BigToCompact(cfg.PowLimit) {
		t.Errorf("AllowMinDifficulty PoW target = %#08x, want PowLimit", gotPow)
	}

	powNode.Height = cfg.LastPowHeight
	gotPos := NextWorkRequired(&cfg, powNode, chain)
	if gotPos != standalone.BigToCompact(cfg.PosLimit) {
		t.Errorf("AllowMinDifficulty PoS target = %#08x, want PosLimit", gotPos)
	}
}
