// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"
)

// fakeChain is a minimal in-memory ChainView backed by a slice of
// BlockIndex entries ordered by height, used to exercise the stake
// modifier engine and difficulty retargeter without a real node.
type fakeChain struct {
	nodes []*BlockIndex
	byHash map[chainhash.Hash]*BlockIndex
}

func newFakeChain() *fakeChain {
	return &fakeChain{byHash: make(map[chainhash.Hash]*BlockIndex)}
}

// append adds a new block on top of the current tip, auto-assigning its
// height and hash, and returns the new node.
func (c *fakeChain) append(blockTime int64, bits uint32, isProofOfStake bool, entropyBit uint8) *BlockIndex {
	height := int64(len(c.nodes))
	var hash chainhash.Hash
	hash[0] = byte(height)
	hash[1] = byte(height >> 8)

	node := &BlockIndex{
		Hash:            hash,
		Height:          height,
		BlockTime:       blockTime,
		Bits:            bits,
		IsProofOfStake:  isProofOfStake,
		StakeEntropyBit: entropyBit,
		HashProof:       hash,
	}
	c.nodes = append(c.nodes, node)
	c.byHash[hash] = node
	return node
}

func (c *fakeChain) Tip() *BlockIndex {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[len(c.nodes)-1]
}

func (c *fakeChain) Height() int64 {
	if len(c.nodes) == 0 {
		return -1
	}
	return c.nodes[len(c.nodes)-1].Height
}

func (c *fakeChain) Next(idx *BlockIndex) (*BlockIndex, bool) {
	if idx == nil || idx.Height+1 >= int64(len(c.nodes)) {
		return nil, false
	}
	return c.nodes[idx.Height+1], true
}

func (c *fakeChain) Parent(idx *BlockIndex) (*BlockIndex, bool) {
	if idx == nil || idx.Height == 0 {
		return nil, false
	}
	return c.nodes[idx.Height-1], true
}

func (c *fakeChain) ByHash(hash chainhash.Hash) (*BlockIndex, bool) {
	n, ok := c.byHash[hash]
	return n, ok
}

// fakeClock is a Clock that always returns a fixed time.
type fakeClock int64

func (c fakeClock) AdjustedNow() int64 { return int64(c) }
