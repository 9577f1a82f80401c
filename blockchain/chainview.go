// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"
	"github.com/r3vcoin-project/r3vcoin/wire"
)

// BlockIndex is the read-only per-block consensus state the kernel needs:
// the subset of a full node's block index entry that the stake-modifier
// engine, kernel-hash check, and difficulty retargeter consult. Callers
// build and own these; this package only ever reads them.
type BlockIndex struct {
	// Hash is this block's own identity, used when hashing the
	// selection value in the stake-modifier engine.
	Hash chainhash.Hash

	// Height is the block's height above genesis.
	Height int64

	// BlockTime is the block's header timestamp, in Unix seconds.
	BlockTime int64

	// Bits is the block's compact-encoded proof-of-work/proof-of-stake
	// target.
	Bits uint32

	// IsProofOfStake is true when this block's coinstake transaction is
	// non-empty.
	IsProofOfStake bool

	// StakeModifier is the 64-bit stake modifier active for this block.
	StakeModifier uint64

	// GeneratedStakeModifier is true if StakeModifier was freshly
	// derived at this block (as opposed to being carried over from an
	// ancestor because the modifier-interval boundary had not yet been
	// crossed).
	GeneratedStakeModifier bool

	// StakeEntropyBit is the single bit of entropy this block
	// contributes to descendant stake-modifier derivations.
	StakeEntropyBit uint8

	// HashProof is the proof hash recorded when this block was
	// validated: for proof-of-stake blocks, the kernel hash; for
	// proof-of-work blocks, the block hash.
	HashProof chainhash.Hash
}

// ChainView is the read-only, synchronous view over the best chain that
// the kernel consults to walk ancestors and descendants. Implementations
// are expected to be backed by a node's persistent block index; this
// package never mutates the view.
type ChainView interface {
	// Tip returns the current best block, or nil if the view is empty.
	Tip() *BlockIndex

	// Next returns the direct descendant of idx on the best chain, if
	// any.
	Next(idx *BlockIndex) (*BlockIndex, bool)

	// Parent returns the direct ancestor of idx, if any.
	Parent(idx *BlockIndex) (*BlockIndex, bool)

	// ByHash looks up a block index entry by block hash, anywhere in
	// the indexed chain (not necessarily on the best chain).
	ByHash(hash chainhash.Hash) (*BlockIndex, bool)

	// Height returns the height of the current best chain tip, or -1
	// if the view is empty.
	Height() int64
}

// TxIndex resolves a transaction id to its full transaction data and the
// hash of the block that contains it. Implementations are typically
// backed by an on-disk transaction index; a kernel check that cannot find
// a previous transaction should treat that as DataUnavailableError, not as
// a consensus rejection, since the index may simply not be caught up yet.
type TxIndex interface {
	GetTransaction(txid chainhash.Hash) (tx *wire.MsgTx, containingBlock chainhash.Hash, found bool)
}

// SignatureVerifier checks that the input at inputIndex of tx is validly
// signed given the transaction it spends from, txPrev. Script
// interpretation and signature cryptography are both out of scope for
// this module; a real node supplies this from its script-execution
// engine.
type SignatureVerifier interface {
	VerifySignature(txPrev *wire.MsgTx, tx *wire.MsgTx, inputIndex int) bool
}

// Clock supplies the network-adjusted current time used by
// GetKernelStakeModifier's best-block fallback. Implementations typically
// apply the node's peer time-offset median.
type Clock interface {
	AdjustedNow() int64
}
