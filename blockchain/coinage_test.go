// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/r3vcoin-project/r3vcoin/chaincfg"
	"github.com/r3vcoin-project/r3vcoin/chaincfg/chainhash"
	"github.com/r3vcoin-project/r3vcoin/wire"
)

func TestCoinAgeWeightZeroIntervalBeginning(t *testing.T) {
	cfg := chaincfg.MainNetParams()
	if got := CoinAgeWeight(0, 1000, cfg); got != 0 {
		t.Errorf("CoinAgeWeight with intervalBeginning<=0 = %d, want 0", got)
	}
	if got := CoinAgeWeight(-5, 1000, cfg); got != 0 {
		t.Errorf("CoinAgeWeight with negative intervalBeginning = %d, want 0", got)
	}
}

func TestCoinAgeWeightOneDay(t *testing.T) {
	cfg := *chaincfg.MainNetParams()
	cfg.StakeMinAge = 0

	const day = int64(secondsPerDay)
	got := CoinAgeWeight(1, 1+day, &cfg)
	const want = 90984 // -0.00408163 + 0.05714286 + 1, scaled by 86400 seconds, truncated
	if got != want {
		t.Errorf("CoinAgeWeight(1 day) = %d, want %d", got, want)
	}
}

func TestCoinAgeWeightClampsToStakeMaxAge(t *testing.T) {
	cfg := *chaincfg.MainNetParams()
	cfg.StakeMinAge = 0
	cfg.StakeMaxAge = 1000

	const longInterval = int64(365 * secondsPerDay)
	got := CoinAgeWeight(1, 1+longInterval, &cfg)
	if got != cfg.StakeMaxAge {
		t.Errorf("CoinAgeWeight(365 days) = %d, want clamp to StakeMaxAge %d", got, cfg.StakeMaxAge)
	}
}

func TestCoinAgeWeightMonotonicBelowMaxAge(t *testing.T) {
	cfg := *chaincfg.MainNetParams()
	cfg.StakeMinAge = 0
	cfg.StakeMaxAge = 1 << 40

	prev := int64(0)
	for days := int64(1); days <= 30; days++ {
		got := CoinAgeWeight(1, 1+days*secondsPerDay, &cfg)
		if got < prev {
			t.Fatalf("CoinAgeWeight decreased at day %d: got %d, previous %d", days, got, prev)
		}
		prev = got
	}
}

func TestCoinAgeOfTransactionCoinBase(t *testing.T) {
	msg := &wire.MsgTx{
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Hash: chainhash.Hash{}, Index: wire.NullIndex},
		}},
	}
	cfg := chaincfg.MainNetParams()
	got := CoinAgeOfTransaction(msg, cfg, nil, nil)
	if got != 0 {
		t.Errorf("CoinAgeOfTransaction(coinbase) = %d, want 0", got)
	}
}
