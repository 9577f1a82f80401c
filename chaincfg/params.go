// Copyright (c) 2014-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
)

var bigOne = big.NewInt(1)

// Params defines the consensus-relevant parameters of a given network. An
// instance of Params is an immutable value returned by one of the network
// constructor functions below (MainNetParams, TestNetParams,
// RegTestParams); there is intentionally no package-level "active"
// variable for callers to mutate, so a single process can validate against
// more than one network profile at once.
type Params struct {
	// Name is the network identifier used by Lookup, e.g. "main".
	Name string

	// SubsidyHalvingInterval is the number of blocks after which the
	// block subsidy is halved.
	SubsidyHalvingInterval int64

	// PowTargetSpacing is the desired number of seconds between
	// proof-of-work blocks.
	PowTargetSpacing int64

	// PowTargetTimespan is the averaging window, in seconds, used by
	// difficulty retargeting.
	PowTargetTimespan int64

	// PowLimit is the highest (easiest) proof-of-work target permitted
	// on the network.
	PowLimit *big.Int

	// PosLimit is the highest (easiest) proof-of-stake target permitted
	// on the network.
	PosLimit *big.Int

	// StakeMinAge is the minimum coin age, in seconds, a transaction
	// output must reach before it is eligible to participate in a
	// stake kernel.
	StakeMinAge int64

	// StakeMaxAge is the coin age, in seconds, beyond which additional
	// age no longer increases a coin's kernel weight.
	StakeMaxAge int64

	// LastPowHeight is the height of the final proof-of-work-only
	// block; proof-of-stake blocks are permitted from the following
	// height onward.
	LastPowHeight int64

	// ModifierInterval is the stake-modifier re-derivation period, in
	// seconds.
	ModifierInterval int64

	// AllowMinDifficulty, when true, lets the difficulty retargeter
	// fall straight back to PowLimit/PosLimit rather than run the
	// Kimoto Gravity Well walk. Intended for test and regression-test
	// networks only.
	AllowMinDifficulty bool

	// NoRetargeting disables difficulty adjustment entirely, returning
	// the previous block's bits unchanged. Intended for regression-test
	// networks that want a fixed, low difficulty.
	NoRetargeting bool
}

// ConfigError indicates a problem in network parameter configuration,
// such as an unrecognized network name. It is always a fatal,
// startup-time condition, never a per-block validation outcome.
type ConfigError struct {
	Description string
}

// Error implements the error interface.
func (e ConfigError) Error() string {
	return e.Description
}

func configErrorf(format string, args ...interface{}) ConfigError {
	return ConfigError{Description: fmt.Sprintf(format, args...)}
}

// Lookup returns the parameters for the named network, or a ConfigError if
// the name is not one of "main", "test", or "regtest".
func Lookup(name string) (*Params, error) {
	switch name {
	case "main":
		return MainNetParams(), nil
	case "test":
		return TestNetParams(), nil
	case "regtest":
		return RegTestParams(), nil
	default:
		return nil, configErrorf("unknown network %q", name)
	}
}

// MainNetParams returns the consensus parameters for the main r3vcoin
// network. The stake-age and modifier-interval figures mirror the values
// the original PPCoin-derived chainparams.cpp ships for mainnet.
func MainNetParams() *Params {
	mainPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 235), bigOne)
	mainPosLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	return &Params{
		Name: "main",

		SubsidyHalvingInterval: 210000,
		PowTargetSpacing:       60,
		PowTargetTimespan:      60 * 144,

		PowLimit: mainPowLimit,
		PosLimit: mainPosLimit,

		StakeMinAge: 10800,          // 3 hours
		StakeMaxAge: 45 * 24 * 3600, // 45 days

		LastPowHeight:    10000,
		ModifierInterval: 300, // 5 minutes

		AllowMinDifficulty: false,
		NoRetargeting:      false,
	}
}

// TestNetParams returns the consensus parameters for the public test
// network. Proof-of-work and proof-of-stake limits are relaxed relative to
// mainnet, and minimum-difficulty mining is permitted, matching the usual
// posture of a public testnet in this lineage.
func TestNetParams() *Params {
	testPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 251), bigOne)
	testPosLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)

	return &Params{
		Name: "test",

		SubsidyHalvingInterval: 210000,
		PowTargetSpacing:       60,
		PowTargetTimespan:      60 * 144,

		PowLimit: testPowLimit,
		PosLimit: testPosLimit,

		StakeMinAge: 3600,          // 1 hour
		StakeMaxAge: 45 * 24 * 3600,

		LastPowHeight:    500,
		ModifierInterval: 300,

		AllowMinDifficulty: true,
		NoRetargeting:      false,
	}
}

// RegTestParams returns the consensus parameters for the regression test
// network. This network exists solely for unit and integration tests;
// retargeting is disabled outright so tests can mine arbitrarily many
// blocks at a fixed, trivial difficulty.
func RegTestParams() *Params {
	regPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	return &Params{
		Name: "regtest",

		SubsidyHalvingInterval: 150,
		PowTargetSpacing:       1,
		PowTargetTimespan:      144,

		PowLimit: regPowLimit,
		PosLimit: regPowLimit,

		StakeMinAge: 60,
		StakeMaxAge: 3600,

		LastPowHeight:    10,
		ModifierInterval: 60,

		AllowMinDifficulty: true,
		NoRetargeting:      true,
	}
}
