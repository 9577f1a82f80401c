// Package chaincfg defines the consensus parameters for each supported
// r3vcoin network.
//
// There are three networks: the main network, the public test network,
// and a regression test network intended for unit and integration
// testing. These networks are incompatible with each other, each having
// independent genesis-era parameters, and code that accepts a network
// name as configuration should reject an attempt to mix data from one
// network with parameters from another.
//
// Unlike some chain-configuration packages, there is no package-level
// "active" network variable here: callers obtain an immutable *Params
// value from one of the network constructor functions and thread it
// through explicitly.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//
//		"github.com/r3vcoin-project/r3vcoin/chaincfg"
//	)
//
//	var testnet = flag.Bool("testnet", false, "operate on the r3vcoin test network")
//
//	func main() {
//		flag.Parse()
//
//		params := chaincfg.MainNetParams()
//		if *testnet {
//			params = chaincfg.TestNetParams()
//		}
//
//		fmt.Println(params.Name)
//	}
package chaincfg
