// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/big"
	"testing"
)

func TestCompactToBig(t *testing.T) {
	tests := []struct {
		name    string
		compact uint32
		want    string
	}{
		{"zero", 0x00000000, "0"},
		{"mantissa only, exponent 3", 0x03123456, "1193046"},
		{"positive large exponent", 0x04123456, "305419776"},
		{"negative sign bit set", 0x01810000, "-1"},
		{"genesis-class limit", 0x1d00ffff, "26959535291011309493156476344723991336010898738574164086137773096960"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CompactToBig(tc.compact)
			want, ok := new(big.Int).SetString(tc.want, 10)
			if !ok {
				t.Fatalf("bad test vector %q", tc.want)
			}
			if got.Cmp(want) != 0 {
				t.Errorf("CompactToBig(%#08x) = %v, want %v", tc.compact, got, want)
			}
		})
	}
}

func TestBigToCompactRoundTrip(t *testing.T) {
	tests := []uint32{
		0x03123456,
		0x04123456,
		0x1d00ffff,
		0x1b0404cb,
		0x207fffff,
	}

	for _, compact := range tests {
		n := CompactToBig(compact)
		got := BigToCompact(n)
		if got != compact {
			t.Errorf("round trip for %#08x produced %#08x (n=%v)", compact, got, n)
		}
	}
}

func TestBigToCompactZero(t *testing.T) {
	if got := BigToCompact(big.NewInt(0)); got != 0 {
		t.Errorf("BigToCompact(0) = %#08x, want 0", got)
	}
}

func TestGetDouble(t *testing.T) {
	n := big.NewInt(256)
	if got := GetDouble(n); got != 256 {
		t.Errorf("GetDouble(256) = %v, want 256", got)
	}
	if got := GetDouble(big.NewInt(0)); got != 0 {
		t.Errorf("GetDouble(0) = %v, want 0", got)
	}
}
