// SPDX-License-Identifier: MIT

package bit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/smath/bit"
)

func TestIsPow2(t *testing.T) {
	assert.False(t, bit.IsPow2(uint(0)))
	assert.True(t, bit.IsPow2(uint(1)))
	assert.True(t, bit.IsPow2(uint(2)))
	assert.False(t, bit.IsPow2(uint(255)))
	assert.True(t, bit.IsPow2(uint(256)))
	assert.True(t, bit.IsPow2(uint64(1)<<63))
}

func TestCeil2(t *testing.T) {
	cases := map[uint]uint{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 123: 128}
	for in, want := range cases {
		assert.Equal(t, want, bit.Ceil2(in), "Ceil2(%d)", in)
	}
	assert.Equal(t, uint8(128), bit.Ceil2(uint8(100)))
	// Nothing ≥ 200 fits in a uint8: wraps to zero.
	assert.Equal(t, uint8(0), bit.Ceil2(uint8(200)))
	assert.Equal(t, uint64(1)<<63, bit.Ceil2(uint64(1)<<62+1))
}

func TestFloor2(t *testing.T) {
	cases := map[uint]uint{0: 0, 1: 1, 2: 2, 3: 2, 4: 4, 5: 4, 123: 64}
	for in, want := range cases {
		assert.Equal(t, want, bit.Floor2(in), "Floor2(%d)", in)
	}
	assert.Equal(t, uint64(1)<<63, bit.Floor2(uint64(math.MaxUint64)))
}

func TestLog2p1(t *testing.T) {
	cases := map[uint]uint{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 123: 7}
	for in, want := range cases {
		assert.Equal(t, want, bit.Log2p1(in), "Log2p1(%d)", in)
	}
	assert.Equal(t, uint16(16), bit.Log2p1(uint16(math.MaxUint16)))
}
