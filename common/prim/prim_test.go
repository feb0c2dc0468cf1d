// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

type userID int32

func TestEqualFloatBits(t *testing.T) {
	negZero := math.Copysign(0, -1)
	assert.False(t, Equal(0.0, negZero))
	assert.True(t, Equal(math.NaN(), math.NaN()))
	assert.True(t, Equal(math.NaN(), math.Float64frombits(0x7ff0000000000001)))
	assert.True(t, Equal(float32(math.NaN()), float32(math.NaN())))
	assert.False(t, Equal(float32(0), float32(negZero)))
	assert.True(t, Equal(1.5, 1.5))
}

func TestBitsRoundTrip(t *testing.T) {
	assert.Equal(t, int8(-3), FromBits[int8](Bits(int8(-3))))
	assert.Equal(t, uint16(65535), FromBits[uint16](Bits(uint16(65535))))
	assert.Equal(t, true, FromBits[bool](Bits(true)))
	assert.Equal(t, userID(-42), FromBits[userID](Bits(userID(-42))))
	assert.Equal(t, math.Copysign(0, -1), FromBits[float64](Bits(math.Copysign(0, -1))))
	assert.True(t, math.Signbit(FromBits[float64](Bits(math.Copysign(0, -1)))))
}

func TestHash(t *testing.T) {
	assert.Equal(t, Hash(int64(7)), Hash(int64(7)))
	assert.NotEqual(t, Hash(int64(7)), Hash(int64(8)))
	assert.Equal(t, Hash(math.NaN()), Hash(-math.NaN()))
	assert.NotEqual(t, Hash(0.0), Hash(math.Copysign(0, -1)))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected int
	}{
		{"less", 1, 2, -1},
		{"greater", 3, 2, 1},
		{"equal", 2, 2, 0},
		{"signed zero", math.Copysign(0, -1), 0, -1},
		{"nan greater", math.NaN(), math.Inf(1), 1},
		{"nan equal", math.NaN(), math.NaN(), 0},
		{"negative", -5, -1, -1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Compare(test.a, test.b))
		})
	}

	assert.Equal(t, -1, Compare(int64(-1), int64(1)))
	assert.Equal(t, 1, Compare(uint64(math.MaxUint64), uint64(1)))
	assert.Equal(t, -1, Compare(false, true))
	assert.Equal(t, -1, Compare(userID(-9), userID(3)))
	assert.Equal(t, -1, Compare(float32(math.Copysign(0, -1)), float32(0)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "-12", Format(int16(-12)))
	assert.Equal(t, "12", Format(uint8(12)))
	assert.Equal(t, "1.5", Format(1.5))
	assert.Equal(t, "0.1", Format(float32(0.1)))
	assert.Equal(t, "NaN", Format(math.NaN()))
	assert.Equal(t, "true", Format(true))
}

func TestWire(t *testing.T) {
	var b []byte
	b = Append(b, int64(-300))
	b = Append(b, uint32(300))
	b = Append(b, math.Copysign(0, -1))
	b = Append(b, float32(2.5))
	b = Append(b, true)

	i, n := Consume[int64](b)
	require.Greater(t, n, 0)
	assert.Equal(t, int64(-300), i)
	b = b[n:]

	u, n := Consume[uint32](b)
	require.Greater(t, n, 0)
	assert.Equal(t, uint32(300), u)
	b = b[n:]

	f, n := Consume[float64](b)
	require.Equal(t, 8, n)
	assert.True(t, math.Signbit(f))
	b = b[n:]

	f32, n := Consume[float32](b)
	require.Equal(t, 4, n)
	assert.Equal(t, float32(2.5), f32)
	b = b[n:]

	bl, n := Consume[bool](b)
	require.Equal(t, 1, n)
	assert.True(t, bl)
	assert.Len(t, b[n:], 0)

	_, n = Consume[float64]([]byte{1, 2})
	assert.Less(t, n, 0)
	assert.Error(t, protowire.ParseError(n))
}

func TestComparator(t *testing.T) {
	natural := Comparator[int32](nil)
	assert.Equal(t, -1, natural(int32(1), int32(2)))

	reversed := Comparator(func(a, b int32) int { return Compare(b, a) })
	assert.Equal(t, 1, reversed(int32(1), int32(2)))
}
