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
	"github.com/emirpasic/gods/utils"
	"google.golang.org/protobuf/encoding/protowire"
)

// Append appends the wire form of v to b. Signed integers use zig-zag
// varints, unsigned integers and booleans plain varints, and floats their
// raw fixed-width bits.
func Append[T Value](b []byte, v T) []byte {
	bits := Bits(v)
	switch classOf[T]() {
	case signed:
		return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(bits)))
	case float32Class:
		return protowire.AppendFixed32(b, uint32(bits))
	case float64Class:
		return protowire.AppendFixed64(b, bits)
	default:
		return protowire.AppendVarint(b, bits)
	}
}

// Consume parses a value written by Append and returns it together with the
// number of bytes read. A negative length means b is malformed; use
// protowire.ParseError to turn it into an error.
func Consume[T Value](b []byte) (T, int) {
	var zero T
	switch classOf[T]() {
	case signed:
		u, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return zero, n
		}
		return FromBits[T](uint64(protowire.DecodeZigZag(u))), n
	case float32Class:
		u, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return zero, n
		}
		return FromBits[T](uint64(u)), n
	case float64Class:
		u, n := protowire.ConsumeFixed64(b)
		if n < 0 {
			return zero, n
		}
		return FromBits[T](u), n
	default:
		u, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return zero, n
		}
		return FromBits[T](u), n
	}
}

// Comparator adapts a typed comparison function to the untyped comparator
// expected by the gods containers. A nil cmp selects the natural order.
func Comparator[T Value](cmp func(a, b T) int) utils.Comparator {
	if cmp == nil {
		cmp = Compare[T]
	}
	return func(a, b any) int {
		return cmp(a.(T), b.(T))
	}
}
