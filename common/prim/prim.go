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

// Package prim holds the primitive-aware equality, hashing, ordering and
// encoding helpers shared by every container in primcoll.
package prim

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// Value is the set of key and value types a container can be specialized on.
type Value interface {
	constraints.Integer | constraints.Float | ~bool
}

type class uint8

const (
	signed class = iota
	unsigned
	float32Class
	float64Class
	boolean
)

const (
	canonicalNaN64 uint64 = 0x7ff8000000000000
	canonicalNaN32 uint32 = 0x7fc00000
)

func classOf[T Value]() class {
	var zero T
	switch any(zero).(type) {
	case int, int8, int16, int32, int64:
		return signed
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return unsigned
	case float32:
		return float32Class
	case float64:
		return float64Class
	case bool:
		return boolean
	}

	switch k := reflect.TypeOf(zero).Kind(); k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32:
		return float32Class
	case reflect.Float64:
		return float64Class
	case reflect.Bool:
		return boolean
	default:
		panic(fmt.Errorf("prim: unsupported kind %s", k))
	}
}

// Bits returns the canonical bit pattern of v. Signed integers are sign
// extended, and every floating-point NaN maps to the same quiet NaN so that
// NaN compares equal to itself while +0 and -0 stay distinct.
func Bits[T Value](v T) uint64 {
	switch x := any(v).(type) {
	case int:
		return uint64(x)
	case int8:
		return uint64(x)
	case int16:
		return uint64(x)
	case int32:
		return uint64(x)
	case int64:
		return uint64(x)
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case float32:
		return uint64(float32Bits(x))
	case float64:
		return float64Bits(x)
	case bool:
		return boolBits(x)
	}
	return reflectBits(reflect.ValueOf(v))
}

func reflectBits(rv reflect.Value) uint64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32:
		return uint64(float32Bits(float32(rv.Float())))
	case reflect.Float64:
		return float64Bits(rv.Float())
	case reflect.Bool:
		return boolBits(rv.Bool())
	default:
		panic(fmt.Errorf("prim: unsupported kind %s", rv.Kind()))
	}
}

func float64Bits(f float64) uint64 {
	if math.IsNaN(f) {
		return canonicalNaN64
	}
	return math.Float64bits(f)
}

func float32Bits(f float32) uint32 {
	if f != f {
		return canonicalNaN32
	}
	return math.Float32bits(f)
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// FromBits is the inverse of Bits.
func FromBits[T Value](bits uint64) T {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = int(bits)
	case *int8:
		*p = int8(bits)
	case *int16:
		*p = int16(bits)
	case *int32:
		*p = int32(bits)
	case *int64:
		*p = int64(bits)
	case *uint:
		*p = uint(bits)
	case *uint8:
		*p = uint8(bits)
	case *uint16:
		*p = uint16(bits)
	case *uint32:
		*p = uint32(bits)
	case *uint64:
		*p = bits
	case *float32:
		*p = math.Float32frombits(uint32(bits))
	case *float64:
		*p = math.Float64frombits(bits)
	case *bool:
		*p = bits != 0
	default:
		rv := reflect.ValueOf(&v).Elem()
		switch classOf[T]() {
		case signed:
			rv.SetInt(int64(bits))
		case unsigned:
			rv.SetUint(bits)
		case float32Class:
			rv.SetFloat(float64(math.Float32frombits(uint32(bits))))
		case float64Class:
			rv.SetFloat(math.Float64frombits(bits))
		case boolean:
			rv.SetBool(bits != 0)
		}
	}
	return v
}

// Equal reports whether a and b have the same canonical bit pattern.
func Equal[T Value](a, b T) bool {
	return Bits(a) == Bits(b)
}

// Hash returns a 64-bit xxh3 hash of the canonical bit pattern of v.
func Hash[T Value](v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], Bits(v))
	return xxh3.Hash(buf[:])
}

// Compare imposes the natural total order on T: numeric order for integers,
// false before true, and for floats numeric order refined so that -0 sorts
// before +0 and NaN sorts after every other value and equal to itself.
func Compare[T Value](a, b T) int {
	ab, bb := Bits(a), Bits(b)
	if ab == bb {
		return 0
	}

	switch classOf[T]() {
	case signed:
		return compareOrdered(int64(ab), int64(bb))
	case float64Class:
		fa, fb := math.Float64frombits(ab), math.Float64frombits(bb)
		if fa < fb {
			return -1
		}
		if fa > fb {
			return 1
		}
		return compareOrdered(int64(ab), int64(bb))
	case float32Class:
		fa, fb := math.Float32frombits(uint32(ab)), math.Float32frombits(uint32(bb))
		if fa < fb {
			return -1
		}
		if fa > fb {
			return 1
		}
		return compareOrdered(int32(uint32(ab)), int32(uint32(bb)))
	default:
		return compareOrdered(ab, bb)
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Format renders v the way containers print keys and values.
func Format[T Value](v T) string {
	bits := Bits(v)
	switch classOf[T]() {
	case signed:
		return strconv.FormatInt(int64(bits), 10)
	case unsigned:
		return strconv.FormatUint(bits, 10)
	case float32Class:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(bits))), 'g', -1, 32)
	case float64Class:
		return strconv.FormatFloat(math.Float64frombits(bits), 'g', -1, 64)
	default:
		return strconv.FormatBool(bits != 0)
	}
}
