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

package collection

import "fmt"

// Optional is the result of a lookup that may have found nothing. It lets a
// caller tell a missing key apart from a key mapped to the default return
// value.
type Optional[T any] interface {
	Present() bool
	Empty() bool

	// Get returns the value and whether it was present.
	Get() (value T, ok bool)

	// MustGet panics when the value is absent.
	MustGet() T

	// OrElse returns the value, or def when it is absent.
	OrElse(def T) T
}

type optional[T any] struct {
	value   T
	present bool
}

func (o optional[T]) Present() bool {
	return o.present
}

func (o optional[T]) Empty() bool {
	return !o.present
}

func (o optional[T]) Get() (value T, ok bool) {
	return o.value, o.present
}

func (o optional[T]) MustGet() T {
	if !o.present {
		panic("optional empty on MustGet call")
	}
	return o.value
}

func (o optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

func (o optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

func OptionalOf[T any](t T) Optional[T] {
	return optional[T]{value: t, present: true}
}

func EmptyOptional[T any]() Optional[T] {
	return optional[T]{}
}
