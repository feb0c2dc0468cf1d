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

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/streamnative/primcoll/common/prim"
)

var (
	ErrInvalidOptionCapacity = errors.Wrap(ErrInvalidArgument, "capacity must be greater than or equal to zero")
)

type mapOptions[K, V prim.Value] struct {
	capacity     int
	defaultValue V
	comparator   Comparator[K]
}

// Option configures a container at construction time.
type Option[K, V prim.Value] interface {
	// apply is used to set an Option value of a mapOptions.
	apply(option mapOptions[K, V]) (mapOptions[K, V], error)
}

type optionFunc[K, V prim.Value] func(mapOptions[K, V]) (mapOptions[K, V], error)

func (f optionFunc[K, V]) apply(option mapOptions[K, V]) (mapOptions[K, V], error) {
	return f(option)
}

func newMapOptions[K, V prim.Value](opts ...Option[K, V]) (mapOptions[K, V], error) {
	options := mapOptions[K, V]{}
	var errs error
	var err error
	for _, o := range opts {
		options, err = o.apply(options)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return options, errs
}

// WithCapacity preallocates the backing arrays of array-backed containers.
func WithCapacity[K, V prim.Value](capacity int) Option[K, V] {
	return optionFunc[K, V](func(options mapOptions[K, V]) (mapOptions[K, V], error) {
		if capacity < 0 {
			return options, ErrInvalidOptionCapacity
		}
		options.capacity = capacity
		return options, nil
	})
}

// WithDefaultReturnValue sets the value returned for missing keys.
func WithDefaultReturnValue[K, V prim.Value](value V) Option[K, V] {
	return optionFunc[K, V](func(options mapOptions[K, V]) (mapOptions[K, V], error) {
		options.defaultValue = value
		return options, nil
	})
}

// WithComparator orders a sorted container by cmp instead of the natural
// order of its keys.
func WithComparator[K, V prim.Value](cmp Comparator[K]) Option[K, V] {
	return optionFunc[K, V](func(options mapOptions[K, V]) (mapOptions[K, V], error) {
		options.comparator = cmp
		return options, nil
	})
}

func compareWith[K prim.Value](cmp Comparator[K]) func(a, b K) int {
	if cmp == nil {
		return prim.Compare[K]
	}
	return cmp
}
