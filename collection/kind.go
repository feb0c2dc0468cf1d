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
	"strings"

	"github.com/pkg/errors"

	"github.com/streamnative/primcoll/common/prim"
)

// Kind names a concrete container implementation. It implements pflag.Value
// so commands can take it as a flag.
type Kind string

const (
	KindArray       Kind = "array"
	KindTree        Kind = "tree"
	KindSortedArray Kind = "sorted-array"
)

var kinds = []Kind{KindArray, KindTree, KindSortedArray}

func (k *Kind) String() string {
	return string(*k)
}

func (k *Kind) Set(s string) error {
	for _, kind := range kinds {
		if strings.EqualFold(s, string(kind)) {
			*k = kind
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidArgument, "unknown container kind '%s'", s)
}

func (*Kind) Type() string {
	return "kind"
}

// Sorted reports whether containers of this kind implement SortedMap.
func (k Kind) Sorted() bool {
	return k == KindTree || k == KindSortedArray
}

// New creates an empty container of the given kind.
func New[K, V prim.Value](kind Kind, opts ...Option[K, V]) (Map[K, V], error) {
	var m Map[K, V]
	var err error
	switch kind {
	case KindArray:
		m, err = NewArrayMap(opts...)
	case KindTree:
		m, err = NewTreeMap(opts...)
	case KindSortedArray:
		m, err = NewSortedArrayMap(opts...)
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown container kind '%s'", string(kind))
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
