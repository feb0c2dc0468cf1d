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
	"encoding"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	var k Kind
	assert.NoError(t, k.Set("Tree"))
	assert.Equal(t, KindTree, k)
	assert.Equal(t, "tree", k.String())
	assert.Equal(t, "kind", k.Type())
	assert.True(t, k.Sorted())
	assert.False(t, KindArray.Sorted())

	assert.ErrorIs(t, k.Set("hash"), ErrInvalidArgument)
	assert.Equal(t, KindTree, k)
}

func TestNew(t *testing.T) {
	for _, kind := range []Kind{KindArray, KindTree, KindSortedArray} {
		t.Run(string(kind), func(t *testing.T) {
			m, err := New(kind, WithDefaultReturnValue[int16, int16](-1))
			require.NoError(t, err)
			assert.True(t, m.IsEmpty())
			assert.Equal(t, int16(-1), m.Get(1))

			_, sorted := m.(SortedMap[int16, int16])
			assert.Equal(t, kind.Sorted(), sorted)

			_, ok := m.(encoding.BinaryMarshaler)
			assert.True(t, ok)
		})
	}

	_, err := New[int16, int16]("hash")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
