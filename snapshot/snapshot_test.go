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

package snapshot

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamnative/primcoll/collection"
)

func TestGenerate(t *testing.T) {
	m, err := Generate(collection.KindArray, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, 100, m.Size())

	again, err := Generate(collection.KindTree, 100, 7)
	require.NoError(t, err)
	assert.True(t, m.Equal(again))

	_, err = Generate(collection.KindArray, -1, 7)
	assert.ErrorIs(t, err, collection.ErrInvalidArgument)

	_, err = Generate("hash", 1, 7)
	assert.ErrorIs(t, err, collection.ErrInvalidArgument)
}

func TestWriteRead(t *testing.T) {
	for _, kind := range []collection.Kind{collection.KindArray, collection.KindTree, collection.KindSortedArray} {
		t.Run(string(kind), func(t *testing.T) {
			fs := afero.NewMemMapFs()
			m, err := Generate(kind, 50, 42)
			require.NoError(t, err)

			written, err := Write(fs, "/snapshots/data.bin", kind, m)
			require.NoError(t, err)
			assert.Equal(t, 50, written.Entries)
			assert.NotEmpty(t, written.Size)

			exists, err := afero.Exists(fs, "/snapshots/data.bin.tmp")
			require.NoError(t, err)
			assert.False(t, exists)

			read, info, err := Read(fs, "/snapshots/data.bin", kind)
			require.NoError(t, err)
			assert.NoError(t, Verify(m, read))
			assert.Equal(t, written.Bytes, info.Bytes)
			assert.Equal(t, written.HashCode, info.HashCode)

			if kind.Sorted() {
				require.NotNil(t, info.FirstKey)
				require.NotNil(t, info.LastKey)
				assert.LessOrEqual(t, *info.FirstKey, *info.LastKey)
			} else {
				assert.Nil(t, info.FirstKey)
			}
		})
	}
}

func TestRead_AcrossKinds(t *testing.T) {
	fs := afero.NewMemMapFs()
	m, err := Generate(collection.KindArray, 20, 1)
	require.NoError(t, err)
	_, err = Write(fs, "data.bin", collection.KindArray, m)
	require.NoError(t, err)

	read, _, err := Read(fs, "data.bin", collection.KindSortedArray)
	require.NoError(t, err)
	assert.NoError(t, Verify(m, read))
}

func TestWrite_Empty(t *testing.T) {
	fs := afero.NewMemMapFs()
	m, err := Generate(collection.KindTree, 0, 1)
	require.NoError(t, err)

	info, err := Write(fs, "empty.bin", collection.KindTree, m)
	require.NoError(t, err)
	assert.EqualValues(t, 1, info.Bytes)
	assert.Nil(t, info.FirstKey)

	read, _, err := Read(fs, "empty.bin", collection.KindTree)
	require.NoError(t, err)
	assert.True(t, read.IsEmpty())
}

func TestRead_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, _, err := Read(fs, "missing.bin", collection.KindArray)
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "corrupted.bin", []byte{3, 1}, 0o644))
	_, _, err = Read(fs, "corrupted.bin", collection.KindArray)
	assert.ErrorIs(t, err, collection.ErrCorrupted)
}

func TestVerify_Mismatch(t *testing.T) {
	a, err := Generate(collection.KindArray, 5, 1)
	require.NoError(t, err)
	b, err := Generate(collection.KindArray, 5, 2)
	require.NoError(t, err)

	assert.Error(t, Verify(a, b))
}
