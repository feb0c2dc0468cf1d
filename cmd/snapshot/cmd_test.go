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
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/primcoll/collection"
	"github.com/streamnative/primcoll/snapshot"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	Cmd.SetOut(buf)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestWriteInspect(t *testing.T) {
	fs = afero.NewMemMapFs()
	defer func() {
		fs = afero.NewOsFs()
		asYAML = false
		dump = false
	}()

	out, err := execute(t, "write", "-c", "tree", "-n", "25", "--seed", "3", "data.bin")
	require.NoError(t, err)
	assert.Contains(t, out, "25 entries in a tree container")

	out, err = execute(t, "inspect", "-c", "sorted-array", "--yaml", "data.bin")
	require.NoError(t, err)

	var info snapshot.Info
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))
	assert.Equal(t, "data.bin", info.Path)
	assert.Equal(t, collection.KindSortedArray, info.Container)
	assert.Equal(t, 25, info.Entries)
	assert.NotNil(t, info.FirstKey)

	asYAML = false
	out, err = execute(t, "inspect", "-c", "array", "--dump", "data.bin")
	require.NoError(t, err)
	assert.Contains(t, out, "=>")
}

func TestInspect_Missing(t *testing.T) {
	fs = afero.NewMemMapFs()
	defer func() { fs = afero.NewOsFs() }()

	_, err := execute(t, "inspect", "missing.bin")
	assert.Error(t, err)
}

func TestWrite_InvalidKind(t *testing.T) {
	fs = afero.NewMemMapFs()
	defer func() { fs = afero.NewOsFs() }()

	_, err := execute(t, "write", "-c", "hash", "data.bin")
	assert.Error(t, err)
}
