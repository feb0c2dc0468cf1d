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

// Package snapshot writes containers to files in their binary encoding and
// reads them back.
package snapshot

import (
	"encoding"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/streamnative/primcoll/collection"
)

const filePerm = 0o644

// Info describes a snapshot file.
type Info struct {
	Path      string          `yaml:"path"`
	Container collection.Kind `yaml:"container"`
	Entries   int             `yaml:"entries"`
	Bytes     uint64          `yaml:"bytes"`
	Size      string          `yaml:"size"`
	HashCode  uint64          `yaml:"hashCode"`
	FirstKey  *int64          `yaml:"firstKey,omitempty"`
	LastKey   *int64          `yaml:"lastKey,omitempty"`
}

// Generate fills a container of the given kind with exactly entries random
// pairs drawn from seed.
func Generate(kind collection.Kind, entries int, seed int64) (collection.Map[int64, int64], error) {
	if entries < 0 {
		return nil, errors.Wrapf(collection.ErrInvalidArgument, "negative entries count %d", entries)
	}
	m, err := collection.New(kind, collection.WithCapacity[int64, int64](entries))
	if err != nil {
		return nil, err
	}

	r := rand.New(rand.NewSource(seed))
	for m.Size() < entries {
		if _, err := m.Put(r.Int63(), r.Int63()); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Write stores m at path. The data goes to a temporary file first and is
// renamed into place once complete.
func Write(fs afero.Fs, path string, kind collection.Kind, m collection.Map[int64, int64]) (Info, error) {
	data, err := collection.MarshalBinary[int64, int64](m)
	if err != nil {
		return Info{}, err
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, data, filePerm); err != nil {
		return Info{}, errors.Wrapf(err, "failed to write snapshot %s", tmp)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return Info{}, errors.Wrapf(err, "failed to move snapshot to %s", path)
	}
	return describe(path, kind, m, len(data)), nil
}

// Read decodes the snapshot at path into a new container of the given kind.
func Read(fs afero.Fs, path string, kind collection.Kind) (collection.Map[int64, int64], Info, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, Info{}, errors.Wrapf(err, "failed to read snapshot %s", path)
	}

	m, err := collection.New[int64, int64](kind)
	if err != nil {
		return nil, Info{}, err
	}
	u, ok := m.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, Info{}, errors.Wrapf(collection.ErrUnsupportedOperation, "container %s cannot be decoded", kind)
	}
	if err := u.UnmarshalBinary(data); err != nil {
		return nil, Info{}, errors.Wrapf(err, "snapshot %s", path)
	}
	return m, describe(path, kind, m, len(data)), nil
}

func describe(path string, kind collection.Kind, m collection.Map[int64, int64], bytes int) Info {
	info := Info{
		Path:      path,
		Container: kind,
		Entries:   m.Size(),
		Bytes:     uint64(bytes),
		Size:      humanize.Bytes(uint64(bytes)),
		HashCode:  collection.HashCode[int64, int64](m),
	}
	if sorted, ok := m.(collection.SortedMap[int64, int64]); ok && !m.IsEmpty() {
		first, _ := sorted.FirstKey()
		last, _ := sorted.LastKey()
		info.FirstKey = &first
		info.LastKey = &last
	}
	return info
}

// Verify reports whether a and b hold the same mappings, returning a
// descriptive error otherwise.
func Verify(a, b collection.Map[int64, int64]) error {
	if a.Equal(b) {
		return nil
	}
	return errors.Errorf("snapshot mismatch: %d entries (hash %d) vs %d entries (hash %d)",
		a.Size(), a.HashCode(), b.Size(), b.HashCode())
}
