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

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument reports a malformed call: mismatched backing arrays,
	// an initial size larger than the arrays provided, a range whose lower
	// bound sorts after its upper bound, or a key outside a range view.
	ErrInvalidArgument = errors.New("primcoll: invalid argument")

	// ErrIllegalState reports an iterator used out of protocol, such as
	// removing before the first advance or twice in a row.
	ErrIllegalState = errors.New("primcoll: illegal state")

	// ErrNoSuchElement is returned when an iterator is consumed past its end
	// or when the first or last key of an empty sorted map is requested.
	ErrNoSuchElement = errors.New("primcoll: no such element")

	// ErrUnsupportedOperation is returned by every mutation attempted through
	// an immutable container, view, iterator or entry.
	ErrUnsupportedOperation = errors.New("primcoll: unsupported operation")

	// ErrCorrupted is returned when a serialized container cannot be decoded.
	ErrCorrupted = errors.New("primcoll: corrupted snapshot")
)

func unsupported(op string) error {
	return errors.Wrapf(ErrUnsupportedOperation, "%s on an immutable container", op)
}
