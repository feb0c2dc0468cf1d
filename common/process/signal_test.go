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

package process

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func TestWaitUntilSignal_ContextDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var closed []int
	err := WaitUntilSignal(ctx,
		closerFunc(func() error { closed = append(closed, 1); return nil }),
		closerFunc(func() error { closed = append(closed, 2); return nil }),
	)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, closed)
}

func TestWaitUntilSignal_CloseErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	first := errors.New("first")
	second := errors.New("second")
	err := WaitUntilSignal(ctx,
		closerFunc(func() error { return first }),
		closerFunc(func() error { return nil }),
		closerFunc(func() error { return second }),
	)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestRunProfilingDisabled(t *testing.T) {
	PprofEnable = false
	closer := RunProfiling()
	assert.NoError(t, closer.Close())
}
