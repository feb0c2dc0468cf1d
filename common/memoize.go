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

package common

import (
	"sync"
	"time"
)

// Memoized caches the result of a provider for a fixed amount of time. It is
// used where a value is expensive to compute and read much more often than
// it changes, such as the size of a locked container sampled by a gauge.
type Memoized[T any] struct {
	sync.RWMutex

	provider    func() T
	cachedValue T
	lastCalled  time.Time
	cacheTime   time.Duration
}

func NewMemoized[T any](provider func() T, cacheTime time.Duration) *Memoized[T] {
	return &Memoized[T]{
		provider:  provider,
		cacheTime: cacheTime,
	}
}

// Memoize is a shortcut returning the Get method of a new Memoized.
func Memoize[T any](provider func() T, cacheTime time.Duration) func() T {
	return NewMemoized(provider, cacheTime).Get
}

func (m *Memoized[T]) Get() T {
	m.RLock()
	if !m.lastCalled.IsZero() && time.Since(m.lastCalled) < m.cacheTime {
		defer m.RUnlock()
		return m.cachedValue
	}
	m.RUnlock()

	m.Lock()
	defer m.Unlock()

	// Another goroutine may have refreshed the value in between
	if m.lastCalled.IsZero() || time.Since(m.lastCalled) >= m.cacheTime {
		m.cachedValue = m.provider()
		m.lastCalled = time.Now()
	}
	return m.cachedValue
}

// Invalidate forces the next Get to call the provider.
func (m *Memoized[T]) Invalidate() {
	m.Lock()
	defer m.Unlock()
	m.lastCalled = time.Time{}
}
