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

package perf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamnative/primcoll/collection"
	"github.com/streamnative/primcoll/common"
)

func testConfig(kind collection.Kind) Config {
	config := NewConfig()
	config.Container = kind
	config.RequestRate = 2_000
	config.KeysCardinality = 8
	config.Workers = 3
	config.Duration = 300 * time.Millisecond
	config.ReportInterval = 100 * time.Millisecond
	return config
}

func TestPerf_Run(t *testing.T) {
	for _, kind := range []collection.Kind{collection.KindArray, collection.KindTree, collection.KindSortedArray} {
		t.Run(string(kind), func(t *testing.T) {
			report, err := New(testConfig(kind)).Run(context.Background())
			require.NoError(t, err)

			assert.NotEmpty(t, report.RunID)
			assert.Positive(t, report.Reads+report.Writes)
			assert.EqualValues(t, 0, report.Failed)
			assert.LessOrEqual(t, report.Size, 8)
		})
	}
}

func TestPerf_Unsynchronized(t *testing.T) {
	config := testConfig(collection.KindTree)
	config.Synchronized = common.Bool(false)
	config.Workers = 4

	report, err := New(config).Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, report.Failed)
	assert.LessOrEqual(t, report.Size, 8)
}

func TestPerf_WriteOnly(t *testing.T) {
	config := testConfig(collection.KindArray)
	config.ReadPercentage = 0

	report, err := New(config).Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, report.Reads)
	assert.Positive(t, report.Writes)
}

func TestPerf_Cancel(t *testing.T) {
	config := testConfig(collection.KindArray)
	config.Duration = 0

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := New(config).Run(ctx)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestPerf_SetRequestRate(t *testing.T) {
	p := New(testConfig(collection.KindArray)).(*perf)
	p.SetRequestRate(50)
	assert.InDelta(t, 50.0, float64(p.limiter.Limit()), 0.001)
	assert.Equal(t, 1, p.limiter.Burst())

	p.SetRequestRate(10_000)
	assert.Equal(t, 100, p.limiter.Burst())
}

func TestConfig_Validate(t *testing.T) {
	for _, test := range []struct {
		name   string
		modify func(c *Config)
	}{
		{"kind", func(c *Config) { c.Container = "hash" }},
		{"rate", func(c *Config) { c.RequestRate = 0 }},
		{"read-percentage", func(c *Config) { c.ReadPercentage = 101 }},
		{"cardinality", func(c *Config) { c.KeysCardinality = 0 }},
		{"workers", func(c *Config) { c.Workers = 0 }},
		{"report-interval", func(c *Config) { c.ReportInterval = 0 }},
	} {
		t.Run(test.name, func(t *testing.T) {
			config := NewConfig()
			assert.NoError(t, config.Validate())

			test.modify(&config)
			assert.Error(t, config.Validate())

			_, err := New(config).Run(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestExpectedValue(t *testing.T) {
	for key := int64(0); key < 100; key++ {
		assert.NotEqual(t, missing, expectedValue(key))
		assert.Equal(t, key, expectedValue(expectedValue(key)))
	}
}
