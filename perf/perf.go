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
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmizerany/perks/quantile"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/streamnative/primcoll/collection"
	"github.com/streamnative/primcoll/common"
	"github.com/streamnative/primcoll/common/metric"
)

const (
	// missing is the default return value of the container under test.
	missing int64 = -1

	valueMask int64 = 0x5bd1e995
)

type Config struct {
	Container       collection.Kind              `mapstructure:"container" yaml:"container"`
	Synchronized    common.OptBooleanDefaultTrue `mapstructure:"synchronized" yaml:"synchronized"`
	Verify          common.OptBooleanDefaultTrue `mapstructure:"verify" yaml:"verify"`
	RequestRate     float64                      `mapstructure:"rate" yaml:"rate"`
	ReadPercentage  float64                      `mapstructure:"readPercentage" yaml:"readPercentage"`
	KeysCardinality uint32                       `mapstructure:"keysCardinality" yaml:"keysCardinality"`
	Workers         int                          `mapstructure:"workers" yaml:"workers"`
	ReportInterval  time.Duration                `mapstructure:"reportInterval" yaml:"reportInterval"`
	Duration        time.Duration                `mapstructure:"duration" yaml:"duration"`
}

func NewConfig() Config {
	return Config{
		Container:       collection.KindArray,
		RequestRate:     10_000,
		ReadPercentage:  80,
		KeysCardinality: 16,
		Workers:         4,
		ReportInterval:  10 * time.Second,
	}
}

func (c *Config) Validate() error {
	var kind collection.Kind
	if err := kind.Set(string(c.Container)); err != nil {
		return err
	}
	c.Container = kind
	switch {
	case c.RequestRate <= 0:
		return errors.Errorf("rate must be positive, got %v", c.RequestRate)
	case c.ReadPercentage < 0 || c.ReadPercentage > 100:
		return errors.Errorf("read percentage must be within [0, 100], got %v", c.ReadPercentage)
	case c.KeysCardinality == 0:
		return errors.New("keys cardinality must be positive")
	case c.Workers <= 0:
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	case c.ReportInterval <= 0:
		return errors.Errorf("report interval must be positive, got %v", c.ReportInterval)
	}
	return nil
}

// Report sums up a run.
type Report struct {
	RunID    string `yaml:"runId"`
	Reads    int64  `yaml:"reads"`
	Writes   int64  `yaml:"writes"`
	Failed   int64  `yaml:"failed"`
	Size     int    `yaml:"size"`
	HashCode uint64 `yaml:"hashCode"`
}

type Perf interface {
	// Run drives the workload until ctx is done or the configured duration
	// has elapsed.
	Run(ctx context.Context) (Report, error)

	// SetRequestRate changes the target rate of a running workload.
	SetRequestRate(rate float64)
}

func New(config Config) Perf {
	return &perf{
		config:  config,
		runID:   uuid.NewString(),
		limiter: rate.NewLimiter(rate.Limit(config.RequestRate), burst(config.RequestRate)),
	}
}

type sample struct {
	read    bool
	latency time.Duration
}

type perf struct {
	config  Config
	runID   string
	limiter *rate.Limiter

	container collection.Map[int64, int64]
	reads     atomic.Int64
	writes    atomic.Int64
	failedOps atomic.Int64

	opsCounter metric.Counter
	failed     metric.Counter
	latency    metric.LatencyHistogram
}

func burst(r float64) int {
	return max(1, int(r/100))
}

func (p *perf) SetRequestRate(r float64) {
	slog.Info(
		"Updating perf request rate",
		slog.Float64("rate", r),
		slog.String("run-id", p.runID),
	)
	p.limiter.SetLimit(rate.Limit(r))
	p.limiter.SetBurst(burst(r))
}

func (p *perf) newContainer() (collection.Map[int64, int64], error) {
	m, err := collection.New(p.config.Container,
		collection.WithDefaultReturnValue[int64, int64](missing),
		collection.WithCapacity[int64, int64](int(p.config.KeysCardinality)),
	)
	if err != nil {
		return nil, err
	}
	if !p.config.Synchronized.Get() {
		return m, nil
	}
	if sorted, ok := m.(collection.SortedMap[int64, int64]); ok {
		return collection.SynchronizedSorted(sorted), nil
	}
	return collection.Synchronized(m), nil
}

func (p *perf) Run(ctx context.Context) (Report, error) {
	if err := p.config.Validate(); err != nil {
		return Report{}, err
	}

	container, err := p.newContainer()
	if err != nil {
		return Report{}, err
	}
	p.container = container

	workers := p.config.Workers
	if !p.config.Synchronized.Get() && workers > 1 {
		slog.Warn(
			"Container is not synchronized, running a single worker",
			slog.Int("workers", workers),
		)
		workers = 1
	}

	slog.Info(
		"Starting primcoll perf",
		slog.String("run-id", p.runID),
		slog.Any("config", p.config),
	)

	labels := metric.LabelsForContainer(string(p.config.Container), p.config.Synchronized.Get())
	p.opsCounter = metric.NewCounter("primcoll_perf_ops", "Operations executed by the perf workload", metric.Dimensionless, labels)
	p.failed = metric.NewCounter("primcoll_perf_failed_ops", "Operations that returned an error or an unexpected value", metric.Dimensionless, labels)
	p.latency = metric.NewLatencyHistogram("primcoll_perf_op_latency", "Latency of a single container operation", labels)
	if p.config.Synchronized.Get() {
		size := common.Memoize(container.Size, time.Second)
		metric.NewGauge("primcoll_perf_container_size", "Number of entries in the container under test", metric.Dimensionless, labels,
			func() int64 { return int64(size()) })
	}

	if p.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Duration)
		defer cancel()
	}

	samples := make(chan sample, 1024)
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go common.DoWithLabels(map[string]string{
			"primcoll": "perf-worker",
			"worker":   fmt.Sprint(w),
		}, func() {
			defer wg.Done()
			p.generateTraffic(ctx, rand.New(rand.NewSource(int64(w))), samples)
		})
	}
	go func() {
		wg.Wait()
		close(samples)
	}()

	p.collectStats(samples)

	report := Report{
		RunID:    p.runID,
		Reads:    p.reads.Load(),
		Writes:   p.writes.Load(),
		Failed:   p.failedOps.Load(),
		Size:     container.Size(),
		HashCode: container.HashCode(),
	}
	slog.Info(
		"Perf run completed",
		slog.String("run-id", report.RunID),
		slog.String("reads", humanize.Comma(report.Reads)),
		slog.String("writes", humanize.Comma(report.Writes)),
		slog.Int64("failed", report.Failed),
		slog.Int("size", report.Size),
	)
	return report, nil
}

func (p *perf) collectStats(samples <-chan sample) {
	interval := p.config.ReportInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	wq := quantile.NewTargeted(0.50, 0.95, 0.99, 0.999, 1.0)
	rq := quantile.NewTargeted(0.50, 0.95, 0.99, 0.999, 1.0)
	writeOps := 0
	readOps := 0

	for {
		select {
		case <-ticker.C:
			seconds := interval.Seconds()
			writeRate := float64(writeOps) / seconds
			readRate := float64(readOps) / seconds
			failedOpsRate := float64(p.failedOps.Load()) / seconds
			slog.Info(fmt.Sprintf(`Stats - Total ops: %6.1f ops/s - Failed ops: %6.1f ops/s
			Write ops %6.1f w/s  Latency us: 50%% %5.2f - 95%% %5.2f - 99%% %5.2f - 99.9%% %5.2f - max %6.2f
			Read  ops %6.1f r/s  Latency us: 50%% %5.2f - 95%% %5.2f - 99%% %5.2f - 99.9%% %5.2f - max %6.2f`,
				writeRate+readRate,
				failedOpsRate,
				writeRate,
				wq.Query(0.5),
				wq.Query(0.95),
				wq.Query(0.99),
				wq.Query(0.999),
				wq.Query(1.0),
				readRate,
				rq.Query(0.5),
				rq.Query(0.95),
				rq.Query(0.99),
				rq.Query(0.999),
				rq.Query(1.0),
			),
				slog.String("run-id", p.runID),
			)

			wq.Reset()
			rq.Reset()
			writeOps = 0
			readOps = 0

		case s, ok := <-samples:
			if !ok {
				return
			}
			micros := float64(s.latency.Nanoseconds()) / 1000.0
			if s.read {
				readOps++
				rq.Insert(micros)
			} else {
				writeOps++
				wq.Insert(micros)
			}
		}
	}
}

func (p *perf) generateTraffic(ctx context.Context, r *rand.Rand, samples chan<- sample) {
	for {
		if err := p.limiter.Wait(ctx); err != nil {
			return
		}

		key := r.Int63n(int64(p.config.KeysCardinality))
		read := r.Float64()*100 < p.config.ReadPercentage

		timer := p.latency.Timer()
		var err error
		if read {
			err = p.read(key)
			p.reads.Add(1)
		} else {
			err = p.write(key, r)
			p.writes.Add(1)
		}
		latency := timer.Done()
		p.opsCounter.Inc()

		if err != nil {
			slog.Warn(
				"Operation has failed",
				slog.Int64("key", key),
				slog.Bool("read", read),
				slog.Any("error", err),
			)
			p.failedOps.Add(1)
			p.failed.Inc()
			continue
		}

		select {
		case samples <- sample{read: read, latency: latency}:
		case <-ctx.Done():
			return
		}
	}
}

func expectedValue(key int64) int64 {
	return key ^ valueMask
}

func (p *perf) read(key int64) error {
	value := p.container.Get(key)
	if !p.config.Verify.Get() || value == missing || value == expectedValue(key) {
		return nil
	}
	return errors.Errorf("unexpected value %d for key %d", value, key)
}

// write either stores the expected value of key or removes it, so that the
// container keeps churning around KeysCardinality entries.
func (p *perf) write(key int64, r *rand.Rand) error {
	if r.Intn(4) == 0 {
		_, err := p.container.Remove(key)
		return err
	}
	_, err := p.container.Put(key, expectedValue(key))
	return err
}
