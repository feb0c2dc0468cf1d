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
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/primcoll/cmd/flag"
	"github.com/streamnative/primcoll/common"
	"github.com/streamnative/primcoll/common/metric"
	"github.com/streamnative/primcoll/common/process"
	"github.com/streamnative/primcoll/perf"
)

var (
	Cmd = &cobra.Command{
		Use:   "perf",
		Short: "Container perf workload",
		Long:  `Drive a rate-limited read/write workload against a primitive container and report throughput and latency`,
		RunE:  exec,
	}

	config      = perf.NewConfig()
	configFile  string
	metricsAddr string
	synchronous bool
)

func init() {
	flag.Container(Cmd, &config.Container)
	flag.MetricsAddr(Cmd, &metricsAddr)
	Cmd.Flags().BoolVar(&synchronous, "synchronized", true, "Wrap the container in a synchronized decorator")
	Cmd.Flags().Float64VarP(&config.RequestRate, "rate", "r", config.RequestRate, "Request rate, ops/s")
	Cmd.Flags().Float64VarP(&config.ReadPercentage, "read-write-percent", "p", config.ReadPercentage, "Percentage of read requests, compared to total requests")
	Cmd.Flags().Uint32Var(&config.KeysCardinality, "keys-cardinality", config.KeysCardinality, "Number of distinct keys")
	Cmd.Flags().IntVarP(&config.Workers, "workers", "w", config.Workers, "Number of concurrent workers")
	Cmd.Flags().DurationVarP(&config.Duration, "duration", "d", 0, "Stop after this long, 0 runs until interrupted")
	Cmd.Flags().DurationVar(&config.ReportInterval, "report-interval", config.ReportInterval, "Interval between stats reports")
	Cmd.Flags().StringVarP(&configFile, "conf", "f", "", "Workload config file, reloaded on change")
}

func loadConfig(v *viper.Viper, base perf.Config) (perf.Config, error) {
	conf := base
	if err := v.ReadInConfig(); err != nil {
		return conf, err
	}

	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		common.OptBooleanViperHook(),
		mapstructure.StringToTimeDurationHookFunc(), // default hook
		mapstructure.StringToSliceHookFunc(","),     // default hook
	))); err != nil {
		return conf, errors.Wrap(err, "failed to load perf config")
	}
	return conf, conf.Validate()
}

func exec(cmd *cobra.Command, _ []string) error {
	config.Synchronized = common.Bool(synchronous)

	var v *viper.Viper
	if configFile != "" {
		v = viper.New()
		v.SetConfigType("yaml")
		v.SetConfigFile(configFile)

		conf, err := loadConfig(v, config)
		if err != nil {
			return err
		}
		config = conf
	}
	if err := config.Validate(); err != nil {
		return err
	}

	p := perf.New(config)
	if v != nil {
		v.OnConfigChange(func(e fsnotify.Event) {
			conf, err := loadConfig(v, config)
			if err != nil {
				slog.Warn(
					"Ignoring invalid perf config",
					slog.String("file", e.Name),
					slog.Any("error", err),
				)
				return
			}
			p.SetRequestRate(conf.RequestRate)
		})
		v.WatchConfig()
	}

	if config.Duration > 0 {
		return runToCompletion(cmd, p)
	}

	process.RunProcess(func(ctx context.Context) (io.Closer, error) {
		return start(ctx, p)
	})
	return nil
}

func runToCompletion(cmd *cobra.Command, p perf.Perf) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	closer, err := start(ctx, p)
	if err != nil {
		return err
	}
	<-closer.done

	return multierr.Append(closer.err, multierr.Append(
		printReport(cmd.OutOrStdout(), closer.report),
		closer.Close(),
	))
}

func printReport(out io.Writer, report perf.Report) error {
	enc := yaml.NewEncoder(out)
	defer enc.Close()
	return enc.Encode(report)
}

type runner struct {
	cancel  context.CancelFunc
	metrics *metric.PrometheusMetrics
	done    chan struct{}
	report  perf.Report
	err     error
}

func start(ctx context.Context, p perf.Perf) (*runner, error) {
	r := &runner{done: make(chan struct{})}
	if metricsAddr != "" {
		var err error
		if r.metrics, err = metric.Start(metricsAddr); err != nil {
			return nil, err
		}
	}

	ctx, r.cancel = context.WithCancel(ctx)
	go common.DoWithLabels(map[string]string{
		"primcoll": "perf",
	}, func() {
		defer close(r.done)
		r.report, r.err = p.Run(ctx)
		if r.err != nil {
			slog.Error(
				"Perf run failed",
				slog.Any("error", r.err),
			)
		}
	})
	return r, nil
}

func (r *runner) Close() error {
	r.cancel()
	<-r.done

	if r.metrics != nil {
		return r.metrics.Close()
	}
	return nil
}
