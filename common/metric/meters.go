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

package metric

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Unit string

const (
	Milliseconds  Unit = "ms"
	Dimensionless Unit = "1"
)

var meter metric.Meter

func LabelsForContainer(container string, synchronized bool) map[string]any {
	return map[string]any{
		"container":    container,
		"synchronized": synchronized,
	}
}

func fatalOnErr(err error, name string) {
	if err != nil {
		slog.Error(
			"Failed to create metric",
			slog.String("metric-name", name),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

// getAttrs converts labels to attributes in key order.
func getAttrs(labels map[string]any) metric.MeasurementOption {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		key := attribute.Key(k)
		switch t := labels[k].(type) {
		case bool:
			attrs = append(attrs, key.Bool(t))
		case int:
			attrs = append(attrs, key.Int(t))
		case string:
			attrs = append(attrs, key.String(t))
		default:
			slog.Error(fmt.Sprintf("Invalid label type %#v", t), slog.String("label", k))
			os.Exit(1)
		}
	}
	return metric.WithAttributes(attrs...)
}
