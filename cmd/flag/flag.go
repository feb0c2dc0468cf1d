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

package flag

import (
	"github.com/spf13/cobra"

	"github.com/streamnative/primcoll/collection"
)

const DefaultMetricsAddr = "127.0.0.1:8080"

func MetricsAddr(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVarP(conf, "metrics-addr", "m", "", "Bind address for the Prometheus metrics endpoint, e.g. "+DefaultMetricsAddr)
}

func Container(cmd *cobra.Command, conf *collection.Kind) {
	if *conf == "" {
		*conf = collection.KindArray
	}
	cmd.Flags().VarP(conf, "container", "c", "Container implementation [array|tree|sorted-array]")
}

func Seed(cmd *cobra.Command, conf *int64) {
	cmd.Flags().Int64Var(conf, "seed", 1, "Seed for the pseudo-random key generator")
}
