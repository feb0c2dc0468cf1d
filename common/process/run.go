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
	"io"
	"log/slog"
	"os"
)

// RunProcess starts the optional profiling server and the process returned
// by startProcess, then blocks until the process is done or a termination
// signal arrives. Everything started is closed on the way out.
func RunProcess(startProcess func(ctx context.Context) (io.Closer, error)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	profiler := RunProfiling()
	process, err := startProcess(ctx)
	if err != nil {
		slog.Error(
			"Failed to start the process",
			slog.Any("error", err),
		)
		_ = profiler.Close()
		os.Exit(1)
	}

	if err := WaitUntilSignal(ctx, process, profiler); err != nil {
		os.Exit(1)
	}
}
