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
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
)

// WaitUntilSignal blocks until ctx is done or the process receives SIGINT or
// SIGTERM, then closes every closer in order.
func WaitUntilSignal(ctx context.Context, closers ...io.Closer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info(
		"Received signal, exiting",
		slog.Any("cause", context.Cause(ctx)),
	)

	var err error
	for _, c := range closers {
		err = multierr.Append(err, c.Close())
	}
	if err != nil {
		slog.Error(
			"Failed when shutting down",
			slog.Any("error", err),
		)
		return err
	}

	slog.Info("Shutdown Completed")
	return nil
}
