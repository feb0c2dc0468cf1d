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

package snapshot

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/primcoll/cmd/flag"
	"github.com/streamnative/primcoll/collection"
	"github.com/streamnative/primcoll/snapshot"
)

var (
	Cmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Write and inspect container snapshots",
		Long:  `Write random containers to disk in their binary encoding and read them back`,
	}

	writeCmd = &cobra.Command{
		Use:   "write <file>",
		Short: "Write a random container snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  execWrite,
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode a snapshot and describe its content",
		Args:  cobra.ExactArgs(1),
		RunE:  execInspect,
	}

	fs = afero.NewOsFs()

	container collection.Kind
	entries   int
	seed      int64
	verify    bool
	asYAML    bool
	dump      bool
)

func init() {
	flag.Container(writeCmd, &container)
	flag.Seed(writeCmd, &seed)
	writeCmd.Flags().IntVarP(&entries, "entries", "n", 1000, "Number of entries to generate")
	writeCmd.Flags().BoolVar(&verify, "verify", true, "Read the snapshot back and compare it with the generated container")

	flag.Container(inspectCmd, &container)
	inspectCmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the description as YAML")
	inspectCmd.Flags().BoolVar(&dump, "dump", false, "Print every entry of the decoded container")

	Cmd.AddCommand(writeCmd)
	Cmd.AddCommand(inspectCmd)
}

func execWrite(cmd *cobra.Command, args []string) error {
	m, err := snapshot.Generate(container, entries, seed)
	if err != nil {
		return err
	}

	info, err := snapshot.Write(fs, args[0], container, m)
	if err != nil {
		return err
	}
	slog.Info(
		"Snapshot written",
		slog.String("path", info.Path),
		slog.Int("entries", info.Entries),
		slog.String("size", info.Size),
	)

	if verify {
		read, _, err := snapshot.Read(fs, args[0], container)
		if err != nil {
			return err
		}
		if err := snapshot.Verify(m, read); err != nil {
			return err
		}
	}
	return printInfo(cmd.OutOrStdout(), info)
}

func execInspect(cmd *cobra.Command, args []string) error {
	m, info, err := snapshot.Read(fs, args[0], container)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dump {
		if _, err := fmt.Fprintln(out, collection.String[int64, int64](m)); err != nil {
			return err
		}
	}
	return printInfo(out, info)
}

func printInfo(out io.Writer, info snapshot.Info) error {
	if asYAML {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(info)
	}

	_, err := fmt.Fprintf(out, "%s: %d entries in a %s container, %s, hash %d\n",
		info.Path, info.Entries, info.Container, info.Size, info.HashCode)
	return err
}
