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
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/primcoll/collection"
	"github.com/streamnative/primcoll/perf"
)

func newViper(t *testing.T, content string) *viper.Viper {
	t.Helper()
	path := filepath.Join(t.TempDir(), "perf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	return v
}

func TestLoadConfig(t *testing.T) {
	v := newViper(t, `
container: tree
synchronized: false
rate: 250
readPercentage: 50
reportInterval: 2s
`)
	conf, err := loadConfig(v, perf.NewConfig())
	require.NoError(t, err)

	assert.Equal(t, collection.KindTree, conf.Container)
	assert.False(t, conf.Synchronized.Get())
	assert.True(t, conf.Verify.Get())
	assert.InDelta(t, 250.0, conf.RequestRate, 0.001)
	assert.InDelta(t, 50.0, conf.ReadPercentage, 0.001)
	assert.Equal(t, 2*time.Second, conf.ReportInterval)
	assert.EqualValues(t, perf.NewConfig().KeysCardinality, conf.KeysCardinality)
	assert.Equal(t, perf.NewConfig().Workers, conf.Workers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(newViper(t, "container: hash\n"), perf.NewConfig())
	assert.ErrorIs(t, err, collection.ErrInvalidArgument)

	_, err = loadConfig(newViper(t, "synchronized: maybe\n"), perf.NewConfig())
	assert.Error(t, err)

	_, err = loadConfig(newViper(t, "rate: -1\n"), perf.NewConfig())
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := loadConfig(v, perf.NewConfig())
	assert.Error(t, err)
}

func TestPrintReport(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, printReport(buf, perf.Report{RunID: "run", Reads: 3, Writes: 2, Size: 1}))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run", decoded["runId"])
	assert.Equal(t, 3, decoded["reads"])
	assert.Equal(t, 2, decoded["writes"])
	assert.Equal(t, 1, decoded["size"])
}

func TestCmd_Duration(t *testing.T) {
	buf := &bytes.Buffer{}
	Cmd.SetOut(buf)
	Cmd.SetArgs([]string{"-c", "sorted-array", "-r", "500", "-d", "200ms", "--report-interval", "50ms"})
	require.NoError(t, Cmd.Execute())

	var report perf.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	assert.NotEmpty(t, report.RunID)
	assert.EqualValues(t, 0, report.Failed)
}
