package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkloadFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newWorkloadTestCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&o.modelType, "model-type", "dense", "")
	cmd.Flags().Float64Var(&o.parametersB, "parameters-b", 175, "")
	cmd.Flags().Float64Var(&o.baseParamsB, "base-model-params-b", 2.3, "")
	cmd.Flags().StringVar(&o.device, "device", "V100", "")
	cmd.Flags().IntVar(&o.deviceNum, "device-num", 10000, "")
	cmd.Flags().Float64Var(&o.systemPowerW, "system-power-w", 330, "")
	cmd.Flags().Float64Var(&o.efficiencyPct, "hardware-efficiency-perc", 19.7, "")
	cmd.Flags().Float64Var(&o.pue, "pue", 1.1, "")
	cmd.Flags().Float64Var(&o.gridIntensity, "co2-intensity-g-kwh", 429, "")
	cmd.Flags().StringVar(&o.preset, "preset", "basic", "")
	cmd.Flags().StringVar(&o.bomPath, "bom", "", "")
	cmd.Flags().Float64Var(&o.trainTokensT, "train-tokens-t", 300, "")
	return cmd
}

func TestApplyWorkloadFile(t *testing.T) {
	var o options
	cmd := newWorkloadTestCmd(&o)

	path := writeWorkloadFile(t, `
device: A100
parameters_b: 999
device_num: 512
train_tokens_t: 500
preset: extended
`)

	// --parameters-b set explicitly on the command line keeps its value.
	require.NoError(t, cmd.ParseFlags([]string{"--parameters-b", "13"}))
	o.workloadPath = path

	require.NoError(t, applyWorkloadFile(cmd, &o))

	assert.Equal(t, 13.0, o.parametersB, "explicit flag wins over file")
	assert.Equal(t, "A100", o.device, "file value applied")
	assert.Equal(t, 512, o.deviceNum)
	assert.Equal(t, 500.0, o.trainTokensT)
	assert.Equal(t, "extended", o.preset)
	assert.Equal(t, 330.0, o.systemPowerW, "untouched fields keep flag defaults")
}

func TestApplyWorkloadFile_PartialDocument(t *testing.T) {
	var o options
	cmd := newWorkloadTestCmd(&o)
	require.NoError(t, cmd.ParseFlags(nil))

	o.workloadPath = writeWorkloadFile(t, "pue: 1.25\n")

	require.NoError(t, applyWorkloadFile(cmd, &o))
	assert.Equal(t, 1.25, o.pue)
	assert.Equal(t, "V100", o.device)
}

func TestApplyWorkloadFile_Missing(t *testing.T) {
	var o options
	cmd := newWorkloadTestCmd(&o)
	require.NoError(t, cmd.ParseFlags(nil))

	o.workloadPath = filepath.Join(t.TempDir(), "absent.yaml")

	err := applyWorkloadFile(cmd, &o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload file")
}

func TestApplyWorkloadFile_Invalid(t *testing.T) {
	var o options
	cmd := newWorkloadTestCmd(&o)
	require.NoError(t, cmd.ParseFlags(nil))

	o.workloadPath = writeWorkloadFile(t, "device: [not, a, scalar")

	err := applyWorkloadFile(cmd, &o)
	require.Error(t, err)
}
