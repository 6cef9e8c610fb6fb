package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// workloadFile mirrors the CLI flags as a YAML document. Pointer fields
// distinguish "absent" from zero values.
type workloadFile struct {
	ModelType      *string  `yaml:"model_type"`
	ParametersB    *float64 `yaml:"parameters_b"`
	BaseParamsB    *float64 `yaml:"base_model_params_b"`
	Device         *string  `yaml:"device"`
	DeviceNum      *int     `yaml:"device_num"`
	SystemPowerW   *float64 `yaml:"system_power_w"`
	EfficiencyPerc *float64 `yaml:"hardware_efficiency_perc"`
	PUE            *float64 `yaml:"pue"`
	GridIntensity  *float64 `yaml:"co2_intensity_g_kwh"`
	Preset         *string  `yaml:"preset"`
	BOM            *string  `yaml:"bom"`
	TrainTokensT   *float64 `yaml:"train_tokens_t"`
	InferTokensK   *float64 `yaml:"infer_tokens_k"`
}

// applyWorkloadFile overlays values from the YAML workload file onto
// the options. Flags the user set explicitly keep their command-line
// value; everything else takes the file value when present.
func applyWorkloadFile(cmd *cobra.Command, o *options) error {
	data, err := os.ReadFile(o.workloadPath)
	if err != nil {
		return fmt.Errorf("workload file: %w", err)
	}

	var wf workloadFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return fmt.Errorf("workload file %s: %w", o.workloadPath, err)
	}

	flags := cmd.Flags()

	setString := func(flag string, dst *string, src *string) {
		if src != nil && !flags.Changed(flag) {
			*dst = *src
		}
	}
	setFloat := func(flag string, dst *float64, src *float64) {
		if src != nil && !flags.Changed(flag) {
			*dst = *src
		}
	}
	setInt := func(flag string, dst *int, src *int) {
		if src != nil && !flags.Changed(flag) {
			*dst = *src
		}
	}

	setString("model-type", &o.modelType, wf.ModelType)
	setFloat("parameters-b", &o.parametersB, wf.ParametersB)
	setFloat("base-model-params-b", &o.baseParamsB, wf.BaseParamsB)
	setString("device", &o.device, wf.Device)
	setInt("device-num", &o.deviceNum, wf.DeviceNum)
	setFloat("system-power-w", &o.systemPowerW, wf.SystemPowerW)
	setFloat("hardware-efficiency-perc", &o.efficiencyPct, wf.EfficiencyPerc)
	setFloat("pue", &o.pue, wf.PUE)
	setFloat("co2-intensity-g-kwh", &o.gridIntensity, wf.GridIntensity)
	setString("preset", &o.preset, wf.Preset)
	setString("bom", &o.bomPath, wf.BOM)

	if flag := flags.Lookup("train-tokens-t"); flag != nil {
		setFloat("train-tokens-t", &o.trainTokensT, wf.TrainTokensT)
	}
	if flag := flags.Lookup("infer-tokens-k"); flag != nil {
		setFloat("infer-tokens-k", &o.inferTokensK, wf.InferTokensK)
	}

	return nil
}
