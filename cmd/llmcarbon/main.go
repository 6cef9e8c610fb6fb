// Command llmcarbon estimates the carbon footprint of LLM training and
// inference workloads from model and hardware parameters, following the
// LLMCarbon methodology.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/carbonscope/llmcarbon/internal/carbon"
	"github.com/carbonscope/llmcarbon/internal/hardware"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describeError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options

	root := &cobra.Command{
		Use:   "llmcarbon",
		Short: "LLM carbon footprint estimator",
		Long: `llmcarbon estimates the operational and embodied carbon footprint of
large-language-model compute. Operational emissions follow the FLOPs-based
LLMCarbon formulas (6PD for training, 2PD for inference) through hardware
throughput, utilization, and grid carbon intensity. Embodied emissions
amortize a hardware bill of materials over a five-year service lifetime.

Examples:
  llmcarbon train --parameters-b 175 --train-tokens-t 300 --device V100
  llmcarbon infer --device A100 --device-num 8 --infer-tokens-k 5
  llmcarbon train --bom hardware.csv --format json
  llmcarbon train --workload workload.yaml --preset extended`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&o.modelType, "model-type", "dense", "model type: dense or moe")
	root.PersistentFlags().Float64Var(&o.parametersB, "parameters-b", 175, "total model parameters in billions")
	root.PersistentFlags().Float64Var(&o.baseParamsB, "base-model-params-b", 2.3, "base (active) parameters in billions, MoE only")
	root.PersistentFlags().StringVar(&o.device, "device", "V100", "accelerator device identifier")
	root.PersistentFlags().IntVar(&o.deviceNum, "device-num", 10000, "number of accelerator devices")
	root.PersistentFlags().Float64Var(&o.systemPowerW, "system-power-w", 330, "average per-device system power in watts (0 = use preset TDP)")
	root.PersistentFlags().Float64Var(&o.efficiencyPct, "hardware-efficiency-perc", 19.7, "achieved fraction of peak throughput, percent")
	root.PersistentFlags().Float64Var(&o.pue, "pue", carbon.DefaultPUE, "data-center power usage effectiveness")
	root.PersistentFlags().Float64Var(&o.gridIntensity, "co2-intensity-g-kwh", carbon.DefaultGridIntensityGPerKWh, "grid carbon intensity in gCO2eq/kWh")
	root.PersistentFlags().StringVar(&o.preset, "preset", hardware.PresetBasic, "hardware preset table: basic or extended")
	root.PersistentFlags().StringVar(&o.bomPath, "bom", "", "hardware bill-of-materials CSV for embodied carbon (empty = operational only)")
	root.PersistentFlags().StringVar(&o.workloadPath, "workload", "", "YAML workload file; explicit flags override file values")
	root.PersistentFlags().StringVar(&o.format, "format", formatTable, "output format: table or json")
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (default from LLMCARBON_LOG_LEVEL)")

	train := &cobra.Command{
		Use:   "train",
		Short: "Estimate the footprint of a training run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &o, carbon.PhaseTraining)
		},
	}
	train.Flags().Float64Var(&o.trainTokensT, "train-tokens-t", 300, "processed tokens in trillions")

	infer := &cobra.Command{
		Use:   "infer",
		Short: "Estimate the footprint of an inference workload",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &o, carbon.PhaseInference)
		},
	}
	infer.Flags().Float64Var(&o.inferTokensK, "infer-tokens-k", 5, "processed tokens in thousands")

	root.AddCommand(train, infer)
	return root
}

func run(cmd *cobra.Command, o *options, phase carbon.Phase) error {
	logger := newLogger(resolveLogLevel(o.logLevel, os.Getenv(logLevelEnv))).
		With().Str("run_id", uuid.New().String()).Logger()
	carbon.SetLogger(logger)

	if o.workloadPath != "" {
		if err := applyWorkloadFile(cmd, o); err != nil {
			return err
		}
	}

	registry, err := hardware.Preset(o.preset)
	if err != nil {
		return err
	}

	w := o.workloadParameters(phase)
	logger.Debug().
		Str("phase", string(phase)).
		Str("device", w.Device).
		Str("preset", registry.Name()).
		Int("device_count", w.DeviceCount).
		Float64("tokens", w.Tokens).
		Msg("estimating footprint")

	calc := carbon.NewCalculator(registry)

	var est carbon.CarbonEstimate
	if o.bomPath != "" {
		bom, err := carbon.LoadBillOfMaterials(o.bomPath)
		if err != nil {
			return err
		}
		switch phase {
		case carbon.PhaseTraining:
			est, err = calc.TrainingFootprint(w, bom)
		case carbon.PhaseInference:
			est, err = calc.InferenceFootprint(w, bom)
		}
		if err != nil {
			return err
		}
	} else {
		switch phase {
		case carbon.PhaseTraining:
			est, err = calc.TrainingOperational(w)
		case carbon.PhaseInference:
			est, err = calc.InferenceOperational(w)
		}
		if err != nil {
			return err
		}
	}

	return renderEstimate(cmd.OutOrStdout(), est, o.format, o.bomPath != "")
}

// describeError maps domain errors to one-line operator messages;
// stack traces never reach the console.
func describeError(err error) string {
	var unknownDevice *hardware.UnknownDeviceError
	var missingData *carbon.MissingDataError
	var invalidParam *carbon.InvalidParameterError

	switch {
	case errors.As(err, &unknownDevice):
		return unknownDevice.Error()
	case errors.As(err, &missingData):
		return fmt.Sprintf("%s (pass --bom with a hardware bill-of-materials CSV, or omit --bom for an operational-only estimate)", missingData.Error())
	case errors.As(err, &invalidParam):
		return invalidParam.Error()
	default:
		return err.Error()
	}
}
