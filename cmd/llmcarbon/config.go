package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/carbonscope/llmcarbon/internal/carbon"
)

// logLevelEnv configures the default log level when --log-level is not
// passed.
const logLevelEnv = "LLMCARBON_LOG_LEVEL"

// options collects the CLI flag values shared by the train and infer
// subcommands.
type options struct {
	modelType     string
	parametersB   float64
	baseParamsB   float64
	device        string
	deviceNum     int
	systemPowerW  float64
	efficiencyPct float64
	pue           float64
	gridIntensity float64

	preset       string
	bomPath      string
	workloadPath string
	format       string
	logLevel     string

	trainTokensT float64
	inferTokensK float64
}

// workloadParameters builds the immutable workload description for the
// given phase, selecting the phase-appropriate token count.
func (o *options) workloadParameters(phase carbon.Phase) carbon.WorkloadParameters {
	tokens := o.trainTokensT
	if phase == carbon.PhaseInference {
		tokens = o.inferTokensK
	}

	return carbon.WorkloadParameters{
		ModelType:            carbon.ModelType(o.modelType),
		ParamsB:              o.parametersB,
		BaseParamsB:          o.baseParamsB,
		Tokens:               tokens,
		Device:               o.device,
		DeviceCount:          o.deviceNum,
		SystemPowerW:         o.systemPowerW,
		EfficiencyPct:        o.efficiencyPct,
		PUE:                  o.pue,
		GridIntensityGPerKWh: o.gridIntensity,
	}
}

// resolveLogLevel picks the effective zerolog level: the flag value
// wins over the environment; unparsable or empty values fall back to
// warn so normal runs stay quiet.
func resolveLogLevel(flagValue, envValue string) zerolog.Level {
	value := flagValue
	if value == "" {
		value = envValue
	}
	if value == "" {
		return zerolog.WarnLevel
	}

	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// newLogger builds the console logger used for diagnostics. Reports go
// to stdout; logs stay on stderr.
func newLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
