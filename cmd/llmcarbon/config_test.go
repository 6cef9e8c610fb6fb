package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/carbonscope/llmcarbon/internal/carbon"
)

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		flagValue string
		envValue  string
		want      zerolog.Level
	}{
		{name: "default is warn", want: zerolog.WarnLevel},
		{name: "flag value", flagValue: "debug", want: zerolog.DebugLevel},
		{name: "env value", envValue: "info", want: zerolog.InfoLevel},
		{name: "flag wins over env", flagValue: "error", envValue: "debug", want: zerolog.ErrorLevel},
		{name: "invalid falls back to warn", flagValue: "shout", want: zerolog.WarnLevel},
		{name: "trace", flagValue: "trace", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveLogLevel(tt.flagValue, tt.envValue))
		})
	}
}

func TestOptions_WorkloadParameters(t *testing.T) {
	o := options{
		modelType:     "dense",
		parametersB:   175,
		baseParamsB:   2.3,
		device:        "V100",
		deviceNum:     10000,
		systemPowerW:  330,
		efficiencyPct: 19.7,
		pue:           1.1,
		gridIntensity: 429,
		trainTokensT:  300,
		inferTokensK:  5,
	}

	train := o.workloadParameters(carbon.PhaseTraining)
	assert.Equal(t, 300.0, train.Tokens, "training uses the trillion-scale token flag")
	assert.Equal(t, carbon.ModelDense, train.ModelType)
	assert.Equal(t, "V100", train.Device)

	infer := o.workloadParameters(carbon.PhaseInference)
	assert.Equal(t, 5.0, infer.Tokens, "inference uses the thousand-scale token flag")
}
