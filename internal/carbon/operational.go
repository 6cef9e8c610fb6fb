package carbon

import "github.com/carbonscope/llmcarbon/internal/hardware"

// OperationalModel converts workload parameters into execution
// duration, energy consumption, and operational emissions for one
// phase. The phase-specific compute-effort formula is injected as a
// DurationStrategy; the registry resolves device identifiers to
// throughput profiles.
type OperationalModel struct {
	registry *hardware.Registry
	strategy DurationStrategy
}

// NewOperationalModel creates an operational model for the given
// registry and phase strategy.
func NewOperationalModel(registry *hardware.Registry, strategy DurationStrategy) *OperationalModel {
	return &OperationalModel{
		registry: registry,
		strategy: strategy,
	}
}

// Phase reports the workload phase this model estimates.
func (m *OperationalModel) Phase() Phase {
	return m.strategy.Phase()
}

// Estimate computes duration, energy, and operational emissions for
// the workload.
//
// The calculation follows the LLMCarbon methodology:
//  1. Total FLOPs from the phase strategy (6PD training, 2PD inference)
//  2. Seconds = FLOPs / (devices × peak TFLOP/s × efficiency × 10^12)
//  3. Energy (kWh) = (watts × devices / 1000) × (days × 24) × PUE
//  4. Emissions (tCO2eq) = energy × grid intensity / 10^6
//
// Zero utilization or zero device count yields a zero-duration result;
// callers must treat that as "not computable", not "instantaneous".
// Fails with *InvalidParameterError for negative or out-of-range
// parameters and *hardware.UnknownDeviceError for unknown devices.
func (m *OperationalModel) Estimate(w WorkloadParameters) (OperationalResult, error) {
	if err := w.Validate(); err != nil {
		return OperationalResult{}, err
	}

	profile, err := m.registry.Lookup(w.Device)
	if err != nil {
		return OperationalResult{}, err
	}

	totalFLOPs := m.strategy.TotalFLOPs(w)
	seconds := executionSeconds(totalFLOPs, w, profile)
	days := seconds / secondsPerDay

	// Profile TDP stands in when the caller did not supply per-device
	// system power. The basic preset carries no TDP, so power stays
	// zero there.
	powerW := w.SystemPowerW
	if powerW == 0 {
		powerW = profile.TDPWatts
	}

	totalPowerKW := powerW * float64(w.DeviceCount) / wattsPerKilowatt
	energyKWh := totalPowerKW * (days * 24) * w.PUE

	intensityTonnesPerKWh := w.GridIntensityGPerKWh / gramsPerTonne
	operationalTonnes := energyKWh * intensityTonnesPerKWh

	return OperationalResult{
		ExecutionDays:     days,
		ExecutionSeconds:  seconds,
		EnergyKWh:         energyKWh,
		EnergyMWh:         energyKWh / kwhPerMWh,
		OperationalTonnes: operationalTonnes,
	}, nil
}

// executionSeconds converts total compute effort into runtime on the
// achieved throughput of the device fleet. Zero achieved throughput or
// zero device count is defined as zero duration to guard against
// division faults.
func executionSeconds(totalFLOPs float64, w WorkloadParameters, profile hardware.Profile) float64 {
	achievedTFLOPs := profile.PeakTFLOPs * (w.EfficiencyPct / 100)
	if achievedTFLOPs == 0 || w.DeviceCount == 0 {
		return 0
	}
	return totalFLOPs / (float64(w.DeviceCount) * achievedTFLOPs * teraFLOPs)
}
