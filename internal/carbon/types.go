package carbon

import "fmt"

// Phase selects the workload phase being estimated. The two phases
// differ in their FLOPs-per-parameter-per-token multiplier and in the
// unit of the token count.
type Phase string

const (
	// PhaseTraining estimates a training run; tokens are in trillions.
	PhaseTraining Phase = "training"

	// PhaseInference estimates an inference workload; tokens are in
	// thousands.
	PhaseInference Phase = "inference"
)

// ModelType selects the model architecture.
type ModelType string

const (
	// ModelDense is a dense model: every parameter participates in each
	// step.
	ModelDense ModelType = "dense"

	// ModelMoE is a mixture-of-experts model: only the base (active)
	// parameters participate in each step.
	ModelMoE ModelType = "moe"
)

// WorkloadParameters describes the model, workload, and data-center
// configuration for a single estimate. Immutable once constructed.
type WorkloadParameters struct {
	// ModelType is the model architecture (dense or moe).
	ModelType ModelType

	// ParamsB is the total parameter count in billions.
	ParamsB float64

	// BaseParamsB is the base (active) parameter count in billions.
	// Used only for mixture-of-experts models.
	BaseParamsB float64

	// Tokens is the processed token count. Trillions for training,
	// thousands for inference.
	Tokens float64

	// Device is the accelerator identifier resolved against the
	// hardware registry.
	Device string

	// DeviceCount is the number of accelerators. Zero yields a
	// zero-duration (degenerate) result.
	DeviceCount int

	// SystemPowerW is the average per-device system power in watts,
	// host included. Zero falls back to the profile TDP when the
	// selected preset carries one.
	SystemPowerW float64

	// EfficiencyPct is the achieved fraction of peak throughput as a
	// percentage. Zero yields a zero-duration (degenerate) result.
	EfficiencyPct float64

	// PUE is the data-center power usage effectiveness multiplier.
	PUE float64

	// GridIntensityGPerKWh is the grid carbon intensity in gCO2eq/kWh.
	GridIntensityGPerKWh float64
}

// ActiveParamsB returns the parameter count that participates in each
// computation step: the base parameters for MoE models, the full count
// otherwise.
func (w WorkloadParameters) ActiveParamsB() float64 {
	if w.ModelType == ModelMoE {
		return w.BaseParamsB
	}
	return w.ParamsB
}

// Validate rejects parameters that can never describe a physical
// workload. Degenerate-but-valid values (zero tokens, zero devices,
// zero utilization) pass validation and produce zero-valued results.
func (w WorkloadParameters) Validate() error {
	switch w.ModelType {
	case ModelDense, ModelMoE:
	default:
		return &InvalidParameterError{
			Field:  "model-type",
			Reason: fmt.Sprintf("%q is not one of %q, %q", w.ModelType, ModelDense, ModelMoE),
		}
	}
	if w.ParamsB < 0 {
		return &InvalidParameterError{Field: "parameters-b", Reason: "must be non-negative"}
	}
	if w.BaseParamsB < 0 {
		return &InvalidParameterError{Field: "base-model-params-b", Reason: "must be non-negative"}
	}
	if w.Tokens < 0 {
		return &InvalidParameterError{Field: "tokens", Reason: "must be non-negative"}
	}
	if w.DeviceCount < 0 {
		return &InvalidParameterError{Field: "device-num", Reason: "must be non-negative"}
	}
	if w.SystemPowerW < 0 {
		return &InvalidParameterError{Field: "system-power-w", Reason: "must be non-negative"}
	}
	if w.EfficiencyPct < 0 || w.EfficiencyPct > 100 {
		return &InvalidParameterError{Field: "hardware-efficiency-perc", Reason: "must be within [0, 100]"}
	}
	if w.PUE <= 0 {
		return &InvalidParameterError{Field: "pue", Reason: "must be positive"}
	}
	if w.GridIntensityGPerKWh < 0 {
		return &InvalidParameterError{Field: "co2-intensity-g-kwh", Reason: "must be non-negative"}
	}
	return nil
}

// OperationalResult contains the energy and operational-emissions
// outcome of a workload estimate.
type OperationalResult struct {
	// ExecutionDays is the workload runtime in days. Zero means the
	// configuration is degenerate (zero devices or throughput), not
	// instantaneous.
	ExecutionDays float64

	// ExecutionSeconds is the workload runtime in seconds.
	ExecutionSeconds float64

	// EnergyKWh is the total energy consumed, PUE included, in kWh.
	EnergyKWh float64

	// EnergyMWh is the total energy consumed in MWh.
	EnergyMWh float64

	// OperationalTonnes is the operational emissions in tCO2eq.
	OperationalTonnes float64
}

// CarbonEstimate is the combined footprint report for one calculation.
// Produced fresh per calculation; never mutated after construction.
type CarbonEstimate struct {
	// Phase is the workload phase this estimate covers.
	Phase Phase `json:"phase"`

	// OperationalTonnes is emissions from energy consumed while running
	// the workload, in tCO2eq.
	OperationalTonnes float64 `json:"operational_co2_t"`

	// EmbodiedTonnes is amortized hardware manufacturing emissions, in
	// tCO2eq.
	EmbodiedTonnes float64 `json:"embodied_co2_t"`

	// TotalTonnes is operational plus embodied emissions, in tCO2eq.
	TotalTonnes float64 `json:"total_co2_t"`

	// ExecutionDays is the workload runtime in days (training-phase
	// reporting granularity).
	ExecutionDays float64 `json:"execution_days"`

	// ExecutionSeconds is the workload runtime in seconds
	// (inference-phase reporting granularity).
	ExecutionSeconds float64 `json:"execution_seconds"`

	// EnergyMWh is the total energy consumed, PUE included, in MWh.
	EnergyMWh float64 `json:"total_energy_mwh"`
}
