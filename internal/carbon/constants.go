// Package carbon estimates the carbon footprint of LLM compute using
// the LLMCarbon methodology: FLOPs-based compute modeling, hardware
// utilization efficiency, grid carbon intensity, and amortized
// manufacturing carbon cost.
package carbon

const (
	// TrainingFLOPsPerParamToken is the FLOPs required per parameter per
	// token during training (forward + backward pass).
	// Source: LLMCarbon methodology, TC ≈ 6PD.
	TrainingFLOPsPerParamToken = 6

	// InferenceFLOPsPerParamToken is the FLOPs required per parameter per
	// token during inference (forward pass only).
	// Source: LLMCarbon methodology, IC ≈ 2PD.
	InferenceFLOPsPerParamToken = 2

	// DefaultPUE is the data-center Power Usage Effectiveness assumed
	// when no PUE is provided.
	// Source: LLMCarbon methodology, hyperscale data-center assumption.
	DefaultPUE = 1.1

	// DefaultGridIntensityGPerKWh is the grid carbon intensity assumed
	// when none is provided, in gCO2eq per kWh (US average).
	DefaultGridIntensityGPerKWh = 429

	// DefaultHardwareLifespanDays is the hardware service lifetime used
	// for embodied carbon amortization (5 years).
	// Source: LLMCarbon methodology.
	DefaultHardwareLifespanDays = 5 * 365

	// DefaultOtherComponentsShare is the share of total server embodied
	// carbon attributed to components not itemized in the bill of
	// materials (motherboard, chassis, etc.).
	// Source: LLMCarbon methodology, Table 5.
	DefaultOtherComponentsShare = 0.15

	// zettaFLOPs converts zetta-scale operation counts to absolute FLOPs.
	zettaFLOPs = 1e21

	// teraFLOPs converts TFLOP/s throughput to absolute FLOP/s.
	teraFLOPs = 1e12

	// secondsPerDay converts execution seconds to days.
	secondsPerDay = 86400.0

	// wattsPerKilowatt converts per-device power draw to kW.
	wattsPerKilowatt = 1000.0

	// kwhPerMWh converts energy totals to MWh for reporting.
	kwhPerMWh = 1000.0

	// gramsPerTonne converts grid intensity from gCO2eq/kWh to tCO2eq/kWh.
	gramsPerTonne = 1e6

	// kgPerTonne converts embodied carbon from kg to tonnes.
	kgPerTonne = 1000.0
)
