package carbon

import "github.com/carbonscope/llmcarbon/internal/hardware"

// Calculator composes the operational and embodied models into one
// call surface. It holds no mutable state across calls; concurrent
// calculations are safe.
type Calculator struct {
	registry *hardware.Registry
	embodied *EmbodiedModel
}

// CalculatorOption customizes a Calculator.
type CalculatorOption func(*Calculator)

// WithEmbodiedModel overrides the default embodied model, e.g. to
// change the hardware lifespan or the unmodeled-components share.
func WithEmbodiedModel(m *EmbodiedModel) CalculatorOption {
	return func(c *Calculator) {
		c.embodied = m
	}
}

// NewCalculator creates a calculator over the given hardware registry.
func NewCalculator(registry *hardware.Registry, opts ...CalculatorOption) *Calculator {
	c := &Calculator{
		registry: registry,
		embodied: NewEmbodiedModel(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TrainingFootprint estimates the combined operational and embodied
// footprint of a training run. Tokens are in trillions.
func (c *Calculator) TrainingFootprint(w WorkloadParameters, bom *BillOfMaterials) (CarbonEstimate, error) {
	return c.footprint(w, bom, TrainingStrategy{})
}

// InferenceFootprint estimates the combined operational and embodied
// footprint of an inference workload. Tokens are in thousands.
func (c *Calculator) InferenceFootprint(w WorkloadParameters, bom *BillOfMaterials) (CarbonEstimate, error) {
	return c.footprint(w, bom, InferenceStrategy{})
}

// TrainingOperational estimates the operational footprint of a
// training run without embodied carbon, for callers that have no
// hardware bill of materials.
func (c *Calculator) TrainingOperational(w WorkloadParameters) (CarbonEstimate, error) {
	return c.operationalOnly(w, TrainingStrategy{})
}

// InferenceOperational estimates the operational footprint of an
// inference workload without embodied carbon.
func (c *Calculator) InferenceOperational(w WorkloadParameters) (CarbonEstimate, error) {
	return c.operationalOnly(w, InferenceStrategy{})
}

func (c *Calculator) footprint(w WorkloadParameters, bom *BillOfMaterials, strategy DurationStrategy) (CarbonEstimate, error) {
	// Embodied emissions are meaningless without real hardware
	// composition data; fail before touching operational results.
	if bom == nil {
		return CarbonEstimate{}, &MissingDataError{}
	}

	op, err := NewOperationalModel(c.registry, strategy).Estimate(w)
	if err != nil {
		return CarbonEstimate{}, err
	}

	embodiedTonnes, err := c.embodied.Estimate(bom, op.ExecutionDays)
	if err != nil {
		return CarbonEstimate{}, err
	}

	return CarbonEstimate{
		Phase:             strategy.Phase(),
		OperationalTonnes: op.OperationalTonnes,
		EmbodiedTonnes:    embodiedTonnes,
		TotalTonnes:       op.OperationalTonnes + embodiedTonnes,
		ExecutionDays:     op.ExecutionDays,
		ExecutionSeconds:  op.ExecutionSeconds,
		EnergyMWh:         op.EnergyMWh,
	}, nil
}

func (c *Calculator) operationalOnly(w WorkloadParameters, strategy DurationStrategy) (CarbonEstimate, error) {
	op, err := NewOperationalModel(c.registry, strategy).Estimate(w)
	if err != nil {
		return CarbonEstimate{}, err
	}

	return CarbonEstimate{
		Phase:             strategy.Phase(),
		OperationalTonnes: op.OperationalTonnes,
		TotalTonnes:       op.OperationalTonnes,
		ExecutionDays:     op.ExecutionDays,
		ExecutionSeconds:  op.ExecutionSeconds,
		EnergyMWh:         op.EnergyMWh,
	}, nil
}
