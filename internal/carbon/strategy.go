package carbon

// DurationStrategy computes the total compute effort for one workload
// phase. The two variants differ in their FLOPs multiplier and in the
// unit of the workload token count; everything downstream (throughput,
// duration, energy, emissions) is shared.
type DurationStrategy interface {
	// Phase identifies the workload phase the strategy models.
	Phase() Phase

	// TotalFLOPs returns the absolute floating-point operation count
	// required by the workload.
	TotalFLOPs(w WorkloadParameters) float64
}

// TrainingStrategy models the training phase: forward plus backward
// pass, TC ≈ 6PD, tokens in trillions.
type TrainingStrategy struct{}

func (TrainingStrategy) Phase() Phase {
	return PhaseTraining
}

// TotalFLOPs computes training compute effort with parameters in
// billions and tokens in trillions.
func (TrainingStrategy) TotalFLOPs(w WorkloadParameters) float64 {
	totalZettaFLOPs := TrainingFLOPsPerParamToken * w.ActiveParamsB() * w.Tokens / 1000
	return totalZettaFLOPs * zettaFLOPs
}

// InferenceStrategy models the inference phase: forward pass only,
// IC ≈ 2PD, tokens in thousands.
type InferenceStrategy struct{}

func (InferenceStrategy) Phase() Phase {
	return PhaseInference
}

// TotalFLOPs computes inference compute effort with parameters in
// billions and tokens in thousands. The token count is downscaled from
// thousands to trillions before applying the zetta-scale multiplier.
func (InferenceStrategy) TotalFLOPs(w WorkloadParameters) float64 {
	tokensT := w.Tokens / 1e9
	totalZettaFLOPs := InferenceFLOPsPerParamToken * w.ActiveParamsB() * tokensT
	return totalZettaFLOPs * zettaFLOPs
}
