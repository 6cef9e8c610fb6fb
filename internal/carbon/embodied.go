package carbon

// EmbodiedModel amortizes hardware manufacturing emissions over the
// fraction of the hardware service lifetime the workload consumes.
type EmbodiedModel struct {
	// LifespanDays is the hardware service lifetime for amortization.
	// Default is 5 years.
	LifespanDays float64

	// OtherComponentsShare is the share of total server embodied carbon
	// attributed to components not itemized in the bill of materials.
	// Default is 0.15.
	OtherComponentsShare float64
}

// NewEmbodiedModel creates an embodied model with the default lifespan
// and unmodeled-components share.
func NewEmbodiedModel() *EmbodiedModel {
	return &EmbodiedModel{
		LifespanDays:         DefaultHardwareLifespanDays,
		OtherComponentsShare: DefaultOtherComponentsShare,
	}
}

// Estimate computes amortized manufacturing emissions in tCO2eq for a
// workload that occupies the hardware for executionDays.
//
// Per component class: kg = unit × CPA × num. The summed itemized
// carbon is corrected for unmodeled components (motherboard, chassis)
// by dividing by (1 − OtherComponentsShare), then scaled by
// executionDays / LifespanDays and converted to tonnes.
//
// A nil bill of materials fails with *MissingDataError.
func (e *EmbodiedModel) Estimate(bom *BillOfMaterials, executionDays float64) (float64, error) {
	if bom == nil {
		return 0, &MissingDataError{}
	}
	if executionDays < 0 {
		return 0, &InvalidParameterError{Field: "execution-days", Reason: "must be non-negative"}
	}
	if e.LifespanDays <= 0 {
		return 0, &InvalidParameterError{Field: "lifespan-days", Reason: "must be positive"}
	}
	if e.OtherComponentsShare < 0 || e.OtherComponentsShare >= 1 {
		return 0, &InvalidParameterError{Field: "other-components-share", Reason: "must be within [0, 1)"}
	}

	directKg := bom.DirectKg()
	totalWithOthersKg := directKg / (1 - e.OtherComponentsShare)

	timeRatio := executionDays / e.LifespanDays
	return totalWithOthersKg * timeRatio / kgPerTonne, nil
}
