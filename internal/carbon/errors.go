package carbon

import "fmt"

// MissingDataError indicates the hardware bill-of-materials source is
// absent or unreadable. Embodied emissions without real hardware
// composition data would be meaningless, so this is never substituted
// with zero.
type MissingDataError struct {
	// Path is the bill-of-materials source that failed to load.
	// Empty when no source was supplied at all.
	Path string

	// Err is the underlying read error, if any.
	Err error
}

func (e *MissingDataError) Error() string {
	if e.Path == "" {
		return "no hardware bill of materials supplied"
	}
	if e.Err != nil {
		return fmt.Sprintf("hardware bill of materials %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("hardware bill of materials %s is missing or unreadable", e.Path)
}

func (e *MissingDataError) Unwrap() error {
	return e.Err
}

// InvalidParameterError indicates a workload parameter that fails
// eager validation (negative counts, non-positive PUE, unknown model
// type). Degenerate-but-valid inputs such as zero utilization are not
// errors; they yield zero-valued results instead.
type InvalidParameterError struct {
	// Field names the offending parameter.
	Field string

	// Reason describes why the value was rejected.
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}
