package hardware

import (
	"fmt"
	"strings"
)

// UnknownDeviceError indicates a device identifier that is not present
// in the selected preset registry. It is a configuration error: the
// caller picked an identifier outside the known accelerator set.
type UnknownDeviceError struct {
	// Device is the identifier that failed to resolve.
	Device string

	// Known lists the valid identifiers, sorted.
	Known []string
}

func (e *UnknownDeviceError) Error() string {
	return fmt.Sprintf("unknown device %q: valid devices are %s",
		e.Device, strings.Join(e.Known, ", "))
}
