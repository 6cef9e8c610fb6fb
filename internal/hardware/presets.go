// Package hardware provides the accelerator profile registry used for
// LLM carbon estimation. Profiles carry peak throughput (and, in the
// extended preset, a reference TDP) for well-known training hardware.
package hardware

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// CSV column indices for the preset tables.
const (
	colDevice     = 0 // device
	colPeakTFLOPs = 1 // peak_tflops
	colTDPWatts   = 2 // tdp_watts (extended preset only)
)

//go:embed data/presets_basic.csv
var basicPresetsCSV string

//go:embed data/presets_extended.csv
var extendedPresetsCSV string

// Preset names accepted by Preset.
const (
	PresetBasic    = "basic"
	PresetExtended = "extended"
)

// Profile contains the performance characteristics of an accelerator.
type Profile struct {
	// Device is the accelerator identifier (e.g., "V100", "A100").
	Device string

	// PeakTFLOPs is the peak throughput in trillions of floating-point
	// operations per second.
	PeakTFLOPs float64

	// TDPWatts is the reference thermal design power per device in watts.
	// Zero means the preset does not carry power data; callers must
	// supply system power explicitly.
	TDPWatts float64
}

// Registry is an immutable lookup table of accelerator profiles.
type Registry struct {
	name     string
	profiles map[string]Profile
}

var (
	basicRegistry    *Registry
	basicOnce        sync.Once
	extendedRegistry *Registry
	extendedOnce     sync.Once
)

// parsePresets builds a Registry from an embedded preset CSV.
// Rows with a missing device or an unparsable throughput are skipped.
func parsePresets(name, data string) *Registry {
	profiles := make(map[string]Profile)

	reader := csv.NewReader(strings.NewReader(data))

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return &Registry{name: name, profiles: profiles}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		if len(record) <= colPeakTFLOPs {
			continue
		}

		device := strings.TrimSpace(record[colDevice])
		if device == "" {
			continue
		}

		peak, err := strconv.ParseFloat(strings.TrimSpace(record[colPeakTFLOPs]), 64)
		if err != nil || peak < 0 {
			continue
		}

		var tdp float64
		if len(record) > colTDPWatts {
			tdp, err = strconv.ParseFloat(strings.TrimSpace(record[colTDPWatts]), 64)
			if err != nil || tdp < 0 {
				tdp = 0
			}
		}

		profiles[device] = Profile{
			Device:     device,
			PeakTFLOPs: peak,
			TDPWatts:   tdp,
		}
	}

	return &Registry{name: name, profiles: profiles}
}

// Basic returns the throughput-only preset table. This is the default
// registry; its A100 entry reflects the PCIe 40GB part (312 TFLOP/s).
func Basic() *Registry {
	basicOnce.Do(func() {
		basicRegistry = parsePresets(PresetBasic, basicPresetsCSV)
	})
	return basicRegistry
}

// Extended returns the preset table that additionally carries reference
// TDP per device. Its A100 entry reflects the SXM4 80GB part
// (624 TFLOP/s); the two presets are intentionally distinct
// configurations and are never merged.
func Extended() *Registry {
	extendedOnce.Do(func() {
		extendedRegistry = parsePresets(PresetExtended, extendedPresetsCSV)
	})
	return extendedRegistry
}

// Preset returns the registry for the given preset name.
func Preset(name string) (*Registry, error) {
	switch name {
	case PresetBasic:
		return Basic(), nil
	case PresetExtended:
		return Extended(), nil
	default:
		return nil, fmt.Errorf("unknown hardware preset %q: valid presets are %s, %s",
			name, PresetBasic, PresetExtended)
	}
}

// Name reports the preset name this registry was built from.
func (r *Registry) Name() string {
	return r.name
}

// Lookup retrieves the profile for the given device identifier.
// Returns an *UnknownDeviceError listing valid identifiers when the
// device is not in the registry.
func (r *Registry) Lookup(device string) (Profile, error) {
	profile, ok := r.profiles[device]
	if !ok {
		return Profile{}, &UnknownDeviceError{Device: device, Known: r.Devices()}
	}
	return profile, nil
}

// Devices returns the sorted list of device identifiers in the registry.
func (r *Registry) Devices() []string {
	devices := make([]string, 0, len(r.profiles))
	for device := range r.profiles {
		devices = append(devices, device)
	}
	sort.Strings(devices)
	return devices
}
