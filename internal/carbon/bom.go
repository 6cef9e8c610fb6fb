package carbon

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSV column indices for the hardware bill of materials.
const (
	colComponent = 0 // component class
	colUnit      = 1 // unit (cm2 or GB)
	colCPA       = 2 // CPA (kgCO2/cm2 or GB)
	colNum       = 3 // num
)

// BOMRow is one component class in the hardware bill of materials.
type BOMRow struct {
	// Component is the component class (e.g., "GPU die", "HBM stack").
	Component string

	// Unit is the physical magnitude: die area in cm2 or capacity in GB.
	Unit float64

	// CPA is the carbon-per-unit coefficient in kgCO2eq per cm2 or GB.
	CPA float64

	// Num is the component quantity across the fleet.
	Num float64
}

// EmbodiedKg returns the manufacturing carbon of this component class
// in kgCO2eq.
func (r BOMRow) EmbodiedKg() float64 {
	return r.Unit * r.CPA * r.Num
}

// BillOfMaterials is the itemized hardware composition used for
// embodied carbon. Read-only for the duration of a calculation.
type BillOfMaterials struct {
	// Source is the path the table was loaded from.
	Source string

	// Rows holds one entry per distinct component class.
	Rows []BOMRow
}

// DirectKg sums the itemized component embodied carbon in kgCO2eq,
// before the unmodeled-components correction.
func (b *BillOfMaterials) DirectKg() float64 {
	var total float64
	for _, row := range b.Rows {
		total += row.EmbodiedKg()
	}
	return total
}

// LoadBillOfMaterials reads a hardware bill of materials from a CSV
// file with columns: component class, unit (cm2 or GB),
// CPA (kgCO2/cm2 or GB), num.
//
// An absent or unreadable file fails with *MissingDataError; it is
// never silently defaulted. Malformed data rows are skipped with a
// warning.
func LoadBillOfMaterials(path string) (*BillOfMaterials, error) {
	if path == "" {
		return nil, &MissingDataError{}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &MissingDataError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, &MissingDataError{Path: path, Err: err}
	}

	bom := &BillOfMaterials{Source: path}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping malformed bill-of-materials row")
			continue
		}

		if len(record) <= colNum {
			continue
		}

		component := strings.TrimSpace(record[colComponent])
		if component == "" {
			continue
		}

		unit, err := strconv.ParseFloat(strings.TrimSpace(record[colUnit]), 64)
		if err != nil || unit < 0 {
			logger.Warn().Str("component", component).Str("path", path).Msg("skipping bill-of-materials row with invalid unit")
			continue
		}

		cpa, err := strconv.ParseFloat(strings.TrimSpace(record[colCPA]), 64)
		if err != nil || cpa < 0 {
			logger.Warn().Str("component", component).Str("path", path).Msg("skipping bill-of-materials row with invalid CPA")
			continue
		}

		num, err := strconv.ParseFloat(strings.TrimSpace(record[colNum]), 64)
		if err != nil || num < 0 {
			logger.Warn().Str("component", component).Str("path", path).Msg("skipping bill-of-materials row with invalid quantity")
			continue
		}

		bom.Rows = append(bom.Rows, BOMRow{
			Component: component,
			Unit:      unit,
			CPA:       cpa,
			Num:       num,
		})
	}

	return bom, nil
}
