package carbon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestBOM(t *testing.T, name string) *BillOfMaterials {
	t.Helper()
	bom, err := LoadBillOfMaterials(filepath.Join("testdata", name))
	require.NoError(t, err)
	return bom
}

// TestEmbodiedModel_SingleRow verifies the reference single-component
// scenario: unit=600, CPA=0.01, num=8 over half a year of a five-year
// lifespan.
func TestEmbodiedModel_SingleRow(t *testing.T) {
	bom := loadTestBOM(t, "single_row.csv")
	require.Len(t, bom.Rows, 1)

	// 600 × 0.01 × 8 = 48 kg direct
	assert.InDelta(t, 48.0, bom.DirectKg(), 1e-9)

	model := NewEmbodiedModel()
	tonnes, err := model.Estimate(bom, 182.5)
	require.NoError(t, err)

	// 48 / 0.85 ≈ 56.47 kg with others; time ratio 0.1; ≈ 0.00565 t
	assert.InDelta(t, 0.0056470588, tonnes, 1e-9)
}

// TestEmbodiedModel_FullLifespan verifies that occupying the hardware
// for its entire lifespan attributes the full corrected embodied
// carbon.
func TestEmbodiedModel_FullLifespan(t *testing.T) {
	bom := loadTestBOM(t, "single_row.csv")
	model := NewEmbodiedModel()

	tonnes, err := model.Estimate(bom, DefaultHardwareLifespanDays)
	require.NoError(t, err)

	withOthersKg := bom.DirectKg() / (1 - DefaultOtherComponentsShare)
	assert.InDelta(t, withOthersKg/1000, tonnes, 1e-12)
}

func TestEmbodiedModel_LinearInDuration(t *testing.T) {
	bom := loadTestBOM(t, "hardware.csv")
	model := NewEmbodiedModel()

	base, err := model.Estimate(bom, 100)
	require.NoError(t, err)
	doubled, err := model.Estimate(bom, 200)
	require.NoError(t, err)

	assert.InEpsilon(t, 2*base, doubled, 1e-12)
}

func TestEmbodiedModel_ZeroDuration(t *testing.T) {
	bom := loadTestBOM(t, "hardware.csv")

	tonnes, err := NewEmbodiedModel().Estimate(bom, 0)
	require.NoError(t, err)
	assert.Zero(t, tonnes)
}

func TestEmbodiedModel_NilBOM(t *testing.T) {
	_, err := NewEmbodiedModel().Estimate(nil, 14.8)
	require.Error(t, err)

	var missingErr *MissingDataError
	require.ErrorAs(t, err, &missingErr)
}

func TestEmbodiedModel_InvalidInputs(t *testing.T) {
	bom := loadTestBOM(t, "single_row.csv")

	tests := []struct {
		name  string
		model *EmbodiedModel
		days  float64
	}{
		{name: "negative duration", model: NewEmbodiedModel(), days: -1},
		{name: "zero lifespan", model: &EmbodiedModel{LifespanDays: 0, OtherComponentsShare: 0.15}, days: 10},
		{name: "share of 1", model: &EmbodiedModel{LifespanDays: 1825, OtherComponentsShare: 1}, days: 10},
		{name: "negative share", model: &EmbodiedModel{LifespanDays: 1825, OtherComponentsShare: -0.1}, days: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.model.Estimate(bom, tt.days)
			require.Error(t, err)

			var invalidErr *InvalidParameterError
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}

// TestEmbodiedModel_ConfigurableShare verifies the unmodeled-components
// correction is a tunable field, not a buried constant.
func TestEmbodiedModel_ConfigurableShare(t *testing.T) {
	bom := loadTestBOM(t, "single_row.csv")

	model := &EmbodiedModel{
		LifespanDays:         DefaultHardwareLifespanDays,
		OtherComponentsShare: 0, // itemized rows are the whole server
	}

	tonnes, err := model.Estimate(bom, DefaultHardwareLifespanDays)
	require.NoError(t, err)
	assert.InDelta(t, bom.DirectKg()/1000, tonnes, 1e-12)
}
