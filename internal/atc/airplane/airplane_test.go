package airplane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAirplane_DerivesApproachCode(t *testing.T) {
	ap := NewAirplane("AA12", 3000, 1000)
	assert.Equal(t, 13000, ap.ApproachCode)

	// (20000 + 3001) / 2 truncates to 11500
	ap = NewAirplane("LH07", 20000, 3001)
	assert.Equal(t, 3500, ap.ApproachCode)
}

func TestApproachCode_TruncatesTowardZero(t *testing.T) {
	assert.Equal(t, ApproachBase, ApproachCode(0, 1))
	assert.Equal(t, ApproachBase, ApproachCode(-1, 0))
	assert.Equal(t, ApproachBase+1, ApproachCode(-3, 0))
}

func TestSetters_DoNotRecompute(t *testing.T) {
	ap := NewAirplane("DL55", 4000, 2000)
	original := ap.ApproachCode

	ap.SetDistance(10)
	ap.SetElevation(10)
	assert.Equal(t, original, ap.ApproachCode)

	ap.SetApproachCode(14999)
	assert.Equal(t, 14999, ap.ApproachCode)

	ap.CalculateApproachCode()
	assert.Equal(t, 14990, ap.ApproachCode)

	ap.SetFlightNumber("UA01")
	assert.Equal(t, "UA01", ap.FlightNumber.String())
}

func TestString(t *testing.T) {
	ap := NewAirplane("QF93", 5000, 1500)
	assert.Equal(t, "( QF93, D: 5000 meters, H: 1500 meters ) - AC: 11750", ap.String())
}
