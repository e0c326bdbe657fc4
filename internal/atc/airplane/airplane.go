package airplane

import (
	"atc-approach/pkg/types"
	"fmt"
)

// ApproachBase is the approach code of an airplane sitting on the runway threshold at ground level.
const ApproachBase = 15000

// Airplane is a flight waiting to land. ApproachCode is derived from Distance
// and Elevation when the airplane is created; after that it is only changed by
// an explicit assignment, so editing Distance or Elevation leaves it alone.
type Airplane struct {
	FlightNumber types.FlightNumber
	Distance     int // meters to the runway
	Elevation    int // meters above ground
	ApproachCode int
}

func NewAirplane(flightNumber types.FlightNumber, distance, elevation int) Airplane {
	ap := Airplane{
		FlightNumber: flightNumber,
		Distance:     distance,
		Elevation:    elevation,
	}
	ap.CalculateApproachCode()
	return ap
}

// CalculateApproachCode resets ApproachCode from the current measurements,
// discarding any assigned override.
func (ap *Airplane) CalculateApproachCode() {
	ap.ApproachCode = ApproachCode(ap.Distance, ap.Elevation)
}

func (ap *Airplane) SetFlightNumber(f types.FlightNumber) {
	ap.FlightNumber = f
}

func (ap *Airplane) SetDistance(d int) {
	ap.Distance = d
}

func (ap *Airplane) SetElevation(e int) {
	ap.Elevation = e
}

func (ap *Airplane) SetApproachCode(ac int) {
	ap.ApproachCode = ac
}

// ApproachCode computes the derived priority. Division truncates toward zero.
func ApproachCode(distance, elevation int) int {
	return ApproachBase - (distance+elevation)/2
}

func (ap Airplane) String() string {
	return fmt.Sprintf("( %s, D: %d meters, H: %d meters ) - AC: %d",
		ap.FlightNumber, ap.Distance, ap.Elevation, ap.ApproachCode)
}
