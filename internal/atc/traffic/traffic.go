package traffic

import (
	"atc-approach/internal/atc/airplane"
	"atc-approach/pkg/types"
	"fmt"
	"math/rand"

	"github.com/labstack/gommon/log"
)

const (
	MIN_DISTANCE  = 3000
	MAX_DISTANCE  = 20000
	MIN_ELEVATION = 1000
	MAX_ELEVATION = 3000

	DEFAULT_FLIGHTS = 30
)

var airlinePrefixes = []string{
	"AM", "AC", "QK", "NZ", "TN",
	"DJ", "AS", "NH", "AA", "CP",
	"BG", "BA", "CI", "DL", "DA",
	"LY", "EK", "EY", "FX", "AY",
	"HA", "JL", "NU", "JB", "LJ",
	"KE", "LA", "LO", "LH", "MH",
	"MM", "QF", "QR", "SK", "SQ",
	"BC", "WN", "SG", "NK", "TK",
	"UA", "UP", "VA", "WS",
}

// Generator spawns airplanes with random measurements.
type Generator struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewGenerator seeds from seed; a nil logger falls back to the package logger.
func NewGenerator(seed int64, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New("traffic")
	}
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

func (g *Generator) randomIntInRange(minI, maxI int) int {
	return minI + g.rng.Intn(maxI-minI+1)
}

// RandomFlightNumber returns an airline prefix followed by two digits, e.g. LH07.
func (g *Generator) RandomFlightNumber() types.FlightNumber {
	prefix := airlinePrefixes[g.rng.Intn(len(airlinePrefixes))]
	return types.FlightNumber(fmt.Sprintf("%s%d%d", prefix, g.rng.Intn(10), g.rng.Intn(10)))
}

// CreateAirplane gives flight a random distance and elevation.
func (g *Generator) CreateAirplane(flight string) airplane.Airplane {
	distance := g.randomIntInRange(MIN_DISTANCE, MAX_DISTANCE)
	elevation := g.randomIntInRange(MIN_ELEVATION, MAX_ELEVATION)
	ap := airplane.NewAirplane(types.NormalizeFlightNumber(flight), distance, elevation)
	g.logger.Debugf("Spawned %s at D %d, H %d, AC %d", ap.FlightNumber, ap.Distance, ap.Elevation, ap.ApproachCode)
	return ap
}

// Generate creates n airplanes with random flight numbers.
func (g *Generator) Generate(n int) []airplane.Airplane {
	planes := make([]airplane.Airplane, 0, n)
	for i := 0; i < n; i++ {
		planes = append(planes, g.CreateAirplane(g.RandomFlightNumber().String()))
	}
	g.logger.Infof("Generated %d flights", n)
	return planes
}
