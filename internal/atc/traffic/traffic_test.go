package traffic

import (
	"io"
	"regexp"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func TestRandomFlightNumber_Format(t *testing.T) {
	g := NewGenerator(1, quietLogger())
	pattern := regexp.MustCompile(`^[A-Z]{2}[0-9]{2}$`)
	for i := 0; i < 200; i++ {
		fn := g.RandomFlightNumber()
		require.Regexp(t, pattern, fn.String())
		assert.Contains(t, airlinePrefixes, fn.String()[:2])
	}
}

func TestCreateAirplane_Ranges(t *testing.T) {
	g := NewGenerator(2, quietLogger())
	for i := 0; i < 500; i++ {
		ap := g.CreateAirplane(" ua12 ")
		assert.Equal(t, "UA12", ap.FlightNumber.String())
		assert.GreaterOrEqual(t, ap.Distance, MIN_DISTANCE)
		assert.LessOrEqual(t, ap.Distance, MAX_DISTANCE)
		assert.GreaterOrEqual(t, ap.Elevation, MIN_ELEVATION)
		assert.LessOrEqual(t, ap.Elevation, MAX_ELEVATION)
		assert.Equal(t, 15000-(ap.Distance+ap.Elevation)/2, ap.ApproachCode)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a := NewGenerator(42, quietLogger()).Generate(DEFAULT_FLIGHTS)
	b := NewGenerator(42, quietLogger()).Generate(DEFAULT_FLIGHTS)
	assert.Len(t, a, DEFAULT_FLIGHTS)
	assert.Equal(t, a, b)
}

func TestNewGenerator_NilLogger(t *testing.T) {
	g := NewGenerator(3, nil)
	assert.NotNil(t, g.logger)
	assert.Empty(t, NewGenerator(3, nil).Generate(0))
}
