package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFlightNumber(t *testing.T) {
	assert.Equal(t, FlightNumber("AA12"), NormalizeFlightNumber("  aa12 "))
	assert.Equal(t, "", NormalizeFlightNumber("   ").String())
}
