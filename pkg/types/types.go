package types

import "strings"

type FlightNumber string

// NormalizeFlightNumber trims and uppercases a typed flight number.
func NormalizeFlightNumber(s string) FlightNumber {
	return FlightNumber(strings.ToUpper(strings.TrimSpace(s)))
}

func (f FlightNumber) String() string {
	return string(f)
}
