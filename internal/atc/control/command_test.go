package control

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in   string
		want Command
	}{
		{"add ua12", Command{Type: ADD, Flight: "ua12"}},
		{"A LH07", Command{Type: ADD, Flight: "LH07"}},
		{"gen", Command{Type: GENERATE}},
		{"  Peek  ", Command{Type: PEEK}},
		{"pop", Command{Type: LAND}},
		{"L", Command{Type: LAND}},
		{"ac 3 14000", Command{Type: ASSIGN, Position: 3, Code: 14000}},
		{"I 1 -5", Command{Type: ASSIGN, Position: 1, Code: -5}},
		{"heap", Command{Type: HEAP}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCommand(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	_, err := ParseCommand("")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	_, err = ParseCommand("takeoff")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	_, err = ParseCommand("add")
	assert.ErrorIs(t, err, ErrBadArguments)
	_, err = ParseCommand("peek now")
	assert.ErrorIs(t, err, ErrBadArguments)
	_, err = ParseCommand("ac x 10")
	assert.ErrorIs(t, err, ErrBadArguments)
	_, err = ParseCommand("ac 1 ten")
	assert.ErrorIs(t, err, ErrBadArguments)
	_, err = ParseCommand("ac 1")
	assert.ErrorIs(t, err, ErrBadArguments)
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "ADD UA12", Command{Type: ADD, Flight: "UA12"}.String())
	assert.Equal(t, "AC 2 900", Command{Type: ASSIGN, Position: 2, Code: 900}.String())
	assert.Equal(t, "LAND", Command{Type: LAND}.String())
}

func TestSession_ExecuteLine(t *testing.T) {
	s := newTestSession(t, Options{Seed: 7, Flights: 3})

	v, err := s.ExecuteLine("gen")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "3 new flights generated", v.Message)

	_, err = s.ExecuteLine("add qf1")
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	v, err = s.ExecuteLine("peek")
	require.NoError(t, err)
	assert.Contains(t, v.Message, "The next plane to land is")

	_, err = s.ExecuteLine("land")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = s.ExecuteLine("ac 1 99999")
	require.NoError(t, err)

	v, err = s.ExecuteLine("heap")
	require.NoError(t, err)
	assert.Contains(t, v.Listing, "AC: 99999")

	before := s.View()
	v, err = s.ExecuteLine("bogus")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, before, v)

	_, err = s.Execute(Command{Type: CommandType(99)})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
