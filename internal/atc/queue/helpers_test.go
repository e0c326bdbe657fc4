package queue

import (
	"atc-approach/internal/atc/airplane"
	"atc-approach/pkg/types"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func withCode(flight string, code int) airplane.Airplane {
	ap := airplane.NewAirplane(types.FlightNumber(flight), 0, 0)
	ap.SetApproachCode(code)
	return ap
}

func randomAirplanes(r *rand.Rand, n int) []airplane.Airplane {
	out := make([]airplane.Airplane, n)
	for i := range out {
		out[i] = airplane.NewAirplane(types.FlightNumber(fmt.Sprintf("T%03d", i)), r.Intn(17001)+3000, r.Intn(2001)+1000)
	}
	return out
}

func requireMaxHeap(t *testing.T, s *Store) {
	t.Helper()
	for i := 0; i < s.Size(); i++ {
		parent, err := s.PriorityAt(i)
		require.NoError(t, err)
		for _, c := range []int{Left(i), Right(i)} {
			if c >= s.Size() {
				continue
			}
			child, err := s.PriorityAt(c)
			require.NoError(t, err)
			require.GreaterOrEqual(t, parent, child, "heap property broken at %d -> %d", i, c)
		}
	}
}

func codes(s *Store) []int {
	out := make([]int, 0, s.BackingSize())
	for _, ap := range s.Airplanes() {
		out = append(out, ap.ApproachCode)
	}
	return out
}
