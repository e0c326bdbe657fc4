package queue

import (
	"atc-approach/internal/atc/airplane"
	"fmt"
)

// State tells which view of the backing sequence is currently meaningful.
type State int

const (
	// Building: elements were appended without sifting; the heap property may not hold.
	Building State = iota
	// HeapValid: [0, HeapSize) is a max-heap and HeapSize == BackingSize.
	HeapValid
	// SortedArray: the backing sequence is ascending by approach code; HeapSize is stale.
	SortedArray
)

var StateStringMap = map[State]string{
	Building:    "BUILDING",
	HeapValid:   "HEAP_VALID",
	SortedArray: "SORTED_ARRAY",
}

func (s State) String() string {
	return StateStringMap[s]
}

// Store holds airplanes by value, so nothing outside the store can alias them.
// heapSize may be smaller than len(airplanes) while a sort is running or after
// one has finished.
type Store struct {
	airplanes []airplane.Airplane
	heapSize  int
	state     State
}

func NewStore() *Store {
	return &Store{
		airplanes: make([]airplane.Airplane, 0),
		state:     HeapValid,
	}
}

// Size returns the active heap size.
func (s *Store) Size() int {
	return s.heapSize
}

func (s *Store) BackingSize() int {
	return len(s.airplanes)
}

func (s *Store) State() State {
	return s.state
}

func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.airplanes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.airplanes))
	}
	return nil
}

func (s *Store) PriorityAt(i int) (int, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.airplanes[i].ApproachCode, nil
}

// AirplaneAt returns a copy of the airplane at position i.
func (s *Store) AirplaneAt(i int) (airplane.Airplane, error) {
	if err := s.checkIndex(i); err != nil {
		return airplane.Airplane{}, err
	}
	return s.airplanes[i], nil
}

// Append adds ap at position Size() without restoring the heap property,
// moving the store to Building. Elements at and after Size() are shifted
// right, never overwritten.
func (s *Store) Append(ap airplane.Airplane) {
	s.insertAtHeapEnd(ap)
	s.state = Building
}

func (s *Store) insertAtHeapEnd(ap airplane.Airplane) {
	s.airplanes = append(s.airplanes, airplane.Airplane{})
	copy(s.airplanes[s.heapSize+1:], s.airplanes[s.heapSize:])
	s.airplanes[s.heapSize] = ap
	s.heapSize++
}

// SetHeapSize changes the logical heap size without touching the backing sequence.
func (s *Store) SetHeapSize(n int) error {
	if n < 0 || n > len(s.airplanes) {
		return fmt.Errorf("%w: heap size %d not in [0, %d]", ErrIndexOutOfRange, n, len(s.airplanes))
	}
	s.heapSize = n
	return nil
}

// ReconcileBackingToHeap drops everything past the heap. Sorting never calls
// this: the sorted suffix is what gets rendered afterwards.
func (s *Store) ReconcileBackingToHeap() {
	clear(s.airplanes[s.heapSize:])
	s.airplanes = s.airplanes[:s.heapSize]
}

// Swap exchanges the full contents of positions i and j, approach code overrides included.
func (s *Store) Swap(i, j int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if err := s.checkIndex(j); err != nil {
		return err
	}
	s.swap(i, j)
	return nil
}

func (s *Store) swap(i, j int) {
	s.airplanes[i], s.airplanes[j] = s.airplanes[j], s.airplanes[i]
}

func (s *Store) Clear() {
	clear(s.airplanes)
	s.airplanes = s.airplanes[:0]
	s.heapSize = 0
	s.state = HeapValid
}

// Airplanes returns a copy of the backing sequence in storage order.
func (s *Store) Airplanes() []airplane.Airplane {
	out := make([]airplane.Airplane, len(s.airplanes))
	copy(out, s.airplanes)
	return out
}

func (s *Store) requireState(want State, op string) error {
	if s.state != want {
		return fmt.Errorf("%w: %s needs %s, store is %s", ErrInvalidState, op, want, s.state)
	}
	return nil
}
