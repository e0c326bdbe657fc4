package queue

import (
	"atc-approach/internal/atc/airplane"
	"fmt"
	"math"
)

// Parent is only meaningful for i > 0; Parent(0) truncates to 0.
func Parent(i int) int {
	return (i - 1) / 2
}

func Left(i int) int {
	return 2*i + 1
}

func Right(i int) int {
	return 2*i + 2
}

// SiftDown restores the max-heap property below i, bounded by the heap size.
// Only a strictly greater child replaces its parent.
func SiftDown(s *Store, i int) {
	for {
		left := Left(i)
		right := Right(i)
		largest := i

		if left < s.heapSize && s.airplanes[left].ApproachCode > s.airplanes[largest].ApproachCode {
			largest = left
		}
		if right < s.heapSize && s.airplanes[right].ApproachCode > s.airplanes[largest].ApproachCode {
			largest = right
		}
		if largest == i {
			return
		}
		s.swap(i, largest)
		i = largest
	}
}

// BuildHeap turns the whole backing sequence into a max-heap, working from
// the last parent down to the root.
func BuildHeap(s *Store) {
	s.heapSize = len(s.airplanes)
	for i := len(s.airplanes) / 2; i >= 0; i-- {
		SiftDown(s, i)
	}
	s.state = HeapValid
}

// HeapSort leaves the backing sequence ascending by approach code. The heap
// size ends at 1 (0 when empty) and the store is no longer a heap until the
// next BuildHeap.
func HeapSort(s *Store) {
	BuildHeap(s)
	for i := len(s.airplanes) - 1; i >= 1; i-- {
		s.swap(0, i)
		s.heapSize--
		SiftDown(s, 0)
	}
	s.state = SortedArray
}

// PeekMax returns the airplane with the highest approach code.
func PeekMax(s *Store) (airplane.Airplane, error) {
	if err := s.requireState(HeapValid, "peek"); err != nil {
		return airplane.Airplane{}, err
	}
	return s.AirplaneAt(0)
}

// ExtractMax removes and returns the airplane with the highest approach code.
func ExtractMax(s *Store) (airplane.Airplane, error) {
	if err := s.requireState(HeapValid, "extract"); err != nil {
		return airplane.Airplane{}, err
	}
	if s.heapSize <= 0 {
		return airplane.Airplane{}, ErrHeapUnderflow
	}

	top := s.airplanes[0]
	s.airplanes[0] = s.airplanes[s.heapSize-1]
	s.heapSize--
	s.ReconcileBackingToHeap()
	SiftDown(s, 0)
	return top, nil
}

// IncreaseKey assigns approachCode to the airplane at index and moves it up
// until its parent is at least as high. The store is untouched on error.
func IncreaseKey(s *Store, index, approachCode int) error {
	if err := s.requireState(HeapValid, "increase key"); err != nil {
		return err
	}
	current, err := s.PriorityAt(index)
	if err != nil {
		return err
	}
	if approachCode < current {
		return fmt.Errorf("%w: %d < %d at %d", ErrPriorityDecrease, approachCode, current, index)
	}
	s.increaseKey(index, approachCode)
	return nil
}

func (s *Store) increaseKey(index, approachCode int) {
	s.airplanes[index].ApproachCode = approachCode
	for index > 0 && s.airplanes[Parent(index)].ApproachCode < s.airplanes[index].ApproachCode {
		s.swap(index, Parent(index))
		index = Parent(index)
	}
}

// Insert adds ap at the bottom of the heap with the lowest possible code and
// raises it to its own code.
func Insert(s *Store, ap airplane.Airplane) error {
	if err := s.requireState(HeapValid, "insert"); err != nil {
		return err
	}
	approachCode := ap.ApproachCode
	ap.ApproachCode = math.MinInt
	s.insertAtHeapEnd(ap)
	return IncreaseKey(s, s.heapSize-1, approachCode)
}
