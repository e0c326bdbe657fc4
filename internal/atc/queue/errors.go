package queue

import "errors"

var (
	// ErrHeapUnderflow is returned when extracting from a heap with no elements.
	ErrHeapUnderflow = errors.New("queue: heap underflow")
	// ErrPriorityDecrease is returned when IncreaseKey is given a code below the current one.
	ErrPriorityDecrease = errors.New("queue: new approach code is smaller than current")
	// ErrIndexOutOfRange is returned for any position outside the backing sequence.
	ErrIndexOutOfRange = errors.New("queue: index out of range")
	// ErrInvalidState is returned when an operation needs the store in a state it is not in.
	ErrInvalidState = errors.New("queue: invalid store state")
)
