package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderAscending_AfterSort(t *testing.T) {
	s := NewStore()
	s.Append(withCode("LOW", 1))
	s.Append(withCode("TOP", 9))
	s.Append(withCode("MID", 5))
	HeapSort(s)

	want := "  1. ( TOP, D: 0 meters, H: 0 meters ) - AC: 9\n" +
		"  2. ( MID, D: 0 meters, H: 0 meters ) - AC: 5\n" +
		"  3. ( LOW, D: 0 meters, H: 0 meters ) - AC: 1"
	assert.Equal(t, want, RenderAscending(s))
}

func TestRenderHeapOrder(t *testing.T) {
	s := NewStore()
	s.Append(withCode("LOW", 1))
	s.Append(withCode("TOP", 9))
	BuildHeap(s)

	want := "  1. ( TOP, D: 0 meters, H: 0 meters ) - AC: 9\n" +
		"  2. ( LOW, D: 0 meters, H: 0 meters ) - AC: 1"
	assert.Equal(t, want, RenderHeapOrder(s))
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", RenderAscending(NewStore()))
	assert.Equal(t, "", RenderHeapOrder(NewStore()))
}
