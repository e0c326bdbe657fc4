package queue

import (
	"fmt"
	"strings"
)

// RenderAscending lists the backing sequence from the last position to the
// first. After HeapSort that is highest approach code first.
func RenderAscending(s *Store) string {
	var sb strings.Builder
	for i, n := len(s.airplanes)-1, 1; i >= 0; i, n = i-1, n+1 {
		fmt.Fprintf(&sb, "  %d. %s", n, s.airplanes[i])
		if i != 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderHeapOrder lists the backing sequence in storage order.
func RenderHeapOrder(s *Store) string {
	var sb strings.Builder
	for i, ap := range s.airplanes {
		fmt.Fprintf(&sb, "  %d. %s", i+1, ap)
		if i != len(s.airplanes)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
