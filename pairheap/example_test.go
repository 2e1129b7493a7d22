package pairheap_test

import (
	"fmt"

	"github.com/arbortrace/voxelcore/pairheap"
)

// ExampleHeap demonstrates Insert, DecreaseKey, and DeleteMin on a
// heap of plain ints.
func ExampleHeap() {
	h := pairheap.New(func(a, b int) bool { return a < b })
	h.Insert(5)
	mid := h.Insert(3)
	h.Insert(8)

	// A later discovery lowers the priority of the "3" entry to -1.
	h.DecreaseKey(mid, -1)

	for h.Len() > 0 {
		v, _ := h.DeleteMin()
		fmt.Println(v)
	}
	// Output:
	// -1
	// 5
	// 8
}
