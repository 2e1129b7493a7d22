package pairheap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortrace/voxelcore/pairheap"
)

func intLess(a, b int) bool { return a < b }

func TestHeap_EmptyMinAndDeleteMin(t *testing.T) {
	h := pairheap.New(intLess)
	assert.Equal(t, 0, h.Len())

	_, ok := h.Min()
	assert.False(t, ok)

	_, ok = h.DeleteMin()
	assert.False(t, ok)
}

func TestHeap_InsertAndDeleteMinOrdering(t *testing.T) {
	h := pairheap.New(intLess)
	values := []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
	for _, v := range values {
		h.Insert(v)
	}
	require.Equal(t, len(values), h.Len())

	var popped []int
	for h.Len() > 0 {
		v, ok := h.DeleteMin()
		require.True(t, ok)
		popped = append(popped, v)
	}

	for i := 1; i < len(popped); i++ {
		assert.LessOrEqual(t, popped[i-1], popped[i], "DeleteMin must be non-decreasing")
	}
	assert.Len(t, popped, len(values))
}

func TestHeap_DecreaseKeyReordersMinimum(t *testing.T) {
	h := pairheap.New(intLess)
	hb := h.Insert(10)
	h.Insert(20)
	h.Insert(30)

	min, _ := h.Min()
	assert.Equal(t, 10, min)

	// Lower the priority of the "20" node below everything else.
	handle20 := h.Insert(20)
	h.DecreaseKey(handle20, 1)
	min, _ = h.Min()
	assert.Equal(t, 1, min)

	// Decreasing a non-minimal handle below the current minimum makes it
	// the new minimum.
	h.DecreaseKey(hb, 0)
	min, _ = h.Min()
	assert.Equal(t, 0, min)
}

func TestHeap_DecreaseKeyThenDrain(t *testing.T) {
	h := pairheap.New(intLess)
	handles := make([]pairheap.Handle[int], 0, 20)
	for i := 20; i > 0; i-- {
		handles = append(handles, h.Insert(i))
	}
	// Decrease a handful of keys to new, smaller values.
	h.DecreaseKey(handles[0], -5)  // was 20
	h.DecreaseKey(handles[10], -1) // was 10

	var popped []int
	for h.Len() > 0 {
		v, _ := h.DeleteMin()
		popped = append(popped, v)
	}
	for i := 1; i < len(popped); i++ {
		assert.LessOrEqual(t, popped[i-1], popped[i])
	}
	assert.Equal(t, -5, popped[0])
	assert.Equal(t, -1, popped[1])
}

func TestHeap_HandleValidAfterDeleteMin(t *testing.T) {
	h := pairheap.New(intLess)
	handle := h.Insert(1)
	assert.True(t, handle.Valid())
	_, _ = h.DeleteMin()
	assert.False(t, handle.Valid())
}

func TestHeap_RandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 500
	h := pairheap.New(intLess)
	want := make([]int, n)
	for i := 0; i < n; i++ {
		v := rng.Intn(10000)
		want[i] = v
		h.Insert(v)
	}

	got := make([]int, 0, n)
	for h.Len() > 0 {
		v, _ := h.DeleteMin()
		got = append(got, v)
	}

	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, got[i-1], got[i])
	}
	assert.Len(t, got, n)
}
