package pairheap

// Less reports whether a has strictly higher priority (sorts earlier)
// than b. The heap calls Less repeatedly as its shape changes, so it
// must be cheap and must reflect the current state of a and b, not a
// snapshot taken at Insert time — this is what lets DecreaseKey work
// when T is a pointer whose fields mutate in place.
type Less[T any] func(a, b T) bool

// node is one element of the pairing-heap forest. Each node tracks its
// parent and leftmost child, plus a singly linked sibling chain among
// children of the same parent. parent is nil exactly for the current
// root and for detached nodes mid-restructure.
type node[T any] struct {
	value    T
	parent   *node[T]
	child    *node[T]
	sibling  *node[T]
	detached bool // true once DeleteMin/Cut has removed this node from the heap
}

// Handle addresses a single element previously returned by Insert. It
// stays valid until that element is removed by DeleteMin (directly or
// as part of a DecreaseKey restructure it is never invalidated itself,
// only the removed minimum's handle becomes stale).
type Handle[T any] struct {
	n *node[T]
}

// Valid reports whether h still addresses a live heap element.
func (h Handle[T]) Valid() bool { return h.n != nil && !h.n.detached }

// Heap is an addressable pairing heap ordered by a Less function.
// A zero Heap is not usable; construct one with New.
type Heap[T any] struct {
	root *node[T]
	less Less[T]
	size int
}

// New constructs an empty Heap ordered by less.
func New[T any](less Less[T]) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int { return h.size }

// Insert adds value to the heap and returns a Handle for later
// DecreaseKey or lookup. Complexity: O(1).
func (h *Heap[T]) Insert(value T) Handle[T] {
	n := &node[T]{value: value}
	h.root = h.merge(h.root, n)
	h.size++
	return Handle[T]{n: n}
}

// Min returns the current minimum value without removing it.
// ok is false iff the heap is empty.
func (h *Heap[T]) Min() (value T, ok bool) {
	if h.root == nil {
		return value, false
	}
	return h.root.value, true
}

// DeleteMin removes and returns the minimum element. ok is false iff
// the heap was already empty. Complexity: O(log n) amortized.
func (h *Heap[T]) DeleteMin() (value T, ok bool) {
	if h.root == nil {
		return value, false
	}
	min := h.root
	value = min.value
	h.root = h.mergePairs(min.child)
	if h.root != nil {
		h.root.parent = nil
	}
	min.detached = true
	min.child = nil
	min.sibling = nil
	h.size--
	return value, true
}

// DecreaseKey informs the heap that the priority of the element behind
// h has improved (Less(newValue, old) or an in-place mutation the
// caller already applied to the pointee) and restores heap order by
// cutting the node from its parent and re-melding it with the root.
// value replaces the node's stored value before restructuring, so
// pointer-typed T may simply pass the same pointer back.
//
// Calling DecreaseKey on a handle whose priority did not actually
// improve is safe but wasteful: the heap will still satisfy its
// invariant, just having done unnecessary cut/meld work.
// Complexity: the cut walks the parent's singly linked child list, so
// it is linear in the number of siblings before n; it is not bounded by
// O(log n). The re-meld with the root is O(1).
func (h *Heap[T]) DecreaseKey(handle Handle[T], value T) {
	n := handle.n
	n.value = value
	if n == h.root {
		return
	}
	h.detachFromParent(n)
	h.root = h.merge(h.root, n)
}

// detachFromParent removes n from its parent's child sibling-list. n
// becomes a standalone root-candidate (parent == nil, sibling == nil).
func (h *Heap[T]) detachFromParent(n *node[T]) {
	p := n.parent
	if p == nil {
		return
	}
	if p.child == n {
		p.child = n.sibling
	} else {
		prev := p.child
		for prev.sibling != n {
			prev = prev.sibling
		}
		prev.sibling = n.sibling
	}
	n.parent = nil
	n.sibling = nil
}

// merge melds two heap-ordered trees (either may be nil) into one,
// making the smaller root the parent and prepending the other as its
// new leftmost child. Complexity: O(1).
func (h *Heap[T]) merge(a, b *node[T]) *node[T] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	if h.less(b.value, a.value) {
		a, b = b, a
	}
	b.sibling = a.child
	b.parent = a
	a.child = b
	a.sibling = nil
	a.parent = nil
	return a
}

// mergePairs implements the standard two-pass pairing-heap merge of a
// sibling list: pair up consecutive siblings left-to-right, then fold
// the resulting list of pairs right-to-left into a single tree.
// Complexity: O(k) where k is the number of siblings; amortized O(log n)
// across a sequence of DeleteMin calls.
func (h *Heap[T]) mergePairs(first *node[T]) *node[T] {
	if first == nil {
		return nil
	}
	if first.sibling == nil {
		first.sibling = nil
		return first
	}

	// First pass: pair up (first, second), (third, fourth), ...
	var pairs []*node[T]
	cur := first
	for cur != nil {
		a := cur
		b := a.sibling
		a.sibling = nil
		if b != nil {
			cur = b.sibling
			b.sibling = nil
			pairs = append(pairs, h.merge(a, b))
		} else {
			cur = nil
			pairs = append(pairs, a)
		}
	}

	// Second pass: fold right-to-left.
	result := pairs[len(pairs)-1]
	for i := len(pairs) - 2; i >= 0; i-- {
		result = h.merge(pairs[i], result)
	}
	return result
}
