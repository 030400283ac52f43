package dblist

// Iter is a cursor over a ring.
//
// The ring has no natural end, so the cursor remembers where it started: the boundary is set by
// the first call to Next or Prev and a full pass is over when Next would come back around to it.
// Until then the cursor is unstarted and Head reports the node it was created on.
//
// Mutating the ring through one Iter invalidates the position of any other Iter over it.
type Iter[E Linker[E]] struct {
	curr     E
	boundary E
}

// NewIter returns an unstarted Iter over the ring containing head.
func NewIter[E Linker[E]](head E) Iter[E] {
	return Iter[E]{curr: head}
}

// Reset moves it back to the unstarted state over the ring containing head.
func (it *Iter[E]) Reset(head E) {
	*it = Iter[E]{curr: head}
}

func (it *Iter[E]) HasPrev() bool {
	var zero E
	return it.curr != zero && it.curr != it.boundary
}

func (it *Iter[E]) HasNext() bool {
	var zero E
	return it.curr != zero && it.curr.Next() != it.boundary
}

// Next advances the cursor. The first call only fixes the boundary on the current node, which
// counts as visiting it. Next returns false once the cursor is on the node before the boundary.
func (it *Iter[E]) Next() bool {
	var zero E
	if it.boundary == zero {
		it.boundary = it.curr
		return it.curr != zero
	}
	if it.curr.Next() == it.boundary {
		return false
	}
	it.curr = it.curr.Next()
	return true
}

// Prev moves the cursor backwards and returns false once it is back on the boundary. On an
// unstarted cursor the boundary is fixed on the current node before stepping back, so the first
// call lands on the last node of the ring.
func (it *Iter[E]) Prev() bool {
	var zero E
	if it.curr == it.boundary {
		return false
	}
	if it.boundary == zero {
		it.boundary = it.curr
	}
	it.curr = it.curr.Prev()
	return true
}

func (it *Iter[E]) Current() E { return it.curr }

// Head returns the boundary, or the current node if the cursor has not been started.
func (it *Iter[E]) Head() E {
	var zero E
	if it.boundary == zero {
		return it.curr
	}
	return it.boundary
}

// Remove unlinks the node at the cursor and returns it with its links cleared, or returns the zero
// node if the ring is empty. An unstarted cursor is started first.
//
// The cursor moves on to the node that followed. If the removed node was the boundary the boundary
// moves along with it and, if head is not nil, *head is set to the new boundary. Removing the last
// node leaves the cursor empty and sets *head to the zero node.
func (it *Iter[E]) Remove(head *E) E {
	var zero E
	if it.boundary == zero && !it.Next() {
		return zero
	}

	node := it.curr
	if node.Next() == node {
		it.curr = zero
		it.boundary = zero
		if head != nil {
			*head = zero
		}
		node.SetNext(zero)
		node.SetPrev(zero)
		return node
	}

	next := node.Next()
	node.Prev().SetNext(next)
	next.SetPrev(node.Prev())
	node.SetNext(zero)
	node.SetPrev(zero)

	it.curr = next
	if it.boundary == node {
		it.boundary = next
		if head != nil {
			*head = next
		}
	}
	return node
}

// Insert links node into the ring just before the cursor and returns it. Into an empty ring, node
// becomes a ring of one, the cursor and the boundary, and *head if head is not nil.
//
// Before the boundary the two positions coincide: just before the head is also just after the
// tail. If head is not nil, node becomes the new boundary and *head. If head is nil, node is
// appended as the new tail and the cursor stays on the boundary, so repeated Insert(n, nil) on a
// fresh cursor builds a ring in order. Otherwise the cursor moves onto node.
func (it *Iter[E]) Insert(node E, head *E) E {
	var zero E
	if it.boundary == zero && !it.Next() {
		Init(node)
		it.curr = node
		it.boundary = node
		if head != nil {
			*head = node
		}
		return node
	}

	curr := it.curr
	prev := curr.Prev()
	prev.SetNext(node)
	node.SetPrev(prev)
	node.SetNext(curr)
	curr.SetPrev(node)

	if it.boundary == curr {
		if head == nil {
			return node
		}
		it.boundary = node
		*head = node
	}
	it.curr = node
	return node
}
