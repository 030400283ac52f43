// Package list implements singly-linked intrusive lists and a cursor over them.
//
// A list is not an object: it is a head reference held by the caller plus the links embedded in
// the nodes themselves. Nodes embed an Entry, which gives the owning pointer type the Linker
// methods:
//
//	type item struct {
//		list.Entry[*item]
//		v int
//	}
//
// The zero value of the node type (nil for pointers) terminates a list and stands for the empty
// list.
package list

// Linker is implemented by node types that can be linked into a singly-linked list. E is the node
// type itself, usually a pointer to a struct embedding Entry[E].
type Linker[E any] interface {
	comparable
	Next() E
	SetNext(E)
}

// Entry is the link embedded into a node. Embedding Entry[*T] into T makes *T a Linker[*T].
type Entry[E any] struct {
	next E
}

func (e *Entry[E]) Next() E        { return e.next }
func (e *Entry[E]) SetNext(next E) { e.next = next }

// Len returns the number of nodes reachable from head.
//
// NOTE: This is an O(n) operation.
func Len[E Linker[E]](head E) int {
	var zero E
	n := 0
	for e := head; e != zero; e = e.Next() {
		n++
	}
	return n
}

// Iter is a cursor over a singly-linked list. It keeps the node before the cursor so that Remove
// and Insert are O(1).
//
// A fresh Iter is not positioned on anything yet: Current returns the zero node until the first
// call to Next, which positions the cursor on the head without moving past it.
//
// Iter does not own the list. Mutating the list through one Iter invalidates the position of any
// other Iter over the same list.
type Iter[E Linker[E]] struct {
	curr E
	// prev is the node before curr, or zero when curr is the head.
	prev    E
	started bool
}

// NewIter returns an Iter over the list beginning at head.
func NewIter[E Linker[E]](head E) Iter[E] {
	return Iter[E]{curr: head}
}

// Reset moves it back to the initial state over the list beginning at head.
func (it *Iter[E]) Reset(head E) {
	*it = Iter[E]{curr: head}
}

// HasNext returns true if the node at the cursor has a successor. It only peeks at the link and
// does not care whether the cursor has been started.
func (it *Iter[E]) HasNext() bool {
	var zero E
	return it.curr != zero && it.curr.Next() != zero
}

// Next advances the cursor and returns false once it has run off the end of the list. The first
// call positions the cursor on the head. Calling Next at the end keeps returning false.
func (it *Iter[E]) Next() bool {
	var zero E
	if it.curr == zero {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}
	it.prev = it.curr
	it.curr = it.curr.Next()
	return it.curr != zero
}

// Current returns the node at the cursor, or the zero node if the cursor has not been started or
// is at the end.
func (it *Iter[E]) Current() E {
	if !it.started {
		var zero E
		return zero
	}
	return it.curr
}

// Remove unlinks the node at the cursor and returns it, or returns the zero node if there is
// nothing to remove. An unstarted cursor is started first.
//
// Afterwards the cursor designates the node that followed the removed one, so repeated calls to
// Remove delete consecutive nodes. If head is not nil and the removed node was the head, *head is
// set to the new head, which is the zero node once the list is empty.
func (it *Iter[E]) Remove(head *E) E {
	var zero E
	if !it.started && !it.Next() {
		return zero
	}
	if it.curr == zero {
		return zero
	}

	node := it.curr
	it.curr = node.Next()
	if it.prev == zero {
		if head != nil {
			*head = it.curr
		}
		if it.curr == zero {
			// Nothing left, back to an unstarted cursor over the empty list.
			it.started = false
		}
	} else {
		it.prev.SetNext(it.curr)
	}
	node.SetNext(zero)
	return node
}

// Insert links node in before the node at the cursor, which then designates node, and returns
// node. It returns the zero node if the cursor has not been started. At the end of the list node
// becomes the new tail.
//
// When the cursor is on the head, *head is set to node if head is not nil. If head is nil the
// caller's head reference is left alone and node is only reachable through the cursor.
func (it *Iter[E]) Insert(node E, head *E) E {
	var zero E
	if !it.started {
		return zero
	}

	node.SetNext(it.curr)
	if it.prev == zero {
		if head != nil {
			*head = node
		}
	} else {
		it.prev.SetNext(node)
	}
	it.curr = node
	return node
}
