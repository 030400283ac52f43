// Package dblist implements circular doubly-linked intrusive lists and a cursor over them.
//
// Nodes form a ring: there is no terminator, and for every node n, n.Next().Prev() == n. The head
// of a ring is only a marker held by the caller. The empty list is the zero node, never an empty
// ring.
package dblist

// Linker is implemented by node types that can be linked into a ring. E is the node type itself,
// usually a pointer to a struct embedding Entry[E].
//
// Any Linker also satisfies list.Linker, see Unroll.
type Linker[E any] interface {
	comparable
	Next() E
	Prev() E
	SetNext(E)
	SetPrev(E)
}

// Entry is the pair of links embedded into a node. Embedding Entry[*T] into T makes *T a
// Linker[*T].
type Entry[E any] struct {
	next E
	prev E
}

func (e *Entry[E]) Next() E        { return e.next }
func (e *Entry[E]) Prev() E        { return e.prev }
func (e *Entry[E]) SetNext(next E) { e.next = next }
func (e *Entry[E]) SetPrev(prev E) { e.prev = prev }

// Init makes node a ring of one.
func Init[E Linker[E]](node E) {
	node.SetNext(node)
	node.SetPrev(node)
}

// Len returns the number of nodes in the ring containing head.
//
// NOTE: This is an O(n) operation.
func Len[E Linker[E]](head E) int {
	var zero E
	if head == zero {
		return 0
	}
	n := 1
	for e := head.Next(); e != head; e = e.Next() {
		n++
	}
	return n
}

// Unroll opens the ring containing head just before head, leaving a zero-terminated chain that
// starts at head. The result can be walked with list.Iter.
func Unroll[E Linker[E]](head E) E {
	var zero E
	if head == zero {
		return zero
	}
	head.Prev().SetNext(zero)
	head.SetPrev(zero)
	return head
}

// Roll closes the zero-terminated chain starting at head back into a ring, rebuilding every Prev
// link from the Next links. It is the inverse of Unroll, and repairs a chain that was edited
// through list.Iter.
func Roll[E Linker[E]](head E) E {
	var zero E
	if head == zero {
		return zero
	}
	tail := head
	for e := head.Next(); e != zero; e = e.Next() {
		e.SetPrev(tail)
		tail = e
	}
	tail.SetNext(head)
	head.SetPrev(tail)
	return head
}
