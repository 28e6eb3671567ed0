package list

// ref addresses a slot in the arena. Slot i is stored at nodes[i-1] so the
// zero ref means "no node" and a zero LinkedList is empty.
type ref int

const nilRef ref = 0

type node[T any] struct {
	data T
	next ref
	prev ref
}

func (l *LinkedList[T]) at(r ref) *node[T] {
	return &l.nodes[r-1]
}

// alloc takes a slot off the free chain, or grows the arena.
func (l *LinkedList[T]) alloc(v T) ref {
	if l.free != nilRef {
		r := l.free
		n := l.at(r)
		l.free = n.next
		*n = node[T]{data: v}
		return r
	}
	l.nodes = append(l.nodes, node[T]{data: v})
	return ref(len(l.nodes))
}

// release zeroes the slot and threads it onto the free chain. The slot is
// no longer reachable from head or tail once its neighbours are relinked.
func (l *LinkedList[T]) release(r ref) T {
	n := l.at(r)
	v := n.data
	*n = node[T]{next: l.free}
	l.free = r
	return v
}
