package list

// node is one link in a List's chain.
type node struct {
	value int
	next  *node
}

// List is a singly linked list of integers.
// The zero value is an empty list ready to use.
type List struct {
	head   *node
	tail   *node
	length int
}

// New creates an empty list.
func New() *List {
	return &List{}
}

// NewFromValues creates a list holding values in order.
func NewFromValues(values ...int) *List {
	l := New()
	for _, v := range values {
		l.InsertEnd(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List) Len() int {
	return l.length
}

// IsEmpty returns true if the list has no elements.
func (l *List) IsEmpty() bool {
	return l.head == nil
}

// InsertEnd appends value as the new last element.
func (l *List) InsertEnd(value int) {
	n := &node{value: value}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// InsertBegin prepends value as the new first element.
func (l *List) InsertBegin(value int) {
	n := &node{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.length++
}

// InsertAfter inserts value immediately after the element at position.
// On an empty list position 0 makes value the only element.
func (l *List) InsertAfter(position, value int) error {
	if l.IsEmpty() {
		if position != 0 {
			return &PositionError{Op: "insert after", Position: position, Empty: true, Err: ErrOutOfBounds}
		}
		l.InsertEnd(value)
		return nil
	}

	at := l.nodeAt(position)
	if at == nil {
		return &PositionError{Op: "insert after", Position: position, Err: ErrOutOfBounds}
	}
	l.linkAfter(at, value)
	return nil
}

// InsertBefore inserts value so that it ends up at position, ahead of the
// element currently there. Position Len() appends.
func (l *List) InsertBefore(position, value int) error {
	if position < 0 {
		return &PositionError{Op: "insert before", Position: position, Err: ErrInvalidPosition}
	}
	if position == 0 {
		l.InsertBegin(value)
		return nil
	}

	prev := l.nodeAt(position - 1)
	if prev == nil {
		return &PositionError{Op: "insert before", Position: position, Err: ErrOutOfBounds}
	}
	l.linkAfter(prev, value)
	return nil
}

// EditFirst replaces the first element equal to oldValue with newValue.
// Later duplicates of oldValue are left alone.
func (l *List) EditFirst(oldValue, newValue int) error {
	for n := l.head; n != nil; n = n.next {
		if n.value == oldValue {
			n.value = newValue
			return nil
		}
	}
	return &ValueError{Op: "edit", Value: oldValue, Err: ErrNotFound}
}

// Values returns the elements in order as a new slice.
func (l *List) Values() []int {
	values := make([]int, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Equal reports whether both lists hold the same values in the same order.
func (l *List) Equal(other *List) bool {
	if other == nil || l.length != other.length {
		return false
	}
	a, b := l.head, other.head
	for a != nil && b != nil {
		if a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

// Clone returns an independent copy built node by node.
func (l *List) Clone() *List {
	c := New()
	for n := l.head; n != nil; n = n.next {
		c.InsertEnd(n.value)
	}
	return c
}

// Replace discards the current elements and takes over the chain owned by
// other. Afterwards other is empty, so the two lists never share nodes.
// Replacing a list with itself is a no-op.
func (l *List) Replace(other *List) {
	if other == l {
		return
	}
	l.Clear()
	if other == nil {
		return
	}
	l.head, l.tail, l.length = other.head, other.tail, other.length
	other.head, other.tail, other.length = nil, nil, 0
}

// Clear releases every node.
func (l *List) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.tail = nil
	l.length = 0
}

// nodeAt returns the node at index i, or nil if there is none.
func (l *List) nodeAt(i int) *node {
	if i < 0 || i >= l.length {
		return nil
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

func (l *List) linkAfter(prev *node, value int) {
	n := &node{value: value, next: prev.next}
	prev.next = n
	if l.tail == prev {
		l.tail = n
	}
	l.length++
}
