// Package nest implements recursively nested, ordered collections of
// named values, generic over the leaf type.
//
// Tensor specifications and batches of experience share the same nested
// layout: a structure is either a single leaf or an ordered list of
// named sub-structures. Keeping the structure generic lets the same
// traversal code validate a nest of tensors against a nest of
// specifications without reflection.
package nest

// Nest is a recursively nested structure. A Nest is either a leaf
// holding a single value of type T, or an ordered collection of named
// child Nests. The zero value is an empty collection.
type Nest[T any] struct {
	leaf    *T
	entries []Entry[T]
}

// Entry is a single named child of a non-leaf Nest.
type Entry[T any] struct {
	Key  string
	Nest Nest[T]
}

// Leaf returns a Nest holding the single value v.
func Leaf[T any](v T) Nest[T] {
	return Nest[T]{leaf: &v}
}

// Field constructs a named child for use with Fields.
func Field[T any](key string, n Nest[T]) Entry[T] {
	return Entry[T]{Key: key, Nest: n}
}

// Fields returns a Nest composed of the argument children, in order.
func Fields[T any](entries ...Entry[T]) Nest[T] {
	return Nest[T]{entries: entries}
}

// IsLeaf returns whether the Nest is a single leaf value
func (n Nest[T]) IsLeaf() bool {
	return n.leaf != nil
}

// Value returns the leaf value. Value panics if the Nest is not a
// leaf.
func (n Nest[T]) Value() T {
	if n.leaf == nil {
		panic("value: nest is not a leaf")
	}
	return *n.leaf
}

// Entries returns the ordered children of a non-leaf Nest. The
// returned slice must not be modified.
func (n Nest[T]) Entries() []Entry[T] {
	return n.entries
}

// NumLeaves returns the total number of leaves in the Nest.
func (n Nest[T]) NumLeaves() int {
	if n.leaf != nil {
		return 1
	}
	total := 0
	for _, e := range n.entries {
		total += e.Nest.NumLeaves()
	}
	return total
}
