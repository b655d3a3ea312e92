package nest

import "fmt"

// Map applies f to every leaf of n and collects the results into a new
// Nest with the same structure and keys as n.
func Map[A, B any](n Nest[A], f func(A) B) Nest[B] {
	if n.leaf != nil {
		return Leaf(f(*n.leaf))
	}
	entries := make([]Entry[B], len(n.entries))
	for i, e := range n.entries {
		entries[i] = Entry[B]{Key: e.Key, Nest: Map(e.Nest, f)}
	}
	return Nest[B]{entries: entries}
}

// Flatten returns the leaves of n in structure order.
func Flatten[T any](n Nest[T]) []T {
	out := make([]T, 0, n.NumLeaves())
	Walk(n, func(_ string, v T) {
		out = append(out, v)
	})
	return out
}

// Walk calls f on every leaf of n in structure order, passing the
// dotted path of the leaf. The path of a leaf at the root is the empty
// string.
func Walk[T any](n Nest[T], f func(path string, v T)) {
	walk(n, "", f)
}

func walk[T any](n Nest[T], prefix string, f func(string, T)) {
	if n.leaf != nil {
		f(prefix, *n.leaf)
		return
	}
	for _, e := range n.entries {
		walk(e.Nest, joinPath(prefix, e.Key), f)
	}
}

// Paths returns the dotted path of every leaf in structure order.
func Paths[T any](n Nest[T]) []string {
	out := make([]string, 0, n.NumLeaves())
	Walk(n, func(path string, _ T) {
		out = append(out, path)
	})
	return out
}

// SameStructure returns whether a and b have identical nesting: the
// same leaf/collection shape and the same keys in the same order at
// every level. Leaf values are not compared.
func SameStructure[A, B any](a Nest[A], b Nest[B]) bool {
	if a.IsLeaf() != b.IsLeaf() {
		return false
	}
	if a.IsLeaf() {
		return true
	}
	if len(a.entries) != len(b.entries) {
		return false
	}
	for i := range a.entries {
		if a.entries[i].Key != b.entries[i].Key {
			return false
		}
		if !SameStructure(a.entries[i].Nest, b.entries[i].Nest) {
			return false
		}
	}
	return true
}

// Zip calls f on every pair of corresponding leaves of a and b in
// structure order. Zip returns an error if a and b do not share the
// same structure, or the first error returned by f.
func Zip[A, B any](a Nest[A], b Nest[B], f func(path string, av A, bv B) error) error {
	return zip(a, b, "", f)
}

func zip[A, B any](a Nest[A], b Nest[B], prefix string, f func(string, A, B) error) error {
	if a.IsLeaf() != b.IsLeaf() {
		return fmt.Errorf("zip: structures differ at %q", prefix)
	}
	if a.IsLeaf() {
		return f(prefix, *a.leaf, *b.leaf)
	}
	if len(a.entries) != len(b.entries) {
		return fmt.Errorf("zip: structures differ at %q: %v fields vs %v fields",
			prefix, len(a.entries), len(b.entries))
	}
	for i := range a.entries {
		if a.entries[i].Key != b.entries[i].Key {
			return fmt.Errorf("zip: structures differ at %q: field %q vs %q",
				prefix, a.entries[i].Key, b.entries[i].Key)
		}
		err := zip(a.entries[i].Nest, b.entries[i].Nest,
			joinPath(prefix, a.entries[i].Key), f)
		if err != nil {
			return err
		}
	}
	return nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
