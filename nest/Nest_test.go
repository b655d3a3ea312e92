package nest

import (
	"strconv"
	"testing"
)

func testNest() Nest[int] {
	return Fields(
		Field("step_type", Leaf(1)),
		Field("observation", Fields(
			Field("position", Leaf(2)),
			Field("velocity", Leaf(3)),
		)),
		Field("reward", Leaf(4)),
	)
}

func TestFlattenReturnsLeavesInStructureOrder(t *testing.T) {
	got := Flatten(testNest())
	want := []int{1, 2, 3, 4}

	if len(got) != len(want) {
		t.Fatalf("expected %v leaves, got %v", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("leaf %v: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestPaths(t *testing.T) {
	got := Paths(testNest())
	want := []string{"step_type", "observation.position",
		"observation.velocity", "reward"}

	if len(got) != len(want) {
		t.Fatalf("expected %v paths, got %v", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %v: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestMapPreservesStructure(t *testing.T) {
	n := testNest()
	mapped := Map(n, strconv.Itoa)

	if !SameStructure(n, mapped) {
		t.Fatal("map must preserve structure")
	}
	leaves := Flatten(mapped)
	if leaves[1] != "2" {
		t.Errorf("expected leaf \"2\", got %q", leaves[1])
	}
}

func TestSameStructure(t *testing.T) {
	a := testNest()

	if !SameStructure(a, Map(a, func(v int) float64 { return float64(v) })) {
		t.Error("identical structures with different leaf types must match")
	}
	if SameStructure(a, Leaf(1)) {
		t.Error("a collection must not match a leaf")
	}
	if SameStructure(a, Fields(Field("step_type", Leaf(1)))) {
		t.Error("structures with different field counts must not match")
	}

	renamed := Fields(
		Field("step_type", Leaf(1)),
		Field("obs", Fields(
			Field("position", Leaf(2)),
			Field("velocity", Leaf(3)),
		)),
		Field("reward", Leaf(4)),
	)
	if SameStructure(a, renamed) {
		t.Error("structures with different keys must not match")
	}
}

func TestZipVisitsCorrespondingLeaves(t *testing.T) {
	a := testNest()
	b := Map(a, func(v int) int { return v * 10 })

	visited := 0
	err := Zip(a, b, func(path string, av, bv int) error {
		visited++
		if bv != av*10 {
			t.Errorf("%v: expected %v, got %v", path, av*10, bv)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	if visited != 4 {
		t.Errorf("expected 4 leaf pairs, got %v", visited)
	}
}

func TestZipRejectsDifferentStructures(t *testing.T) {
	err := Zip(testNest(), Leaf(1), func(string, int, int) error {
		t.Error("callback must not run on mismatched structures")
		return nil
	})
	if err == nil {
		t.Error("expected an error for mismatched structures")
	}
}

func TestValuePanicsOnCollection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	testNest().Value()
}

func TestNumLeaves(t *testing.T) {
	if n := testNest().NumLeaves(); n != 4 {
		t.Errorf("expected 4 leaves, got %v", n)
	}
	if n := Fields[int]().NumLeaves(); n != 0 {
		t.Errorf("expected 0 leaves, got %v", n)
	}
}
