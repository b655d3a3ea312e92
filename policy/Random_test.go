package policy

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/specs"
	"github.com/Tensorflow-Devs/agents/timestep"
)

func testRandom(seed uint64) *Random {
	ts := timestep.NewSpec(nest.Leaf(specs.New("observation", []int{4},
		tensor.Float64)))
	actionSpec := specs.NewBounded(
		specs.New("action", []int{2}, tensor.Float64),
		mat.NewVecDense(2, []float64{-1.0, 0.0}),
		mat.NewVecDense(2, []float64{1.0, 0.5}),
	)
	return NewRandom(ts, actionSpec, seed)
}

func TestSelectActionRespectsBounds(t *testing.T) {
	p := testRandom(42)
	step := timestep.New(timestep.First, 0, 1,
		mat.NewVecDense(4, nil), 0)

	lower := []float64{-1.0, 0.0}
	upper := []float64{1.0, 0.5}
	for i := 0; i < 100; i++ {
		action, err := p.SelectAction(step)
		if err != nil {
			t.Fatalf("selectaction: %v", err)
		}
		if action.Len() != 2 {
			t.Fatalf("expected 2 action dimensions, got %v", action.Len())
		}
		for j := 0; j < action.Len(); j++ {
			if action.AtVec(j) < lower[j] || action.AtVec(j) > upper[j] {
				t.Errorf("action %v out of bounds [%v, %v]",
					action.AtVec(j), lower[j], upper[j])
			}
		}
	}
}

func TestTrajectorySpecIsStable(t *testing.T) {
	p := testRandom(42)

	first := p.TrajectorySpec().Nest()
	p.SelectAction(timestep.New(timestep.First, 0, 1,
		mat.NewVecDense(4, nil), 0))
	second := p.TrajectorySpec().Nest()

	if !nest.SameStructure(first, second) {
		t.Error("trajectory spec must be stable across calls")
	}

	firstLeaves := nest.Flatten(first)
	secondLeaves := nest.Flatten(second)
	for i := range firstLeaves {
		if !firstLeaves[i].Equal(secondLeaves[i]) {
			t.Errorf("leaf %v changed across calls", i)
		}
	}
}

func TestTrajectorySpecActionStructure(t *testing.T) {
	p := testRandom(42)

	action := p.TrajectorySpec().Action
	if !action.IsLeaf() {
		t.Fatal("expected a single-tensor action structure")
	}
	want := specs.New("action", []int{2}, tensor.Float64)
	if !action.Value().Equal(want) {
		t.Errorf("expected action spec %v, got %v", want, action.Value())
	}
}
