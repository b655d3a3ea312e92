package trajectory

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/specs"
	"github.com/Tensorflow-Devs/agents/timestep"
)

func testSteps(batch, time, obsSize, actionSize int) [][]Step {
	steps := make([][]Step, batch)
	for b := range steps {
		steps[b] = make([]Step, time)
		for i := range steps[b] {
			obs := make([]float64, obsSize)
			action := make([]float64, actionSize)
			for j := range obs {
				obs[j] = float64(b*time + i)
			}
			steps[b][i] = Step{
				StepType:     timestep.Mid,
				NextStepType: timestep.Mid,
				Observation:  mat.NewVecDense(obsSize, obs),
				Action:       mat.NewVecDense(actionSize, action),
				Reward:       float64(i),
				Discount:     1.0,
			}
		}
	}
	return steps
}

func TestFromStepsShapes(t *testing.T) {
	traj, err := FromSteps(testSteps(4, 2, 8, 1))
	if err != nil {
		t.Fatalf("fromsteps: %v", err)
	}

	wantShapes := map[string][]int{
		"step_type":      {4, 2},
		"observation":    {4, 2, 8},
		"action":         {4, 2, 1},
		"next_step_type": {4, 2},
		"reward":         {4, 2},
		"discount":       {4, 2},
	}
	nest.Walk(traj.Tensors(), func(path string, tn tensor.Tensor) {
		want, ok := wantShapes[path]
		if !ok {
			t.Errorf("unexpected tensor at %v", path)
			return
		}
		if !tn.Shape().Eq(tensor.Shape(want)) {
			t.Errorf("%v: expected shape %v, got %v", path, want, tn.Shape())
		}
	})
}

func TestFromStepsValues(t *testing.T) {
	traj, err := FromSteps(testSteps(2, 3, 1, 1))
	if err != nil {
		t.Fatalf("fromsteps: %v", err)
	}

	obs := nest.Flatten(traj.Observation)[0]
	got, err := obs.At(1, 2, 0)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	// Batch element 1, time 2 was filled with b*time+i = 5
	if got.(float64) != 5.0 {
		t.Errorf("expected observation 5.0, got %v", got)
	}

	reward, err := traj.Reward.At(0, 2)
	if err != nil {
		t.Fatalf("at: %v", err)
	}
	if reward.(float64) != 2.0 {
		t.Errorf("expected reward 2.0, got %v", reward)
	}
}

func TestFromStepsRejectsRaggedBatches(t *testing.T) {
	steps := testSteps(2, 2, 4, 1)
	steps[1] = steps[1][:1]

	if _, err := FromSteps(steps); err == nil {
		t.Error("expected an error for ragged sequence lengths")
	}
}

func TestFromStepsRejectsEmptyBatches(t *testing.T) {
	if _, err := FromSteps(nil); err == nil {
		t.Error("expected an error for an empty batch")
	}
	if _, err := FromSteps([][]Step{{}}); err == nil {
		t.Error("expected an error for empty sequences")
	}
}

func TestSpecNestMirrorsTrajectoryTensors(t *testing.T) {
	ts := timestep.NewSpec(nest.Leaf(specs.New("observation", []int{8},
		tensor.Float64)))
	spec := NewSpec(ts, nest.Leaf(specs.New("action", []int{1},
		tensor.Float64)), nest.Fields[specs.TensorSpec]())

	traj, err := FromSteps(testSteps(4, 2, 8, 1))
	if err != nil {
		t.Fatalf("fromsteps: %v", err)
	}

	if !nest.SameStructure(spec.Nest(), traj.Tensors()) {
		t.Error("spec nest must mirror the trajectory tensors " +
			"field-for-field")
	}
}
