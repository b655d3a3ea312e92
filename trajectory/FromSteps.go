package trajectory

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/timestep"
)

// Step is a single transition used to assemble batched trajectories.
// Observations and actions are flat vectors; pixel observations should
// be flattened before assembly.
type Step struct {
	StepType     timestep.StepType
	NextStepType timestep.StepType
	Observation  mat.Vector
	Action       mat.Vector
	Reward       float64
	Discount     float64
}

// FromSteps stacks a [batch][time] grid of steps into a Trajectory
// whose tensors are shaped [batch, time, ...]. All sequences must have
// the same length, all observations the same size, and all actions the
// same size. The resulting trajectory has single-tensor observation
// and action structures and no policy info.
func FromSteps(steps [][]Step) (*Trajectory, error) {
	if len(steps) == 0 || len(steps[0]) == 0 {
		return nil, fmt.Errorf("fromsteps: cannot stack an empty batch")
	}

	batch := len(steps)
	time := len(steps[0])
	obsSize := steps[0][0].Observation.Len()
	actionSize := steps[0][0].Action.Len()

	stepTypes := make([]int, batch*time)
	nextStepTypes := make([]int, batch*time)
	observations := make([]float64, batch*time*obsSize)
	actions := make([]float64, batch*time*actionSize)
	rewards := make([]float64, batch*time)
	discounts := make([]float64, batch*time)

	for b, sequence := range steps {
		if len(sequence) != time {
			return nil, fmt.Errorf("fromsteps: ragged batch \n\twant "+
				"sequence length (%v)\n\thave (%v)", time, len(sequence))
		}
		for i, step := range sequence {
			if step.Observation.Len() != obsSize {
				return nil, fmt.Errorf("fromsteps: invalid observation size "+
					"\n\twant(%v)\n\thave(%v)", obsSize, step.Observation.Len())
			}
			if step.Action.Len() != actionSize {
				return nil, fmt.Errorf("fromsteps: invalid action size "+
					"\n\twant(%v)\n\thave(%v)", actionSize, step.Action.Len())
			}

			flat := b*time + i
			stepTypes[flat] = int(step.StepType)
			nextStepTypes[flat] = int(step.NextStepType)
			rewards[flat] = step.Reward
			discounts[flat] = step.Discount

			obsInd := flat * obsSize
			copy(observations[obsInd:obsInd+obsSize],
				mat.VecDenseCopyOf(step.Observation).RawVector().Data)

			actionInd := flat * actionSize
			copy(actions[actionInd:actionInd+actionSize],
				mat.VecDenseCopyOf(step.Action).RawVector().Data)
		}
	}

	return &Trajectory{
		StepType: tensor.New(tensor.WithShape(batch, time),
			tensor.WithBacking(stepTypes)),
		NextStepType: tensor.New(tensor.WithShape(batch, time),
			tensor.WithBacking(nextStepTypes)),
		Observation: nest.Leaf[tensor.Tensor](tensor.New(
			tensor.WithShape(batch, time, obsSize),
			tensor.WithBacking(observations))),
		Action: nest.Leaf[tensor.Tensor](tensor.New(
			tensor.WithShape(batch, time, actionSize),
			tensor.WithBacking(actions))),
		PolicyInfo: nest.Fields[tensor.Tensor](),
		Reward: tensor.New(tensor.WithShape(batch, time),
			tensor.WithBacking(rewards)),
		Discount: tensor.New(tensor.WithShape(batch, time),
			tensor.WithBacking(discounts)),
	}, nil
}
