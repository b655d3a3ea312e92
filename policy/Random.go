package policy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/specs"
	"github.com/Tensorflow-Devs/agents/timestep"
	"github.com/Tensorflow-Devs/agents/trajectory"
)

// Random implements a policy that selects actions uniformly at random
// within the bounds of a bounded action specification, ignoring the
// observation. A Random policy is a common collect policy for seeding
// a replay buffer before learning begins.
type Random struct {
	actionSpec specs.Bounded
	spec       trajectory.Spec
	rand       *distmv.Uniform
}

// NewRandom constructs a new Random policy acting on time steps with
// the given structure
func NewRandom(ts timestep.Spec, actionSpec specs.Bounded,
	seed uint64) *Random {
	bounds := make([]r1.Interval, actionSpec.LowerBound.Len())
	for i := range bounds {
		bounds[i] = r1.Interval{
			Min: actionSpec.LowerBound.AtVec(i),
			Max: actionSpec.UpperBound.AtVec(i),
		}
	}
	source := rand.NewSource(seed)

	spec := trajectory.NewSpec(ts, nest.Leaf(actionSpec.TensorSpec),
		nest.Fields[specs.TensorSpec]())

	return &Random{
		actionSpec: actionSpec,
		spec:       spec,
		rand:       distmv.NewUniform(bounds, source),
	}
}

// TrajectorySpec returns the structure of the trajectories the policy
// generates
func (r *Random) TrajectorySpec() trajectory.Spec {
	return r.spec
}

// SelectAction selects an action uniformly at random within the action
// bounds
func (r *Random) SelectAction(timestep.TimeStep) (mat.Vector, error) {
	return mat.NewVecDense(r.actionSpec.LowerBound.Len(),
		r.rand.Rand(nil)), nil
}
