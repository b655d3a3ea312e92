package timestep

import (
	"gorgonia.org/tensor"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/specs"
)

// Spec describes the structure of the time steps an agent consumes:
// the observation structure supplied by the environment, together with
// the scalar step type, reward, and discount that accompany every
// observation. Immutable once constructed.
type Spec struct {
	Observation nest.Nest[specs.TensorSpec]
}

// NewSpec constructs the specification of a time step with the given
// observation structure
func NewSpec(observation nest.Nest[specs.TensorSpec]) Spec {
	return Spec{Observation: observation}
}

// Nest returns the full nested specification of a time step. The
// field order is fixed: step type, observation, reward, discount.
func (s Spec) Nest() nest.Nest[specs.TensorSpec] {
	return nest.Fields(
		nest.Field("step_type", nest.Leaf(specs.Scalar("step_type", tensor.Int))),
		nest.Field("observation", s.Observation),
		nest.Field("reward", nest.Leaf(specs.Scalar("reward", tensor.Float64))),
		nest.Field("discount", nest.Leaf(specs.Scalar("discount", tensor.Float64))),
	)
}
