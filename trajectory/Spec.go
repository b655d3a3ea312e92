package trajectory

import (
	"gorgonia.org/tensor"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/specs"
	"github.com/Tensorflow-Devs/agents/timestep"
)

// Spec describes the exact nested structure of the trajectories a
// policy generates. An agent validates every experience batch against
// the Spec of its collect policy before training on it. Immutable
// once constructed.
type Spec struct {
	TimeStep   timestep.Spec
	Action     nest.Nest[specs.TensorSpec]
	PolicyInfo nest.Nest[specs.TensorSpec]
}

// NewSpec constructs the specification of the trajectories produced
// when a policy with the given action and policy-info structures acts
// on time steps with the given structure
func NewSpec(ts timestep.Spec, action,
	policyInfo nest.Nest[specs.TensorSpec]) Spec {
	return Spec{TimeStep: ts, Action: action, PolicyInfo: policyInfo}
}

// Nest returns the full nested specification of a trajectory. The
// field order is fixed and mirrors Trajectory.Tensors field-for-field.
// Each leaf describes the per-field feature shape, excluding the outer
// batch and time dimensions.
func (s Spec) Nest() nest.Nest[specs.TensorSpec] {
	return nest.Fields(
		nest.Field("step_type", nest.Leaf(specs.Scalar("step_type", tensor.Int))),
		nest.Field("observation", s.TimeStep.Observation),
		nest.Field("action", s.Action),
		nest.Field("policy_info", s.PolicyInfo),
		nest.Field("next_step_type", nest.Leaf(specs.Scalar("next_step_type", tensor.Int))),
		nest.Field("reward", nest.Leaf(specs.Scalar("reward", tensor.Float64))),
		nest.Field("discount", nest.Leaf(specs.Scalar("discount", tensor.Float64))),
	)
}
