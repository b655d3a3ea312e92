// Package trajectory implements batched, time-ordered records of
// agent-environment transitions and the specification of their
// structure. Every tensor in a Trajectory is shaped
// [batch, time, ...features].
package trajectory

import (
	"gorgonia.org/tensor"

	"github.com/Tensorflow-Devs/agents/nest"
)

// Trajectory is a batch of experience: the transitions gathered by a
// collect policy, stacked so that every tensor carries a leading batch
// and time dimension. A Trajectory is the only experience type an
// agent will train on.
type Trajectory struct {
	// StepType and NextStepType mark where episodes begin and end
	// within each sequence. Both are shaped [batch, time].
	StepType     tensor.Tensor
	NextStepType tensor.Tensor

	// Observation, Action, and PolicyInfo may themselves be nested
	// structures of tensors, each shaped [batch, time, ...features].
	Observation nest.Nest[tensor.Tensor]
	Action      nest.Nest[tensor.Tensor]
	PolicyInfo  nest.Nest[tensor.Tensor]

	// Reward and Discount are shaped [batch, time].
	Reward   tensor.Tensor
	Discount tensor.Tensor
}

// Tensors returns the nested view of every tensor in the trajectory.
// The field order is fixed and mirrors Spec.Nest field-for-field.
func (t *Trajectory) Tensors() nest.Nest[tensor.Tensor] {
	return nest.Fields(
		nest.Field("step_type", nest.Leaf(t.StepType)),
		nest.Field("observation", t.Observation),
		nest.Field("action", t.Action),
		nest.Field("policy_info", t.PolicyInfo),
		nest.Field("next_step_type", nest.Leaf(t.NextStepType)),
		nest.Field("reward", nest.Leaf(t.Reward)),
		nest.Field("discount", nest.Leaf(t.Discount)),
	)
}
