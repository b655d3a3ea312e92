// Package agent defines the contract that every reinforcement-learning
// agent satisfies: how an agent is constructed, how it validates and
// consumes batches of experience, and how it exposes its policies and
// specifications.
//
// An agent is composed of a Learner, which implements the
// algorithm-specific pieces, and a validating front-end (Base) which
// checks every experience batch against the collect policy's
// trajectory specification before delegating to the Learner. The
// contract itself holds no algorithm: optimization, replay, and data
// collection all live outside this package.
package agent

import (
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/policy"
	"github.com/Tensorflow-Devs/agents/specs"
	"github.com/Tensorflow-Devs/agents/timestep"
	"github.com/Tensorflow-Devs/agents/trajectory"
)

// Agent is the contract satisfied by every agent. Concrete agents are
// constructed with New, which pairs a Learner with the validating
// front-end implementing this interface.
type Agent interface {
	// Initialize performs any setup the agent requires before
	// training. Idempotency and side effects are Learner-defined.
	Initialize() error

	// Train validates a batch of experience and performs a single
	// training step on it. All tensors in the experience must be
	// shaped [batch, time, ...] and must match CollectDataSpec
	// field-for-field. Weights, when non-nil, holds either a single
	// scalar or one value per batch element and is passed through to
	// the Learner unmodified. Step, when non-nil, is incremented
	// exactly once per call by the Learner.
	Train(experience Experience, weights mat.Vector,
		step *Counter) (*LossInfo, error)

	// TimeStepSpec describes the time steps the agent expects
	TimeStepSpec() timestep.Spec

	// ActionSpec describes the actions produced by the agent
	ActionSpec() nest.Nest[specs.Bounded]

	// Policy returns the current serving policy held by the agent
	Policy() policy.Policy

	// CollectPolicy returns the policy used to gather training data
	CollectPolicy() policy.Policy

	// CollectDataSpec returns the trajectory specification of the
	// experience the agent trains on, as generated by CollectPolicy
	CollectDataSpec() trajectory.Spec

	// TrainSequenceLength returns the fixed time-axis extent required
	// of experience tensors passed to Train, or a value <= 0 when the
	// time axis is unconstrained
	TrainSequenceLength() int

	// DebugSummaries returns whether the Learner should gather debug
	// summaries
	DebugSummaries() bool

	// SummarizeGradsAndVars returns whether the Learner should
	// additionally summarize gradients and variables
	SummarizeGradsAndVars() bool
}

// Experience is the type bound on the data passed to Train. It is
// satisfied by *trajectory.Trajectory; Train rejects any other
// implementation.
type Experience interface {
	// Tensors returns the nested tensor view of the experience
	Tensors() nest.Nest[tensor.Tensor]
}

// Learner implements the algorithm-specific pieces of an agent: setup
// and the training step. The validating front-end calls a Learner only
// with experience that has already passed validation.
type Learner interface {
	// Initialize performs algorithm-specific setup
	Initialize() error

	// Step performs a single training step on a validated batch of
	// experience and returns the loss computed with the pre-step
	// parameters. If weights is non-nil, the loss must be computed
	// consistently with it; how weights are applied is up to the
	// Learner. If step is non-nil, the Learner must increment it
	// exactly once.
	Step(t *trajectory.Trajectory, weights mat.Vector,
		step *Counter) (*LossInfo, error)
}
