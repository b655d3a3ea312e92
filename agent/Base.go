package agent

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/policy"
	"github.com/Tensorflow-Devs/agents/specs"
	"github.com/Tensorflow-Devs/agents/timestep"
	"github.com/Tensorflow-Devs/agents/trajectory"
)

// Base is the validating front-end shared by every agent. It enforces
// the calling convention of Train, then delegates the actual training
// step to the Learner it was constructed with. Base holds no mutable
// state after construction.
type Base struct {
	learner Learner

	timeStepSpec        timestep.Spec
	actionSpec          nest.Nest[specs.Bounded]
	policy              policy.Policy
	collectPolicy       policy.Policy
	trainSequenceLength int

	debugSummaries        bool
	summarizeGradsAndVars bool
}

// New constructs an agent from a configuration and a Learner.
//
// The Learner must implement only the Learner capability: a Learner
// that also declares one of the contract's validating entry points
// (Train or CollectDataSpec) would bypass validation when called
// directly, so construction fails with a configuration error instead.
func New(c Config, learner Learner) (*Base, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if learner == nil {
		return nil, &AgentError{Op: "new", Err: errNoLearner}
	}
	if err := checkLearnerMethods(learner); err != nil {
		return nil, err
	}

	return &Base{
		learner:               learner,
		timeStepSpec:          c.TimeStepSpec,
		actionSpec:            c.ActionSpec,
		policy:                c.Policy,
		collectPolicy:         c.CollectPolicy,
		trainSequenceLength:   c.TrainSequenceLength,
		debugSummaries:        c.DebugSummaries,
		summarizeGradsAndVars: c.SummarizeGradsAndVars,
	}, nil
}

// checkLearnerMethods rejects Learners that structurally re-declare a
// non-extension method of the contract.
func checkLearnerMethods(learner Learner) error {
	if _, ok := learner.(interface {
		Train(Experience, mat.Vector, *Counter) (*LossInfo, error)
	}); ok {
		return &AgentError{Op: "new",
			Err: fmt.Errorf("%w: Train", errOverriddenMethod)}
	}
	if _, ok := learner.(interface {
		CollectDataSpec() trajectory.Spec
	}); ok {
		return &AgentError{Op: "new",
			Err: fmt.Errorf("%w: CollectDataSpec", errOverriddenMethod)}
	}
	return nil
}

// Initialize delegates to the Learner's setup unconditionally
func (b *Base) Initialize() error {
	return b.learner.Initialize()
}

// Train validates a batch of experience and performs a single training
// step on it.
//
// The experience must be a *trajectory.Trajectory whose tensors match
// CollectDataSpec field-for-field with exactly two outer dimensions,
// shaped batch x time x features. When TrainSequenceLength is
// constrained, every tensor's time axis must have exactly that extent.
// Weights and step are passed through to the Learner unmodified.
//
// The returned LossInfo is the Learner's, unchanged: the loss computed
// with the pre-step parameters, even though the step has been applied
// by the time Train returns.
func (b *Base) Train(experience Experience, weights mat.Vector,
	step *Counter) (*LossInfo, error) {
	// A typed-nil *trajectory.Trajectory satisfies Experience but has
	// no tensors to validate
	traj, ok := experience.(*trajectory.Trajectory)
	if !ok || traj == nil {
		return nil, &AgentError{Op: "train", Err: fmt.Errorf(
			"%w, saw type: %T", errNotTrajectory, experience)}
	}

	spec := b.CollectDataSpec().Nest()
	tensors := traj.Tensors()

	if err := checkBatched(spec, tensors, outerDims); err != nil {
		return nil, &AgentError{Op: "train", Err: err}
	}

	if b.trainSequenceLength > 0 {
		err := checkSequenceLength(tensors, b.trainSequenceLength)
		if err != nil {
			return nil, &AgentError{Op: "train", Err: err}
		}
	}

	lossInfo, err := b.learner.Step(traj, weights, step)
	if err != nil {
		return nil, err
	}
	if lossInfo == nil {
		return nil, &AgentError{Op: "train", Err: errNoLossInfo}
	}
	return lossInfo, nil
}

// TimeStepSpec describes the time steps the agent expects
func (b *Base) TimeStepSpec() timestep.Spec {
	return b.timeStepSpec
}

// ActionSpec describes the actions produced by the agent
func (b *Base) ActionSpec() nest.Nest[specs.Bounded] {
	return b.actionSpec
}

// Policy returns the current serving policy held by the agent
func (b *Base) Policy() policy.Policy {
	return b.policy
}

// CollectPolicy returns the policy used to gather training data
func (b *Base) CollectPolicy() policy.Policy {
	return b.collectPolicy
}

// CollectDataSpec returns the trajectory specification of the
// experience the agent trains on. It is computed on each access from
// the collect policy, not stored.
func (b *Base) CollectDataSpec() trajectory.Spec {
	return b.collectPolicy.TrajectorySpec()
}

// TrainSequenceLength returns the fixed time-axis extent required of
// experience tensors passed to Train, or a value <= 0 when the time
// axis is unconstrained
func (b *Base) TrainSequenceLength() int {
	return b.trainSequenceLength
}

// DebugSummaries returns whether the Learner should gather debug
// summaries
func (b *Base) DebugSummaries() bool {
	return b.debugSummaries
}

// SummarizeGradsAndVars returns whether the Learner should
// additionally summarize gradients and variables
func (b *Base) SummarizeGradsAndVars() bool {
	return b.summarizeGradsAndVars
}
