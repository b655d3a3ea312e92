package agent

import (
	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/policy"
	"github.com/Tensorflow-Devs/agents/specs"
	"github.com/Tensorflow-Devs/agents/timestep"
)

// Config represents a configuration for creating an agent. All fields
// are set once and treated as immutable for the agent's lifetime.
type Config struct {
	// TimeStepSpec describes the time steps the agent expects
	TimeStepSpec timestep.Spec

	// ActionSpec describes the actions produced by the agent
	ActionSpec nest.Nest[specs.Bounded]

	// Policy is the agent's current serving policy
	Policy policy.Policy

	// CollectPolicy is the policy used to gather training data. Its
	// trajectory specification determines the structure of the
	// experience the agent trains on.
	CollectPolicy policy.Policy

	// TrainSequenceLength is the number of time steps required from
	// tensors in experience passed to Train. All experience tensors
	// are shaped [batch, time, ...], and for some agents the time
	// extent must be fixed. For example, single-transition Q-learning
	// requires 2 time steps per sequence. A value <= 0 leaves the
	// time axis unconstrained.
	TrainSequenceLength int

	// DebugSummaries indicates whether the Learner should gather
	// debug summaries
	DebugSummaries bool

	// SummarizeGradsAndVars indicates whether the Learner should
	// additionally summarize gradients and variables
	SummarizeGradsAndVars bool
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c Config) Validate() error {
	if c.Policy == nil {
		return &AgentError{Op: "validate", Err: errNoPolicy}
	}
	if c.CollectPolicy == nil {
		return &AgentError{Op: "validate", Err: errNoCollectPolicy}
	}
	return nil
}
