// Package policy defines the action-selection capability an agent
// holds, along with bundled policies usable for data collection.
//
// Agents usually hold two policies: the policy used at serving time
// and a collect policy used while gathering training data. The two may
// differ, for example a greedy serving policy paired with an
// exploratory collect policy.
package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Tensorflow-Devs/agents/timestep"
	"github.com/Tensorflow-Devs/agents/trajectory"
)

// Policy selects actions from time steps and describes the experience
// it generates.
type Policy interface {
	// TrajectorySpec returns the exact nested structure of the
	// trajectories this policy generates. The returned spec must be
	// stable for the lifetime of the policy.
	TrajectorySpec() trajectory.Spec

	// SelectAction selects an action given the current timestep
	SelectAction(t timestep.TimeStep) (mat.Vector, error)
}
