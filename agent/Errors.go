package agent

import "errors"

// AgentError implements errors arising from agent construction and
// training.
type AgentError struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *AgentError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AgentError) Unwrap() error {
	return e.Err
}

var errNoPolicy = errors.New("no policy provided")

var errNoCollectPolicy = errors.New("no collect policy provided")

var errNoLearner = errors.New("no learner provided")

var errOverriddenMethod = errors.New("learner re-declares a contract method")

var errNotTrajectory = errors.New("experience must be a Trajectory")

var errNoLossInfo = errors.New("learner returned no LossInfo")

var errBadShape = errors.New("experience does not match collect data spec")

// IsConfigError returns whether an error reports that an agent was
// constructed with an invalid configuration or an illegal Learner.
func IsConfigError(err error) bool {
	return errors.Is(err, errNoPolicy) ||
		errors.Is(err, errNoCollectPolicy) ||
		errors.Is(err, errNoLearner) ||
		errors.Is(err, errOverriddenMethod)
}

// IsTypeError returns whether an error reports that the value passed
// to or returned from a training step had the wrong type.
func IsTypeError(err error) bool {
	return errors.Is(err, errNotTrajectory) || errors.Is(err, errNoLossInfo)
}

// IsShapeError returns whether an error reports that experience
// tensors failed the outer-dimension or fixed-sequence-length checks.
func IsShapeError(err error) bool {
	return errors.Is(err, errBadShape)
}
