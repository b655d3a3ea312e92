package agent

import "fmt"

// LossInfo bundles the scalar loss of a single training step with any
// auxiliary per-term values the Learner reports, for example a
// breakdown of the loss into its components. A fresh LossInfo is
// produced by every training step; the contract never retains one.
type LossInfo struct {
	Loss  float64
	Extra map[string]float64
}

func (l LossInfo) String() string {
	if len(l.Extra) == 0 {
		return fmt.Sprintf("LossInfo | Loss: %v", l.Loss)
	}
	return fmt.Sprintf("LossInfo | Loss: %v  |  Extra: %v", l.Loss, l.Extra)
}

// Counter counts completed training steps. A Counter is owned by the
// caller and shared with the Learner, which increments it exactly once
// per training step when one is supplied; the validating front-end
// never increments it.
type Counter struct {
	n int64
}

// Increment adds one to the counter and returns the new count
func (c *Counter) Increment() int64 {
	c.n++
	return c.n
}

// Count returns the current count
func (c *Counter) Count() int64 {
	return c.n
}
