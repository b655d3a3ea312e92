package specs

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Bounded is a TensorSpec with elementwise lower and upper bounds.
// Action specifications are Bounded so that policies know the legal
// range of each action dimension.
type Bounded struct {
	TensorSpec
	LowerBound mat.Vector
	UpperBound mat.Vector
}

// NewBounded constructs a new bounded specification. The bound vectors
// must have one element per element of the described tensor.
func NewBounded(spec TensorSpec, lowerBound, upperBound mat.Vector) Bounded {
	if lowerBound.Len() != spec.NumElements() {
		panic(fmt.Sprintf("newbounded: lower bound length %v must match "+
			"spec size %v", lowerBound.Len(), spec.NumElements()))
	}
	if upperBound.Len() != spec.NumElements() {
		panic(fmt.Sprintf("newbounded: upper bound length %v must match "+
			"spec size %v", upperBound.Len(), spec.NumElements()))
	}
	for i := 0; i < lowerBound.Len(); i++ {
		if lowerBound.AtVec(i) > upperBound.AtVec(i) {
			panic(fmt.Sprintf("newbounded: lower bound %v exceeds upper "+
				"bound %v at index %v", lowerBound.AtVec(i),
				upperBound.AtVec(i), i))
		}
	}
	return Bounded{TensorSpec: spec, LowerBound: lowerBound, UpperBound: upperBound}
}

// Equal returns whether two bounded specifications describe the same
// tensors with the same bounds
func (b Bounded) Equal(o Bounded) bool {
	return b.TensorSpec.Equal(o.TensorSpec) &&
		mat.Equal(b.LowerBound, o.LowerBound) &&
		mat.Equal(b.UpperBound, o.UpperBound)
}

func (b Bounded) String() string {
	return fmt.Sprintf("%v in [%v, %v]", b.TensorSpec,
		mat.Formatted(b.LowerBound.T()), mat.Formatted(b.UpperBound.T()))
}
