// Package specs implements specifications describing the shape, type,
// and bounds of the tensors exchanged between an agent, its policies,
// and its experience. A specification describes data; it holds no data
// itself.
package specs

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorgonia.org/tensor"
)

// TensorSpec describes the shape and data type of a single tensor,
// excluding any outer batch or time dimensions. A scalar tensor has a
// nil Shape.
type TensorSpec struct {
	Name  string
	Shape []int
	Dtype tensor.Dtype
}

// New constructs a new TensorSpec
func New(name string, shape []int, dtype tensor.Dtype) TensorSpec {
	return TensorSpec{Name: name, Shape: shape, Dtype: dtype}
}

// Scalar constructs a TensorSpec describing a scalar value
func Scalar(name string, dtype tensor.Dtype) TensorSpec {
	return TensorSpec{Name: name, Dtype: dtype}
}

// NumElements returns the number of elements in a tensor described by
// the spec
func (s TensorSpec) NumElements() int {
	n := 1
	for _, dim := range s.Shape {
		n *= dim
	}
	return n
}

// Equal returns whether two specifications describe the same tensors
func (s TensorSpec) Equal(o TensorSpec) bool {
	return s.Name == o.Name && s.Dtype == o.Dtype &&
		slices.Equal(s.Shape, o.Shape)
}

func (s TensorSpec) String() string {
	return fmt.Sprintf("%v%v %v", s.Name, s.Shape, s.Dtype)
}
