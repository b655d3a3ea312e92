package agent

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gorgonia.org/tensor"

	"github.com/Tensorflow-Devs/agents/nest"
	"github.com/Tensorflow-Devs/agents/specs"
)

// Experience tensors carry a batch and a time dimension beyond their
// per-field feature shape.
const outerDims = 2

// checkBatched verifies that every tensor in exp nest-matches spec and
// carries exactly outer leading dimensions beyond the feature shape of
// the corresponding spec leaf. The error enumerates the actual and
// expected shape of every tensor in the structure.
func checkBatched(spec nest.Nest[specs.TensorSpec],
	exp nest.Nest[tensor.Tensor], outer int) error {
	mismatch := !nest.SameStructure(spec, exp)

	if !mismatch {
		nest.Zip(spec, exp, func(_ string, s specs.TensorSpec,
			t tensor.Tensor) error {
			if t == nil {
				mismatch = true
				return nil
			}
			shape := []int(t.Shape())
			if len(shape) != len(s.Shape)+outer {
				mismatch = true
				return nil
			}
			if !slices.Equal(shape[outer:], s.Shape) {
				mismatch = true
			}
			if t.Dtype() != s.Dtype {
				mismatch = true
			}
			return nil
		})
	}

	if mismatch {
		return fmt.Errorf("%w: at least one of the tensors in experience "+
			"does not have %v outer dimensions; tensors should be shaped "+
			"batch x time x features\n"+
			"full shapes of experience tensors:\n%v\n"+
			"full expected shapes (minus outer dimensions):\n%v",
			errBadShape, outer, formatTensorShapes(exp),
			formatSpecShapes(spec))
	}
	return nil
}

// checkSequenceLength verifies that the time axis of every tensor in
// exp has extent want. Assumes checkBatched has already passed.
func checkSequenceLength(exp nest.Nest[tensor.Tensor], want int) error {
	var err error
	nest.Walk(exp, func(_ string, t tensor.Tensor) {
		if err != nil {
			return
		}
		if found := t.Shape()[1]; found != want {
			err = fmt.Errorf("%w: one of the tensors in experience has a "+
				"time axis dim value '%v', but we require dim value '%v'; "+
				"full shape structure of experience:\n%v",
				errBadShape, found, want, formatTensorShapes(exp))
		}
	})
	return err
}

// formatTensorShapes renders one "path: shape" line per tensor in the
// structure, in structure order
func formatTensorShapes(n nest.Nest[tensor.Tensor]) string {
	var b strings.Builder
	nest.Walk(n, func(path string, t tensor.Tensor) {
		if t == nil {
			fmt.Fprintf(&b, "\t%v: <nil>\n", path)
			return
		}
		fmt.Fprintf(&b, "\t%v: %v\n", path, []int(t.Shape()))
	})
	return strings.TrimRight(b.String(), "\n")
}

// formatSpecShapes renders one "path: shape" line per spec leaf in the
// structure, in structure order
func formatSpecShapes(n nest.Nest[specs.TensorSpec]) string {
	var b strings.Builder
	nest.Walk(n, func(path string, s specs.TensorSpec) {
		fmt.Fprintf(&b, "\t%v: %v\n", path, s.Shape)
	})
	return strings.TrimRight(b.String(), "\n")
}
