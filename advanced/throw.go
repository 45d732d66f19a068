package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors through every mesh operation would add a lot of noise for
// conditions that only arise from a corrupt mesh. Instead, we panic, and the
// public API recovers to convert to an error.

// Raised when the mesh is in a state correct operation can never produce, for
// example removing a triangle that is not in the mesh.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Message
}

type triangulatePanic struct {
	err error
}

// Panic with an InvariantViolation.
func fatalf(format string, args ...interface{}) {
	panic(triangulatePanic{errors.WithStack(&InvariantViolation{fmt.Sprintf(format, args...)})})
}

// Convert a recovered value into an error if it came from fatalf. Any other
// panic is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if p, ok := r.(triangulatePanic); ok {
			return p.err
		}
		panic(r)
	}
	return nil
}

func IsInvariantViolation(err error) bool {
	var violation *InvariantViolation
	return errors.As(err, &violation)
}
