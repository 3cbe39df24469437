package calculator

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrDivisionByZero is returned by Divide when the denominator is zero.
var ErrDivisionByZero = errors.New("division by zero")

// InvalidOperationError reports an operation name outside the supported set.
// Operation holds the name exactly as the caller sent it.
type InvalidOperationError struct {
	Operation string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid operation %q", e.Operation)
}

// detailMessage renders the client-facing message for a domain error. ok is
// false for anything that is not a domain error.
func detailMessage(err error) (msg string, ok bool) {
	var invalid *InvalidOperationError
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return "Cannot divide by zero", true
	case errors.As(err, &invalid):
		return fmt.Sprintf("Invalid operation: %s. Supported operations: %s",
			invalid.Operation, strings.Join(SupportedOperations(), ", ")), true
	}
	return "", false
}
