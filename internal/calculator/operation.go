package calculator

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Operation is one of the four arithmetic operations the calculator dispatches to.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = [...]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

// String returns the lowercase wire name of the operation.
func (o Operation) String() string {
	if o < OpAdd || o > OpDivide {
		return "unknown"
	}
	return operationNames[o]
}

// SupportedOperations lists the accepted operation names in dispatch order.
func SupportedOperations() []string {
	return []string{OpAdd.String(), OpSubtract.String(), OpMultiply.String(), OpDivide.String()}
}

// ParseOperation maps a case-insensitive name to its Operation. Surrounding
// whitespace is not trimmed.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(name) {
	case "add":
		return OpAdd, nil
	case "subtract":
		return OpSubtract, nil
	case "multiply":
		return OpMultiply, nil
	case "divide":
		return OpDivide, nil
	default:
		return 0, &InvalidOperationError{Operation: name}
	}
}

// Apply runs the operation on a and b.
func (o Operation) Apply(a, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	}
	return 0, errors.AssertionFailedf("unhandled operation %d", int(o))
}

// Add returns a + b.
func Add(a, b float64) float64 { return a + b }

// Subtract returns a - b.
func Subtract(a, b float64) float64 { return a - b }

// Multiply returns a * b.
func Multiply(a, b float64) float64 { return a * b }

// Divide returns a / b. Both 0 and -0 are rejected as denominators.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Calculate parses name and applies the resulting operation to a and b.
func Calculate(a, b float64, name string) (float64, error) {
	op, err := ParseOperation(name)
	if err != nil {
		return 0, err
	}
	return op.Apply(a, b)
}
