package shaft

import "fmt"

// DomainError reports non-physical geometry or material input reaching the
// stress model. The diameter search never produces one.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("non-physical %s: %g", e.Quantity, e.Value)
}

// ValidationError represents an invalid shaft definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
