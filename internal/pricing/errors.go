package pricing

import "fmt"

// PerformanceError locates a lookup or pricing failure within an invoice.
// It unwraps to the underlying domain error.
type PerformanceError struct {
	Index  int
	PlayID string
	Err    error
}

func (e *PerformanceError) Error() string {
	return fmt.Sprintf("performance %d (%s): %v", e.Index+1, e.PlayID, e.Err)
}

func (e *PerformanceError) Unwrap() error {
	return e.Err
}
