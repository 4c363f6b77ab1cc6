package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading error returns through the per-cell arithmetic would clutter every
// helper in the placement path. Instead the internals panic with a typed
// error and the public API recovers to convert it back.

// PlacementError is the marker for errors thrown by the placement internals.
type PlacementError interface {
	error
	placementError()
}

// DegenerateCellError reports a bounded cell whose fan decomposition has a
// zero or non-finite total area.
type DegenerateCellError struct {
	Region int
	Area   float64
}

func (e *DegenerateCellError) Error() string {
	return fmt.Sprintf("degenerate cell: region %d has total area %v", e.Region, e.Area)
}

func (e *DegenerateCellError) placementError() {}

// InvalidInputError reports tessellation input that is malformed before any
// randomness is drawn: mismatched array lengths, out-of-range indices, or a
// bounded ring with fewer than three vertices.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func (e *InvalidInputError) placementError() {}

func throwDegenerate(region int, area float64) {
	panic(&DegenerateCellError{Region: region, Area: area})
}

func throwInvalidf(format string, args ...interface{}) {
	panic(&InvalidInputError{Reason: invalidf(format, args...)})
}

func invalidf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// fatalf panics with a generic placement error for states that violate the
// driver's own invariants rather than the caller's contract.
func fatalf(format string, args ...interface{}) {
	panic(invariantError{errors.Errorf(format, args...)})
}

type invariantError struct {
	error
}

func (invariantError) placementError() {}

// HandlePlacePanicRecover converts a recovered placement panic into an
// error. Panics that did not come from the placement internals are re-raised.
func HandlePlacePanicRecover(r interface{}) error {
	if r != nil {
		if placeErr, ok := r.(PlacementError); ok {
			return placeErr
		}
		panic(r)
	}
	return nil
}
