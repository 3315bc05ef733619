// Package testing provides test utilities for the autologic library.
//
// This package offers helpers for exercising the scheduling pipeline,
// following Go's convention of a dedicated testing-utilities package
// (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes through testing.T
//   - NewParticipant: Compact participant constructor for fixtures
//   - QualsFor: Qualifications record from a role list
//
// Example usage:
//
//	import (
//	    "testing"
//	    schedtest "github.com/joshuavictorchen/autologic-sub000/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    logger := schedtest.NewTestLogger(t)
//	    // Pass logger via autologic.WithLogger
//	}
package testing
