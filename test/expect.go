// Package test contains helper functions to remove common boilerplate from
// test functions.
//
// The Expect*() functions report a failure with t.Errorf() and return false.
// The Demand*() functions report a failure with t.Fatalf() and so end the test
// immediately.
package test

import (
	"math"
	"testing"
)

// ExpectEquality compares a value with an expected value of the same type.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// DemandEquality is the same as ExpectEquality but ends the test on failure.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
	}
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T) bool {
	t.Helper()
	if value == unexpectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, unexpectedValue)
		return false
	}
	return true
}

// ExpectApproximate compares two floating point values and fails if the
// difference is larger than the tolerance.
func ExpectApproximate(t *testing.T, value float64, expectedValue float64, tolerance float64) bool {
	t.Helper()
	if math.Abs(value-expectedValue) > tolerance {
		t.Errorf("approximation test failed: '%v' is not within %v of '%v'", value, tolerance, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests that the value indicates success. Values of type bool
// succeed when true and values of type error succeed when nil.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("a success value is expected for type %T", v)
			return false
		}
	case error:
		if v != nil {
			t.Errorf("a success value is expected for type %T (%s)", v, v)
			return false
		}
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}
	return true
}

// ExpectFailure is the inverse of ExpectSuccess.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("a failure value is expected for type %T", v)
			return false
		}
	case error:
		if v == nil {
			t.Errorf("a failure value is expected for type %T", v)
			return false
		}
	case nil:
		t.Errorf("a failure value is expected for type %T", v)
		return false
	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}
	return true
}
