package errors

import "math"

// ValidateNodeCount checks a requested number of generated nodes.
// Counts must be non-negative; zero produces an empty graph.
func ValidateNodeCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "node count must not be negative, got %d", n)
	}
	return nil
}

// ValidatePositive checks that a named configuration value is a finite
// number greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be a positive number, got %v", name, v)
	}
	return nil
}

// ValidateProbability checks that v lies in [0, 1].
func ValidateProbability(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return New(ErrCodeInvalidConfig, "%s must be between 0 and 1, got %v", name, v)
	}
	return nil
}

// ValidateFinite checks that a named value is neither NaN nor infinite.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", name, v)
	}
	return nil
}
