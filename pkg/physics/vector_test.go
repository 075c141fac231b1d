// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "negative_vectors",
			v1:       Vector2D{X: -3, Y: -4},
			v2:       Vector2D{X: -1, Y: -2},
			expected: Vector2D{X: -4, Y: -6},
		},
		{
			name:     "zero_vector",
			v1:       Vector2D{X: 0, Y: 0},
			v2:       Vector2D{X: 5, Y: -3},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result.X != tt.expected.X || result.Y != tt.expected.Y {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Scale(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		factor   float64
		expected Vector2D
	}{
		{
			name:     "scale_up",
			v:        Vector2D{X: 2, Y: -3},
			factor:   2,
			expected: Vector2D{X: 4, Y: -6},
		},
		{
			name:     "scale_by_zero",
			v:        Vector2D{X: 7, Y: 9},
			factor:   0,
			expected: Vector2D{X: 0, Y: 0},
		},
		{
			name:     "negative_factor",
			v:        Vector2D{X: 1, Y: -1},
			factor:   -1.5,
			expected: Vector2D{X: -1.5, Y: 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Scale(tt.factor)
			if result.X != tt.expected.X || result.Y != tt.expected.Y {
				t.Errorf("Scale() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected Vector2D
	}{
		{
			name:     "axis_aligned",
			v:        Vector2D{X: 0, Y: -5},
			expected: Vector2D{X: 0, Y: -1},
		},
		{
			name:     "zero_vector",
			v:        Vector2D{X: 0, Y: 0},
			expected: Vector2D{X: 0, Y: 0},
		},
		{
			name:     "diagonal",
			v:        Vector2D{X: 3, Y: 4},
			expected: Vector2D{X: 0.6, Y: 0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if math.Abs(result.X-tt.expected.X) > 1e-9 || math.Abs(result.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Normalize() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected bool
	}{
		{name: "finite", v: Vector2D{X: 1, Y: -2}, expected: true},
		{name: "nan_x", v: Vector2D{X: math.NaN(), Y: 0}, expected: false},
		{name: "inf_y", v: Vector2D{X: 0, Y: math.Inf(1)}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.expected {
				t.Errorf("IsFinite() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected float64
	}{
		{name: "below_range", val: -3.2, expected: -1},
		{name: "above_range", val: 2.7, expected: 1},
		{name: "inside_range", val: 0.4, expected: 0.4},
		{name: "at_lower_bound", val: -1, expected: -1},
		{name: "at_upper_bound", val: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, -1, 1); got != tt.expected {
				t.Errorf("Clamp(%v, -1, 1) = %v, expected %v", tt.val, got, tt.expected)
			}
		})
	}
}
