package models

import "testing"

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want string
	}{
		{"north", 0, "N"},
		{"east", 90, "E"},
		{"south", 180, "S"},
		{"west", 270, "W"},
		{"northeast", 45, "NE"},
		{"south-southwest", 202.5, "SSW"},
		{"wraps past 360", 359, "N"},
		{"negative normalizes", -90, "W"},
		{"just below boundary", 11.2, "N"},
		{"just above boundary", 11.3, "NNE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompassPoint(tt.deg); got != tt.want {
				t.Errorf("CompassPoint(%v) = %s, want %s", tt.deg, got, tt.want)
			}
		})
	}
}
