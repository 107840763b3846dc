package models

import "time"

// Location is a beach matched by the weather provider's search endpoint.
type Location struct {
	ID     int
	Name   string
	Region string
	State  string
}

// Tide represents the tide reading at a point in time
type Tide struct {
	Height float64 // meters
	State  string  // e.g., "high", "low", "rising", "falling"
}

// Wind represents the wind reading at a point in time
type Wind struct {
	SpeedKPH     float64
	DirectionDeg float64 // degrees, direction wind is coming from
}

// Swell represents the swell reading at a point in time
type Swell struct {
	HeightM      float64
	PeriodSec    float64
	DirectionDeg float64
}

// Snapshot represents surf conditions at a beach at a point in time.
// A snapshot is immutable once fetched; nothing mutates it downstream.
type Snapshot struct {
	Tide       Tide
	Wind       Wind
	Swell      Swell
	ObservedAt time.Time
}

// Assessment is the model's verdict on a snapshot
type Assessment struct {
	Score       float64 // 0-10
	Explanation string
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint converts a direction in degrees to a 16-point compass label
func CompassPoint(deg float64) string {
	for deg < 0 {
		deg += 360
	}
	idx := int((deg+11.25)/22.5) % 16
	return compassPoints[idx]
}
