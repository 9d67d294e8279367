// Package lighting builds directional light shadow transforms.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/shadowcaster/pkg/math"
)

// verticalThreshold is the |dir.Y| above which +Y can no longer serve as up.
const verticalThreshold = 0.99

// SunDirection converts longitude/latitude angles to a light direction vector.
// Longitude is rotation around Y axis (0-360), latitude is elevation from horizon (0-90).
// Returns a normalized direction vector pointing towards the sun.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := float64(longitude) * gomath.Pi / 180.0
	latRad := float64(latitude) * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}

// PlacementFromSun places the shadow camera distance units from focal along
// dir (the normalized direction TO the light).
func PlacementFromSun(dir, focal math.Vec3, distance float32) LightPlacement {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	// A near-vertical sun would make +Y parallel to the view direction.
	if abs32(dir.Y) > verticalThreshold {
		up = math.Vec3{X: 0, Y: 0, Z: 1}
	}

	return LightPlacement{
		Position:   focal.Add(dir.Scale(distance)),
		FocalPoint: focal,
		Up:         up,
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
