package lighting

import (
	"errors"
	"fmt"
)

// ErrDegenerateGeometry marks inputs that produce a singular or NaN light transform.
var ErrDegenerateGeometry = errors.New("degenerate geometry input")

// parallelEpsilon bounds |dir x up| for unit vectors before they count as parallel.
const parallelEpsilon = 1e-6

// ValidatePlacement checks a light placement for a usable look-at basis.
func ValidatePlacement(p LightPlacement) error {
	if !p.Position.IsFinite() || !p.FocalPoint.IsFinite() || !p.Up.IsFinite() {
		return fmt.Errorf("%w: non-finite light placement", ErrDegenerateGeometry)
	}

	dir := p.FocalPoint.Sub(p.Position)
	if dir.Length() == 0 {
		return fmt.Errorf("%w: position and focal point coincide at %v", ErrDegenerateGeometry, p.Position)
	}
	if p.Up.Length() == 0 {
		return fmt.Errorf("%w: zero up vector", ErrDegenerateGeometry)
	}
	if dir.Normalize().Cross(p.Up.Normalize()).Length() < parallelEpsilon {
		return fmt.Errorf("%w: up %v is parallel to view direction %v", ErrDegenerateGeometry, p.Up, dir)
	}
	return nil
}

// ValidateObject checks an object placement for a non-singular model matrix.
func ValidateObject(o ObjectPlacement) error {
	if !o.Translation.IsFinite() || !o.Scale.IsFinite() {
		return fmt.Errorf("%w: non-finite object placement", ErrDegenerateGeometry)
	}
	for axis, s := range [3]float32{o.Scale.X, o.Scale.Y, o.Scale.Z} {
		if s == 0 {
			return fmt.Errorf("%w: zero scale on %s axis", ErrDegenerateGeometry, axisName(axis))
		}
	}
	return nil
}

func axisName(i int) string {
	return [...]string{"x", "y", "z"}[i]
}

