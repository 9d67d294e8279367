package lighting

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/shadowcaster/pkg/math"
)

func TestValidatePlacement(t *testing.T) {
	nan := float32(gomath.NaN())

	tests := []struct {
		name    string
		p       LightPlacement
		wantErr bool
	}{
		{"front", frontPlacement, false},
		{"oblique", LightPlacement{Position: math.Vec3{X: 10, Y: 20, Z: 5}, Up: math.Vec3{Y: 1}}, false},
		{"coincident", LightPlacement{Position: math.Vec3{X: 1}, FocalPoint: math.Vec3{X: 1}, Up: math.Vec3{Y: 1}}, true},
		{"zero up", LightPlacement{Position: math.Vec3{Z: 10}}, true},
		{"parallel up", LightPlacement{Position: math.Vec3{Y: 10}, Up: math.Vec3{Y: 1}}, true},
		{"antiparallel up", LightPlacement{Position: math.Vec3{Y: 10}, Up: math.Vec3{Y: -3}}, true},
		{"nan", LightPlacement{Position: math.Vec3{X: nan}, Up: math.Vec3{Y: 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlacement(tt.p)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDegenerateGeometry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateObject(t *testing.T) {
	inf := float32(gomath.Inf(1))

	tests := []struct {
		name    string
		o       ObjectPlacement
		wantErr string
	}{
		{"unit", unitObject, ""},
		{"negative scale", ObjectPlacement{Scale: math.Vec3{X: -1, Y: 2, Z: 0.5}}, ""},
		{"zero x", ObjectPlacement{Scale: math.Vec3{Y: 1, Z: 1}}, "zero scale on x axis"},
		{"zero z", ObjectPlacement{Scale: math.Vec3{X: 1, Y: 1}}, "zero scale on z axis"},
		{"inf translation", ObjectPlacement{Translation: math.Vec3{Z: inf}, Scale: math.Vec3{X: 1, Y: 1, Z: 1}}, "non-finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObject(tt.o)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrDegenerateGeometry)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidation_NotAppliedByTransform(t *testing.T) {
	l := newTestLight(t, nil, LightPlacement{Position: math.Vec3{Y: 10}, Up: math.Vec3{Y: 1}})
	assert.Error(t, ValidatePlacement(l.Placement()))

	// The degenerate basis propagates into the result instead of being corrected.
	assert.True(t, l.LightSpaceTransform(unitObject).Determinant() == 0)
}
