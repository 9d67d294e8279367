package lighting

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Faultbox/shadowcaster/pkg/math"
)

// ErrNoTargetFactory is returned when a shadow-casting light is created without
// a way to allocate its shadow target.
var ErrNoTargetFactory = errors.New("shadow map requested without a target factory")

// ShadowTarget is an off-screen depth render target owned by a light.
// Bind does not clear; a pass calls Clear once after binding and then draws
// every object before Unbind.
type ShadowTarget interface {
	Bind()
	Clear()
	Unbind()
	BindTexture(textureUnit uint32)
	Resolution() int32
	Destroy()
}

// TargetFactory allocates a shadow target for a new light.
type TargetFactory func() (ShadowTarget, error)

// LightPlacement positions the light's shadow camera.
// Up must not be parallel to FocalPoint - Position.
type LightPlacement struct {
	Position   math.Vec3
	FocalPoint math.Vec3
	Up         math.Vec3
}

// ObjectPlacement places one object in the world.
// Scale components must be non-zero for the model matrix to be invertible.
type ObjectPlacement struct {
	Translation math.Vec3
	Scale       math.Vec3
}

// Projection is the orthographic volume of the shadow camera.
type Projection struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// DefaultProjection returns the ±100 x 0.1..1024 volume. Geometry outside it
// is clipped from the shadow map.
func DefaultProjection() Projection {
	return Projection{
		Left:   -100,
		Right:  100,
		Bottom: -100,
		Top:    100,
		Near:   0.1,
		Far:    1024,
	}
}

// IsZero reports whether no bound has been set.
func (p Projection) IsZero() bool {
	return p == Projection{}
}

// Matrix builds the orthographic projection matrix.
func (p Projection) Matrix(mm MatrixMath) math.Mat4 {
	return mm.Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
}

// DirectionalConfig describes a light at creation time.
type DirectionalConfig struct {
	Name      string
	Placement LightPlacement
	// Projection falls back to DefaultProjection when left zero.
	Projection   Projection
	Intensity    float32
	Color        [3]float32
	HasShadowMap bool
}

// DirectionalLight is a shadow-casting directional light.
type DirectionalLight struct {
	ID           uuid.UUID
	Name         string
	Projection   Projection
	Intensity    float32
	Color        [3]float32
	HasShadowMap bool

	placement LightPlacement
	mm        MatrixMath
	target    ShadowTarget
}

// NewDirectionalLight creates a light. A nil mm selects StdMath.
// When cfg.HasShadowMap is set the factory is called once; if that fails no
// light is returned.
func NewDirectionalLight(cfg DirectionalConfig, mm MatrixMath, factory TargetFactory) (*DirectionalLight, error) {
	if mm == nil {
		mm = StdMath{}
	}

	l := &DirectionalLight{
		Name:         cfg.Name,
		Projection:   cfg.Projection,
		Intensity:    cfg.Intensity,
		Color:        cfg.Color,
		HasShadowMap: cfg.HasShadowMap,
		placement:    cfg.Placement,
		mm:           mm,
	}
	if l.Projection.IsZero() {
		l.Projection = DefaultProjection()
	}

	if cfg.HasShadowMap {
		if factory == nil {
			return nil, fmt.Errorf("light %q: %w", cfg.Name, ErrNoTargetFactory)
		}
		target, err := factory()
		if err != nil {
			return nil, fmt.Errorf("light %q: creating shadow target: %w", cfg.Name, err)
		}
		l.target = target
	}

	return l, nil
}

// ShadowTarget returns the depth target, or nil when the light casts no shadow.
// The owning scene destroys it.
func (l *DirectionalLight) ShadowTarget() ShadowTarget {
	return l.target
}

// Placement returns the current light placement.
func (l *DirectionalLight) Placement() LightPlacement {
	return l.placement
}

// Aim replaces the light placement. It is the only way to move a light and
// must not run concurrently with LightSpaceTransform.
func (l *DirectionalLight) Aim(p LightPlacement) {
	l.placement = p
}

// ModelMatrix returns T(translation) * S(scale).
func (l *DirectionalLight) ModelMatrix(obj ObjectPlacement) math.Mat4 {
	model := l.mm.Translate(l.mm.Identity(), obj.Translation)
	return l.mm.Scale(model, obj.Scale)
}

// ViewMatrix returns the look-at matrix of the shadow camera.
func (l *DirectionalLight) ViewMatrix() math.Mat4 {
	return l.mm.LookAt(l.placement.Position, l.placement.FocalPoint, l.placement.Up)
}

// ProjectionMatrix returns the orthographic matrix of the shadow camera.
func (l *DirectionalLight) ProjectionMatrix() math.Mat4 {
	return l.Projection.Matrix(l.mm)
}

// LightSpaceTransform returns Projection * (View * Model) for obj.
// Degenerate inputs are not detected; they yield a degenerate matrix.
// Safe for concurrent use as long as the light is not re-aimed.
func (l *DirectionalLight) LightSpaceTransform(obj ObjectPlacement) math.Mat4 {
	model := l.ModelMatrix(obj)
	view := l.ViewMatrix()
	proj := l.ProjectionMatrix()

	return l.mm.Mul(proj, l.mm.Mul(view, model))
}
