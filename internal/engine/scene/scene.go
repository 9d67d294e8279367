// Package scene owns directional lights and the objects they cast shadows for.
// It drives the per-frame shadow pass and releases shadow targets on teardown.
package scene

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/shadowcaster/internal/engine/lighting"
	"github.com/Faultbox/shadowcaster/internal/logger"
	"github.com/Faultbox/shadowcaster/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	// Strict validates lights and objects each pass and skips degenerate ones.
	Strict bool
}

// Object is a named object placement.
type Object struct {
	Name      string
	Placement lighting.ObjectPlacement
}

// Draw is one light/object pair of a shadow pass. Target, when set, is
// already bound and cleared.
type Draw struct {
	Light     *lighting.DirectionalLight
	Object    Object
	Transform math.Mat4
	// Target is nil for lights without a shadow map.
	Target lighting.ShadowTarget
}

// Scene manages lights and objects. It is not safe for concurrent mutation.
type Scene struct {
	config  Config
	lights  []*lighting.DirectionalLight
	byID    map[uuid.UUID]*lighting.DirectionalLight
	objects []Object
	log     *zap.Logger
}

// New creates an empty scene.
func New(cfg Config) *Scene {
	return &Scene{
		config: cfg,
		byID:   make(map[uuid.UUID]*lighting.DirectionalLight),
		log:    logger.Named("scene"),
	}
}

// AddLight takes ownership of l, including its shadow target, and returns its ID.
// A light without an ID, or whose ID belongs to another light of the scene,
// is assigned a fresh one. Adding a light twice is a no-op.
func (s *Scene) AddLight(l *lighting.DirectionalLight) uuid.UUID {
	if existing, ok := s.byID[l.ID]; ok {
		if existing == l {
			return l.ID
		}
		l.ID = uuid.Nil
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	s.lights = append(s.lights, l)
	s.byID[l.ID] = l

	s.log.Debug("light added",
		zap.String("name", l.Name),
		zap.Stringer("id", l.ID),
		zap.Bool("shadow", l.HasShadowMap),
	)
	return l.ID
}

// Light returns the light with the given ID.
func (s *Scene) Light(id uuid.UUID) (*lighting.DirectionalLight, bool) {
	l, ok := s.byID[id]
	return l, ok
}

// Lights returns the lights in insertion order.
func (s *Scene) Lights() []*lighting.DirectionalLight {
	out := make([]*lighting.DirectionalLight, len(s.lights))
	copy(out, s.lights)
	return out
}

// AddObject appends an object placement.
func (s *Scene) AddObject(name string, p lighting.ObjectPlacement) {
	s.objects = append(s.objects, Object{Name: name, Placement: p})
}

// Objects returns the objects in insertion order.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Bounds returns the box enclosing every object, treating each as a unit
// cube under its placement. ok is false for an empty scene.
func (s *Scene) Bounds() (b lighting.AABB, ok bool) {
	for i, obj := range s.objects {
		ob := lighting.ObjectBounds(obj.Placement)
		if i == 0 {
			b = ob
			continue
		}
		b = b.Extend(ob)
	}
	return b, len(s.objects) > 0
}

// FitLight replaces the projection of l with one that encloses every object
// as seen from its current placement. It is a no-op for an empty scene.
func (s *Scene) FitLight(l *lighting.DirectionalLight) {
	b, ok := s.Bounds()
	if !ok {
		return
	}
	focal := l.Placement().FocalPoint
	l.Projection = lighting.FitProjection(b.Around(focal), l.Placement().Position.Distance(focal))
	s.log.Debug("projection fitted",
		zap.String("light", l.Name),
		zap.Float32("half_size", l.Projection.Right),
		zap.Float32("far", l.Projection.Far),
	)
}

// ShadowPass computes the light-space transform of every object for every
// light, once each, and hands the result to fn. Lights are visited in
// insertion order, objects likewise. A light's shadow target is bound and
// cleared once before its first object and unbound after its last, so fn
// draws every object of a light into the same depth buffer. The first error
// from fn stops the pass.
func (s *Scene) ShadowPass(fn func(Draw) error) error {
	for _, l := range s.lights {
		if s.config.Strict {
			if err := lighting.ValidatePlacement(l.Placement()); err != nil {
				s.log.Warn("skipping light", zap.String("light", l.Name), zap.Error(err))
				continue
			}
		}
		if err := s.lightPass(l, fn); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) lightPass(l *lighting.DirectionalLight, fn func(Draw) error) error {
	target := l.ShadowTarget()
	if target != nil {
		target.Bind()
		defer target.Unbind()
		target.Clear()
	}

	for _, obj := range s.objects {
		if s.config.Strict {
			if err := lighting.ValidateObject(obj.Placement); err != nil {
				s.log.Warn("skipping object",
					zap.String("light", l.Name),
					zap.String("object", obj.Name),
					zap.Error(err),
				)
				continue
			}
		}

		d := Draw{
			Light:     l,
			Object:    obj,
			Transform: l.LightSpaceTransform(obj.Placement),
			Target:    target,
		}
		if err := fn(d); err != nil {
			return fmt.Errorf("light %q, object %q: %w", l.Name, obj.Name, err)
		}
	}
	return nil
}

// Destroy releases every shadow target and empties the scene.
func (s *Scene) Destroy() {
	for _, l := range s.lights {
		if t := l.ShadowTarget(); t != nil {
			t.Destroy()
		}
	}
	s.log.Debug("scene destroyed", zap.Int("lights", len(s.lights)))

	s.lights = nil
	s.objects = nil
	s.byID = make(map[uuid.UUID]*lighting.DirectionalLight)
}
