package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/shadowcaster/internal/config"
	"github.com/Faultbox/shadowcaster/internal/engine/lighting"
	"github.com/Faultbox/shadowcaster/internal/logger"
	"github.com/Faultbox/shadowcaster/pkg/math"
)

// FromConfig builds a scene from configuration. factory allocates the shadow
// target of each shadow-casting light. If any light fails, targets created so
// far are released and no scene is returned.
func FromConfig(cfg *config.Config, factory lighting.TargetFactory) (*Scene, error) {
	mm, err := lighting.MathBackend(cfg.Math.Backend)
	if err != nil {
		return nil, err
	}

	s := New(Config{Strict: cfg.Shadow.Strict})
	for _, oc := range cfg.Objects {
		s.AddObject(oc.Name, lighting.ObjectPlacement{
			Translation: math.V3(oc.Translation),
			Scale:       math.V3(oc.ScaleOrDefault()),
		})
	}

	for _, lc := range cfg.Lights {
		l, err := lighting.NewDirectionalLight(LightParams(lc), mm, factory)
		if err != nil {
			s.Destroy()
			return nil, fmt.Errorf("creating light: %w", err)
		}
		if lc.FitToObjects {
			s.FitLight(l)
		}
		s.AddLight(l)
	}

	logger.Info("scene loaded",
		zap.Int("lights", len(s.lights)),
		zap.Int("objects", len(s.objects)),
		zap.String("math", cfg.Math.Backend),
		zap.Bool("strict", cfg.Shadow.Strict),
	)
	return s, nil
}

// LightParams converts a light config entry into light parameters.
func LightParams(lc config.LightConfig) lighting.DirectionalConfig {
	placement := lighting.LightPlacement{
		Position:   math.V3(lc.Position),
		FocalPoint: math.V3(lc.FocalPoint),
		Up:         math.V3(lc.UpOrDefault()),
	}
	if lc.Sun.Distance > 0 {
		dir := lighting.SunDirection(lc.Sun.Longitude, lc.Sun.Latitude)
		placement = lighting.PlacementFromSun(dir, placement.FocalPoint, lc.Sun.Distance)
	}

	var proj lighting.Projection
	if p := lc.Projection; p != nil {
		proj = lighting.Projection{
			Left:   p.Left,
			Right:  p.Right,
			Bottom: p.Bottom,
			Top:    p.Top,
			Near:   p.Near,
			Far:    p.Far,
		}
	}

	return lighting.DirectionalConfig{
		Name:         lc.Name,
		Placement:    placement,
		Projection:   proj,
		Intensity:    lc.Intensity,
		Color:        lc.Color,
		HasShadowMap: lc.HasShadowMap,
	}
}
