package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shadowcaster/internal/config"
	"github.com/Faultbox/shadowcaster/internal/engine/lighting"
	"github.com/Faultbox/shadowcaster/internal/engine/scene"
	"github.com/Faultbox/shadowcaster/internal/engine/shadow"
	"github.com/Faultbox/shadowcaster/pkg/math"
)

func TestRows(t *testing.T) {
	r := rows(math.Translate(1, 2, 3))
	assert.Equal(t, [4]float32{1, 0, 0, 1}, r[0])
	assert.Equal(t, [4]float32{0, 1, 0, 2}, r[1])
	assert.Equal(t, [4]float32{0, 0, 1, 3}, r[2])
	assert.Equal(t, [4]float32{0, 0, 0, 1}, r[3])
}

func TestBuildReport(t *testing.T) {
	cfg := config.Default()
	cfg.Lights = append(cfg.Lights, config.LightConfig{
		Name:     "fill",
		Position: [3]float32{10, 0, 0},
	})
	cfg.Objects = append(cfg.Objects, config.ObjectConfig{Name: "crate", Translation: [3]float32{5, 0, 0}})

	s, err := scene.FromConfig(cfg, func() (lighting.ShadowTarget, error) {
		return shadow.NewHeadless(512), nil
	})
	require.NoError(t, err)
	defer s.Destroy()

	rep, err := buildReport(s)
	require.NoError(t, err)
	require.Len(t, rep.Lights, 2)

	sun := rep.Lights[0]
	assert.Equal(t, "sun", sun.Name)
	assert.True(t, sun.ShadowMap)
	assert.Equal(t, int32(512), sun.Resolution)
	assert.Equal(t, lighting.DefaultProjection(), sun.Projection)
	require.Len(t, sun.Transforms, 2)
	assert.Equal(t, "cube", sun.Transforms[0].Object)
	assert.Equal(t, "crate", sun.Transforms[1].Object)

	want := s.Lights()[0].LightSpaceTransform(lighting.ObjectPlacement{Scale: math.Vec3{X: 1, Y: 1, Z: 1}})
	assert.Equal(t, rows(want), sun.Transforms[0].Matrix)

	fill := rep.Lights[1]
	assert.False(t, fill.ShadowMap)
	assert.Zero(t, fill.Resolution)
	assert.Len(t, fill.Transforms, 2)

	out, err := yaml.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: fill")
	assert.Contains(t, string(out), "object: crate")
}
