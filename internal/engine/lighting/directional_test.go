package lighting

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shadowcaster/pkg/math"
)

type fakeTarget struct {
	destroyed bool
}

func (f *fakeTarget) Bind()              {}
func (f *fakeTarget) Clear()             {}
func (f *fakeTarget) Unbind()            {}
func (f *fakeTarget) BindTexture(uint32) {}
func (f *fakeTarget) Resolution() int32  { return 512 }
func (f *fakeTarget) Destroy()           { f.destroyed = true }

var (
	frontPlacement = LightPlacement{
		Position:   math.Vec3{X: 0, Y: 0, Z: 10},
		FocalPoint: math.Vec3{},
		Up:         math.Vec3{X: 0, Y: 1, Z: 0},
	}
	unitObject = ObjectPlacement{
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
	}
)

func newTestLight(t *testing.T, mm MatrixMath, p LightPlacement) *DirectionalLight {
	t.Helper()
	l, err := NewDirectionalLight(DirectionalConfig{Name: "test", Placement: p}, mm, nil)
	require.NoError(t, err)
	return l
}

func TestLightSpaceTransform_CompositionOrder(t *testing.T) {
	l := newTestLight(t, StdMath{}, frontPlacement)

	got := l.LightSpaceTransform(unitObject)

	proj := math.Ortho(-100, 100, -100, 100, 0.1, 1024)
	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	assert.Equal(t, proj.Mul(view.Mul(math.Identity())), got)

	// The light's focal point lands at the center of clip space.
	center := got.TransformPoint([3]float32{0, 0, 0})
	assert.InDelta(t, 0, center[0], 1e-6)
	assert.InDelta(t, 0, center[1], 1e-6)
}

func TestLightSpaceTransform_Deterministic(t *testing.T) {
	for name, mm := range map[string]MatrixMath{"std": StdMath{}, "mgl": MGLMath{}} {
		t.Run(name, func(t *testing.T) {
			l := newTestLight(t, mm, LightPlacement{
				Position:   math.Vec3{X: 30, Y: 80, Z: -20},
				FocalPoint: math.Vec3{X: 1, Y: 2, Z: 3},
				Up:         math.Vec3{Y: 1},
			})
			obj := ObjectPlacement{
				Translation: math.Vec3{X: -4.5, Y: 0.25, Z: 17},
				Scale:       math.Vec3{X: 0.3, Y: 2, Z: 1.5},
			}

			first := l.LightSpaceTransform(obj)
			second := l.LightSpaceTransform(obj)
			assert.Equal(t, first, second)
		})
	}
}

func TestModelMatrix_ScaleBeforeTranslate(t *testing.T) {
	for name, mm := range map[string]MatrixMath{"std": StdMath{}, "mgl": MGLMath{}} {
		t.Run(name, func(t *testing.T) {
			l := newTestLight(t, mm, frontPlacement)
			model := l.ModelMatrix(ObjectPlacement{
				Translation: math.Vec3{X: 5},
				Scale:       math.Vec3{X: 2, Y: 1, Z: 1},
			})

			assert.Equal(t, [3]float32{7, 0, 0}, model.TransformPoint([3]float32{1, 0, 0}))
		})
	}
}

func TestProjection_Defaults(t *testing.T) {
	l := newTestLight(t, nil, frontPlacement)

	assert.Equal(t, DefaultProjection(), l.Projection)
	assert.Equal(t, math.Ortho(-100, 100, -100, 100, 0.1, 1024), l.ProjectionMatrix())

	left, right, bottom, top, near, far := l.ProjectionMatrix().OrthoBounds()
	assert.InDelta(t, -100, left, 1e-3)
	assert.InDelta(t, 100, right, 1e-3)
	assert.InDelta(t, -100, bottom, 1e-3)
	assert.InDelta(t, 100, top, 1e-3)
	assert.InDelta(t, 0.1, near, 1e-3)
	assert.InDelta(t, 1024, far, 1e-3)
}

func TestProjection_IndependentOfScene(t *testing.T) {
	l := newTestLight(t, nil, frontPlacement)
	before := l.ProjectionMatrix()

	l.LightSpaceTransform(ObjectPlacement{
		Translation: math.Vec3{X: 5000, Y: -5000, Z: 5000},
		Scale:       math.Vec3{X: 300, Y: 300, Z: 300},
	})
	l.Aim(LightPlacement{Position: math.Vec3{X: 50, Y: 50}, Up: math.Vec3{Z: 1}})

	assert.Equal(t, before, l.ProjectionMatrix())
}

func TestProjection_Override(t *testing.T) {
	custom := Projection{Left: -10, Right: 10, Bottom: -5, Top: 5, Near: 1, Far: 50}
	l, err := NewDirectionalLight(DirectionalConfig{Placement: frontPlacement, Projection: custom}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, custom, l.Projection)
	assert.Equal(t, math.Ortho(-10, 10, -5, 5, 1, 50), l.ProjectionMatrix())
}

func TestLightSpaceTransform_DoesNotMutateLight(t *testing.T) {
	l, err := NewDirectionalLight(DirectionalConfig{
		Name:         "sun",
		Placement:    frontPlacement,
		Intensity:    2,
		Color:        [3]float32{1, 0.9, 0.8},
		HasShadowMap: true,
	}, nil, func() (ShadowTarget, error) { return &fakeTarget{}, nil })
	require.NoError(t, err)

	placement, proj, flag := l.Placement(), l.Projection, l.HasShadowMap
	l.LightSpaceTransform(ObjectPlacement{
		Translation: math.Vec3{X: 1, Y: 2, Z: 3},
		Scale:       math.Vec3{X: 4, Y: 5, Z: 6},
	})

	assert.Equal(t, placement, l.Placement())
	assert.Equal(t, proj, l.Projection)
	assert.Equal(t, flag, l.HasShadowMap)
}

func TestLightSpaceTransform_ZeroScalePropagates(t *testing.T) {
	l := newTestLight(t, nil, frontPlacement)

	tests := []struct {
		name  string
		scale math.Vec3
	}{
		{"x", math.Vec3{X: 0, Y: 1, Z: 1}},
		{"y", math.Vec3{X: 2, Y: 0, Z: 1}},
		{"z", math.Vec3{X: 1, Y: 3, Z: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := ObjectPlacement{Translation: math.Vec3{X: 3, Y: -2, Z: 1}, Scale: tt.scale}

			assert.True(t, l.ModelMatrix(obj).Determinant() == 0, "model determinant")
			assert.True(t, l.LightSpaceTransform(obj).Determinant() == 0, "transform determinant")
		})
	}
}

func TestLightSpaceTransform_BackendsAgree(t *testing.T) {
	placement := LightPlacement{
		Position:   math.Vec3{X: 40, Y: 60, Z: 25},
		FocalPoint: math.Vec3{X: -3, Y: 0, Z: 2},
		Up:         math.Vec3{Y: 1},
	}
	objects := []ObjectPlacement{
		unitObject,
		{Translation: math.Vec3{X: 5}, Scale: math.Vec3{X: 2, Y: 1, Z: 1}},
		{Translation: math.Vec3{X: -20, Y: 3, Z: 8}, Scale: math.Vec3{X: 0.5, Y: 4, Z: 1.25}},
	}

	std := newTestLight(t, StdMath{}, placement)
	mgl := newTestLight(t, MGLMath{}, placement)
	for _, obj := range objects {
		a := std.LightSpaceTransform(obj)
		b := mgl.LightSpaceTransform(obj)
		assert.InDeltaSlice(t, a[:], b[:], 1e-5)
	}
}

func TestLightSpaceTransform_Concurrent(t *testing.T) {
	l := newTestLight(t, nil, frontPlacement)
	obj := ObjectPlacement{Translation: math.Vec3{X: 1, Y: 1, Z: 1}, Scale: math.Vec3{X: 2, Y: 2, Z: 2}}
	want := l.LightSpaceTransform(obj)

	var wg sync.WaitGroup
	results := make([]math.Mat4, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = l.LightSpaceTransform(obj)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNewDirectionalLight_ShadowTarget(t *testing.T) {
	t.Run("no factory", func(t *testing.T) {
		l, err := NewDirectionalLight(DirectionalConfig{Name: "sun", HasShadowMap: true}, nil, nil)
		assert.ErrorIs(t, err, ErrNoTargetFactory)
		assert.Nil(t, l)
	})

	t.Run("factory fails", func(t *testing.T) {
		boom := errors.New("framebuffer incomplete")
		l, err := NewDirectionalLight(DirectionalConfig{Name: "sun", HasShadowMap: true}, nil,
			func() (ShadowTarget, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, l)
	})

	t.Run("factory succeeds", func(t *testing.T) {
		calls := 0
		target := &fakeTarget{}
		l, err := NewDirectionalLight(DirectionalConfig{Name: "sun", HasShadowMap: true}, nil,
			func() (ShadowTarget, error) {
				calls++
				return target, nil
			})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Same(t, target, l.ShadowTarget())
	})

	t.Run("no shadow map", func(t *testing.T) {
		calls := 0
		l, err := NewDirectionalLight(DirectionalConfig{Name: "fill", Placement: frontPlacement}, nil,
			func() (ShadowTarget, error) {
				calls++
				return &fakeTarget{}, nil
			})
		require.NoError(t, err)
		assert.Zero(t, calls)
		assert.Nil(t, l.ShadowTarget())

		// The transform is still computed for lights without a shadow map.
		assert.NotEqual(t, math.Mat4{}, l.LightSpaceTransform(unitObject))
	})
}

func TestAim(t *testing.T) {
	l := newTestLight(t, nil, frontPlacement)
	before := l.ViewMatrix()

	side := LightPlacement{Position: math.Vec3{X: 10}, Up: math.Vec3{Y: 1}}
	l.Aim(side)

	assert.Equal(t, side, l.Placement())
	assert.NotEqual(t, before, l.ViewMatrix())

	// The returned placement is a copy.
	p := l.Placement()
	p.Position = math.Vec3{Y: 99}
	assert.Equal(t, side, l.Placement())
	assert.Equal(t, math.LookAt(side.Position, side.FocalPoint, side.Up), l.ViewMatrix())
}

func TestMathBackend(t *testing.T) {
	tests := []struct {
		name    string
		want    MatrixMath
		wantErr bool
	}{
		{"", StdMath{}, false},
		{"std", StdMath{}, false},
		{"mgl", MGLMath{}, false},
		{"glm", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := MathBackend(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownBackend)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mm)
		})
	}
}
