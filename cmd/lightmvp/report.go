package main

import (
	"github.com/Faultbox/shadowcaster/internal/engine/lighting"
	"github.com/Faultbox/shadowcaster/internal/engine/scene"
	"github.com/Faultbox/shadowcaster/pkg/math"
)

type report struct {
	Lights []lightReport `yaml:"lights"`
}

type lightReport struct {
	Name       string              `yaml:"name"`
	ID         string              `yaml:"id"`
	ShadowMap  bool                `yaml:"shadow_map"`
	Resolution int32               `yaml:"resolution,omitempty"`
	Projection lighting.Projection `yaml:"projection,flow"`
	Transforms []transformReport   `yaml:"transforms"`
}

type transformReport struct {
	Object string `yaml:"object"`
	// Matrix is row-major for reading; GPU uploads use the column-major source.
	Matrix [4][4]float32 `yaml:"matrix,flow"`
}

// buildReport runs one shadow pass over s and collects every transform.
func buildReport(s *scene.Scene) (report, error) {
	var rep report
	index := make(map[*lighting.DirectionalLight]int)

	for _, l := range s.Lights() {
		lr := lightReport{
			Name:       l.Name,
			ID:         l.ID.String(),
			ShadowMap:  l.HasShadowMap,
			Projection: l.Projection,
		}
		if t := l.ShadowTarget(); t != nil {
			lr.Resolution = t.Resolution()
		}
		index[l] = len(rep.Lights)
		rep.Lights = append(rep.Lights, lr)
	}

	err := s.ShadowPass(func(d scene.Draw) error {
		i := index[d.Light]
		rep.Lights[i].Transforms = append(rep.Lights[i].Transforms, transformReport{
			Object: d.Object.Name,
			Matrix: rows(d.Transform),
		})
		return nil
	})
	return rep, err
}

func rows(m math.Mat4) [4][4]float32 {
	var r [4][4]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m[col*4+row]
		}
	}
	return r
}
