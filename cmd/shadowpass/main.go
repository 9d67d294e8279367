// Command shadowpass renders the configured shadow maps on the GPU.
// It opens a (by default hidden) GL 4.1 context, allocates one depth map per
// shadow-casting light and draws every object into it for a number of frames.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/shadowcaster/internal/config"
	"github.com/Faultbox/shadowcaster/internal/engine/lighting"
	"github.com/Faultbox/shadowcaster/internal/engine/renderer"
	"github.com/Faultbox/shadowcaster/internal/engine/scene"
	"github.com/Faultbox/shadowcaster/internal/engine/shadow"
	"github.com/Faultbox/shadowcaster/internal/engine/window"
	"github.com/Faultbox/shadowcaster/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== shadowpass ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("shadow pass failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("shadow pass finished")
	logger.Sync()
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Hidden: cfg.Window.Hidden,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	r, err := renderer.New()
	if err != nil {
		return err
	}
	defer r.Close()

	s, err := scene.FromConfig(cfg, func() (lighting.ShadowTarget, error) {
		m, err := shadow.NewMap(cfg.Shadow.Resolution)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
	if err != nil {
		return err
	}
	defer s.Destroy()

	for frame := 0; frame < cfg.Shadow.Frames; frame++ {
		if win.PollQuit() {
			logger.Info("quit requested", zap.Int("frame", frame))
			return nil
		}

		draws := 0
		err := s.ShadowPass(func(d scene.Draw) error {
			if d.Target == nil {
				return nil
			}
			r.DrawDepth(d.Transform)
			draws++
			return nil
		})
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		win.SwapBuffers()
		logger.Debug("frame rendered", zap.Int("frame", frame), zap.Int("draws", draws))
	}

	if cfg.Shadow.DumpDir != "" {
		return dumpMaps(s, cfg.Shadow.DumpDir)
	}
	return nil
}

// dumpMaps writes the depth texture of every GPU shadow map to dir.
func dumpMaps(s *scene.Scene, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, l := range s.Lights() {
		m, ok := l.ShadowTarget().(*shadow.Map)
		if !ok {
			continue
		}
		path := filepath.Join(dir, l.Name+".bmp")
		if err := shadow.WriteDepthBMP(path, m.Resolution(), m.ReadDepth()); err != nil {
			return fmt.Errorf("dumping %q: %w", l.Name, err)
		}
		logger.Info("shadow map written", zap.String("light", l.Name), zap.String("path", path))
	}
	return nil
}
