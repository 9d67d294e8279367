// Command lightmvp prints the light-space transform of every configured
// light and object as YAML. It needs no GPU.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/shadowcaster/internal/config"
	"github.com/Faultbox/shadowcaster/internal/engine/lighting"
	"github.com/Faultbox/shadowcaster/internal/engine/scene"
	"github.com/Faultbox/shadowcaster/internal/engine/shadow"
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

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	if err := run(cfg); err != nil {
		logger.Error("lightmvp failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	s, err := scene.FromConfig(cfg, func() (lighting.ShadowTarget, error) {
		return shadow.NewHeadless(cfg.Shadow.Resolution), nil
	})
	if err != nil {
		return err
	}
	defer s.Destroy()

	rep, err := buildReport(s)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
