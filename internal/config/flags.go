package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagMath       = flag.String("math", "", "Matrix backend (std, mgl)")
	flagResolution = flag.Int("resolution", 0, "Shadow map resolution")
	flagStrict     = flag.Bool("strict", false, "Skip degenerate lights and objects")
	flagFrames     = flag.Int("frames", 0, "Number of shadow frames to render")
	flagDump       = flag.String("dump", "", "Directory to write shadow map images to")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMath != "" {
		cfg.Math.Backend = *flagMath
	}
	if *flagResolution > 0 {
		cfg.Shadow.Resolution = int32(*flagResolution)
	}
	if *flagStrict {
		cfg.Shadow.Strict = true
	}
	if *flagFrames > 0 {
		cfg.Shadow.Frames = *flagFrames
	}
	if *flagDump != "" {
		cfg.Shadow.DumpDir = *flagDump
	}
}
