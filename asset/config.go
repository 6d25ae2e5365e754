package asset

import (
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/puzzle-sfx/constant"
	"github.com/lixenwraith/puzzle-sfx/manifest"
)

// Environment overrides
const (
	EnvOutputDir = "SFXGEN_OUTPUT_DIR"
	EnvSeed      = "SFXGEN_SEED"
	EnvJobs      = "SFXGEN_JOBS"
)

// Config controls one generation run
type Config struct {
	// OutputDir receives the asset files; created if missing
	OutputDir string

	// Seed for noise-bearing assets; 0 seeds from the clock
	Seed int64

	// Jobs bounds concurrent asset writes; 1 writes sequentially in list order
	Jobs int

	// Assets to render, in write order
	Assets []manifest.Descriptor
}

// DefaultConfig returns the fixed asset list written sequentially into constant.DefaultOutputDir
func DefaultConfig() *Config {
	return &Config{
		OutputDir: constant.DefaultOutputDir,
		Jobs:      constant.DefaultJobs,
		Assets:    manifest.Default(),
	}
}

// LoadConfig loads configuration from environment variables over the defaults
// Unparseable values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.OutputDir = dir
		log.Printf("%s overrides output dir: %s", EnvOutputDir, dir)
	}

	if seed := os.Getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
			log.Printf("%s overrides seed: %d", EnvSeed, val)
		}
	}

	if jobs := os.Getenv(EnvJobs); jobs != "" {
		if val, err := strconv.Atoi(jobs); err == nil && val > 0 {
			cfg.Jobs = val
			log.Printf("%s overrides jobs: %d", EnvJobs, val)
		}
	}

	return cfg
}
