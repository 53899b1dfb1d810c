package maincmd

import "github.com/caarlos0/env/v6"

// RuntimeConfig holds the process-environment knobs that sit alongside
// the command-line flags. Unlike Cmd's flags, these are never meant to
// vary per-invocation from a script — they are host/CI configuration.
type RuntimeConfig struct {
	// MaxSteps bounds how many instructions a single run executes before
	// it aborts with exit 57, as a backstop against runaway programs in
	// shared environments (CI, graders). Zero means unlimited.
	MaxSteps int `env:"IPPC23_MAX_STEPS" envDefault:"0"`
}

// loadRuntimeConfig reads RuntimeConfig from the process environment.
func loadRuntimeConfig() (RuntimeConfig, error) {
	var cfg RuntimeConfig
	if err := env.Parse(&cfg); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}
