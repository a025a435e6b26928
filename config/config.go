// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"runtime"

	"github.com/spf13/viper"
)

// EngineConfig is settings for the external folding engine
type EngineConfig struct {
	// name of (or path to) the RNAfold-compatible executable
	Path string `mapstructure:"path"`

	// folding temperature in degrees Celsius
	Temperature float64 `mapstructure:"temperature"`
}

// DesignConfig is settings for the design search loop
type DesignConfig struct {
	// the number of candidate sequences evaluated per generation
	Population int `mapstructure:"population"`

	// the number of generations to run the search for
	Generations int `mapstructure:"generations"`

	// the number of positions mutated per candidate sequence
	Mutations int `mapstructure:"mutations"`

	// the number of top candidates kept and reported
	Keep int `mapstructure:"keep"`

	// the number of candidates folded concurrently
	Workers int `mapstructure:"workers"`
}

// Config is the root-level settings struct and is a mix of settings
// available in viper defaults and those from the command line
type Config struct {
	// whether to log timing and progress information
	Verbose bool `mapstructure:"verbose"`

	// external folding engine settings
	Engine EngineConfig `mapstructure:"engine"`

	// search loop settings
	Design DesignConfig `mapstructure:"design"`
}

// New returns a new Config struct populated by viper defaults
// and/or command line arguments
func New() *Config {
	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	if c.Design.Workers < 1 {
		c.Design.Workers = runtime.NumCPU()
	}

	return c
}

// setDefaults registers the default value for every setting with viper.
// Bound command line flags take precedence when set
func setDefaults() {
	viper.SetDefault("verbose", false)
	viper.SetDefault("engine.path", "RNAfold")
	viper.SetDefault("engine.temperature", 37.0)
	viper.SetDefault("design.population", 50)
	viper.SetDefault("design.generations", 25)
	viper.SetDefault("design.mutations", 2)
	viper.SetDefault("design.keep", 10)
	viper.SetDefault("design.workers", 0)
}
