// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how the tour is rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
)

// GreetConfig overrides the person greeted by the tour.
type GreetConfig struct {
	// Name is the greeted person's name (default "Gaurav").
	Name string `json:"name" yaml:"name"`

	// Age is the greeted person's age. Nil leaves the age unresolved.
	Age *int `json:"age,omitempty" yaml:"age,omitempty"`
}

// RecordConfig holds settings for the transcript store.
type RecordConfig struct {
	// Enabled persists each run of the tour when true.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DBPath is the SQLite database file (default "typetour.db").
	DBPath string `json:"db" yaml:"db"`

	// MaxRuns is the number of runs listed by history (default 20).
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}

// TourConfig groups all settings read from flags, environment and config file.
type TourConfig struct {
	Greet  GreetConfig  `json:"greet" yaml:"greet"`
	Format OutputFormat `json:"format" yaml:"format"`
	Record RecordConfig `json:"record" yaml:"record"`
}
