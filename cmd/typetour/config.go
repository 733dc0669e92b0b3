// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/typetour/pkg/types"
)

// loadTourConfig assembles a TourConfig from flags, environment and the
// config file, in viper's usual precedence.
func loadTourConfig(v *viper.Viper) (types.TourConfig, error) {
	cfg := types.TourConfig{
		Greet: types.GreetConfig{
			Name: v.GetString("greet.name"),
		},
		Format: types.OutputFormat(v.GetString("output.format")),
		Record: types.RecordConfig{
			Enabled: v.GetBool("record.enabled"),
			DBPath:  v.GetString("record.db"),
			MaxRuns: v.GetInt("record.max_runs"),
		},
	}
	if cfg.Format == "" {
		cfg.Format = types.OutputText
	}

	if v.IsSet("greet.age") {
		age := v.GetInt("greet.age")
		if age < 0 {
			return types.TourConfig{}, fmt.Errorf("greet.age must not be negative, got %d", age)
		}
		cfg.Greet.Age = &age
	}
	return cfg, nil
}
