/*
 * config.go, part of chemkin.
 *
 * Copyright 2017 The chemkin authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chemkinetics/chemkin"
)

const (
	defaultPoints = 100
	defaultTemp   = 1500.0
)

// RunConfig is the YAML run configuration shared by the rates, sweep and
// plot commands.
type RunConfig struct {
	Mechanism      string             `yaml:"mechanism"`      //reaction XML file
	Database       string             `yaml:"database"`       //coefficient db; empty loads from the mechanism itself
	Temperature    float64            `yaml:"temperature"`    //K
	Concentrations map[string]float64 `yaml:"concentrations"` //species name -> concentration
	TLow           float64            `yaml:"t_low"`
	THigh          float64            `yaml:"t_high"`
	Points         int                `yaml:"points"`
}

func defaultRunConfig() *RunConfig {
	return &RunConfig{
		Temperature: defaultTemp,
		Points:      defaultPoints,
	}
}

func loadRunConfig(path string) (*RunConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return cfg, nil
}

//concVector orders the configured concentrations to match the system's
//species index. Species without an entry get concentration 0.
func (cfg *RunConfig) concVector(sys *chemkin.ReactionSystem) ([]float64, error) {
	concs := make([]float64, sys.NSpecies())
	for name, c := range cfg.Concentrations {
		i := sys.SpeciesIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("concentration given for unknown species %s", name)
		}
		concs[i] = c
	}
	return concs, nil
}
