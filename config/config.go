// Package config holds the tunable parameters of both pipelines as a
// single threaded value — never a package-level default — loadable from
// and savable to YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Reduction selects how the contour pipeline's path-reduce pass trims
// redundant interior vertices from an assembled path.
type Reduction string

const (
	ReductionFixed    Reduction = "fixed"
	ReductionVariable Reduction = "variable"
	ReductionHybrid   Reduction = "hybrid"
)

// TimelapseSource selects which canvas the timelapse recorder draws onto.
type TimelapseSource string

const (
	TimelapseColor TimelapseSource = "color"
	TimelapseBW    TimelapseSource = "bw"
)

// Contour holds the contour pipeline's parameters.
type Contour struct {
	Reduction       Reduction `yaml:"reduction"`
	ReductionParams [2]float64 `yaml:"reduction_params"`
	PathFuseDist    float64    `yaml:"path_fuse_dist"`
	PointFuseDist   float64    `yaml:"point_fuse_dist"`
	BWThreshold     uint8      `yaml:"bw_threshold"`
	CannyTLower     int        `yaml:"canny_t_lower"`
	CannyTUpper     int        `yaml:"canny_t_upper"`
}

// MeshParams holds the mesh-refinement pipeline's parameters.
type MeshParams struct {
	GridH           int             `yaml:"grid_h"`
	GridV           int             `yaml:"grid_v"`
	Iterations      int             `yaml:"iterations"`
	BWThreshold     uint8           `yaml:"bw_threshold"`
	MinEdgeLen      float64         `yaml:"min_edge_len"`
	Verbose         bool            `yaml:"verbose"`
	Timelapse       bool            `yaml:"timelapse"`
	TimelapseSource TimelapseSource `yaml:"timelapse_source"`
}

// Config is the full set of tunables for both pipelines.
type Config struct {
	Contour Contour    `yaml:"contour"`
	Mesh    MeshParams `yaml:"mesh"`
}

// Default returns the parameter set the CLI uses when the user supplies no
// configuration file, mirroring make_poly.py's argparse defaults.
func Default() *Config {
	return &Config{
		Contour: Contour{
			Reduction:       ReductionHybrid,
			ReductionParams: [2]float64{20, 1},
			PathFuseDist:    15,
			PointFuseDist:   5,
			BWThreshold:     254,
			CannyTLower:     60,
			CannyTUpper:     150,
		},
		Mesh: MeshParams{
			GridH:           20,
			GridV:           20,
			Iterations:      40,
			BWThreshold:     254,
			MinEdgeLen:      3,
			Verbose:         false,
			Timelapse:       false,
			TimelapseSource: TimelapseColor,
		},
	}
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
