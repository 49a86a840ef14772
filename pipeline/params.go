package pipeline

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

// ToolParams are the tunable switches for the tetrahedralization engine,
// loadable from a YAML file per run.
type ToolParams struct {
	// Quality enables TetGen's quality meshing switch (-q).
	Quality bool `yaml:"Quality"`
	// Optimize enables TetGen's mesh optimization switch (-O).
	Optimize bool `yaml:"Optimize"`
	// ExtraArgs are appended to the TetGen invocation verbatim.
	ExtraArgs []string `yaml:"ExtraArgs"`
}

// DefaultToolParams mirrors the switches the pipeline always used:
// piecewise-linear complex input with quality meshing and optimization.
func DefaultToolParams() ToolParams {
	return ToolParams{Quality: true, Optimize: true}
}

// LoadToolParams reads a YAML parameters file.
func LoadToolParams(filename string) (ToolParams, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return ToolParams{}, fmt.Errorf("reading parameters file: %v", err)
	}
	p := ToolParams{}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return ToolParams{}, fmt.Errorf("parsing parameters file %s: %v", filename, err)
	}
	return p, nil
}

// switches builds the TetGen switch string. The -p switch (tetrahedralize
// a piecewise linear complex) is always on; -a carries the volume bound.
func (p ToolParams) switches(maxVolume float64) []string {
	sw := "-p"
	if p.Quality {
		sw += "q"
	}
	if p.Optimize {
		sw += "O"
	}
	args := []string{sw, fmt.Sprintf("-a%g", maxVolume)}
	return append(args, p.ExtraArgs...)
}
