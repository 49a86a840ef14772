// Package pipeline drives the OBJ-to-tet toolchain: surface repair and
// export, external tetrahedralization, output verification and renaming,
// the node/ele-to-tet merge, and cleanup. Stages run strictly in order; a
// failure aborts the remaining stages and leaves the artifacts on disk for
// inspection.
package pipeline

import (
	"fmt"
	"os"

	"github.com/airy1236/obj2tet-toolchain/logger"
	"github.com/airy1236/obj2tet-toolchain/tetio"
)

// Stage identifies a pipeline stage, in execution order.
type Stage int

const (
	ValidateInput Stage = iota
	ConvertToSurface
	Tetrahedralize
	VerifyRawOutputs
	RenameOutputs
	MergeToTet
	Cleanup
	Done
)

func (s Stage) String() string {
	return [...]string{
		"ValidateInput", "ConvertToSurface", "Tetrahedralize",
		"VerifyRawOutputs", "RenameOutputs", "MergeToTet", "Cleanup", "Done",
	}[s]
}

// Config holds the pipeline's tool locations and run options. Tool paths
// are injectable; where the toolchain is installed is an environment
// concern, not a pipeline one.
type Config struct {
	// ObjToPly is the external OBJ-to-watertight-PLY repair tool. Empty
	// means re-invoke this binary's own repair subcommand.
	ObjToPly string
	// TetGen is the tetrahedralization engine executable.
	TetGen string
	// NodeEleToTet is the external node/ele merge tool. Empty means run
	// the embedded converter in-process.
	NodeEleToTet string

	MaxVolume        float64
	KeepIntermediate bool
	Params           ToolParams
}

// DefaultConfig returns a config with the historical defaults: in-process
// repair and merge, `tetgen` on PATH, 0.001 max tetrahedron volume.
func DefaultConfig() Config {
	return Config{
		TetGen:    "tetgen",
		MaxVolume: 0.001,
		Params:    DefaultToolParams(),
	}
}

// Pipeline sequences the external toolchain for one conversion.
type Pipeline struct {
	cfg    Config
	runner CommandRunner
}

// New creates a pipeline with the given config and command runner.
func New(cfg Config, runner CommandRunner) *Pipeline {
	return &Pipeline{cfg: cfg, runner: runner}
}

// Run converts objPath to a .tet file. It returns nil iff the .tet file
// was produced; cleanup problems never flip a success into a failure.
func (p *Pipeline) Run(objPath string) error {
	paths := DerivePaths(objPath)

	// ValidateInput
	fi, err := os.Stat(paths.OBJ)
	if err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("%s: %w: %s", ValidateInput, ErrInputNotFound, paths.OBJ)
	}

	// ConvertToSurface
	logger.Sugar.Infof("[%s] repairing %s -> %s", ConvertToSurface, paths.OBJ, paths.PLY)
	name, args := p.surfaceCommand(paths)
	if err := p.runner.Run(name, args...); err != nil {
		return fmt.Errorf("%s: %w: %v", ConvertToSurface, ErrExternalTool, err)
	}
	if !fileExists(paths.PLY) {
		return fmt.Errorf("%s: %w: %s was not generated", ConvertToSurface, ErrOutputMissing, paths.PLY)
	}

	// Tetrahedralize
	logger.Sugar.Infof("[%s] generating node/ele from %s", Tetrahedralize, paths.PLY)
	tgArgs := append(p.cfg.Params.switches(p.cfg.MaxVolume), paths.PLY)
	if err := p.runner.Run(p.cfg.TetGen, tgArgs...); err != nil {
		return fmt.Errorf("%s: %w: %v", Tetrahedralize, ErrExternalTool, err)
	}

	// VerifyRawOutputs
	var missing []string
	for _, f := range paths.rawArtifacts() {
		if !fileExists(f) {
			logger.Sugar.Errorf("[%s] missing: %s", VerifyRawOutputs, f)
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: tetgen did not generate %v", VerifyRawOutputs, ErrOutputMissing, missing)
	}

	// RenameOutputs
	if err := p.renameOutputs(paths); err != nil {
		return err
	}

	// MergeToTet
	logger.Sugar.Infof("[%s] merging %s + %s -> %s", MergeToTet, paths.Node, paths.Ele, paths.Tet)
	if err := p.mergeToTet(paths); err != nil {
		return err
	}
	if !fileExists(paths.Tet) {
		return fmt.Errorf("%s: %w: %s was not generated", MergeToTet, ErrOutputMissing, paths.Tet)
	}

	// Cleanup
	if !p.cfg.KeepIntermediate {
		p.cleanup(paths)
	} else {
		logger.Sugar.Infof("[%s] intermediate files retained", Cleanup)
	}

	logger.Sugar.Infof("conversion completed: %s -> %s (max volume %g)",
		paths.OBJ, paths.Tet, p.cfg.MaxVolume)
	return nil
}

// surfaceCommand picks the OBJ-to-PLY tool invocation. With no configured
// tool the pipeline re-invokes its own executable's repair subcommand.
func (p *Pipeline) surfaceCommand(paths Paths) (string, []string) {
	if p.cfg.ObjToPly != "" {
		return p.cfg.ObjToPly, []string{paths.OBJ, paths.PLY}
	}
	self, err := os.Executable()
	if err != nil {
		self = "obj2tet"
	}
	return self, []string{"repair", paths.OBJ, paths.PLY}
}

// renameOutputs strips the `.1` infix from the five artifacts, one rename
// at a time in the fixed order node, ele, face, edge, smesh. On failure
// every completed rename is reversed, in reverse order, so the stage
// leaves the filesystem as it found it.
func (p *Pipeline) renameOutputs(paths Paths) error {
	var done [][2]string
	for _, rn := range paths.renames() {
		logger.Sugar.Infof("[%s] %s -> %s", RenameOutputs, rn[0], rn[1])
		if err := os.Rename(rn[0], rn[1]); err != nil {
			for i := len(done) - 1; i >= 0; i-- {
				if rbErr := os.Rename(done[i][1], done[i][0]); rbErr != nil {
					logger.Sugar.Warnf("[%s] rollback of %s failed: %v", RenameOutputs, done[i][1], rbErr)
				}
			}
			return fmt.Errorf("%s: %w: renaming %s: %v", RenameOutputs, ErrFileSystem, rn[0], err)
		}
		done = append(done, rn)
	}
	return nil
}

// mergeToTet runs the node/ele merge, in-process unless an external
// converter is configured. The indexing flag is fixed at 0-based.
func (p *Pipeline) mergeToTet(paths Paths) error {
	if p.cfg.NodeEleToTet != "" {
		if err := p.runner.Run(p.cfg.NodeEleToTet, "-0", paths.Node, paths.Ele, paths.Tet); err != nil {
			return fmt.Errorf("%s: %w: %v", MergeToTet, ErrExternalTool, err)
		}
		return nil
	}
	if err := tetio.Convert(paths.Node, paths.Ele, paths.Tet, false); err != nil {
		return fmt.Errorf("%s: %w", MergeToTet, err)
	}
	return nil
}

// cleanup removes the intermediate artifacts. Failures are warnings; the
// .tet file having been produced is the only success criterion.
func (p *Pipeline) cleanup(paths Paths) {
	logger.Sugar.Infof("[%s] removing intermediate files", Cleanup)
	for _, f := range []string{paths.PLY, paths.Node, paths.Ele, paths.Edge, paths.FaceF, paths.Neigh} {
		if !fileExists(f) {
			continue
		}
		if err := os.Remove(f); err != nil {
			logger.Sugar.Warnf("[%s] could not remove %s: %v", Cleanup, f, err)
			continue
		}
		logger.Sugar.Infof("[%s] deleted: %s", Cleanup, f)
	}
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
