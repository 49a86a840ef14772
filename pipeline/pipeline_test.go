package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airy1236/obj2tet-toolchain/tetio"
)

// fakeRunner records every invocation and lets a test fabricate the side
// effects an external tool would have.
type fakeRunner struct {
	calls [][]string
	onRun func(name string, args []string) error
}

func (f *fakeRunner) Run(name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.onRun != nil {
		return f.onRun(name, args)
	}
	return nil
}

const (
	testNodeContent = "4 3 0 0\n" +
		"0 0.0 0.0 0.0\n" +
		"1 1.0 0.0 0.0\n" +
		"2 0.0 1.0 0.0\n" +
		"3 0.0 0.0 1.0\n"
	testEleContent = "1 4 0\n" +
		"0 0 1 2 3\n"
	testTetContent = "v 0.000000 0.000000 0.000000\n" +
		"v 1.000000 0.000000 0.000000\n" +
		"v 0.000000 1.000000 0.000000\n" +
		"v 0.000000 0.000000 1.000000\n" +
		"t 0 1 2 3\n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// writeRawArtifacts fabricates the five tetgen outputs, with parseable
// node and ele content so the in-process merge succeeds.
func writeRawArtifacts(t *testing.T, paths Paths) {
	t.Helper()
	writeFile(t, paths.RawNode, testNodeContent)
	writeFile(t, paths.RawEle, testEleContent)
	writeFile(t, paths.RawFace, "0 0\n")
	writeFile(t, paths.RawEdge, "0 0\n")
	writeFile(t, paths.RawSmesh, "# smesh\n")
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ObjToPly = "obj2ply"
	return cfg
}

func TestDerivePaths(t *testing.T) {
	paths := DerivePaths("/work/bunny.obj")
	assert.Equal(t, "/work/bunny.obj", paths.OBJ)
	assert.Equal(t, "/work/bunny.ply", paths.PLY)
	assert.Equal(t, "/work/bunny.tet", paths.Tet)
	assert.Equal(t, "/work/bunny.1.node", paths.RawNode)
	assert.Equal(t, "/work/bunny.1.smesh", paths.RawSmesh)
	assert.Equal(t, "/work/bunny.node", paths.Node)
	assert.Equal(t, "/work/bunny.neigh", paths.Neigh)
}

func TestRunInputMissing(t *testing.T) {
	runner := &fakeRunner{}
	p := New(testConfig(), runner)

	err := p.Run(filepath.Join(t.TempDir(), "missing.obj"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputNotFound))
	assert.Empty(t, runner.calls, "no tool should run before validation passes")
}

func TestRunSuccess(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "bunny.obj")
	writeFile(t, objPath, "v 0 0 0\n")
	paths := DerivePaths(objPath)

	runner := &fakeRunner{}
	runner.onRun = func(name string, args []string) error {
		switch len(runner.calls) {
		case 1:
			writeFile(t, paths.PLY, "ply\n")
		case 2:
			writeRawArtifacts(t, paths)
		}
		return nil
	}

	require.NoError(t, New(testConfig(), runner).Run(objPath))

	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"obj2ply", paths.OBJ, paths.PLY}, runner.calls[0])
	assert.Equal(t, []string{"tetgen", "-pqO", "-a0.001", paths.PLY}, runner.calls[1])

	data, err := os.ReadFile(paths.Tet)
	require.NoError(t, err)
	assert.Equal(t, testTetContent, string(data))

	// The raw artifacts were renamed away, the intermediates cleaned up,
	// and the smesh retained.
	for _, f := range paths.rawArtifacts() {
		assert.NoFileExists(t, f)
	}
	for _, f := range []string{paths.PLY, paths.Node, paths.Ele, paths.FaceF, paths.Edge} {
		assert.NoFileExists(t, f)
	}
	assert.FileExists(t, paths.Smesh)
}

func TestRunKeepIntermediate(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "bunny.obj")
	writeFile(t, objPath, "v 0 0 0\n")
	paths := DerivePaths(objPath)

	runner := &fakeRunner{}
	runner.onRun = func(name string, args []string) error {
		switch len(runner.calls) {
		case 1:
			writeFile(t, paths.PLY, "ply\n")
		case 2:
			writeRawArtifacts(t, paths)
		}
		return nil
	}

	cfg := testConfig()
	cfg.KeepIntermediate = true
	require.NoError(t, New(cfg, runner).Run(objPath))

	assert.FileExists(t, paths.Tet)
	for _, f := range []string{paths.PLY, paths.Node, paths.Ele, paths.FaceF, paths.Edge, paths.Smesh} {
		assert.FileExists(t, f)
	}
}

func TestRunRepairToolFails(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "bunny.obj")
	writeFile(t, objPath, "v 0 0 0\n")

	runner := &fakeRunner{onRun: func(name string, args []string) error {
		return errors.New("exit status 1")
	}}

	err := New(testConfig(), runner).Run(objPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExternalTool))
	assert.Len(t, runner.calls, 1)
}

func TestRunSurfaceNotGenerated(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "bunny.obj")
	writeFile(t, objPath, "v 0 0 0\n")

	// Repair tool reports success but writes nothing.
	err := New(testConfig(), &fakeRunner{}).Run(objPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputMissing))
}

func TestRunMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "bunny.obj")
	writeFile(t, objPath, "v 0 0 0\n")
	paths := DerivePaths(objPath)

	runner := &fakeRunner{}
	runner.onRun = func(name string, args []string) error {
		switch len(runner.calls) {
		case 1:
			writeFile(t, paths.PLY, "ply\n")
		case 2:
			writeRawArtifacts(t, paths)
			require.NoError(t, os.Remove(paths.RawSmesh))
		}
		return nil
	}

	err := New(testConfig(), runner).Run(objPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputMissing))
	assert.Contains(t, err.Error(), paths.RawSmesh)

	// Verification failed before any rename, so the raw names survive.
	assert.FileExists(t, paths.RawNode)
	assert.NoFileExists(t, paths.Node)
}

func TestRunMergeErrorKeepsClass(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "bunny.obj")
	writeFile(t, objPath, "v 0 0 0\n")
	paths := DerivePaths(objPath)

	runner := &fakeRunner{}
	runner.onRun = func(name string, args []string) error {
		switch len(runner.calls) {
		case 1:
			writeFile(t, paths.PLY, "ply\n")
		case 2:
			writeRawArtifacts(t, paths)
			// Triangles instead of tetrahedra; the in-process merge
			// must reject this as a format error.
			writeFile(t, paths.RawEle, "1 3 0\n0 0 1 2\n")
		}
		return nil
	}

	err := New(testConfig(), runner).Run(objPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tetio.ErrFormat), "got %v", err)
}

func TestRenameOutputsRollback(t *testing.T) {
	dir := t.TempDir()
	paths := DerivePaths(filepath.Join(dir, "bunny.obj"))
	writeRawArtifacts(t, paths)

	// A directory at the face target makes the third rename fail.
	require.NoError(t, os.Mkdir(paths.FaceF, 0755))

	p := New(testConfig(), &fakeRunner{})
	err := p.renameOutputs(paths)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileSystem))

	// The two completed renames were reversed.
	assert.FileExists(t, paths.RawNode)
	assert.FileExists(t, paths.RawEle)
	assert.FileExists(t, paths.RawFace)
	assert.NoFileExists(t, paths.Node)
	assert.NoFileExists(t, paths.Ele)
}

func TestRunExternalMergeTool(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "bunny.obj")
	writeFile(t, objPath, "v 0 0 0\n")
	paths := DerivePaths(objPath)

	runner := &fakeRunner{}
	runner.onRun = func(name string, args []string) error {
		switch len(runner.calls) {
		case 1:
			writeFile(t, paths.PLY, "ply\n")
		case 2:
			writeRawArtifacts(t, paths)
		case 3:
			writeFile(t, paths.Tet, testTetContent)
		}
		return nil
	}

	cfg := testConfig()
	cfg.NodeEleToTet = "nodele2tet"
	require.NoError(t, New(cfg, runner).Run(objPath))

	require.Len(t, runner.calls, 3)
	assert.Equal(t, []string{"nodele2tet", "-0", paths.Node, paths.Ele, paths.Tet}, runner.calls[2])
}

func TestSurfaceCommandSelfRepair(t *testing.T) {
	cfg := testConfig()
	cfg.ObjToPly = ""
	p := New(cfg, &fakeRunner{})
	paths := DerivePaths("/work/bunny.obj")

	name, args := p.surfaceCommand(paths)
	assert.NotEmpty(t, name)
	assert.Equal(t, []string{"repair", paths.OBJ, paths.PLY}, args)
}

func TestToolParamsSwitches(t *testing.T) {
	testCases := []struct {
		name      string
		params    ToolParams
		maxVolume float64
		want      []string
	}{
		{"defaults", DefaultToolParams(), 0.001, []string{"-pqO", "-a0.001"}},
		{"plain", ToolParams{}, 0.5, []string{"-p", "-a0.5"}},
		{"quality only", ToolParams{Quality: true}, 2, []string{"-pq", "-a2"}},
		{"extra args", ToolParams{Optimize: true, ExtraArgs: []string{"-Y"}}, 0.001,
			[]string{"-pO", "-a0.001", "-Y"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.params.switches(tc.maxVolume))
		})
	}
}

func TestCleanupToleratesMissingFiles(t *testing.T) {
	dir := t.TempDir()
	paths := DerivePaths(filepath.Join(dir, "bunny.obj"))
	writeFile(t, paths.PLY, "ply\n")

	// Only the PLY exists; the other targets are silently skipped.
	p := New(testConfig(), &fakeRunner{})
	p.cleanup(paths)

	assert.NoFileExists(t, paths.PLY)
}

func TestLoadToolParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	writeFile(t, path, "Quality: false\nOptimize: true\nExtraArgs:\n  - \"-Y\"\n")

	p, err := LoadToolParams(path)
	require.NoError(t, err)
	assert.False(t, p.Quality)
	assert.True(t, p.Optimize)
	assert.Equal(t, []string{"-Y"}, p.ExtraArgs)

	_, err = LoadToolParams(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
