package pipeline

import "path/filepath"

// Paths holds every working path the pipeline touches, derived once from
// the input stem name.
type Paths struct {
	OBJ string
	PLY string
	Tet string

	// TetGen writes its artifacts with a `.1` infix.
	RawNode, RawEle, RawFace, RawEdge, RawSmesh string
	// The infix is stripped before the merge step.
	Node, Ele, FaceF, Edge, Smesh string
	// Neigh is only ever produced as a sibling; it is cleaned up if found.
	Neigh string
}

// DerivePaths computes the working paths for an input OBJ file. Siblings
// live next to the input, named after its stem.
func DerivePaths(objPath string) Paths {
	dir := filepath.Dir(objPath)
	stem := filepath.Base(objPath)
	if ext := filepath.Ext(stem); ext != "" {
		stem = stem[:len(stem)-len(ext)]
	}
	base := filepath.Join(dir, stem)

	return Paths{
		OBJ:      objPath,
		PLY:      base + ".ply",
		Tet:      base + ".tet",
		RawNode:  base + ".1.node",
		RawEle:   base + ".1.ele",
		RawFace:  base + ".1.face",
		RawEdge:  base + ".1.edge",
		RawSmesh: base + ".1.smesh",
		Node:     base + ".node",
		Ele:      base + ".ele",
		FaceF:    base + ".face",
		Edge:     base + ".edge",
		Smesh:    base + ".smesh",
		Neigh:    base + ".neigh",
	}
}

// renames returns the raw-to-bare rename pairs in the fixed stage order:
// node, ele, face, edge, smesh.
func (p Paths) renames() [][2]string {
	return [][2]string{
		{p.RawNode, p.Node},
		{p.RawEle, p.Ele},
		{p.RawFace, p.FaceF},
		{p.RawEdge, p.Edge},
		{p.RawSmesh, p.Smesh},
	}
}

// rawArtifacts returns the five artifacts TetGen must emit.
func (p Paths) rawArtifacts() []string {
	return []string{p.RawNode, p.RawEle, p.RawFace, p.RawEdge, p.RawSmesh}
}
