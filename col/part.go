// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package col implements the part collection: it routes streamed cells into
// per-material parts, renumbers the node indices each part references, and
// finalizes every part into an independent mesh
package col

import (
	"github.com/cpmech/godyna/inp"
	"github.com/cpmech/godyna/msh"
)

// propInfo holds one per-cell attribute being filled from property buffers
type propInfo struct {
	start int            // offset of the first component within a source row
	next  int            // index of the tuple to set next
	data  *msh.DataArray // backing array; one tuple per cell of the part
}

// Part accumulates the cells of one material region and, once finalized,
// owns its output mesh. The topology is stored packed (see msh.Grid) and is
// constant across timesteps; only death flags and attributes vary.
type Part struct {

	// catalog information
	Mat  int          // material id; 1-based
	Cat  inp.Category // category of all cells in this part
	Name string       // display name

	// topology; append-only during a timestep, constant afterwards
	cellTypes   []int // [ncells] shape tag per cell
	cellOffsets []int // [ncells] cell => position of its npts entry in conn
	conn        []int // flat length-prefixed connectivity runs

	// point renumbering; built by FinalizeTopology. Loc2Glob[local] = global.
	// conn holds local ids afterwards.
	Loc2Glob []int

	// per-timestep data; cleared by ResetTimeStepInfo
	deadCells []int       // cell-within-part indices flagged dead; ascending
	props     []*propInfo // attribute descriptors in registration order

	// output; valid only after Finalize has run for a timestep
	grid *msh.Grid
}

// newPart returns a part for one enabled catalog entry
func newPart(def *inp.PartDef) *Part {
	return &Part{Mat: def.Mat, Cat: def.Cat, Name: def.Name}
}

// Ncells returns the number of cells accumulated so far
func (o *Part) Ncells() int {
	return len(o.cellTypes)
}

// Npoints returns the number of local points (zero before FinalizeTopology)
func (o *Part) Npoints() int {
	return len(o.Loc2Glob)
}

// Grid returns the finalized mesh (nil before Finalize)
func (o *Part) Grid() *msh.Grid {
	return o.grid
}

// insertCell appends one cell and returns its cell-within-part index.
// verts are global 1-based node indices and are normalized to 0-based here.
func (o *Part) insertCell(ctype int, verts []int) (cell int) {
	cell = len(o.cellTypes)
	o.cellTypes = append(o.cellTypes, ctype)
	o.cellOffsets = append(o.cellOffsets, len(o.conn))
	o.conn = append(o.conn, len(verts))
	for _, v := range verts {
		o.conn = append(o.conn, v-1)
	}
	return
}

// renumberPoints rewrites conn in place so every node index becomes a compact
// 0-based local id, and fills Loc2Glob. A direct-indexed lookup array is used
// instead of an associative map: one entry per global node, -1 meaning unseen,
// which keeps every reference O(1). Since local ids are handed out
// sequentially, Loc2Glob comes out sorted by construction.
//
// Points only referenced by cells later marked dead are not pruned; that
// would need per-point reference counts.
func (o *Part) renumberPoints(lookup []int) {
	next := 0
	o.Loc2Glob = o.Loc2Glob[:0]
	for k := 0; k < len(o.conn); {
		npts := o.conn[k]
		k++
		for i := 0; i < npts; i++ {
			g := o.conn[k]
			if lookup[g] < 0 {
				lookup[g] = next
				o.Loc2Glob = append(o.Loc2Glob, g)
				next++
			}
			o.conn[k] = lookup[g]
			k++
		}
	}

	// leave the shared lookup array unseen everywhere for the next part
	for _, g := range o.Loc2Glob {
		lookup[g] = -1
	}
}

// initGrid allocates a fresh output mesh carrying the part's metadata
func (o *Part) initGrid() {
	o.grid = msh.NewGrid()
	o.grid.Meta["name"] = o.Name
	o.grid.Meta["category"] = o.Cat.String()
}

// buildCells installs the topology verbatim, with every registered attribute
// attached in registration order
func (o *Part) buildCells() {
	if o.Ncells() == 0 {
		return
	}
	ctypes := make([]int, len(o.cellTypes))
	offsets := make([]int, len(o.cellOffsets))
	conn := make([]int, len(o.conn))
	copy(ctypes, o.cellTypes)
	copy(offsets, o.cellOffsets)
	copy(conn, o.conn)
	o.grid.SetCells(ctypes, offsets, conn)
	for _, prop := range o.props {
		o.grid.AddCellArray(prop.data)
	}
}

// buildCellsWithoutDead emits only the live cells, keeping every attribute
// tuple aligned with the cell it belonged to. deadCells is ascending because
// SetCellDeadFlags walks positions in order, so a single cursor suffices.
func (o *Part) buildCellsWithoutDead() {
	ncells := o.Ncells()
	if ncells == 0 {
		return
	}
	ndead := len(o.deadCells)

	// fresh attribute arrays sized to the live cell count
	newArrays := make([]*msh.DataArray, len(o.props))
	for j, prop := range o.props {
		newArrays[j] = msh.NewLike(prop.data, ncells-ndead)
		o.grid.AddCellArray(newArrays[j])
	}

	cursor := 0 // head of the dead list
	idx := 0    // next output cell
	i := 0
	for ; i < ncells && cursor < ndead; i++ {
		if o.deadCells[cursor] == i {
			cursor++
			continue
		}
		o.emitCell(i, idx, newArrays)
		idx++
	}

	// dead list exhausted: tight loop over the remaining cells
	for ; i < ncells; i++ {
		o.emitCell(i, idx, newArrays)
		idx++
	}
}

// emitCell copies cell i and its attribute tuples into output slot idx
func (o *Part) emitCell(i, idx int, newArrays []*msh.DataArray) {
	start := o.cellOffsets[i]
	npts := o.conn[start]
	o.grid.InsertNextCell(o.cellTypes[i], o.conn[start+1:start+1+npts])
	for j, prop := range o.props {
		newArrays[j].SetTuple(idx, prop.data.Tuple(i))
	}
}

// buildPoints gathers the coordinates and point attributes this part needs,
// remapped through Loc2Glob, and attaches them to the mesh
//  coords    -- [3*nnodes] global coordinates
//  pointData -- global point attributes shared by all parts
func (o *Part) buildPoints(coords []float64, pointData []*msh.DataArray) {
	k := len(o.Loc2Glob)
	xyz := make([]float64, 3*k)
	newArrays := make([]*msh.DataArray, len(pointData))
	for j, a := range pointData {
		newArrays[j] = msh.NewLike(a, k)
		o.grid.AddPointArray(newArrays[j])
	}
	for loc, g := range o.Loc2Glob {
		copy(xyz[3*loc:3*loc+3], coords[3*g:3*g+3])
		for j, a := range pointData {
			newArrays[j].SetTuple(loc, a.Tuple(g))
		}
	}
	o.grid.SetCoords(xyz)
}

// resetTimeStepInfo clears the data that must not survive into the next
// timestep. Topology and Loc2Glob are kept.
func (o *Part) resetTimeStepInfo() {
	o.deadCells = o.deadCells[:0]
	o.props = nil
}
