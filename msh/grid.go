// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
)

// shape tags (VTK numbering; the binary database stores these directly)
const (
	Vertex   = 1
	Line     = 3
	Triangle = 5
	Quad     = 9
	Tetra    = 10
	Hexa     = 12
	Wedge    = 13
	Pyramid  = 14
)

// Grid holds one finalized part mesh. The topology uses a packed encoding:
// Conn is a flat concatenation of (npts, id0, id1, ...) runs, CellOffsets[i]
// is the position of the npts entry of cell i within Conn, and CellTypes[i]
// is the shape tag of cell i. No per-cell allocations are made.
type Grid struct {

	// topology
	CellTypes   []int // [ncells] shape tag per cell
	CellOffsets []int // [ncells] cell => start position in Conn
	Conn        []int // flat length-prefixed connectivity runs; 0-based local ids

	// geometry
	Coords []float64 // [3*npoints] point coordinates

	// attributes
	CellData  []*DataArray // attached per-cell attributes; registration order
	PointData []*DataArray // attached per-point attributes; registration order

	// descriptive metadata; e.g. "name", "category"
	Meta map[string]string
}

// NewGrid returns an empty grid
func NewGrid() *Grid {
	return &Grid{Meta: make(map[string]string)}
}

// Ncells returns the number of cells
func (o *Grid) Ncells() int {
	return len(o.CellTypes)
}

// Npoints returns the number of points
func (o *Grid) Npoints() int {
	return len(o.Coords) / 3
}

// SetCells installs the topology in bulk. The grid takes ownership of the
// three slices; they must not be mutated afterwards.
func (o *Grid) SetCells(ctypes, offsets, conn []int) {
	if len(ctypes) != len(offsets) {
		chk.Panic("number of cell types and offsets must match. %d != %d", len(ctypes), len(offsets))
	}
	o.CellTypes = ctypes
	o.CellOffsets = offsets
	o.Conn = conn
}

// InsertNextCell appends one cell to the topology
func (o *Grid) InsertNextCell(ctype int, verts []int) {
	o.CellTypes = append(o.CellTypes, ctype)
	o.CellOffsets = append(o.CellOffsets, len(o.Conn))
	o.Conn = append(o.Conn, len(verts))
	o.Conn = append(o.Conn, verts...)
}

// CellVerts returns a view of the vertex ids of cell i
func (o *Grid) CellVerts(i int) []int {
	start := o.CellOffsets[i]
	npts := o.Conn[start]
	return o.Conn[start+1 : start+1+npts]
}

// SetCoords installs the point coordinates (flat xyz triplets)
func (o *Grid) SetCoords(xyz []float64) {
	o.Coords = xyz
}

// AddCellArray attaches a per-cell attribute array
func (o *Grid) AddCellArray(a *DataArray) {
	o.CellData = append(o.CellData, a)
}

// AddPointArray attaches a per-point attribute array
func (o *Grid) AddPointArray(a *DataArray) {
	o.PointData = append(o.PointData, a)
}
