// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package col

import (
	"github.com/cpmech/godyna/inp"
	"github.com/cpmech/godyna/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// cellRef maps one streamed cell position to (part index, cell-within-part)
type cellRef struct {
	part int // index into parts (mat-1); -1 means no owner
	cell int // cell-within-part index
}

// Collection owns all parts and routes streamed cells into them in a single
// linear pass. Cells are ordered the same between the connectivity block and
// the state blocks of the source, so one index map per category is enough to
// scatter post-hoc property buffers and death flags onto the right parts.
//
// Parallel decomposition happens outside: each worker gets a disjoint
// [min,max) position range per category via Init and therefore builds a
// disjoint subset of cells. Positions handed to InsertCell and the rows of
// death-flag/property buffers are relative to that range; no further offset
// translation is done here.
type Collection struct {

	// configuration
	meta *inp.MetaData // control data; catalog and global counts

	// parts; indexed by mat-1; nil means disabled or pruned
	parts []*Part

	// per-category index maps and active ranges
	cellToPart [][]cellRef // [NumCategories][max-min] position => owner
	minIds     []int       // [NumCategories] first position this worker owns
	maxIds     []int       // [NumCategories] one past the last position
	lastPos    []int       // [NumCategories] last inserted position; ordering check

	// global point attributes; split per part during Finalize
	pointData []*msh.DataArray

	// one-way flag per timestep; cleared by ResetTimeStepInfo
	finalized bool
}

// New returns a collection configured for the given control data
//  mins, maxs -- [NumCategories] active position range per category for this
//                worker; nil means 0 and meta.NumCells respectively
func New(meta *inp.MetaData, mins, maxs []int) (o *Collection) {
	o = new(Collection)
	o.Init(meta, mins, maxs)
	return
}

// Init (re)configures the collection, discarding prior state. May be called
// repeatedly between runs. Unless a previous timestep was finalized and not
// reset, the parts are rebuilt from the catalog; disabled entries leave a
// nil slot.
func (o *Collection) Init(meta *inp.MetaData, mins, maxs []int) {
	if meta == nil {
		chk.Panic("cannot initialize collection without metadata")
	}
	chk.IntAssert(len(meta.NumCells), inp.NumCategories)
	o.meta = meta
	o.cellToPart = make([][]cellRef, inp.NumCategories)
	o.minIds = make([]int, inp.NumCategories)
	o.maxIds = make([]int, inp.NumCategories)
	o.lastPos = make([]int, inp.NumCategories)
	for i := 0; i < inp.NumCategories; i++ {
		o.minIds[i] = 0
		o.maxIds[i] = meta.NumCells[i]
		if mins != nil {
			o.minIds[i] = mins[i]
		}
		if maxs != nil {
			o.maxIds[i] = maxs[i]
		}
		n := o.maxIds[i] - o.minIds[i]
		if n < 0 {
			chk.Panic("category %q has invalid range [%d,%d)", inp.Category(i), o.minIds[i], o.maxIds[i])
		}
		o.cellToPart[i] = make([]cellRef, n)
		for j := range o.cellToPart[i] {
			o.cellToPart[i][j] = cellRef{-1, -1}
		}
		o.lastPos[i] = -1
	}
	o.pointData = nil
	if !o.finalized {
		o.buildPartInfo()
	}
}

// buildPartInfo allocates one part per enabled catalog entry
func (o *Collection) buildPartInfo() {
	o.parts = make([]*Part, len(o.meta.Parts))
	for _, def := range o.meta.Parts {
		if def.Enabled {
			o.parts[def.Mat-1] = newPart(def)
		}
	}
}

// InsertCell routes one streamed cell into its part and records the index-map
// entry. It is a no-op when the collection is finalized or when mat refers to
// a disabled/absent part. Positions must arrive in non-decreasing order per
// category; a violation panics instead of silently corrupting the maps.
//  cat   -- category of the cell
//  pos   -- position within the active range; [0, max-min)
//  mat   -- material id of the owning part; 1-based
//  ctype -- primitive shape tag; e.g. msh.Triangle
//  verts -- global node indices; 1-based
func (o *Collection) InsertCell(cat inp.Category, pos, mat, ctype int, verts []int) {
	if o.finalized {
		return
	}
	rng := o.cellToPart[cat]
	if pos < 0 || pos >= len(rng) {
		// outside this worker's range; expected during partial reads
		return
	}
	if pos < o.lastPos[cat] {
		chk.Panic("category %q: cells must arrive in non-decreasing position order. %d after %d", cat, pos, o.lastPos[cat])
	}
	o.lastPos[cat] = pos
	if mat < 1 || mat > len(o.parts) {
		return
	}
	part := o.parts[mat-1]
	if part == nil {
		return
	}
	rng[pos] = cellRef{mat - 1, part.insertCell(ctype, verts)}
}

// SetCellDeadFlags records which cells of a category died this timestep.
// dead covers exactly the active range of the category. No-op when no cells
// of the category were recorded.
func (o *Collection) SetCellDeadFlags(cat inp.Category, dead []bool) {
	rng := o.cellToPart[cat]
	if len(rng) == 0 {
		return
	}
	n := len(dead)
	if n > len(rng) {
		n = len(rng)
	}
	for i := 0; i < n; i++ {
		if !dead[i] {
			continue
		}
		if pc := rng[i]; pc.part > -1 {
			part := o.parts[pc.part]
			part.deadCells = append(part.deadCells, pc.cell)
		}
	}
}

// AddPointArray registers one global point attribute shared across all parts;
// it is split per part during Finalize
func (o *Collection) AddPointArray(a *msh.DataArray) {
	o.pointData = append(o.pointData, a)
}

// NumPointArrays returns the number of registered global point attributes
func (o *Collection) NumPointArrays() int {
	return len(o.pointData)
}

// PointArray returns the i-th registered global point attribute (nil if out
// of range)
func (o *Collection) PointArray(i int) *msh.DataArray {
	if i < 0 || i >= len(o.pointData) {
		return nil
	}
	return o.pointData[i]
}

// AddProperty registers a per-cell attribute on every part of the category,
// sized to the part's current cell count and filled incrementally by
// FillCellProperties
//  start  -- offset of the first component within a source row
//  ncomps -- number of components
func (o *Collection) AddProperty(cat inp.Category, name string, start, ncomps int) {
	for _, part := range o.parts {
		if part != nil && part.Cat == cat {
			part.props = append(part.props, &propInfo{
				start: start,
				data:  msh.NewDataArray(name, ncomps, part.Ncells()),
			})
		}
	}
}

// FillCellProperties scatters a flat buffer of attribute rows onto the parts
// of a category. Row i belongs to the cell at position i of the active range;
// each registered descriptor of the owning part takes its components at its
// own offset within the row. Rows are consumed in ascending position order,
// which matches the order cells were inserted, so tuples land aligned with
// their cells.
//  buf    -- [n*stride] row-major values covering the active range
//  stride -- number of values per row
func (o *Collection) FillCellProperties(cat inp.Category, buf []float64, stride int) {
	rng := o.cellToPart[cat]
	if len(rng) == 0 {
		return
	}
	for i := 0; i < len(rng); i++ {
		pc := rng[i]
		if pc.part < 0 {
			continue
		}
		part := o.parts[pc.part]
		if part == nil {
			continue
		}
		row := buf[i*stride : (i+1)*stride]
		for _, prop := range part.props {
			prop.data.SetTuple(prop.next, row[prop.start:prop.start+prop.data.Ncomps])
			prop.next++
		}
	}
}

// FinalizeTopology renumbers the node references of every part into a compact
// local index space and prunes parts that accumulated no cells (a worker
// whose range contains none of that part's cells).
func (o *Collection) FinalizeTopology() {
	lookup := utl.IntVals(o.meta.NumNodes, -1)
	for i, part := range o.parts {
		if part == nil {
			continue
		}
		if part.Ncells() == 0 {
			o.parts[i] = nil
			continue
		}
		part.renumberPoints(lookup)
	}
}

// Finalize builds the output mesh of every surviving part: the topology
// (optionally with dead cells compacted away), the per-part coordinates and
// the per-part split of the registered point attributes. Further insertions
// become no-ops until ResetTimeStepInfo.
//  coords     -- [3*nnodes] global node coordinates
//  removeDead -- compact dead cells; attribute tuples stay aligned
func (o *Collection) Finalize(coords []float64, removeDead bool) {
	for _, part := range o.parts {
		if part == nil {
			continue
		}
		part.initGrid()
		if removeDead && len(part.deadCells) > 0 {
			part.buildCellsWithoutDead()
		} else {
			part.buildCells()
		}
		part.buildPoints(coords, o.pointData)
	}
	o.finalized = true
}

// ResetTimeStepInfo clears the per-timestep data of every part, releases the
// registered global point attributes and clears the finalized flag. Topology
// and the Loc2Glob tables survive, so the next timestep only needs new
// geometry/attribute data before calling Finalize again.
func (o *Collection) ResetTimeStepInfo() {
	for _, part := range o.parts {
		if part != nil {
			part.resetTimeStepInfo()
		}
	}
	o.pointData = nil
	o.finalized = false
}

// IsActivePart tells whether the part with the given material id is enabled
// and still holds cells
func (o *Collection) IsActivePart(mat int) bool {
	if mat < 1 || mat > len(o.parts) {
		return false
	}
	return o.parts[mat-1] != nil
}

// NumParts returns the number of active parts
func (o *Collection) NumParts() (n int) {
	for _, part := range o.parts {
		if part != nil {
			n++
		}
	}
	return
}

// ActiveMats returns the material ids of the active parts, ascending
func (o *Collection) ActiveMats() (mats []int) {
	for i, part := range o.parts {
		if part != nil {
			mats = append(mats, i+1)
		}
	}
	return
}

// Part returns the part with the given material id (nil if inactive)
func (o *Collection) Part(mat int) *Part {
	if mat < 1 || mat > len(o.parts) {
		return nil
	}
	return o.parts[mat-1]
}

// Grid returns the finalized mesh of the part with the given material id.
// It returns nil before Finalize has run or when the part is inactive.
func (o *Collection) Grid(mat int) *msh.Grid {
	if !o.finalized {
		return nil
	}
	part := o.Part(mat)
	if part == nil {
		return nil
	}
	return part.grid
}

// PartReadInfo computes the read range of a category so the parser can seek
// past cells this worker does not need
//  ncells    -- number of cells to deliver
//  skipStart -- cells to skip before the first delivered one
//  skipEnd   -- cells to skip after the last delivered one
func (o *Collection) PartReadInfo(cat inp.Category) (ncells, skipStart, skipEnd int) {
	n := len(o.cellToPart[cat])
	if n == 0 {
		return 0, o.meta.NumCells[cat], 0
	}
	return n, o.minIds[cat], o.meta.NumCells[cat] - (n + o.minIds[cat])
}
