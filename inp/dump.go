// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CellRec holds one streamed cell record
type CellRec struct {
	Mat   int   `json:"mat"`   // material id of owning part; 1-based
	Ctype int   `json:"ctype"` // primitive shape tag; e.g. msh.Triangle
	Verts []int `json:"verts"` // global node indices; 1-based (Fortran-style)
}

// PropDef names one cell attribute within a property buffer row
type PropDef struct {
	Name   string `json:"name"`   // attribute name; e.g. "stress"
	Start  int    `json:"start"`  // offset of the first component within a source row
	Ncomps int    `json:"ncomps"` // number of components
}

// PropBuffer holds a flat per-category buffer of cell attribute rows
type PropBuffer struct {
	Stride int        `json:"stride"` // number of values per row
	Vals   []float64  `json:"vals"`   // [ncells*Stride] row-major values
	Defs   []*PropDef `json:"defs"`   // named attributes within each row
}

// PointProp holds one named global point attribute
type PointProp struct {
	Name   string    `json:"name"`   // attribute name; e.g. "velocity"
	Ncomps int       `json:"ncomps"` // number of components
	Vals   []float64 `json:"vals"`   // [nnodes*Ncomps] values indexed by global node id
}

// Dump holds a cell stream decoded from the binary database into JSON form.
// Cells of each category are listed in the order they appear in the source,
// which is also the order of rows in the state (property/death) blocks.
type Dump struct {
	Cells      [][]*CellRec  `json:"cells"`      // [NumCategories][ncells] streamed cell records
	Coords     []float64     `json:"coords"`     // [3*nnodes] global node coordinates
	Dead       [][]bool      `json:"dead"`       // [NumCategories][ncells] death flags; may be empty
	CellProps  []*PropBuffer `json:"cellprops"`  // [NumCategories] may contain null entries
	PointProps []*PointProp  `json:"pointprops"` // global point attributes; may be empty
}

// ReadDump reads a cell stream from a JSON file
//  Note: this function panics on errors
func ReadDump(dir, fn string) *Dump {
	var o Dump
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		chk.Panic("ReadDump: cannot read dump file %q in %q", fn, dir)
	}
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadDump: cannot unmarshal dump file %q", fn)
	}
	if len(o.Cells) != NumCategories {
		chk.Panic("dump file %q must have cells with %d categories. %d is incorrect", fn, NumCategories, len(o.Cells))
	}
	return &o
}

// Check verifies that a dump is consistent with the control data
func (o *Dump) Check(meta *MetaData) (err error) {
	for i := 0; i < NumCategories; i++ {
		if len(o.Cells[i]) != meta.NumCells[i] {
			return chk.Err("category %q: dump has %d cells but metadata says %d", Category(i), len(o.Cells[i]), meta.NumCells[i])
		}
		if i < len(o.Dead) && len(o.Dead[i]) > 0 && len(o.Dead[i]) != meta.NumCells[i] {
			return chk.Err("category %q: dump has %d death flags but metadata says %d cells", Category(i), len(o.Dead[i]), meta.NumCells[i])
		}
		if i < len(o.CellProps) && o.CellProps[i] != nil {
			buf := o.CellProps[i]
			if buf.Stride < 1 {
				return chk.Err("category %q: property buffer stride must be positive. %d is incorrect", Category(i), buf.Stride)
			}
			if len(buf.Vals) != meta.NumCells[i]*buf.Stride {
				return chk.Err("category %q: property buffer has %d values but %d cells with stride %d need %d", Category(i), len(buf.Vals), meta.NumCells[i], buf.Stride, meta.NumCells[i]*buf.Stride)
			}
		}
	}
	if len(o.Coords) != 3*meta.NumNodes {
		return chk.Err("dump has %d coordinates but metadata says nnodes=%d", len(o.Coords), meta.NumNodes)
	}
	return
}
