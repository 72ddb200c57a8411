// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from database (.json) and settings (.cfg) files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Category defines the kind of a cell. Each category has its own index space
// in the source stream; every cell belongs to exactly one category.
type Category int

// categories of cells
const (
	Particle Category = iota
	Beam
	Shell
	ThickShell
	Solid
	RigidBody
	RoadSurface
)

// NumCategories is the total number of cell categories
const NumCategories = 7

// CategoryNames maps categories to names
var CategoryNames = []string{
	"PARTICLE",
	"BEAM",
	"SHELL",
	"THICK_SHELL",
	"SOLID",
	"RIGID_BODY",
	"ROAD_SURFACE",
}

// String returns the name of the category
func (o Category) String() string {
	if o < 0 || int(o) >= NumCategories {
		return "INVALID"
	}
	return CategoryNames[o]
}

// PartDef holds one entry of the part catalog
type PartDef struct {
	Mat     int      `json:"mat"`     // material id; 1-based and stable across the database
	Cat     Category `json:"cat"`     // category of all cells in this part
	Name    string   `json:"name"`    // display name
	Enabled bool     `json:"enabled"` // whether cells of this part are loaded at all
}

// MetaData holds the database control information needed to route cells into parts
type MetaData struct {
	Title    string     `json:"title"`  // description of database
	NumNodes int        `json:"nnodes"` // total number of nodes in the full simulation
	NumCells []int      `json:"ncells"` // [NumCategories] total number of cells per category
	Parts    []*PartDef `json:"parts"`  // part catalog; materials are 1..len(Parts)
}

// ReadMeta reads the control data from a JSON file
//  Note: this function panics on errors
func ReadMeta(dir, fn string) *MetaData {
	var o MetaData
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		chk.Panic("ReadMeta: cannot read metadata file %q in %q", fn, dir)
	}
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadMeta: cannot unmarshal metadata file %q", fn)
	}
	if len(o.NumCells) != NumCategories {
		chk.Panic("metadata file %q must have ncells with %d entries. %d is incorrect", fn, NumCategories, len(o.NumCells))
	}
	for i, def := range o.Parts {
		if def.Mat != i+1 {
			chk.Panic("part catalog must list materials in ascending order 1..n. entry # %d has mat=%d", i, def.Mat)
		}
		if def.Cat < 0 || int(def.Cat) >= NumCategories {
			chk.Panic("part %q (mat=%d) has invalid category %d", def.Name, def.Mat, def.Cat)
		}
	}
	return &o
}

// CellsInRange returns how many cells of a category fall within the position
// range [min,max), clipped to the category's index space
func (o *MetaData) CellsInRange(cat Category, min, max int) int {
	if min < 0 {
		min = 0
	}
	if max > o.NumCells[cat] {
		max = o.NumCells[cat]
	}
	if max <= min {
		return 0
	}
	return max - min
}

// CheckRanges verifies per-category position ranges against the control data.
// nil mins/maxs stand for 0 and NumCells respectively.
func (o *MetaData) CheckRanges(mins, maxs []int) (err error) {
	if mins != nil && len(mins) != NumCategories {
		return chk.Err("mins must have %d entries. %d is incorrect", NumCategories, len(mins))
	}
	if maxs != nil && len(maxs) != NumCategories {
		return chk.Err("maxs must have %d entries. %d is incorrect", NumCategories, len(maxs))
	}
	for i := 0; i < NumCategories; i++ {
		min, max := 0, o.NumCells[i]
		if mins != nil {
			min = mins[i]
		}
		if maxs != nil {
			max = maxs[i]
		}
		if min < 0 || max > o.NumCells[i] || min > max {
			return chk.Err("category %q has invalid range [%d,%d); must satisfy 0 <= min <= max <= %d", Category(i), min, max, o.NumCells[i])
		}
	}
	return
}
