// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. metadata")

	meta := ReadMeta("data", "boxbeam.json")
	io.Pforan("meta = %v\n", meta)

	chk.String(tst, meta.Title, "box beam impact")
	chk.IntAssert(meta.NumNodes, 10)
	chk.Ints(tst, "ncells", meta.NumCells, []int{0, 2, 4, 0, 0, 0, 0})
	chk.IntAssert(len(meta.Parts), 3)
	chk.String(tst, meta.Parts[0].Name, "upper flange")
	chk.IntAssert(int(meta.Parts[0].Cat), int(Shell))
	if meta.Parts[1].Enabled {
		tst.Errorf("part 2 must be disabled")
		return
	}
	chk.String(tst, meta.Parts[2].Cat.String(), "BEAM")
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. cell stream dump")

	meta := ReadMeta("data", "boxbeam.json")
	dump := ReadDump("data", "boxbeam-d.json")
	if err := dump.Check(meta); err != nil {
		tst.Errorf("dump check failed:\n%v", err)
		return
	}

	chk.IntAssert(len(dump.Cells[Shell]), 4)
	chk.Ints(tst, "shell 1 verts", dump.Cells[Shell][1].Verts, []int{2, 3, 8, 7})
	chk.IntAssert(dump.Cells[Beam][0].Ctype, 3)
	if !dump.Dead[Shell][1] {
		tst.Errorf("shell at position 1 must be flagged dead")
		return
	}

	props := dump.CellProps[Shell]
	chk.IntAssert(props.Stride, 2)
	chk.String(tst, props.Defs[1].Name, "eps")
	chk.Vector(tst, "vals", 1e-17, props.Vals[:4], []float64{10, 0.1, 20, 0.2})

	chk.IntAssert(len(dump.PointProps), 1)
	chk.IntAssert(len(dump.PointProps[0].Vals), meta.NumNodes)

	// a truncated death-flag array must be caught
	dead := dump.Dead[Shell]
	dump.Dead[Shell] = dead[:2]
	if err := dump.Check(meta); err == nil {
		tst.Errorf("truncated death flags must fail the check")
		return
	}
	dump.Dead[Shell] = dead

	// and so must a property buffer with missing rows
	vals := dump.CellProps[Shell].Vals
	dump.CellProps[Shell].Vals = vals[:3]
	if err := dump.Check(meta); err == nil {
		tst.Errorf("truncated property buffer must fail the check")
		return
	}
	dump.CellProps[Shell].Vals = vals

	// a zero stride cannot size the buffer
	stride := dump.CellProps[Shell].Stride
	dump.CellProps[Shell].Stride = 0
	if err := dump.Check(meta); err == nil {
		tst.Errorf("zero stride must fail the check")
		return
	}
	dump.CellProps[Shell].Stride = stride
	if err := dump.Check(meta); err != nil {
		tst.Errorf("restored dump must pass again:\n%v", err)
		return
	}
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. run settings")

	settings, err := ReadSettings("data/boxbeam.cfg")
	if err != nil {
		tst.Errorf("cannot read settings:\n%v", err)
		return
	}
	chk.String(tst, settings.Run.Meta, "boxbeam.json")
	chk.String(tst, settings.Run.Dump, "boxbeam-d.json")
	chk.String(tst, settings.Run.DirOut, "/tmp/godyna/boxbeam")
	if !settings.Run.RemoveDead {
		tst.Errorf("RemoveDead must be true")
		return
	}
	if settings.Run.Verbose {
		tst.Errorf("Verbose must be false")
		return
	}
}

func Test_read04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read04. category names")

	chk.String(tst, Particle.String(), "PARTICLE")
	chk.String(tst, RoadSurface.String(), "ROAD_SURFACE")
	chk.String(tst, Category(-1).String(), "INVALID")
	chk.String(tst, Category(99).String(), "INVALID")
	chk.IntAssert(len(CategoryNames), NumCategories)
}

func Test_read05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read05. per-category read ranges")

	meta := ReadMeta("data", "boxbeam.json") // 2 beams, 4 shells

	// counts are clipped to the category's index space
	chk.IntAssert(meta.CellsInRange(Shell, 0, 4), 4)
	chk.IntAssert(meta.CellsInRange(Shell, 1, 3), 2)
	chk.IntAssert(meta.CellsInRange(Shell, -2, 99), 4)
	chk.IntAssert(meta.CellsInRange(Shell, 3, 1), 0)
	chk.IntAssert(meta.CellsInRange(Solid, 0, 0), 0)
	chk.IntAssert(meta.CellsInRange(Beam, 1, 2), 1)

	// nil stands for the full index space of every category
	if err := meta.CheckRanges(nil, nil); err != nil {
		tst.Errorf("nil ranges must be valid:\n%v", err)
		return
	}
	mins := make([]int, NumCategories)
	maxs := make([]int, NumCategories)
	maxs[Beam] = 2
	maxs[Shell] = 4
	if err := meta.CheckRanges(mins, maxs); err != nil {
		tst.Errorf("full ranges must be valid:\n%v", err)
		return
	}
	maxs[Shell] = 5 // beyond the category's cell count
	if err := meta.CheckRanges(mins, maxs); err == nil {
		tst.Errorf("range beyond the cell count must fail")
		return
	}
	mins[Shell], maxs[Shell] = 3, 1
	if err := meta.CheckRanges(mins, maxs); err == nil {
		tst.Errorf("inverted range must fail")
		return
	}
	mins[Shell], maxs[Shell] = -1, 4
	if err := meta.CheckRanges(mins, maxs); err == nil {
		tst.Errorf("negative min must fail")
		return
	}
	mins[Shell] = 0
	if err := meta.CheckRanges(mins[:2], maxs); err == nil {
		tst.Errorf("short mins must fail")
		return
	}
	if err := meta.CheckRanges(mins, maxs[:2]); err == nil {
		tst.Errorf("short maxs must fail")
	}
}
