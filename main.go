// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/godyna/col"
	"github.com/cpmech/godyna/inp"
	"github.com/cpmech/godyna/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// input arguments
	cfgpath, fnkey := io.ArgToFilename(0, "examples/boxbeam/run", ".cfg", true)

	// settings
	settings, err := inp.ReadSettings(cfgpath)
	if err != nil {
		chk.Panic("cannot read settings:\n%v", err)
	}
	verbose := settings.Run.Verbose && mpi.Rank() == 0

	// message
	if verbose {
		io.PfWhite("\nGodyna -- LS-Dyna Part Collection\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"settings file path", "cfgpath", cfgpath,
		))
	}

	// control data and cell stream
	dir := filepath.Dir(cfgpath)
	meta := inp.ReadMeta(dir, settings.Run.Meta)
	dump := inp.ReadDump(dir, settings.Run.Dump)
	if err := dump.Check(meta); err != nil {
		chk.Panic("dump is inconsistent with metadata:\n%v", err)
	}

	// this rank's slice of every category's index space
	mins, maxs := splitRanges(meta, mpi.Rank(), mpi.Size())
	if err := meta.CheckRanges(mins, maxs); err != nil {
		chk.Panic("invalid cell ranges:\n%v", err)
	}
	if verbose {
		for i := 0; i < inp.NumCategories; i++ {
			if n := meta.CellsInRange(inp.Category(i), mins[i], maxs[i]); n > 0 {
				io.Pf("reading %d %s cells\n", n, inp.Category(i))
			}
		}
	}
	collection := col.New(meta, mins, maxs)

	// stream the cells of this rank; positions are relative to the range
	for i := 0; i < inp.NumCategories; i++ {
		cat := inp.Category(i)
		for pos, cell := range dump.Cells[i][mins[i]:maxs[i]] {
			collection.InsertCell(cat, pos, cell.Mat, cell.Ctype, cell.Verts)
		}
	}

	// cell attributes
	for i := 0; i < len(dump.CellProps) && i < inp.NumCategories; i++ {
		buffer := dump.CellProps[i]
		if buffer == nil {
			continue
		}
		cat := inp.Category(i)
		for _, def := range buffer.Defs {
			collection.AddProperty(cat, def.Name, def.Start, def.Ncomps)
		}
		rows := buffer.Vals[mins[i]*buffer.Stride : maxs[i]*buffer.Stride]
		collection.FillCellProperties(cat, rows, buffer.Stride)
	}

	// death flags
	for i := 0; i < inp.NumCategories; i++ {
		if len(dump.Dead) <= i || len(dump.Dead[i]) == 0 {
			continue
		}
		collection.SetCellDeadFlags(inp.Category(i), dump.Dead[i][mins[i]:maxs[i]])
	}

	// point attributes
	for _, pp := range dump.PointProps {
		collection.AddPointArray(&msh.DataArray{Name: pp.Name, Ncomps: pp.Ncomps, Vals: pp.Vals})
	}

	// build the part meshes
	collection.FinalizeTopology()
	collection.Finalize(dump.Coords, settings.Run.RemoveDead)

	// write one file per active part
	for _, mat := range collection.ActiveMats() {
		grid := collection.Grid(mat)
		grid.WriteVtk(settings.Run.DirOut, io.Sf("%s-r%02d-p%03d", fnkey, mpi.Rank(), mat))
		if verbose {
			io.Pforan("part %3d %-12s %q: %d cells, %d points\n", mat,
				grid.Meta["category"], grid.Meta["name"], grid.Ncells(), grid.Npoints())
		}
	}
	if verbose {
		io.Pf("\nresults saved in %s\n", settings.Run.DirOut)
	}
}

// splitRanges gives rank its contiguous slice of every category's index
// space; the remainder of an uneven split goes to the last rank
func splitRanges(meta *inp.MetaData, rank, nproc int) (mins, maxs []int) {
	mins = make([]int, inp.NumCategories)
	maxs = make([]int, inp.NumCategories)
	for i := 0; i < inp.NumCategories; i++ {
		n := meta.NumCells[i] / nproc
		mins[i] = rank * n
		maxs[i] = mins[i] + n
		if rank == nproc-1 {
			maxs[i] = meta.NumCells[i]
		}
	}
	return
}
