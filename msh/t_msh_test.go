// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testGrid returns two triangles sharing an edge on the x-y plane
func testGrid() (o *Grid) {
	o = NewGrid()
	o.SetCells(
		[]int{Triangle, Triangle},
		[]int{0, 4},
		[]int{3, 0, 1, 2, 3, 1, 3, 2},
	)
	o.SetCoords([]float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		1, 1, 0,
	})
	return
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. data arrays")

	a := NewDataArray("stress", 3, 2)
	chk.IntAssert(a.Ntuples(), 2)
	a.SetTuple(0, []float64{1, 2, 3})
	a.SetTuple(1, []float64{4, 5, 6})
	chk.Vector(tst, "tuple 0", 1e-17, a.Tuple(0), []float64{1, 2, 3})
	chk.Vector(tst, "vals", 1e-17, a.Vals, []float64{1, 2, 3, 4, 5, 6})

	b := NewLike(a, 4)
	chk.String(tst, b.Name, "stress")
	chk.IntAssert(b.Ncomps, 3)
	chk.IntAssert(b.Ntuples(), 4)
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. grid topology")

	g := testGrid()
	chk.IntAssert(g.Ncells(), 2)
	chk.IntAssert(g.Npoints(), 4)
	chk.Ints(tst, "cell 0", g.CellVerts(0), []int{0, 1, 2})
	chk.Ints(tst, "cell 1", g.CellVerts(1), []int{1, 3, 2})

	// the append path must produce the same packed layout
	h := NewGrid()
	h.InsertNextCell(Triangle, []int{0, 1, 2})
	h.InsertNextCell(Triangle, []int{1, 3, 2})
	chk.Ints(tst, "types", h.CellTypes, g.CellTypes)
	chk.Ints(tst, "offsets", h.CellOffsets, g.CellOffsets)
	chk.Ints(tst, "conn", h.Conn, g.Conn)

	if chk.Verbose {
		plt.Reset()
		g.Draw2d(true)
		plt.SaveD("/tmp/godyna", "test_msh02.png")
	}
}

func Test_msh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh03. legacy VTK writer")

	g := testGrid()
	g.Meta["name"] = "plate"
	tag := NewDataArray("tag", 1, 2)
	tag.SetTuple(1, []float64{7})
	g.AddCellArray(tag)
	temp := NewDataArray("temp", 1, 4)
	temp.SetTuple(3, []float64{0.5})
	g.AddPointArray(temp)

	g.WriteVtk("/tmp/godyna", "test_msh03")

	b, err := io.ReadFile("/tmp/godyna/test_msh03.vtk")
	if err != nil {
		tst.Errorf("cannot read file back: %v\n", err)
		return
	}
	chk.String(tst, string(b), `# vtk DataFile Version 3.0
plate
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 4 double
0 0 0
1 0 0
0 1 0
1 1 0
CELLS 2 8
3 0 1 2
3 1 3 2
CELL_TYPES 2
5
5
CELL_DATA 2
FIELD attributes 1
tag 1 2 double
0
7
POINT_DATA 4
FIELD attributes 1
temp 1 4 double
0
0
0
0.5
`)
}
