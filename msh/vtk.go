// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// WriteVtk writes the grid as a legacy-VTK (.vtk) text file in dirout.
// Attributes are written as FIELD blocks so any number of components works.
func (o *Grid) WriteVtk(dirout, fnkey string) {

	// header
	var b bytes.Buffer
	io.Ff(&b, "# vtk DataFile Version 3.0\n")
	title := o.Meta["name"]
	if title == "" {
		title = fnkey
	}
	io.Ff(&b, "%s\n", title)
	io.Ff(&b, "ASCII\nDATASET UNSTRUCTURED_GRID\n")

	// points
	npoints := o.Npoints()
	io.Ff(&b, "POINTS %d double\n", npoints)
	for i := 0; i < npoints; i++ {
		io.Ff(&b, "%g %g %g\n", o.Coords[3*i], o.Coords[3*i+1], o.Coords[3*i+2])
	}

	// cells
	ncells := o.Ncells()
	io.Ff(&b, "CELLS %d %d\n", ncells, len(o.Conn))
	for i := 0; i < ncells; i++ {
		verts := o.CellVerts(i)
		io.Ff(&b, "%d", len(verts))
		for _, v := range verts {
			io.Ff(&b, " %d", v)
		}
		io.Ff(&b, "\n")
	}
	io.Ff(&b, "CELL_TYPES %d\n", ncells)
	for i := 0; i < ncells; i++ {
		io.Ff(&b, "%d\n", o.CellTypes[i])
	}

	// attributes
	writeField(&b, "CELL_DATA", ncells, o.CellData)
	writeField(&b, "POINT_DATA", npoints, o.PointData)

	io.WriteFileD(dirout, fnkey+".vtk", &b)
}

// writeField writes one CELL_DATA or POINT_DATA section with a FIELD block
func writeField(b *bytes.Buffer, section string, ntuples int, arrays []*DataArray) {
	if len(arrays) == 0 {
		return
	}
	io.Ff(b, "%s %d\n", section, ntuples)
	io.Ff(b, "FIELD attributes %d\n", len(arrays))
	for _, a := range arrays {
		io.Ff(b, "%s %d %d double\n", a.Name, a.Ncomps, a.Ntuples())
		for i := 0; i < a.Ntuples(); i++ {
			for j, v := range a.Tuple(i) {
				if j > 0 {
					io.Ff(b, " ")
				}
				io.Ff(b, "%g", v)
			}
			io.Ff(b, "\n")
		}
	}
}
