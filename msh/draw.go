// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Draw2d draws the cell outlines on the x-y plane
//  withIds -- show cell ids at centroids
func (o *Grid) Draw2d(withIds bool) {
	for i := 0; i < o.Ncells(); i++ {
		verts := o.CellVerts(i)
		n := len(verts)
		x := make([]float64, n+1)
		y := make([]float64, n+1)
		var xc, yc float64
		for j, v := range verts {
			x[j], y[j] = o.Coords[3*v], o.Coords[3*v+1]
			xc += x[j]
			yc += y[j]
		}
		x[n], y[n] = x[0], y[0] // close the outline
		plt.Plot(x, y, "'k-', lw=0.7, clip_on=0")
		if withIds {
			plt.Text(xc/float64(n), yc/float64(n), io.Sf("%d", i), "size=7, va='center', ha='center'")
		}
	}
	plt.Equal()
}
