// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the mesh sink: named data arrays and the
// unstructured grid that the part collection finalizes into
package msh

import (
	"github.com/cpmech/gosl/chk"
)

// DataArray holds a named array of fixed-width tuples
type DataArray struct {
	Name   string    // name of attribute; e.g. "stress"
	Ncomps int       // number of components per tuple
	Vals   []float64 // [ntuples*Ncomps] values
}

// NewDataArray returns a named array with ntuples zeroed tuples
func NewDataArray(name string, ncomps, ntuples int) *DataArray {
	if ncomps < 1 {
		chk.Panic("data array %q must have at least one component. ncomps=%d is incorrect", name, ncomps)
	}
	return &DataArray{Name: name, Ncomps: ncomps, Vals: make([]float64, ncomps*ntuples)}
}

// NewLike returns an empty array with the same name and shape as another one,
// but with room for ntuples tuples
func NewLike(a *DataArray, ntuples int) *DataArray {
	return NewDataArray(a.Name, a.Ncomps, ntuples)
}

// Ntuples returns the number of tuples
func (o *DataArray) Ntuples() int {
	return len(o.Vals) / o.Ncomps
}

// Tuple returns a view (not a copy) of the i-th tuple
func (o *DataArray) Tuple(i int) []float64 {
	return o.Vals[i*o.Ncomps : (i+1)*o.Ncomps]
}

// SetTuple copies tuple into slot i
func (o *DataArray) SetTuple(i int, tuple []float64) {
	copy(o.Vals[i*o.Ncomps:(i+1)*o.Ncomps], tuple)
}
