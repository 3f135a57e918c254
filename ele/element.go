// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements for axial members
package ele

import (
	"github.com/cpmech/fea1d/mdl/sld"
	"github.com/cpmech/fea1d/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// NATTOL is the tolerance on natural coordinates to accept points lying on the ends of an element
const NATTOL = 1e-12

// Element defines what all elements must implement
type Element interface {

	// information
	Id() int                  // returns the element Id
	Verts() []int             // returns the ids of vertices sorted by coordinate
	Span() (xa, xb float64)   // returns the coordinates of the first and last vertices
	Length() float64          // returns the length of element
	Model() *sld.OnedLinElast // returns the material model

	// matrices and vectors
	Stiffness() [][]float64 // returns the element K matrix
	LoadVector() []float64  // returns the equivalent nodal loads due to distributed load
	AddToKb(Kb [][]float64) // adds element K to global matrix Kb
	AddToRhs(fb []float64)  // adds element loads to global vector fb

	// post-processing. ue == displacements of vertices
	NatCoord(x float64) float64                          // maps real coordinate to natural coordinate
	DispAt(ue []float64, r float64) (u float64, ok bool) // displacement @ natural coordinate; ok=false if r is outside element
	Strain(ue []float64) float64                         // axial strain
	Stress(ue []float64) float64                         // axial stress
	AxialForce(ue []float64) float64                     // axial force
}

// Cell holds the data required to allocate an element
type Cell struct {
	Id    int               // element id
	Verts []int             // global ids of the two vertices
	X     []float64         // coordinates of vertices [nverts]
	Mdl   *sld.OnedLinElast // material model with E and A
	Nx    float64           // distributed axial load per unit length
	Nip   int               // number of integration points; 0 means default
	Gid   int               // goroutine id; > 0 means private copy of shape scratchpad
}

// GetUe collects the displacements of the element vertices from the global vector U
func GetUe(e Element, U []float64) (ue []float64) {
	verts := e.Verts()
	ue = make([]float64, len(verts))
	for m, v := range verts {
		ue[m] = U[v]
	}
	return
}

// lin2data holds data shared by two-node elements
type lin2data struct {
	Cell *Cell             // the cell structure
	Vids []int             // ids of vertices sorted by coordinate
	X    []float64         // coordinates of vertices sorted
	L    float64           // length of element
	Mdl  *sld.OnedLinElast // material model
	Nx   float64           // distributed load
	K    [][]float64       // [2][2] element K matrix
	Fe   []float64         // [2] equivalent nodal loads
}

// init checks and sorts the cell data
func (o *lin2data) init(cell *Cell) (err error) {
	if cell == nil {
		return chk.Err("cannot allocate element without cell data")
	}
	if len(cell.Verts) != 2 || len(cell.X) != 2 {
		return chk.Err("element %d requires exactly 2 vertices. %d vertices and %d coordinates are invalid", cell.Id, len(cell.Verts), len(cell.X))
	}
	if cell.Mdl == nil {
		return chk.Err("element %d requires a material model", cell.Id)
	}
	o.Cell = cell
	o.Vids = []int{cell.Verts[0], cell.Verts[1]}
	o.X = []float64{cell.X[0], cell.X[1]}
	if o.X[1] < o.X[0] {
		o.Vids[0], o.Vids[1] = o.Vids[1], o.Vids[0]
		o.X[0], o.X[1] = o.X[1], o.X[0]
	}
	o.L = o.X[1] - o.X[0]
	if !(o.L > 0) || o.Vids[0] == o.Vids[1] {
		return &DegenerateElementError{Eid: cell.Id, Xa: o.X[0], Xb: o.X[1]}
	}
	o.Mdl = cell.Mdl
	o.Nx = cell.Nx
	o.K = utl.Alloc(2, 2)
	o.Fe = make([]float64, 2)
	return
}

// Id returns the cell Id
func (o *lin2data) Id() int { return o.Cell.Id }

// Verts returns the ids of vertices sorted by coordinate
func (o *lin2data) Verts() []int { return o.Vids }

// Span returns the coordinates of the first and last vertices
func (o *lin2data) Span() (xa, xb float64) { return o.X[0], o.X[1] }

// Length returns the length of element
func (o *lin2data) Length() float64 { return o.L }

// Model returns the material model
func (o *lin2data) Model() *sld.OnedLinElast { return o.Mdl }

// Stiffness returns a copy of the element K matrix
func (o *lin2data) Stiffness() [][]float64 {
	K := utl.Alloc(2, 2)
	for i := 0; i < 2; i++ {
		copy(K[i], o.K[i])
	}
	return K
}

// LoadVector returns a copy of the equivalent nodal loads
func (o *lin2data) LoadVector() []float64 {
	return []float64{o.Fe[0], o.Fe[1]}
}

// AddToKb adds element K to global matrix Kb
func (o *lin2data) AddToKb(Kb [][]float64) {
	for i, I := range o.Vids {
		for j, J := range o.Vids {
			Kb[I][J] += o.K[i][j]
		}
	}
}

// AddToRhs adds element loads to global vector fb
func (o *lin2data) AddToRhs(fb []float64) {
	for i, I := range o.Vids {
		fb[I] += o.Fe[i]
	}
}

// NatCoord maps real coordinate x to natural coordinate: χ = 2 (x - x1) / L - 1
func (o *lin2data) NatCoord(x float64) float64 {
	return shp.NatCoord(x, o.X[0], o.X[1])
}

// inside checks and clamps natural coordinate r
func inside(r float64) (rc float64, ok bool) {
	if r < -1.0-NATTOL || r > 1.0+NATTOL {
		return r, false
	}
	if r < -1.0 {
		return -1.0, true
	}
	if r > 1.0 {
		return 1.0, true
	}
	return r, true
}
