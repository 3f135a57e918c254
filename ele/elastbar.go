// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/fea1d/shp"

// ElastBar represents a linear two-node bar element (for axial loads only)
// simply implemented with constant stiffness matrix; i.e. no numerical integration is needed
type ElastBar struct {
	lin2data

	// scratchpad
	s    []float64 // [2] shape functions
	dsdr []float64 // [2] derivatives of shape functions
}

// register element
func init() {
	SetAllocator("elastbar", func(cell *Cell) (Element, error) {
		return NewElastBar(cell)
	})
}

// NewElastBar returns a new closed-form bar element
func NewElastBar(cell *Cell) (o *ElastBar, err error) {
	o = new(ElastBar)
	err = o.lin2data.init(cell)
	if err != nil {
		return nil, err
	}
	o.s = make([]float64, 2)
	o.dsdr = make([]float64, 2)
	o.Recompute()
	return
}

// Recompute computes K and Fe
//  K  = (D A / L) [[1, -1], [-1, 1]]
//  Fe = nx J [1, 1]    with J = L / 2
func (o *ElastBar) Recompute() {
	α := o.Mdl.CalcD() * o.Mdl.GetA() / o.L
	β := o.Nx * shp.Jacobian(o.L)
	o.K[0][0], o.K[0][1] = +α, -α
	o.K[1][0], o.K[1][1] = -α, +α
	o.Fe[0], o.Fe[1] = β, β
}

// DispAt returns the displacement @ natural coordinate r
func (o *ElastBar) DispAt(ue []float64, r float64) (u float64, ok bool) {
	r, ok = inside(r)
	if !ok {
		return
	}
	shp.FuncLin2(o.s, o.dsdr, r, false)
	return o.s[0]*ue[0] + o.s[1]*ue[1], true
}

// Strain returns the axial strain
func (o *ElastBar) Strain(ue []float64) float64 {
	return (ue[1] - ue[0]) / o.L
}

// Stress returns the axial stress
func (o *ElastBar) Stress(ue []float64) float64 {
	return o.Mdl.Stress(o.Strain(ue))
}

// AxialForce returns the axial force
func (o *ElastBar) AxialForce(ue []float64) float64 {
	return o.Mdl.AxialForce(o.Strain(ue))
}
