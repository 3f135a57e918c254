// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/fea1d/shp"

	"github.com/cpmech/gosl/chk"
)

// Bar represents a linear two-node bar element (for axial loads only) with K and
// equivalent loads computed by Gauss-Legendre quadrature
type Bar struct {
	lin2data

	// shape and integration points
	Shp     *shp.Shape   // shape structure
	IpsElem []shp.Ipoint // integration points of element

	// B operator (constant for linear elements)
	B []float64 // [2] B == dSdx
}

// register element
func init() {
	SetAllocator("lin2", func(cell *Cell) (Element, error) {
		return NewBar(cell)
	})
}

// NewBar returns a new integrated bar element
func NewBar(cell *Cell) (o *Bar, err error) {

	// basic data
	o = new(Bar)
	err = o.lin2data.init(cell)
	if err != nil {
		return nil, err
	}

	// shape structure
	o.Shp = shp.Get("lin2", cell.Gid)
	if o.Shp == nil {
		return nil, chk.Err("cannot get lin2 shape for element %d", cell.Id)
	}

	// integration points
	nip := cell.Nip
	if nip == 0 {
		nip = 2
	}
	o.IpsElem, err = shp.GetIps(nip)
	if err != nil {
		return nil, chk.Err("cannot get integration points for element %d with nip=%d:\n%v", cell.Id, nip, err)
	}

	// K, Fe and B
	o.B = make([]float64, 2)
	err = o.Recompute()
	if err != nil {
		return nil, err
	}
	return
}

// Recompute computes K and Fe by numerical integration
//  K  = ∫ Bᵀ E B A dx  = Σ Bᵀ E B A J w
//  Fe = ∫ Nᵀ nx dx     = Σ Nᵀ nx J w
func (o *Bar) Recompute() (err error) {

	// zero K and Fe
	for i := 0; i < 2; i++ {
		o.Fe[i] = 0
		for j := 0; j < 2; j++ {
			o.K[i][j] = 0
		}
	}

	// for each integration point
	for _, ip := range o.IpsElem {

		// shape functions and gradients @ ip
		err = o.Shp.CalcAtR(o.X, ip.R, true)
		if err != nil {
			return chk.Err("element %d:\n%v", o.Id(), err)
		}

		// auxiliary
		coef := ip.W * o.Shp.J
		D := o.Mdl.CalcD()
		A := o.Mdl.GetA()
		S := o.Shp.S
		G := o.Shp.Gvec

		// add contributions
		for m := 0; m < 2; m++ {
			o.Fe[m] += coef * S[m] * o.Nx
			for n := 0; n < 2; n++ {
				o.K[m][n] += coef * A * D * G[m] * G[n]
			}
		}
	}

	// B is constant
	copy(o.B, o.Shp.Gvec)
	return
}

// DispAt returns the displacement @ natural coordinate r
func (o *Bar) DispAt(ue []float64, r float64) (u float64, ok bool) {
	r, ok = inside(r)
	if !ok {
		return
	}
	o.Shp.Func(o.Shp.S, o.Shp.DSdR, r, false)
	return o.Shp.Interp(ue), true
}

// Strain returns the axial strain ε = B ue
func (o *Bar) Strain(ue []float64) (ε float64) {
	for m := 0; m < 2; m++ {
		ε += o.B[m] * ue[m]
	}
	return
}

// Stress returns the axial stress σ = E ε
func (o *Bar) Stress(ue []float64) float64 {
	return o.Mdl.Stress(o.Strain(ue))
}

// AxialForce returns the axial force N = A σ
func (o *Bar) AxialForce(ue []float64) float64 {
	return o.Mdl.AxialForce(o.Strain(ue))
}
