// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for one-dimensional elements
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const MINDET = 1.0e-14 // minimum Jacobian allowed for dxdR

// ShpFunc is the shape functions callback function
//  Input:
//   r      -- natural coordinate
//   derivs -- also compute dSdR
//  Output:
//   S[nverts]    -- shape functions
//   dSdR[nverts] -- derivatives of S w.r.t natural coordinate
type ShpFunc func(S, dSdR []float64, r float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string    // name; e.g. "lin2"
	Func      ShpFunc   // shape/derivs function callback function
	Nverts    int       // number of vertices in cell; e.g. "lin2" => 2
	NatCoords []float64 // natural coordinates of vertices [nverts]

	// scratchpad
	S    []float64 // [nverts] shape functions
	DSdR []float64 // [nverts] derivatives of S w.r.t natural coordinate
	J    float64   // Jacobian: dxdR
	Gvec []float64 // [nverts] G == dSdx. derivative of shape function == B operator
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	var p Shape
	p.Type = o.Type
	p.Func = o.Func
	p.Nverts = o.Nverts
	p.NatCoords = append([]float64{}, o.NatCoords...)
	p.init_scratchpad()
	p.J = o.J
	copy(p.S, o.S)
	copy(p.DSdR, o.DSdR)
	copy(p.Gvec, o.Gvec)
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// CalcAtR calculates S, DSdR, J and G at natural coordinate r
//  Input:
//   x[nverts] -- coordinates of vertices
//   r         -- natural coordinate
//  Output:
//   S, DSdR, J and Gvec
func (o *Shape) CalcAtR(x []float64, r float64, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, r, derivs)
	if !derivs {
		return
	}

	// J == dxdR := x * dSdR
	o.J = 0
	for m := 0; m < o.Nverts; m++ {
		o.J += x[m] * o.DSdR[m]
	}
	if math.Abs(o.J) < MINDET {
		return chk.Err("Jacobian of %q shape is too small: J=%g < %g", o.Type, o.J, MINDET)
	}

	// G := dSdR / J
	for m := 0; m < o.Nverts; m++ {
		o.Gvec[m] = o.DSdR[m] / o.J
	}
	return
}

// RealCoord returns the real coordinate of natural coordinate r
func (o *Shape) RealCoord(x []float64, r float64) (y float64) {
	o.Func(o.S, o.DSdR, r, false)
	for m := 0; m < o.Nverts; m++ {
		y += o.S[m] * x[m]
	}
	return
}

// Interp interpolates nodal values using S computed by the last call to CalcAtR or RealCoord
func (o *Shape) Interp(vals []float64) (v float64) {
	for m := 0; m < o.Nverts; m++ {
		v += o.S[m] * vals[m]
	}
	return
}

// NatCoord maps the real coordinate x to the natural coordinate of segment [xa, xb]
//  Note: the result may lie outside [-1, 1]; callers decide whether x belongs to the segment
func NatCoord(x, xa, xb float64) float64 {
	return 2.0*(x-xa)/(xb-xa) - 1.0
}

// Jacobian returns the Jacobian of a linear segment with length L; i.e. dx = J dR
func Jacobian(L float64) float64 {
	return L / 2.0
}

// init_scratchpad initialise scratchpad
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = make([]float64, o.Nverts)
	o.Gvec = make([]float64, o.Nverts)
}

// lin2 ////////////////////////////////////////////////////////////////////////////////////////////

// FuncLin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r} natural coordinates
//
//   -1     0    +1
//    0-----------1-->r
//
func FuncLin2(S, dSdR []float64, r float64, derivs bool) {
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0] = -0.5
	dSdR[1] = 0.5
}

// register shapes
func init() {
	lin2 := &Shape{
		Type:      "lin2",
		Func:      FuncLin2,
		Nverts:    2,
		NatCoords: []float64{-1, 1},
	}
	lin2.init_scratchpad()
	factory["lin2"] = lin2
}
