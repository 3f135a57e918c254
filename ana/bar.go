// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// FixedFreeBar computes the solution of a bar fixed at x=0 and free at x=L
// loaded by a tip load F and a uniform distributed load nx
//
//     |
//     |/ o==========================o ---> F
//     |/   --> --> --> --> --> -->
//     |            nx
//     |<------------ L ------------>|
//
//  u(x) = [F x + nx (L x - x²/2)] / (E A)
//  N(x) = F + nx (L - x)
type FixedFreeBar struct {
	E  float64 // Young's modulus
	A  float64 // cross-sectional area
	L  float64 // length
	F  float64 // tip load
	Nx float64 // distributed load
}

// Init initialises this structure
func (o *FixedFreeBar) Init(prms dbf.Params) (err error) {

	// default values
	o.E = 200e3
	o.A = 100
	o.L = 100
	o.F = 0
	o.Nx = 0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "A":
			o.A = p.V
		case "L":
			o.L = p.V
		case "F":
			o.F = p.V
		case "nx":
			o.Nx = p.V
		default:
			return chk.Err("fixed-free bar: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if !(o.E > 0) || !(o.A > 0) || !(o.L > 0) {
		return chk.Err("fixed-free bar: E=%g, A=%g and L=%g must be positive", o.E, o.A, o.L)
	}
	return
}

// GetPrms returns the current parameters
func (o FixedFreeBar) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "A", V: o.A},
		&dbf.P{N: "L", V: o.L},
		&dbf.P{N: "F", V: o.F},
		&dbf.P{N: "nx", V: o.Nx},
	}
}

// Disp returns the displacement at x
func (o FixedFreeBar) Disp(x float64) float64 {
	return (o.F*x + o.Nx*(o.L*x-x*x/2.0)) / (o.E * o.A)
}

// Force returns the axial force at x
func (o FixedFreeBar) Force(x float64) float64 {
	return o.F + o.Nx*(o.L-x)
}

// Stress returns the axial stress at x
func (o FixedFreeBar) Stress(x float64) float64 {
	return o.Force(x) / o.A
}

// Strain returns the axial strain at x
func (o FixedFreeBar) Strain(x float64) float64 {
	return o.Stress(x) / o.E
}

// Reaction returns the reaction at the support
func (o FixedFreeBar) Reaction() float64 {
	return -o.F - o.Nx*o.L
}

// TipDisp returns the displacement at x=L
func (o FixedFreeBar) TipDisp() float64 {
	return o.Disp(o.L)
}

// MaxRelErrStress returns the largest relative error between the analytical stress and the
// constant stress σe computed by a linear element spanning [xa, xb]. Since the analytical
// stress is linear, the largest error occurs at one of the ends of the element
func (o FixedFreeBar) MaxRelErrStress(xa, xb, σe float64) float64 {
	den := math.Max(math.Abs(o.Stress(0)), 1e-300)
	ea := math.Abs(o.Stress(xa) - σe)
	eb := math.Abs(o.Stress(xb) - σe)
	return math.Max(ea, eb) / den
}
