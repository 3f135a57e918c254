// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sld implements material models and cross-sections for axial members
package sld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds the elastic properties of a material; e.g. "Steel"
type Material struct {
	Name string  // display name
	E    float64 // Young's modulus
}

// NewMaterial returns a new material
func NewMaterial(name string, E float64) (o *Material, err error) {
	if !(E > 0) || math.IsInf(E, 0) {
		return nil, chk.Err("Young's modulus of material %q must be positive and finite. E=%g is invalid", name, E)
	}
	return &Material{Name: name, E: E}, nil
}

// String returns a short description of the material
func (o Material) String() string {
	return io.Sf("%s (E=%g)", o.Name, o.E)
}

// Section holds cross-sectional data
type Section struct {
	A float64 // cross-sectional area
}

// NewSection returns a new cross-section
func NewSection(A float64) (o *Section, err error) {
	if !(A > 0) || math.IsInf(A, 0) {
		return nil, chk.Err("cross-sectional area must be positive and finite. A=%g is invalid", A)
	}
	return &Section{A: A}, nil
}

// OnedLinElast implements a linear elastic model for axial (1D) elements
type OnedLinElast struct {
	E float64 // Young's modulus
	A float64 // cross-sectional area
}

// Init initialises model from material and section data
func (o *OnedLinElast) Init(mat *Material, sec *Section) (err error) {
	if mat == nil || sec == nil {
		return chk.Err("oned-elast model requires both material and section")
	}
	if !(mat.E > 0) {
		return chk.Err("oned-elast model: E=%g of material %q is invalid", mat.E, mat.Name)
	}
	if !(sec.A > 0) {
		return chk.Err("oned-elast model: A=%g is invalid", sec.A)
	}
	o.E, o.A = mat.E, sec.A
	return
}

// SetPrms sets E and A from parameters; e.g. {"E", "A"}
func (o *OnedLinElast) SetPrms(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "A":
			o.A = p.V
		default:
			return chk.Err("oned-elast model: parameter named %q is incorrect\n", p.N)
		}
	}
	if !(o.E > 0) || !(o.A > 0) {
		return chk.Err("oned-elast model: E=%g and A=%g must be positive", o.E, o.A)
	}
	return
}

// GetPrms gets the parameters of model
func (o OnedLinElast) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "A", V: o.A},
	}
}

// GetA returns cross-sectional area
func (o *OnedLinElast) GetA() float64 {
	return o.A
}

// CalcD returns D = dσ/dε
func (o *OnedLinElast) CalcD() float64 {
	return o.E
}

// Stress returns σ for given strain
func (o *OnedLinElast) Stress(ε float64) float64 {
	return o.E * ε
}

// AxialForce returns N = A σ for given strain
func (o *OnedLinElast) AxialForce(ε float64) float64 {
	return o.A * o.E * ε
}
