// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data structures (control parameters) for analyses
package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SolverData holds data for element integration and the linear solver
//  Note: a pivot |U_jj| <= PivTol * max_i |Kc_ij| is taken as zero. Thus, chains of bars whose
//        stiffnesses E A / L differ by more than about 1/PivTol (1e12 with the default value) are
//        reported as singular even if they can be solved; decrease PivTol for such systems
type SolverData struct {
	Nip     int     `json:"nip"`     // number of integration points for element integrals
	PivTol  float64 `json:"pivtol"`  // pivot tolerance relative to the largest entry of each column. see note below
	Verbose bool    `json:"verbose"` // show messages
}

// SetDefault sets defaults values
func (o *SolverData) SetDefault() {
	o.Nip = 2
	o.PivTol = 1e-12
}

// Validate checks data
func (o *SolverData) Validate() (err error) {
	if o.Nip < 1 {
		return chk.Err("number of integration points must be at least 1. nip=%d is invalid", o.Nip)
	}
	if !(o.PivTol > 0) || o.PivTol >= 1 {
		return chk.Err("pivot tolerance must be in (0, 1). pivtol=%g is invalid", o.PivTol)
	}
	return
}

// MeshData holds data for mesh generation. Either MaxLen or Ndiv must be given
type MeshData struct {
	MaxLen   float64 `json:"maxlen"` // maximum length of elements
	Ndiv     int     `json:"ndiv"`   // total number of elements; the maximum length becomes total length / ndiv
	ElemType string  `json:"etype"`  // element type; e.g. "lin2" (integrated) or "elastbar" (closed form)
	Tol      float64 `json:"tol"`    // tolerance to find coincident nodes, relative to the element length
}

// SetDefault sets defaults values
func (o *MeshData) SetDefault() {
	o.ElemType = "lin2"
	o.Tol = 1e-9
}

// Validate checks data
func (o *MeshData) Validate() (err error) {
	hasLen := o.MaxLen != 0
	hasDiv := o.Ndiv != 0
	if hasLen && hasDiv {
		return chk.Err("the number of elements and the length of elements cannot be defined at the same time")
	}
	if !hasLen && !hasDiv {
		return chk.Err("either the number of elements or the length of elements must be defined")
	}
	if hasLen && (!(o.MaxLen > 0) || math.IsInf(o.MaxLen, 0)) {
		return chk.Err("maximum length of elements must be positive and finite. maxlen=%g is invalid", o.MaxLen)
	}
	if hasDiv && o.Ndiv < 0 {
		return chk.Err("number of elements must be positive. ndiv=%d is invalid", o.Ndiv)
	}
	if o.ElemType == "" {
		return chk.Err("element type must be given")
	}
	if o.Tol < 0 || o.Tol >= 0.5 {
		return chk.Err("tolerance for coincident nodes must be in [0, 0.5). tol=%g is invalid", o.Tol)
	}
	return
}
