// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/fea1d/ele"
)

// DisplacementAt returns the displacement at coordinate x
func (o *Model) DisplacementAt(x float64) (u float64, err error) {
	e, r, err := o.Locate(x)
	if err != nil {
		return
	}
	u, _ = e.DispAt(ele.GetUe(e, o.U), r)
	return
}

// ForceAt returns the axial force at coordinate x
func (o *Model) ForceAt(x float64) (N float64, err error) {
	e, _, err := o.Locate(x)
	if err != nil {
		return
	}
	return e.AxialForce(ele.GetUe(e, o.U)), nil
}

// StrainAt returns the axial strain at coordinate x
func (o *Model) StrainAt(x float64) (ε float64, err error) {
	e, _, err := o.Locate(x)
	if err != nil {
		return
	}
	return e.Strain(ele.GetUe(e, o.U)), nil
}

// StressAt returns the axial stress at coordinate x
func (o *Model) StressAt(x float64) (σ float64, err error) {
	e, _, err := o.Locate(x)
	if err != nil {
		return
	}
	return o.Sig[e.Id()], nil
}

// StressField returns the stress in each element; index == element id
func (o *Model) StressField() (sig []float64, err error) {
	err = o.ensureSolved()
	if err != nil {
		return
	}
	return append([]float64{}, o.Sig...), nil
}

// NodalDisp returns the displacement of node nid
func (o *Model) NodalDisp(nid int) (u float64, err error) {
	if _, err = o.node(nid, "NodalDisp"); err != nil {
		return
	}
	err = o.ensureSolved()
	if err != nil {
		return
	}
	return o.U[nid], nil
}

// Reaction returns the reaction at node nid; zero if nid is not constrained
//  Note: the reaction of a merged node is the reaction of the node it was merged into
func (o *Model) Reaction(nid int) (R float64, err error) {
	nod, err := o.target(nid, "Reaction")
	if err != nil {
		return
	}
	err = o.ensureSolved()
	if err != nil {
		return
	}
	return o.R[nod.Id], nil
}

// Locate solves the model if needed and finds the element containing x. Elements are searched in
// the order of ids; thus points shared by two elements belong to the element with smaller id
//  Output:
//   e -- element
//   r -- natural coordinate of x in e
func (o *Model) Locate(x float64) (e ele.Element, r float64, err error) {
	err = o.ensureSolved()
	if err != nil {
		return
	}
	for _, e = range o.Elems {
		r = e.NatCoord(x)
		if r >= -1.0-ele.NATTOL && r <= 1.0+ele.NATTOL {
			return
		}
	}
	xmin, xmax := o.Bounds()
	return nil, 0, &OutOfRangeQueryError{X: x, Xmin: xmin, Xmax: xmax}
}

// Bounds returns the smallest and largest coordinates covered by elements; NaN if there are no elements
func (o *Model) Bounds() (xmin, xmax float64) {
	if len(o.Elems) == 0 {
		return math.NaN(), math.NaN()
	}
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, e := range o.Elems {
		xa, xb := e.Span()
		xmin = math.Min(xmin, xa)
		xmax = math.Max(xmax, xb)
	}
	return
}

// ensureSolved solves the model if the last solution is not current
func (o *Model) ensureSolved() error {
	if o.state == Solved {
		return nil
	}
	return o.Solve()
}
