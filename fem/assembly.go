// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// AssembleK assembles the global stiffness matrix K by adding the contributions of all elements
func (o *Model) AssembleK() [][]float64 {
	n := len(o.Nodes)
	o.K = utl.Alloc(n, n)
	for _, e := range o.Elems {
		e.AddToKb(o.K)
	}
	return o.K
}

// AssembleF assembles the global load vector F with the equivalent loads of elements and point loads
func (o *Model) AssembleF() []float64 {
	n := len(o.Nodes)
	o.F = make([]float64, n)
	for _, e := range o.Elems {
		e.AddToRhs(o.F)
	}
	for _, nod := range o.Nodes {
		if nod.HasF {
			o.F[nod.Id] += nod.F
		}
	}
	return o.F
}

// Assemble assembles K and F and applies the essential boundary conditions
func (o *Model) Assemble() {
	o.AssembleK()
	o.AssembleF()
	o.applyBcs()
	o.state = Assembled
	if o.ShowMsg {
		io.Pf(">> Number of equations = %d\n", len(o.Nodes))
		io.Pf(">> Number of constrained nodes = %d\n", len(o.ConstrainedNodes()))
	}
}
