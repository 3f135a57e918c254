// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"

	"github.com/cpmech/fea1d/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Solve assembles and solves the constrained system Kc U = Fc; then computes stresses and reactions
func (o *Model) Solve() (err error) {

	// clear results
	o.U, o.R, o.Sig, o.Cond = nil, nil, nil, 0

	// assemble
	o.Assemble()
	n := len(o.Nodes)

	// check constraints
	if len(o.ConstrainedNodes()) == 0 {
		nids := make([]int, n)
		for i := 0; i < n; i++ {
			nids[i] = i
		}
		return &SingularSystemError{Nids: nids, Reason: "there are no prescribed displacements; the structure has a rigid-body mode"}
	}

	// factorisation
	A := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		A.SetRow(i, o.Kc[i])
	}
	var lu mat.LU
	lu.Factorize(A)

	// check pivots: |U_jj| must be larger than PivTol times the largest entry in column j
	var u mat.TriDense
	lu.UTo(&u)
	var bad []int
	for j := 0; j < n; j++ {
		cmax := 0.0
		for i := 0; i < n; i++ {
			cmax = math.Max(cmax, math.Abs(o.Kc[i][j]))
		}
		if !(math.Abs(u.At(j, j)) > o.Data.PivTol*cmax) {
			bad = append(bad, j)
		}
	}
	if len(bad) > 0 {
		return &SingularSystemError{Nids: bad, Reason: "zero pivots found; nodes are not connected to elements or are part of a mechanism"}
	}
	o.Cond = lu.Cond()

	// solve
	b := mat.NewVecDense(n, append([]float64{}, o.Fc...))
	var x mat.VecDense
	err = lu.SolveVecTo(&x, false, b)
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return chk.Err("linear solver failed:\n%v", err)
		}
		if o.ShowMsg {
			io.Pfyel(">> warning: system is ill-conditioned: cond=%g\n", float64(cond))
		}
		err = nil
	}
	o.U = make([]float64, n)
	for i := 0; i < n; i++ {
		o.U[i] = x.AtVec(i)
	}

	// stresses
	o.Sig = make([]float64, len(o.Elems))
	for _, e := range o.Elems {
		o.Sig[e.Id()] = e.Stress(ele.GetUe(e, o.U))
	}

	// reactions; merged nodes contribute to the nodes they were merged into
	o.R = make([]float64, n)
	for _, nod := range o.Nodes {
		c := o.canonical(nod)
		if !c.HasU {
			continue
		}
		i := nod.Id
		for j := 0; j < n; j++ {
			o.R[c.Id] += o.K[i][j] * o.U[j]
		}
		o.R[c.Id] -= o.F[i]
	}

	// success
	o.state = Solved
	if o.ShowMsg {
		io.Pf(">> Solved: %d equations, cond=%g\n", n, o.Cond)
	}
	return
}
