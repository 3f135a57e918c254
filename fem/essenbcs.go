// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/utl"

// ApplyBcs applies the prescribed displacements to copies of K and F by eliminating rows and columns
//  For each node i merged into node c, rows and columns of i are added to c and replaced by u_i = u_c:
//
//      Kc[c][:] += Kc[i][:],  Fc[c] += Fc[i]
//      Kc[:][c] += Kc[:][i]
//      Kc[i][:]  = Kc[:][i] = 0
//      Kc[i][i]  = 1,  Kc[i][c] = -1,  Fc[i] = 0
//
//  For each constrained node i with prescribed ū:
//
//      Fc[j]    -= K[j][i] ū   (j ≠ i)
//      Kc[i][:]  = Kc[:][i] = 0
//      Kc[i][i]  = 1
//      Fc[i]     = ū
//
//  K and F are not modified. K and F are assembled again if the model was changed after the
//  last assembly
func (o *Model) ApplyBcs() (Kc [][]float64, Fc []float64) {
	n := len(o.Nodes)
	current := o.state == Assembled || o.state == Solved
	if !current || len(o.K) != n || len(o.F) != n {
		o.Assemble()
		return o.Kc, o.Fc
	}
	return o.applyBcs()
}

// applyBcs computes Kc and Fc from the current K and F
func (o *Model) applyBcs() (Kc [][]float64, Fc []float64) {

	// copies
	n := len(o.Nodes)
	Kc = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		copy(Kc[i], o.K[i])
	}
	Fc = make([]float64, n)
	copy(Fc, o.F)

	// merged nodes
	for _, nod := range o.Nodes {
		if !nod.Merged() {
			continue
		}
		i, c := nod.Id, o.canonical(nod).Id
		for j := 0; j < n; j++ {
			Kc[c][j] += Kc[i][j]
		}
		Fc[c] += Fc[i]
		for j := 0; j < n; j++ {
			Kc[j][c] += Kc[j][i]
		}
		for j := 0; j < n; j++ {
			Kc[i][j] = 0
			Kc[j][i] = 0
		}
		Kc[i][i], Kc[i][c], Fc[i] = 1, -1, 0
	}

	// move known values to the right-hand side
	for _, nod := range o.Nodes {
		if !nod.HasU || nod.U == 0 {
			continue
		}
		i := nod.Id
		for j := 0; j < n; j++ {
			if j != i {
				Fc[j] -= Kc[j][i] * nod.U
			}
		}
	}

	// eliminate rows and columns
	for _, nod := range o.Nodes {
		if !nod.HasU {
			continue
		}
		i := nod.Id
		for j := 0; j < n; j++ {
			Kc[i][j] = 0
			Kc[j][i] = 0
		}
		Kc[i][i] = 1
		Fc[i] = nod.U
	}
	o.Kc, o.Fc = Kc, Fc
	return
}
