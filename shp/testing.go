// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {

		// compute function @ vertex
		shape.Func(shape.S, shape.DSdR, shape.NatCoords[n], false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures by central finite differences
func CheckDSdR(tst *testing.T, shape *Shape, r float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)
	dSdR := append([]float64{}, shape.DSdR...)

	// scratchpad
	S := make([]float64, shape.Nverts)
	dS := make([]float64, shape.Nverts)
	settings := &fd.Settings{Formula: fd.Central}

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		dSndR := fd.Derivative(func(t float64) float64 {
			shape.Func(S, dS, t, false)
			return S[n]
		}, r, settings)
		if verbose {
			io.Pforan("dS%ddR @ %v = %v (num: %v)\n", n, r, dSdR[n], dSndR)
		}
		if math.Abs(dSdR[n]-dSndR) > tol {
			tst.Errorf("%s dS%ddR failed: %v != %v\n", shape.Type, n, dSdR[n], dSndR)
			return
		}
	}
}
