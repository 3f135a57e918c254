// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. lin2 shape functions and derivatives")

	for name, shape := range factory {
		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)
		CheckShape(tst, shape, 1e-17, chk.Verbose)
		for _, r := range []float64{-1, -0.5, 0, 0.3, 1} {
			CheckDSdR(tst, shape, r, 1e-9, chk.Verbose)
		}
	}

	S := make([]float64, 2)
	dSdR := make([]float64, 2)
	FuncLin2(S, dSdR, -1, true)
	chk.Array(tst, "N(-1)", 1e-17, S, []float64{1, 0})
	FuncLin2(S, dSdR, 1, true)
	chk.Array(tst, "N(+1)", 1e-17, S, []float64{0, 1})
	FuncLin2(S, dSdR, 0.2, true)
	chk.Array(tst, "N(0.2)", 1e-15, S, []float64{0.4, 0.6})
	chk.Array(tst, "dNdR", 1e-17, dSdR, []float64{-0.5, 0.5})
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. Jacobian, B operator and mappings")

	x := []float64{10, 14}
	L := x[1] - x[0]
	shape := Get("lin2", 0)
	if shape == nil {
		tst.Errorf("cannot get lin2 shape")
		return
	}
	for _, r := range []float64{-1, 0, 0.7} {
		err := shape.CalcAtR(x, r, true)
		if err != nil {
			tst.Errorf("CalcAtR failed:\n%v", err)
			return
		}
		chk.Float64(tst, "J", 1e-15, shape.J, Jacobian(L))
		chk.Array(tst, "B", 1e-15, shape.Gvec, []float64{-1.0 / L, 1.0 / L})
	}

	chk.Float64(tst, "χ(xa)", 1e-15, NatCoord(10, x[0], x[1]), -1)
	chk.Float64(tst, "χ(xb)", 1e-15, NatCoord(14, x[0], x[1]), 1)
	chk.Float64(tst, "χ(mid)", 1e-15, NatCoord(12, x[0], x[1]), 0)
	chk.Float64(tst, "χ(out)", 1e-15, NatCoord(16, x[0], x[1]), 2)
	chk.Float64(tst, "x(χ=0.5)", 1e-15, shape.RealCoord(x, 0.5), 13)
	chk.Float64(tst, "interp", 1e-15, shape.Interp([]float64{1, 3}), 2.5)

	err := shape.CalcAtR([]float64{3, 3}, 0, true)
	if err == nil {
		tst.Errorf("CalcAtR should have failed for zero-length segment")
	}

	if Get("lin3", 0) != nil {
		tst.Errorf("lin3 shape must not be available")
	}
}

func Test_ips01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips01. Gauss-Legendre integration points")

	ips, err := GetIps(2)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	io.Pforan("ips = %v\n", ips)
	chk.Float64(tst, "r0", 1e-15, ips[0].R, -1.0/math.Sqrt(3.0))
	chk.Float64(tst, "r1", 1e-15, ips[1].R, 1.0/math.Sqrt(3.0))
	chk.Float64(tst, "w0", 1e-15, ips[0].W, 1)
	chk.Float64(tst, "w1", 1e-15, ips[1].W, 1)

	// points are sorted by natural coordinate
	for nip := 1; nip <= 5; nip++ {
		ips, err = GetIps(nip)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}
		for i := 1; i < nip; i++ {
			if !(ips[i].R > ips[i-1].R) {
				tst.Errorf("nip=%d: points are not sorted: %v", nip, ips)
				return
			}
		}
	}

	// integrate r² over [-1,1] with 2 and 3 points
	for _, nip := range []int{2, 3} {
		ips, err = GetIps(nip)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}
		sum := 0.0
		for _, ip := range ips {
			sum += ip.W * ip.R * ip.R
		}
		chk.Float64(tst, io.Sf("∫r² (nip=%d)", nip), 1e-15, sum, 2.0/3.0)
	}

	_, err = GetIps(0)
	if err == nil {
		tst.Errorf("GetIps(0) should have failed")
	}
}
