// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/integrate/quad"
)

// Ipoint holds the natural coordinate and the weight of an integration point
type Ipoint struct {
	R float64 // natural coordinate
	W float64 // weight
}

// GetIps returns nip Gauss-Legendre integration points over [-1, 1] sorted by natural coordinate
func GetIps(nip int) (ips []Ipoint, err error) {
	if nip < 1 {
		return nil, chk.Err("number of integration points must be positive. nip=%d is invalid", nip)
	}
	r := make([]float64, nip)
	w := make([]float64, nip)
	quad.Legendre{}.FixedLocations(r, w, -1, 1)
	ips = make([]Ipoint, nip)
	for i := 0; i < nip; i++ {
		ips[i] = Ipoint{R: r[i], W: w[i]}
	}
	sort.Slice(ips, func(i, j int) bool { return ips[i].R < ips[j].R })
	return
}
