// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/fea1d/ele"
	"github.com/cpmech/fea1d/inp"
	"github.com/cpmech/fea1d/mdl/sld"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MESHTOL is the relative tolerance on distance/maxLen when computing the number of divisions
const MESHTOL = 1e-9

// Mesh subdivides all members not meshed yet into elements with length smaller than or equal to maxLen
func (o *Model) Mesh(maxLen float64) (err error) {
	var md inp.MeshData
	md.SetDefault()
	md.MaxLen = maxLen
	md.ElemType = o.ElemType
	return o.MeshWith(&md)
}

// MeshWith subdivides all members not meshed yet according to mesh data
//  Note: coincident nodes (within md.Tol times the length of elements) are reused. Anchors of members
//        lying on existing nodes are merged into these nodes together with their loads and constraints
func (o *Model) MeshWith(md *inp.MeshData) (err error) {

	// check input
	if md == nil {
		return chk.Err("mesh data must be given")
	}
	err = md.Validate()
	if err != nil {
		return chk.Err("invalid mesh data:\n%v", err)
	}
	if !o.hasElemType(md.ElemType) {
		return chk.Err("cannot mesh with element type %q. available types are %v", md.ElemType, ele.Available())
	}

	// members to be meshed
	var members []*Member
	total := 0.0
	for _, m := range o.Members {
		if m.Meshed {
			continue
		}
		D := m.Length(o)
		if !(D > 0) {
			a, b := o.Nodes[m.N1].X, o.Nodes[m.N2].X
			return &ele.DegenerateElementError{Eid: len(o.Elems), Xa: math.Min(a, b), Xb: math.Max(a, b)}
		}
		members = append(members, m)
		total += D
	}
	if len(members) == 0 {
		return
	}

	// maximum length of elements
	maxLen := md.MaxLen
	if md.Ndiv > 0 {
		if md.Ndiv < len(members) {
			return chk.Err("number of elements (%d) must be greater than or equal to the number of members to be meshed (%d)", md.Ndiv, len(members))
		}
		maxLen = total / float64(md.Ndiv)
	}

	// mesh members
	nnod, nele := len(o.Nodes), len(o.Elems)
	for _, m := range members {
		err = o.meshMember(m, maxLen, md)
		if err != nil {
			return
		}
	}
	if o.ShowMsg {
		io.Pf(">> %d members meshed with maxLen=%g: %d new nodes and %d new elements\n", len(members), maxLen, len(o.Nodes)-nnod, len(o.Elems)-nele)
	}
	o.invalidate()
	return
}

// meshMember subdivides one member
func (o *Model) meshMember(m *Member, maxLen float64, md *inp.MeshData) (err error) {

	// model
	var mdl sld.OnedLinElast
	err = mdl.Init(m.Mat, m.Sec)
	if err != nil {
		return chk.Err("member %d:\n%v", m.Id, err)
	}

	// walk from smallest to largest coordinate
	na, nb := o.Nodes[m.N1], o.Nodes[m.N2]
	if nb.X < na.X {
		na, nb = nb, na
	}
	D := nb.X - na.X
	n := int(math.Ceil(D/maxLen - MESHTOL))
	if n < 1 {
		n = 1
	}
	h := D / float64(n)
	tol := md.Tol * h

	// anchors: coincident nodes are merged
	na, err = o.merge(na, tol)
	if err != nil {
		return
	}
	nb, err = o.merge(nb, tol)
	if err != nil {
		return
	}
	if na == nb {
		return &ele.DegenerateElementError{Eid: len(o.Elems), Xa: na.X, Xb: nb.X}
	}

	// vertices
	vids := make([]int, n+1)
	vids[0], vids[n] = na.Id, nb.Id
	for i := 1; i < n; i++ {
		x := na.X + float64(i)*h
		if nod := o.FindNode(x, tol); nod != nil {
			vids[i] = nod.Id
			continue
		}
		vids[i] = o.AddNode(x)
	}

	// elements
	for i := 0; i < n; i++ {
		e, err := o.newElement(md.ElemType, vids[i], vids[i+1], &mdl, m.Nx)
		if err != nil {
			return err
		}
		m.Eids = append(m.Eids, e.Id())
	}
	m.Meshed = true
	return
}

// hasElemType checks whether etype is available in element factory
func (o *Model) hasElemType(etype string) bool {
	for _, name := range ele.Available() {
		if name == etype {
			return true
		}
	}
	return false
}
