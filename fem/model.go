// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element method for structures made of axial bars
package fem

import (
	"sync/atomic"

	"github.com/cpmech/fea1d/ele"
	"github.com/cpmech/fea1d/inp"
	"github.com/cpmech/fea1d/mdl/sld"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model holds all nodes, members and elements of a bar structure in addition to the global system
type Model struct {

	// input
	Serial   int            // unique number of this model; also goroutine id of shape scratchpads
	Data     inp.SolverData // solver data
	ElemType string         // type of elements allocated by AddElement; e.g. "lin2"
	ShowMsg  bool           // show messages

	// definition
	Nodes   []*Node       // all nodes. Nodes[i].Id == i
	Members []*Member     // all members
	Elems   []ele.Element // all elements. Elems[i].Id() == i

	// global system
	K    [][]float64 // [nnodes][nnodes] stiffness matrix
	F    []float64   // [nnodes] load vector
	Kc   [][]float64 // [nnodes][nnodes] constrained copy of K
	Fc   []float64   // [nnodes] constrained copy of F
	U    []float64   // [nnodes] displacements
	R    []float64   // [nnodes] reactions: R = K U - F (only non-zero at constrained nodes)
	Sig  []float64   // [nelems] stress in elements
	Cond float64     // condition number of Kc from last solve

	// internal
	state State // state of global system
}

// serial counts models
var serial int64

// NewModel returns a new Model
//  Input:
//   data -- solver data; nil means default values
func NewModel(data *inp.SolverData) (o *Model, err error) {
	o = new(Model)
	if data == nil {
		o.Data.SetDefault()
	} else {
		o.Data = *data
	}
	err = o.Data.Validate()
	if err != nil {
		return nil, chk.Err("cannot allocate model:\n%v", err)
	}
	o.Serial = int(atomic.AddInt64(&serial, 1))
	o.ElemType = "lin2"
	o.ShowMsg = o.Data.Verbose
	return
}

// AddNode adds a new node at coordinate x and returns its id
func (o *Model) AddNode(x float64) (nid int) {
	nid = len(o.Nodes)
	o.Nodes = append(o.Nodes, &Node{Id: nid, X: x, Alias: -1})
	o.invalidate()
	return
}

// AddMember adds a member between anchors n1 and n2 to be subdivided by Mesh
func (o *Model) AddMember(n1, n2 int, mat *sld.Material, sec *sld.Section, nx float64) (mid int, err error) {
	for _, nid := range []int{n1, n2} {
		if _, err = o.node(nid, "AddMember"); err != nil {
			return -1, err
		}
	}
	if mat == nil || sec == nil {
		return -1, chk.Err("member between nodes %d and %d requires material and section", n1, n2)
	}
	mid = len(o.Members)
	o.Members = append(o.Members, &Member{Id: mid, N1: n1, N2: n2, Mat: mat, Sec: sec, Nx: nx})
	o.invalidate()
	return
}

// AddElement adds an element of type ElemType between nodes n1 and n2
//  Note: merged nodes are replaced by the nodes they were merged into
func (o *Model) AddElement(n1, n2 int, E, A, nx float64) (eid int, err error) {
	a, err := o.target(n1, "AddElement")
	if err != nil {
		return -1, err
	}
	b, err := o.target(n2, "AddElement")
	if err != nil {
		return -1, err
	}
	mdl := new(sld.OnedLinElast)
	err = mdl.SetPrms(dbf.Params{
		&dbf.P{N: "E", V: E},
		&dbf.P{N: "A", V: A},
	})
	if err != nil {
		return -1, chk.Err("element between nodes %d and %d:\n%v", n1, n2, err)
	}
	e, err := o.newElement(o.ElemType, a.Id, b.Id, mdl, nx)
	if err != nil {
		return -1, err
	}
	o.invalidate()
	return e.Id(), nil
}

// AddJoint fixes node nid; i.e. imposes zero displacement
func (o *Model) AddJoint(nid int) (err error) {
	return o.AddImposedDisplacement(nid, 0)
}

// AddPointLoad adds a point load F to node nid. Loads on the same node are added together
//  Note: loads on merged nodes go to the nodes they were merged into
func (o *Model) AddPointLoad(nid int, F float64) (err error) {
	nod, err := o.target(nid, "AddPointLoad")
	if err != nil {
		return
	}
	nod.F += F
	nod.HasF = true
	o.invalidate()
	return
}

// AddImposedDisplacement prescribes the displacement u of node nid
func (o *Model) AddImposedDisplacement(nid int, u float64) (err error) {
	nod, err := o.target(nid, "AddImposedDisplacement")
	if err != nil {
		return
	}
	if nod.HasU {
		return &DuplicateConstraintError{Nid: nid, U: nod.U}
	}
	nod.U = u
	nod.HasU = true
	o.invalidate()
	return
}

// ConstrainedNodes returns the ids of nodes with prescribed displacements
func (o *Model) ConstrainedNodes() (nids []int) {
	for _, nod := range o.Nodes {
		if nod.HasU {
			nids = append(nids, nod.Id)
		}
	}
	return
}

// newElement allocates a new element and appends it to Elems
func (o *Model) newElement(etype string, n1, n2 int, mdl *sld.OnedLinElast, nx float64) (e ele.Element, err error) {
	cell := &ele.Cell{
		Id:    len(o.Elems),
		Verts: []int{n1, n2},
		X:     []float64{o.Nodes[n1].X, o.Nodes[n2].X},
		Mdl:   mdl,
		Nx:    nx,
		Nip:   o.Data.Nip,
		Gid:   o.Serial,
	}
	e, err = ele.New(etype, cell)
	if err != nil {
		if o.ShowMsg {
			io.PfRed(">> cannot allocate element between nodes %d and %d\n", n1, n2)
		}
		return
	}
	o.Elems = append(o.Elems, e)
	if o.ShowMsg {
		xa, xb := e.Span()
		io.Pf(">> element %d: nodes=%v x=[%g, %g]\n", e.Id(), e.Verts(), xa, xb)
	}
	return
}
