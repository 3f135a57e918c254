// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Node holds node data
type Node struct {
	Id    int     // node id == equation number
	X     float64 // coordinate
	F     float64 // prescribed point load; contributions are added together
	U     float64 // prescribed displacement
	HasF  bool    // has point load
	HasU  bool    // has prescribed displacement
	Alias int     // id of the node this node was merged into by Mesh; -1 if none
}

// Free returns whether the displacement of this node is unknown
func (o *Node) Free() bool { return !o.HasU }

// Merged returns whether this node was merged into a coincident node
func (o *Node) Merged() bool { return o.Alias >= 0 }

// String returns a short description of node
func (o *Node) String() (l string) {
	l = io.Sf("node %d: x=%g", o.Id, o.X)
	if o.HasF {
		l += io.Sf(" F=%g", o.F)
	}
	if o.HasU {
		l += io.Sf(" U=%g", o.U)
	}
	if o.Merged() {
		l += io.Sf(" merged into %d", o.Alias)
	}
	return
}

// FindNode returns the first node within tol of coordinate x or nil if there is none
//  Note: merged nodes are skipped
func (o *Model) FindNode(x, tol float64) *Node {
	for _, nod := range o.Nodes {
		if nod.Merged() {
			continue
		}
		if math.Abs(nod.X-x) <= tol {
			return nod
		}
	}
	return nil
}

// canonical returns the node that nod was merged into or nod itself
func (o *Model) canonical(nod *Node) *Node {
	for nod.Merged() {
		nod = o.Nodes[nod.Alias]
	}
	return nod
}

// merge merges nod into the first node within tol of its coordinate, if any. The point load and the
// prescribed displacement of nod are moved to that node
func (o *Model) merge(nod *Node, tol float64) (*Node, error) {
	nod = o.canonical(nod)
	c := o.FindNode(nod.X, tol)
	if c == nil || c == nod {
		return nod, nil
	}
	if nod.HasU {
		if c.HasU && c.U != nod.U {
			return nil, &DuplicateConstraintError{Nid: c.Id, U: c.U}
		}
		c.U, c.HasU = nod.U, true
	}
	if nod.HasF {
		c.F += nod.F
		c.HasF = true
	}
	nod.F, nod.U, nod.HasF, nod.HasU = 0, 0, false, false
	nod.Alias = c.Id
	if o.ShowMsg {
		io.Pf(">> node %d merged into node %d at x=%g\n", nod.Id, c.Id, c.X)
	}
	return c, nil
}

// node returns the node with given id or an UnknownNodeError
func (o *Model) node(nid int, op string) (*Node, error) {
	if nid < 0 || nid >= len(o.Nodes) {
		return nil, &UnknownNodeError{Nid: nid, Op: op}
	}
	return o.Nodes[nid], nil
}

// target returns the node that receives loads and constraints given to node nid
func (o *Model) target(nid int, op string) (*Node, error) {
	nod, err := o.node(nid, op)
	if err != nil {
		return nil, err
	}
	return o.canonical(nod), nil
}
