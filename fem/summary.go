// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Summary holds a read-only summary of a model
type Summary struct {
	Nnodes   int     // number of nodes
	Nelems   int     // number of elements
	Nmembers int     // number of members
	Njoints  int     // number of nodes with prescribed displacements
	Nloads   int     // number of nodes with point loads
	Joints   []int   // ids of nodes with prescribed displacements
	State    State   // state of global system
	Solved   bool    // solution is current
	Cond     float64 // condition number of constrained system; zero if not solved
}

// Summary returns a summary of model
func (o *Model) Summary() (sum Summary) {
	sum.Nnodes = len(o.Nodes)
	sum.Nelems = len(o.Elems)
	sum.Nmembers = len(o.Members)
	for _, nod := range o.Nodes {
		if nod.HasU {
			sum.Joints = append(sum.Joints, nod.Id)
		}
		if nod.HasF {
			sum.Nloads++
		}
	}
	sum.Njoints = len(sum.Joints)
	sum.State = o.state
	sum.Solved = o.Solved()
	if sum.Solved {
		sum.Cond = o.Cond
	}
	return
}

// Info is an alias of Summary
func (o *Model) Info() Summary { return o.Summary() }

// String returns a multi-line description of summary
func (o Summary) String() string {
	var b bytes.Buffer
	io.Ff(&b, "nodes    = %d\n", o.Nnodes)
	io.Ff(&b, "elements = %d\n", o.Nelems)
	io.Ff(&b, "members  = %d\n", o.Nmembers)
	io.Ff(&b, "joints   = %d %v\n", o.Njoints, o.Joints)
	io.Ff(&b, "loads    = %d\n", o.Nloads)
	io.Ff(&b, "state    = %v\n", o.State)
	io.Ff(&b, "solved   = %v\n", o.Solved)
	if o.Solved {
		io.Ff(&b, "cond     = %g\n", o.Cond)
	}
	return b.String()
}
