// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// UnknownNodeError reports a reference to a node that is not registered
type UnknownNodeError struct {
	Nid int    // requested node id
	Op  string // operation; e.g. "AddPointLoad"
}

// Error implements error
func (o *UnknownNodeError) Error() string {
	return io.Sf("%s: node %d does not exist", o.Op, o.Nid)
}

// DuplicateConstraintError reports a node constrained twice
type DuplicateConstraintError struct {
	Nid int // node id
	U   float64
}

// Error implements error
func (o *DuplicateConstraintError) Error() string {
	return io.Sf("node %d is constrained already with U=%g", o.Nid, o.U)
}

// SingularSystemError reports a constrained system that cannot be solved
type SingularSystemError struct {
	Nids   []int  // ids of nodes with zero pivots
	Reason string // description
}

// Error implements error
func (o *SingularSystemError) Error() string {
	return io.Sf("singular system: %s. nodes=%v", o.Reason, o.Nids)
}

// OutOfRangeQueryError reports a coordinate not covered by any element
type OutOfRangeQueryError struct {
	X    float64 // requested coordinate
	Xmin float64 // smallest coordinate of elements
	Xmax float64 // largest coordinate of elements
}

// Error implements error
func (o *OutOfRangeQueryError) Error() string {
	return io.Sf("x=%g is not covered by any element; elements span [%g, %g]", o.X, o.Xmin, o.Xmax)
}
