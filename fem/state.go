// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// State defines the state of the global system of a Model
//
//   Unbuilt ──> Assembled ──> Solved
//                  │  ^          │
//      mutation    v  │ solve    │ mutation
//               Invalidated <────┘
//
type State int

// states
const (
	Unbuilt     State = iota // nothing was assembled yet
	Assembled                // K, F and constrained copies are up to date
	Solved                   // U, stresses and reactions are up to date
	Invalidated              // a mutation happened after assembly
)

// String returns the name of state
func (o State) String() string {
	switch o {
	case Unbuilt:
		return "unbuilt"
	case Assembled:
		return "assembled"
	case Solved:
		return "solved"
	case Invalidated:
		return "invalidated"
	}
	return "unknown"
}

// invalidate is called by all mutators
func (o *Model) invalidate() {
	if o.state == Assembled || o.state == Solved {
		o.state = Invalidated
	}
}

// State returns the current state
func (o *Model) State() State { return o.state }

// Solved returns whether the current solution corresponds to the current model definition
func (o *Model) Solved() bool { return o.state == Solved }
