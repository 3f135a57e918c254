// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/io"

// DegenerateElementError reports an element whose length is not positive
type DegenerateElementError struct {
	Eid int     // element id
	Xa  float64 // coordinate of first vertex
	Xb  float64 // coordinate of second vertex
}

// Error implements error
func (o *DegenerateElementError) Error() string {
	return io.Sf("element %d is degenerate: length=%g between x=%g and x=%g must be positive", o.Eid, o.Xb-o.Xa, o.Xa, o.Xb)
}
