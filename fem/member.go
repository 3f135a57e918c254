// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/fea1d/mdl/sld"

	"github.com/cpmech/gosl/io"
)

// Member holds a straight bar between two anchor nodes. Members are subdivided into elements by Mesh
type Member struct {
	Id     int           // member id
	N1     int           // first anchor node
	N2     int           // second anchor node
	Mat    *sld.Material // material
	Sec    *sld.Section  // cross-section
	Nx     float64       // distributed axial load per unit length
	Meshed bool          // elements were created already
	Eids   []int         // ids of elements created by Mesh
}

// Length returns the distance between anchors
func (o *Member) Length(m *Model) float64 {
	return math.Abs(m.Nodes[o.N2].X - m.Nodes[o.N1].X)
}

// String returns a short description of member
func (o *Member) String() string {
	return io.Sf("member %d: nodes=(%d,%d) mat=%v A=%g nx=%g meshed=%v", o.Id, o.N1, o.N2, o.Mat, o.Sec.A, o.Nx, o.Meshed)
}
