// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_data01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("data01. defaults and validation")

	var sol SolverData
	sol.SetDefault()
	if err := sol.Validate(); err != nil {
		tst.Errorf("default SolverData must be valid:\n%v", err)
	}
	sol.Nip = 0
	if err := sol.Validate(); err == nil {
		tst.Errorf("nip=0 must be invalid")
	}

	var msh MeshData
	msh.SetDefault()
	if err := msh.Validate(); err == nil {
		tst.Errorf("MeshData without maxlen and ndiv must be invalid")
	}
	msh.MaxLen = 10
	if err := msh.Validate(); err != nil {
		tst.Errorf("MeshData with maxlen must be valid:\n%v", err)
	}
	msh.Ndiv = 3
	if err := msh.Validate(); err == nil {
		tst.Errorf("MeshData with maxlen and ndiv must be invalid")
	}
	msh.MaxLen = 0
	if err := msh.Validate(); err != nil {
		tst.Errorf("MeshData with ndiv must be valid:\n%v", err)
	}
	msh.Ndiv = -1
	if err := msh.Validate(); err == nil {
		tst.Errorf("ndiv=-1 must be invalid")
	}
}

func Test_data02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("data02. decoding over defaults")

	var msh MeshData
	msh.SetDefault()
	err := json.Unmarshal([]byte(`{"maxlen": 2.5}`), &msh)
	if err != nil {
		tst.Errorf("Unmarshal failed:\n%v", err)
		return
	}
	io.Pforan("msh = %+v\n", msh)
	chk.Float64(tst, "maxlen", 1e-17, msh.MaxLen, 2.5)
	chk.Float64(tst, "tol", 1e-17, msh.Tol, 1e-9)
	if msh.ElemType != "lin2" {
		tst.Errorf("default element type must be lin2. %q is incorrect", msh.ElemType)
	}
}
