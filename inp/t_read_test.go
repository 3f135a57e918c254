// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// writeFile writes a temporary file for tests
func writeFile(tst *testing.T, name, content string) string {
	fn := filepath.Join(tst.TempDir(), name)
	if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
		tst.Fatalf("cannot write %q:\n%v", fn, err)
	}
	return fn
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. json file")

	fn := writeFile(tst, "bar.json", `{
  "solver" : { "pivtol" : 1e-10, "verbose" : true },
  "mesh"   : { "ndiv" : 8, "etype" : "elastbar" }
}`)
	dat, err := ReadData(fn)
	if err != nil {
		tst.Errorf("ReadData failed:\n%v", err)
		return
	}
	io.Pforan("dat = %+v\n", dat)
	chk.Float64(tst, "pivtol", 1e-25, dat.Solver.PivTol, 1e-10)
	if dat.Solver.Nip != 2 || !dat.Solver.Verbose {
		tst.Errorf("solver data is incorrect: %+v", dat.Solver)
		return
	}
	if dat.Mesh.Ndiv != 8 || dat.Mesh.ElemType != "elastbar" {
		tst.Errorf("mesh data is incorrect: %+v", dat.Mesh)
		return
	}
	chk.Float64(tst, "tol", 1e-25, dat.Mesh.Tol, 1e-9)
	if err = dat.Mesh.Validate(); err != nil {
		tst.Errorf("mesh data should be valid:\n%v", err)
		return
	}

	// errors
	if _, err = ReadData(filepath.Join(tst.TempDir(), "missing.json")); err == nil {
		tst.Errorf("missing file should fail")
		return
	}
	if _, err = ReadData(writeFile(tst, "bad.json", `{"solver": [}`)); err == nil {
		tst.Errorf("bad json should fail")
		return
	}
	if _, err = ReadData(writeFile(tst, "nip.json", `{"solver": {"nip": 0}}`)); err == nil {
		tst.Errorf("nip=0 should fail")
		return
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. dotenv file")

	fn := writeFile(tst, "bar.env", `# bar analysis
FEA_MAXLEN=12.5
FEA_ETYPE=lin2
FEA_NIP=3
FEA_VERBOSE=false
OTHER=1
`)
	dat, err := ReadEnv(fn)
	if err != nil {
		tst.Errorf("ReadEnv failed:\n%v", err)
		return
	}
	chk.Float64(tst, "maxlen", 1e-17, dat.Mesh.MaxLen, 12.5)
	if dat.Solver.Nip != 3 || dat.Mesh.ElemType != "lin2" || dat.Solver.Verbose {
		tst.Errorf("data is incorrect: %+v", dat)
		return
	}
	chk.Float64(tst, "pivtol", 1e-25, dat.Solver.PivTol, 1e-12)

	// errors
	if _, err = ReadEnv(writeFile(tst, "a.env", "FEA_NIP=two\n")); err == nil {
		tst.Errorf("bad integer should fail")
		return
	}
	if _, err = ReadEnv(writeFile(tst, "b.env", "FEA_COLOR=red\n")); err == nil {
		tst.Errorf("unknown key should fail")
		return
	}
	if _, err = ReadEnv(writeFile(tst, "c.env", "FEA_PIVTOL=2\n")); err == nil {
		tst.Errorf("pivtol=2 should fail")
		return
	}
	if _, err = ReadEnv(filepath.Join(tst.TempDir(), "missing.env")); err == nil {
		tst.Errorf("missing file should fail")
		return
	}
}
