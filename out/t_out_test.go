// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cpmech/fea1d/fem"
	"github.com/cpmech/fea1d/mdl/sld"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// fixedFree returns a fixed-free bar with 4 elements, tip load 1000 and distributed load nx
func fixedFree(tst *testing.T, nx float64) *fem.Model {
	m, err := fem.NewModel(nil)
	if err != nil {
		tst.Fatalf("NewModel failed:\n%v", err)
	}
	mat, _ := sld.NewMaterial("Steel", 200e3)
	sec, _ := sld.NewSection(100)
	n0 := m.AddNode(0)
	n1 := m.AddNode(100)
	m.AddMember(n0, n1, mat, sec, nx)
	m.AddJoint(n0)
	m.AddPointLoad(n1, 1000)
	if err = m.Mesh(25); err != nil {
		tst.Fatalf("Mesh failed:\n%v", err)
	}
	return m
}

func Test_diagram01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagram01. sampling along the axis")

	m := fixedFree(tst, 0)
	du, err := Sample(m, "u", 11)
	if err != nil {
		tst.Errorf("Sample failed:\n%v", err)
		return
	}
	chk.Array(tst, "x", 1e-13, du.X, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100})
	for i, x := range du.X {
		chk.Float64(tst, io.Sf("u(%g)", x), 1e-15, du.Y[i], 1000*x/(200e3*100))
	}
	x, y := du.MaxAbs()
	chk.Float64(tst, "x(max)", 1e-13, x, 100)
	chk.Float64(tst, "u(max)", 1e-15, y, 0.005)

	for _, key := range []string{"eps", "sig", "N"} {
		d, err := SampleRange(m, key, 20, 80, 4)
		if err != nil {
			tst.Errorf("SampleRange failed:\n%v", err)
			return
		}
		ref := map[string]float64{"eps": 5e-5, "sig": 10, "N": 1000}[key]
		chk.Array(tst, key, 1e-10*ref, d.Y, []float64{ref, ref, ref, ref})
		io.Pforan("%s: %v\n", d.Label("MPa"), d.Y)
	}
	if l := GetLabel("sig", "MPa"); l != "σ [MPa]" {
		tst.Errorf("label is incorrect: %q", l)
		return
	}

	// errors
	if _, err = Sample(m, "pl", 3); err == nil {
		tst.Errorf("unknown key should fail")
		return
	}
	if _, err = Sample(m, "u", 1); err == nil {
		tst.Errorf("npts=1 should fail")
		return
	}
	if _, err = SampleRange(m, "u", -10, 10, 3); err == nil {
		tst.Errorf("points outside the model should fail")
		return
	}
	io.Pforan("%v\n", err)
	empty, _ := fem.NewModel(nil)
	if _, err = Sample(empty, "u", 3); err == nil {
		tst.Errorf("empty model should fail")
		return
	}
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. results workbook")

	m := fixedFree(tst, 10)
	var buf bytes.Buffer
	err := WriteReport(&buf, m)
	if err != nil {
		tst.Errorf("WriteReport failed:\n%v", err)
		return
	}

	// read back
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		tst.Errorf("OpenReader failed:\n%v", err)
		return
	}
	defer f.Close()
	chk.Strings(tst, "sheets", f.GetSheetList(), []string{SheetNodes, SheetElements, SheetSummary})

	// nodes
	rows, err := f.GetRows(SheetNodes, excelize.Options{RawCellValue: true})
	if err != nil {
		tst.Errorf("GetRows failed:\n%v", err)
		return
	}
	if len(rows) != 1+len(m.Nodes) {
		tst.Errorf("number of rows is incorrect: %d", len(rows))
		return
	}
	chk.Strings(tst, "header", rows[0], []string{"id", "x", "u", "F", "R", "constrained"})
	for i, nod := range m.Nodes {
		u, err := strconv.ParseFloat(rows[1+i][2], 64)
		if err != nil {
			tst.Errorf("cannot parse u:\n%v", err)
			return
		}
		chk.Float64(tst, io.Sf("u%d", nod.Id), 1e-15, u, m.U[nod.Id])
	}
	R, err := strconv.ParseFloat(rows[1][4], 64)
	if err != nil {
		tst.Errorf("cannot parse R:\n%v", err)
		return
	}
	chk.Float64(tst, "R0", 1e-9, R, -2000)

	// elements
	rows, err = f.GetRows(SheetElements, excelize.Options{RawCellValue: true})
	if err != nil {
		tst.Errorf("GetRows failed:\n%v", err)
		return
	}
	if len(rows) != 1+len(m.Elems) {
		tst.Errorf("number of rows is incorrect: %d", len(rows))
		return
	}
	for i, e := range m.Elems {
		σ, err := strconv.ParseFloat(rows[1+i][7], 64)
		if err != nil {
			tst.Errorf("cannot parse σ:\n%v", err)
			return
		}
		chk.Float64(tst, io.Sf("σ%d", e.Id()), 1e-12, σ, m.Sig[e.Id()])
		if len(rows[1+i]) != len(ElementsHeader) {
			tst.Errorf("number of columns is incorrect: %d", len(rows[1+i]))
			return
		}
		E, err := strconv.ParseFloat(rows[1+i][9], 64)
		if err != nil {
			tst.Errorf("cannot parse E:\n%v", err)
			return
		}
		chk.Float64(tst, "E", 1e-10, E, 200e3)
	}

	// summary
	state, err := f.GetCellValue(SheetSummary, "B7")
	if err != nil {
		tst.Errorf("GetCellValue failed:\n%v", err)
		return
	}
	if state != "solved" {
		tst.Errorf("state is incorrect: %q", state)
		return
	}

	// save to file
	fn := filepath.Join(tst.TempDir(), "bar.xlsx")
	if err = SaveReport(fn, m); err != nil {
		tst.Errorf("SaveReport failed:\n%v", err)
		return
	}

	// unsolvable model
	bad, _ := fem.NewModel(nil)
	bad.AddNode(0)
	if err = WriteReport(&buf, bad); err == nil {
		tst.Errorf("unsolvable model should fail")
		return
	}
}

func Test_pdf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pdf01. summary document")

	m := fixedFree(tst, 0)
	var buf bytes.Buffer
	err := WritePDF(&buf, m, "", 5)
	if err != nil {
		tst.Errorf("WritePDF failed:\n%v", err)
		return
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		tst.Errorf("output is not a pdf document")
		return
	}
	io.Pforan("pdf size = %d bytes\n", buf.Len())

	bad, _ := fem.NewModel(nil)
	if err = WritePDF(&buf, bad, "bad", 0); err == nil {
		tst.Errorf("unsolvable model should fail")
		return
	}
}
