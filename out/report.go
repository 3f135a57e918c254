// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"io"

	"github.com/cpmech/fea1d/ele"
	"github.com/cpmech/fea1d/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

// sheet names
const (
	SheetNodes    = "Nodes"
	SheetElements = "Elements"
	SheetSummary  = "Summary"
)

// headers of sheets
var (
	NodesHeader    = []interface{}{"id", "x", "u", "F", "R", "constrained"}
	ElementsHeader = []interface{}{"id", "node a", "node b", "xa", "xb", "L", "strain", "stress", "force", "E", "A"}
)

// WriteReport writes a workbook with the results of model to w. The model is solved if needed
func WriteReport(w io.Writer, m *fem.Model) (err error) {
	f, err := NewReport(m)
	if err != nil {
		return
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return f.Write(w)
}

// SaveReport saves a workbook with the results of model to file
func SaveReport(filename string, m *fem.Model) (err error) {
	f, err := NewReport(m)
	if err != nil {
		return
	}
	defer f.Close()
	return f.SaveAs(filename)
}

// NewReport returns a new workbook with the results of model
func NewReport(m *fem.Model) (f *excelize.File, err error) {

	// results
	_, err = m.StressField()
	if err != nil {
		return nil, chk.Err("cannot write report of unsolvable model:\n%v", err)
	}

	// sheets
	f = excelize.NewFile()
	err = f.SetSheetName("Sheet1", SheetNodes)
	if err == nil {
		_, err = f.NewSheet(SheetElements)
	}
	if err == nil {
		_, err = f.NewSheet(SheetSummary)
	}
	if err != nil {
		f.Close()
		return nil, chk.Err("cannot create sheets:\n%v", err)
	}

	// rows
	err = writeRows(f, SheetNodes, NodesHeader, nodeRows(m))
	if err == nil {
		err = writeRows(f, SheetElements, ElementsHeader, elemRows(m))
	}
	if err == nil {
		err = writeRows(f, SheetSummary, []interface{}{"key", "value"}, summaryRows(m))
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return
}

// writeRows writes header and rows to sheet
func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) (err error) {
	for i, row := range append([][]interface{}{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		err = f.SetSheetRow(sheet, cell, &row)
		if err != nil {
			return chk.Err("cannot write row %d of sheet %q:\n%v", i+1, sheet, err)
		}
	}
	return
}

// nodeRows returns one row per node
func nodeRows(m *fem.Model) (rows [][]interface{}) {
	for _, nod := range m.Nodes {
		rows = append(rows, []interface{}{nod.Id, nod.X, m.U[nod.Id], nod.F, m.R[nod.Id], nod.HasU})
	}
	return
}

// elemRows returns one row per element followed by the parameters of its material model
func elemRows(m *fem.Model) (rows [][]interface{}) {
	for _, e := range m.Elems {
		ue := ele.GetUe(e, m.U)
		verts := e.Verts()
		xa, xb := e.Span()
		row := []interface{}{e.Id(), verts[0], verts[1], xa, xb, e.Length(), e.Strain(ue), m.Sig[e.Id()], e.AxialForce(ue)}
		for _, p := range e.Model().GetPrms() {
			row = append(row, p.V)
		}
		rows = append(rows, row)
	}
	return
}

// summaryRows returns the summary of model
func summaryRows(m *fem.Model) [][]interface{} {
	sum := m.Summary()
	return [][]interface{}{
		{"nodes", sum.Nnodes},
		{"elements", sum.Nelems},
		{"members", sum.Nmembers},
		{"joints", sum.Njoints},
		{"loads", sum.Nloads},
		{"state", sum.State.String()},
		{"cond", sum.Cond},
	}
}
