// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"io"

	"github.com/cpmech/fea1d/fem"

	"github.com/cpmech/gosl/chk"
	gio "github.com/cpmech/gosl/io"
	"github.com/phpdave11/gofpdf"
)

// WritePDF writes a summary of the results of model to w. The model is solved if needed
//  Input:
//   title -- title of document; "" means default
//   npts  -- number of points of displacement and force tables; < 2 means nodes only
func WritePDF(w io.Writer, m *fem.Model, title string, npts int) (err error) {

	// results
	sig, err := m.StressField()
	if err != nil {
		return chk.Err("cannot write pdf of unsolvable model:\n%v", err)
	}
	if title == "" {
		title = "Axial bar analysis"
	}

	// document
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	// summary
	sum := m.Summary()
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range []string{
		gio.Sf("nodes: %d   elements: %d   members: %d", sum.Nnodes, sum.Nelems, sum.Nmembers),
		gio.Sf("constrained nodes: %v", sum.Joints),
		gio.Sf("condition number: %g", sum.Cond),
	} {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// nodes
	table(pdf, []string{"node", "x", "u", "R"}, func(row func(vals ...float64)) {
		for _, nod := range m.Nodes {
			row(float64(nod.Id), nod.X, m.U[nod.Id], m.R[nod.Id])
		}
	})

	// elements
	table(pdf, []string{"element", "xa", "xb", "stress"}, func(row func(vals ...float64)) {
		for _, e := range m.Elems {
			xa, xb := e.Span()
			row(float64(e.Id()), xa, xb, sig[e.Id()])
		}
	})

	// diagrams
	if npts >= 2 {
		du, err := Sample(m, "u", npts)
		if err != nil {
			return err
		}
		dN, err := Sample(m, "N", npts)
		if err != nil {
			return err
		}
		table(pdf, []string{"x", GetLabel("u", ""), GetLabel("N", "")}, func(row func(vals ...float64)) {
			for i, x := range du.X {
				row(x, du.Y[i], dN.Y[i])
			}
		})
	}

	// output
	if pdf.Err() {
		return chk.Err("cannot generate pdf:\n%v", pdf.Error())
	}
	return pdf.Output(w)
}

// table draws a simple table
func table(pdf *gofpdf.Fpdf, header []string, rows func(row func(vals ...float64))) {
	wid := 180.0 / float64(len(header))
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range header {
		pdf.CellFormat(wid, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	rows(func(vals ...float64) {
		for _, v := range vals {
			pdf.CellFormat(wid, 6, gio.Sf("%g", v), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	})
	pdf.Ln(4)
}
