// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of bar models: diagrams along the axis and reports
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Querier defines models whose results can be evaluated along the axis
type Querier interface {
	DisplacementAt(x float64) (float64, error)
	StrainAt(x float64) (float64, error)
	StressAt(x float64) (float64, error)
	ForceAt(x float64) (float64, error)
	Bounds() (xmin, xmax float64)
}

// Diagram holds values of one quantity sampled along the axis
type Diagram struct {
	Key string    // quantity key: "u", "eps", "sig" or "N"
	X   []float64 // coordinates
	Y   []float64 // values
}

// Keys holds the keys of all quantities available for diagrams
var Keys = []string{"u", "eps", "sig", "N"}

// Sample samples quantity key at npts equally spaced points between the ends of the model
func Sample(q Querier, key string, npts int) (o *Diagram, err error) {
	xmin, xmax := q.Bounds()
	if math.IsNaN(xmin) || math.IsNaN(xmax) {
		return nil, chk.Err("cannot sample %q: model has no elements", key)
	}
	return SampleRange(q, key, xmin, xmax, npts)
}

// SampleRange samples quantity key at npts equally spaced points in [xa, xb]
func SampleRange(q Querier, key string, xa, xb float64, npts int) (o *Diagram, err error) {
	if npts < 2 {
		return nil, chk.Err("number of points must be at least 2. npts=%d is invalid", npts)
	}
	fcn, err := getter(q, key)
	if err != nil {
		return
	}
	o = &Diagram{Key: key, X: utl.LinSpace(xa, xb, npts), Y: make([]float64, npts)}
	for i, x := range o.X {
		o.Y[i], err = fcn(x)
		if err != nil {
			return nil, chk.Err("cannot sample %q at x=%g:\n%v", key, x, err)
		}
	}
	return
}

// MaxAbs returns the coordinate and value of the largest absolute value
func (o *Diagram) MaxAbs() (x, y float64) {
	for i, v := range o.Y {
		if i == 0 || math.Abs(v) > math.Abs(y) {
			x, y = o.X[i], v
		}
	}
	return
}

// Label returns a label for the quantity in diagram
func (o *Diagram) Label(unit string) string {
	return GetLabel(o.Key, unit)
}

// GetLabel returns a label for quantity key with optional unit
func GetLabel(key, unit string) (l string) {
	switch key {
	case "x":
		l = "x"
	case "u":
		l = "u"
	case "eps":
		l = "ε"
	case "sig":
		l = "σ"
	case "N":
		l = "N"
	default:
		l = key
	}
	if unit != "" {
		l += " [" + unit + "]"
	}
	return
}

// getter returns the function computing quantity key at x
func getter(q Querier, key string) (func(x float64) (float64, error), error) {
	switch key {
	case "u":
		return q.DisplacementAt, nil
	case "eps":
		return q.StrainAt, nil
	case "sig":
		return q.StressAt, nil
	case "N":
		return q.ForceAt, nil
	}
	return nil, chk.Err("quantity %q is not available. keys are %v", key, Keys)
}
