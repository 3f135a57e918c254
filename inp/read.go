// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/joho/godotenv"
)

// Data holds all control parameters of an analysis
type Data struct {
	Solver SolverData `json:"solver"` // solver data
	Mesh   MeshData   `json:"mesh"`   // mesh data
}

// SetDefault sets defaults values
func (o *Data) SetDefault() {
	o.Solver.SetDefault()
	o.Mesh.SetDefault()
}

// ReadData reads control parameters from a JSON file. Missing entries keep their default values.
// Only solver data is validated since mesh data may be completed later by the caller
func ReadData(filename string) (o *Data, err error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("ReadData: cannot read file %q:\n%v", filename, err)
	}
	o = new(Data)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadData: cannot unmarshal file %q:\n%v", filename, err)
	}
	err = o.Solver.Validate()
	if err != nil {
		return nil, chk.Err("ReadData: file %q:\n%v", filename, err)
	}
	return
}

// environment keys
const (
	EnvNip     = "FEA_NIP"
	EnvPivTol  = "FEA_PIVTOL"
	EnvVerbose = "FEA_VERBOSE"
	EnvMaxLen  = "FEA_MAXLEN"
	EnvNdiv    = "FEA_NDIV"
	EnvEtype   = "FEA_ETYPE"
	EnvTol     = "FEA_TOL"
)

// ReadEnv reads control parameters from dotenv-style files; e.g.
//
//   FEA_MAXLEN=25
//   FEA_ETYPE=lin2
//   FEA_VERBOSE=true
//
//  Note: unknown keys starting with FEA_ are errors; other keys are ignored
func ReadEnv(filenames ...string) (o *Data, err error) {
	env, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, chk.Err("ReadEnv: cannot read files %v:\n%v", filenames, err)
	}
	o = new(Data)
	o.SetDefault()
	err = o.SetEnv(env)
	if err != nil {
		return nil, chk.Err("ReadEnv: files %v:\n%v", filenames, err)
	}
	return
}

// SetEnv sets control parameters from a map of environment values
func (o *Data) SetEnv(env map[string]string) (err error) {
	for key, val := range env {
		if !strings.HasPrefix(key, "FEA_") {
			continue
		}
		val = strings.TrimSpace(val)
		switch key {
		case EnvNip:
			o.Solver.Nip, err = strconv.Atoi(val)
		case EnvPivTol:
			o.Solver.PivTol, err = strconv.ParseFloat(val, 64)
		case EnvVerbose:
			o.Solver.Verbose, err = strconv.ParseBool(val)
		case EnvMaxLen:
			o.Mesh.MaxLen, err = strconv.ParseFloat(val, 64)
		case EnvNdiv:
			o.Mesh.Ndiv, err = strconv.Atoi(val)
		case EnvEtype:
			o.Mesh.ElemType = val
		case EnvTol:
			o.Mesh.Tol, err = strconv.ParseFloat(val, 64)
		default:
			return chk.Err("key %q is not available", key)
		}
		if err != nil {
			return chk.Err("cannot parse %s=%q:\n%v", key, val, err)
		}
	}
	return o.Solver.Validate()
}
