// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/gosl/chk"
)

// SolveAll solves independent models concurrently; one goroutine per model
//  Note: models must be distinct; repeated entries are reported as errors and are not solved again
//  Output:
//   errs -- [len(models)] error of each model; nil entries mean success
//   err  -- first error found, if any
func SolveAll(models []*Model) (errs []error, err error) {
	errs = make([]error, len(models))
	seen := make(map[*Model]int)
	var wg sync.WaitGroup
	for i, m := range models {
		if m == nil {
			errs[i] = chk.Err("model %d is nil", i)
			continue
		}
		if j, ok := seen[m]; ok {
			errs[i] = chk.Err("model %d is the same as model %d", i, j)
			continue
		}
		seen[m] = i
		wg.Add(1)
		go func(i int, m *Model) {
			defer wg.Done()
			errs[i] = m.Solve()
		}(i, m)
	}
	wg.Wait()
	for i, e := range errs {
		if e != nil {
			return errs, chk.Err("model %d failed:\n%v", i, e)
		}
	}
	return
}
