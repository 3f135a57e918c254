// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// AllocatorType defines a function that allocates an element
type AllocatorType func(cell *Cell) (Element, error)

// New returns a new element from factory
func New(elemType string, cell *Cell) (ele Element, err error) {
	fcn, ok := allocators[elemType]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {type=%q}. available types are %v", elemType, Available())
	}
	return fcn(cell)
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// Available returns the names of all element types in factory
func Available() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
