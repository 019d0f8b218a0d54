// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typeutil

import (
	"github.com/wdamron/stella/types"
)

// VarTracker allocates placeholders and tracks allocations.
type VarTracker struct {
	NextId int
	// placeholders memoized by marker identity
	markers map[interface{}]*types.Auto
	count   int
}

func (vt *VarTracker) Reset() {
	vt.NextId, vt.count = 0, 0
	for k := range vt.markers {
		delete(vt.markers, k)
	}
}

// Get the number of placeholders allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

// Allocate a fresh placeholder.
func (vt *VarTracker) New() *types.Auto {
	vt.NextId++
	vt.count++
	return &types.Auto{Id: vt.NextId}
}

// Get the placeholder for a marker, allocating it on first use. Markers are compared by
// identity, so they should be pointers to syntax nodes.
func (vt *VarTracker) ForMarker(marker interface{}) *types.Auto {
	if a, ok := vt.markers[marker]; ok {
		return a
	}
	if vt.markers == nil {
		vt.markers = make(map[interface{}]*types.Auto, 16)
	}
	a := vt.New()
	vt.markers[marker] = a
	return a
}
