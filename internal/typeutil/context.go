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
	"log/slog"

	"github.com/wdamron/stella/types"
)

// Constraint requires two types to be equal.
type Constraint struct {
	A, B types.Type
}

// Engine collects equality constraints between types containing placeholders and
// solves them by unification.
//
// An engine cannot be used concurrently.
type Engine struct {
	VarTracker VarTracker
	Logger     *slog.Logger

	queue    []Constraint
	solution map[int]types.Type
	// placeholder ids in order of their first solution
	solved []int
}

func NewEngine() *Engine {
	e := &Engine{}
	e.Init()
	return e
}

func (e *Engine) Init() {
	e.solution = make(map[int]types.Type, 16)
}

func (e *Engine) Reset() {
	e.VarTracker.Reset()
	e.queue, e.solved = e.queue[:0], e.solved[:0]
	for k := range e.solution {
		delete(e.solution, k)
	}
}

// Allocate a fresh placeholder.
func (e *Engine) Fresh() *types.Auto { return e.VarTracker.New() }

// Get the placeholder for a marker, allocating it on first use.
func (e *Engine) PlaceholderFor(marker interface{}) *types.Auto {
	return e.VarTracker.ForMarker(marker)
}

// Require a and b to be equal. Constraints are solved by Solve.
func (e *Engine) AddConstraint(a, b types.Type) {
	e.queue = append(e.queue, Constraint{a, b})
}

// Get the number of unsolved constraints.
func (e *Engine) Pending() int { return len(e.queue) }

// Lookup the solution of a placeholder.
func (e *Engine) Lookup(id int) (types.Type, bool) {
	t, ok := e.solution[id]
	return t, ok
}

// Substitute the current solutions for every placeholder within t.
func (e *Engine) Substitute(t types.Type) types.Type { return types.Substitute(t, e) }

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
