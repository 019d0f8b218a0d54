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
	"context"
	"log/slog"
	"strconv"

	"github.com/wdamron/stella/types"
)

// Solve unifies all pending constraints until the queue is empty.
//
// Solving is idempotent: solving an empty queue does nothing. When a placeholder would
// occur within its own solution, Solve fails with ErrOccursCheckInfiniteType; when two
// types of different shapes must be equal, it fails with ErrCannotSatisfyConstraint.
func (e *Engine) Solve() error {
	debug := e.logger().Enabled(context.Background(), slog.LevelDebug)
	steps := 0
	for len(e.queue) > 0 {
		c := e.queue[0]
		e.queue = e.queue[1:]
		if debug {
			e.logger().Debug("unify", "a", types.TypeString(c.A), "b", types.TypeString(c.B))
		}
		if err := e.unify(c.A, c.B); err != nil {
			e.queue = e.queue[:0]
			return err
		}
		steps++
	}
	e.queue = e.queue[:0]
	if err := e.occursCheck(); err != nil {
		return err
	}
	if debug && steps > 0 {
		e.logger().Debug("solved constraints", "steps", steps, "placeholders", len(e.solved))
	}
	return nil
}

func (e *Engine) unify(a, b types.Type) error {
	a, b = e.Substitute(a), e.Substitute(b)
	if types.Equal(a, b) {
		return nil
	}
	if x, ok := a.(*types.Auto); ok {
		return e.bind(x, b)
	}
	if x, ok := b.(*types.Auto); ok {
		return e.bind(x, a)
	}

	switch a := a.(type) {
	case *types.Record:
		b, ok := b.(*types.Record)
		if !ok || !a.SameLabels(b) {
			break
		}
		for _, f := range a.Fields {
			bt, _ := b.Field(f.Label)
			e.AddConstraint(f.Type, bt)
		}
		return nil

	case *types.Variant:
		b, ok := b.(*types.Variant)
		if !ok || !a.SameLabels(b) {
			break
		}
		for _, f := range a.Fields {
			bt, _ := b.Field(f.Label)
			if (f.Type == nil) != (bt == nil) {
				return e.cannotSatisfy(a, b)
			}
		}
		for _, f := range a.Fields {
			if bt, _ := b.Field(f.Label); bt != nil {
				e.AddConstraint(f.Type, bt)
			}
		}
		return nil

	case *types.Tuple:
		b, ok := b.(*types.Tuple)
		if !ok || len(a.Items) != len(b.Items) {
			break
		}
		for i := range a.Items {
			e.AddConstraint(a.Items[i], b.Items[i])
		}
		return nil

	case *types.List:
		if b, ok := b.(*types.List); ok {
			e.AddConstraint(a.Elem, b.Elem)
			return nil
		}

	case *types.Ref:
		if b, ok := b.(*types.Ref); ok {
			e.AddConstraint(a.Elem, b.Elem)
			return nil
		}

	case *types.Sum:
		if b, ok := b.(*types.Sum); ok {
			e.AddConstraint(a.Left, b.Left)
			e.AddConstraint(a.Right, b.Right)
			return nil
		}

	case *types.Fun:
		b, ok := b.(*types.Fun)
		if !ok || len(a.Params) != len(b.Params) {
			break
		}
		for i := range a.Params {
			e.AddConstraint(a.Params[i], b.Params[i])
		}
		e.AddConstraint(a.Return, b.Return)
		return nil

	case *types.ForAll:
		if b, ok := b.(*types.ForAll); ok && len(a.Names) == len(b.Names) {
			e.AddConstraint(a.Body, b.Body)
			return nil
		}
	}
	return e.cannotSatisfy(a, b)
}

func (e *Engine) bind(x *types.Auto, t types.Type) error {
	if prev, ok := e.solution[x.Id]; ok {
		e.AddConstraint(prev, t)
		return nil
	}
	if types.Contains(t, x) {
		return e.infinite(x, t)
	}
	if e.solution == nil {
		e.Init()
	}
	e.solution[x.Id] = t
	e.solved = append(e.solved, x.Id)
	return nil
}

// Every solution must be free of its own placeholder, transitively.
func (e *Engine) occursCheck() error {
	for _, id := range e.solved {
		x := &types.Auto{Id: id}
		if t := e.Substitute(e.solution[id]); types.Contains(t, x) {
			return e.infinite(x, t)
		}
	}
	return nil
}

func (e *Engine) cannotSatisfy(a, b types.Type) error {
	err := types.Mismatch(types.ErrCannotSatisfyConstraint, a, b)
	err.Detail = "cannot satisfy constraint"
	return err
}

func (e *Engine) infinite(x *types.Auto, t types.Type) error {
	err := types.Mismatch(types.ErrOccursCheckInfiniteType, x, t)
	err.Detail = "placeholder ?" + strconv.Itoa(x.Id) + " occurs within its own solution"
	return err
}
