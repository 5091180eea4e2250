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

package typecheck

import (
	"log/slog"

	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Context holds the state of one type checking run: the fresh type-variable counter,
// the current binding-level, and warnings reported so far.
//
// A Context cannot be used concurrently; create one per compilation unit.
type Context struct {
	nextId   int
	level    int
	opts     Options
	log      *slog.Logger
	warnings []*diagnostics.Diagnostic
	// Named type-variables in annotations, scoped to the declaration being checked
	annotVars map[string]*types.Var
	// Variant definitions by nominal name, independent of scope and import aliases
	variants map[string]*VariantType
}

// NewContext creates a context at the top-level.
func NewContext(opts Options) *Context {
	return &Context{
		opts:      opts,
		log:       opts.logger(),
		annotVars: make(map[string]*types.Var),
		variants:  make(map[string]*VariantType),
	}
}

// Level returns the current binding-level.
func (ctx *Context) Level() int { return ctx.level }

func (ctx *Context) enterLevel() { ctx.level++ }
func (ctx *Context) leaveLevel() { ctx.level-- }

// NewVar creates an unbound type-variable with a unique id at the current level.
func (ctx *Context) NewVar() *types.Var { return ctx.newVarAt(ctx.level) }

func (ctx *Context) newVarAt(level int) *types.Var {
	id := ctx.nextId
	ctx.nextId++
	return types.NewVar(id, level)
}

func (ctx *Context) warn(d *diagnostics.Diagnostic) {
	ctx.warnings = append(ctx.warnings, d)
}

// TakeWarnings returns and clears the warnings reported since the last call.
func (ctx *Context) TakeWarnings() []*diagnostics.Diagnostic {
	ws := ctx.warnings
	ctx.warnings = nil
	return ws
}

func (ctx *Context) resetAnnotationVars() {
	for k := range ctx.annotVars {
		delete(ctx.annotVars, k)
	}
}
