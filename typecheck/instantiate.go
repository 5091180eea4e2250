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
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Instantiate replaces every quantified type-variable of sc with a fresh type-variable at
// the current level. Each use site gets its own fresh variables.
func (ctx *Context) Instantiate(sc *types.Scheme) types.Type {
	if !sc.IsPolymorphic() {
		return sc.Type
	}
	inst := make(map[int]types.Type, len(sc.Vars))
	for _, id := range sc.Vars {
		inst[id] = ctx.NewVar()
	}
	return types.Rename(sc.Type, inst)
}

// Substitute the parameters of a declared type with args.
func instantiateParams(params []*types.Var, args []types.Type, t types.Type) types.Type {
	if len(params) == 0 {
		return t
	}
	inst := make(map[int]types.Type, len(params))
	for i, p := range params {
		inst[p.Id] = args[i]
	}
	return types.Rename(t, inst)
}

// poisonScheme is bound to names whose declaration failed to check: forall a. a
func (ctx *Context) poisonScheme() *types.Scheme {
	tv := ctx.newVarAt(ctx.level + 1)
	return &types.Scheme{Vars: []int{tv.Id}, Type: tv}
}
