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
	"sort"
	"strconv"
	"strings"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// ResolveOverload selects the signatures of b whose parameter count equals argc.
// Resolution is purely arity-based; argument types are not consulted.
func ResolveOverload(b *ExternalOverload, argc int) []*types.Scheme {
	var matches []*types.Scheme
	for _, sig := range b.Signatures {
		if fn, ok := sig.Type.(*types.Fun); ok && len(fn.Params) == argc {
			matches = append(matches, sig)
		}
	}
	return matches
}

func (ctx *Context) inferOverloadedCall(env *TypeEnv, name string, b *ExternalOverload, call *ast.App, s types.Subst) (types.Type, types.Subst, error) {
	matches := ResolveOverload(b, len(call.Args))
	switch len(matches) {
	case 0:
		return nil, s, fail(diagnostics.ErrNoMatchingOverload, call.At,
			"No overload of %s takes %d argument(s)", name, len(call.Args)).
			WithNote("available arities: " + overloadArities(b))
	case 1:
	default:
		return nil, s, fail(diagnostics.ErrAmbiguousOverload, call.At,
			"Call to %s with %d argument(s) matches %d overloads", name, len(call.Args), len(matches))
	}
	ctx.log.Debug("overload selected", "name", name, "arity", len(call.Args))

	fn := ctx.Instantiate(matches[0]).(*types.Fun)
	s, err := ctx.unifyArgs(env, fn.Params, call.Args, s)
	if err != nil {
		return nil, s, err
	}
	return fn.Return, s, nil
}

func overloadArities(b *ExternalOverload) string {
	arities := make([]int, 0, len(b.Signatures))
	for _, sig := range b.Signatures {
		if fn, ok := sig.Type.(*types.Fun); ok {
			arities = append(arities, len(fn.Params))
		}
	}
	sort.Ints(arities)
	parts := make([]string, len(arities))
	for i, n := range arities {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// Merge an additional signature into the foreign binding prev, which was declared under
// the same name in the same module. Every signature of an overload set must be a function,
// share one foreign name and module, and take a distinct number of arguments.
func mergeOverload(prev Binding, d *ast.ExternalDecl, sig *types.Scheme) (*ExternalOverload, error) {
	var merged *ExternalOverload
	switch prev := prev.(type) {
	case *External:
		merged = &ExternalOverload{
			Signatures:  []*types.Scheme{prev.Scheme},
			ForeignName: prev.ForeignName,
			Module:      prev.Module,
			At:          prev.At,
		}
	case *ExternalOverload:
		merged = &ExternalOverload{
			Signatures:  append([]*types.Scheme(nil), prev.Signatures...),
			ForeignName: prev.ForeignName,
			Module:      prev.Module,
			At:          prev.At,
		}
	default:
		return nil, internalError("unexpected binding %T for external %s", prev, d.Name)
	}

	if d.ForeignName != merged.ForeignName || d.Module != merged.Module {
		return nil, fail(diagnostics.ErrFFIInconsistentName, d.At,
			"Overloads of %s must share one foreign binding: %s and %s",
			d.Name, foreignRef(merged.ForeignName, merged.Module), foreignRef(d.ForeignName, d.Module))
	}
	for _, existing := range append(merged.Signatures, sig) {
		if _, ok := existing.Type.(*types.Fun); !ok {
			return nil, fail(diagnostics.ErrFFIOverloadNotFunction, d.At,
				"Overloaded external %s must have function types, found %s", d.Name, types.SchemeString(existing))
		}
	}
	arity := len(sig.Type.(*types.Fun).Params)
	if len(ResolveOverload(merged, arity)) > 0 {
		return nil, fail(diagnostics.ErrFFIOverloadArityClash, d.At,
			"External %s already has an overload taking %d argument(s)", d.Name, arity)
	}
	merged.Signatures = append(merged.Signatures, sig)
	return merged, nil
}

func foreignRef(name, module string) string {
	if module == "" {
		return strconv.Quote(name)
	}
	return strconv.Quote(name) + " from " + strconv.Quote(module)
}
