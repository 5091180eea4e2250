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

package types

import (
	"sort"
)

// NewUnion builds a union type in canonical form: nested unions are flattened, duplicate
// members are removed, and members are sorted by their printed form. A union with a single
// distinct member collapses to that member, and an empty union is Never.
//
// Unions unify positionally, so every union must be built through NewUnion.
func NewUnion(members ...Type) Type {
	flat := make([]Type, 0, len(members))
	var add func(t Type)
	add = func(t Type) {
		if u, ok := t.(*Union); ok {
			for _, m := range u.Types {
				add(m)
			}
			return
		}
		if _, ok := t.(*Never); ok {
			return
		}
		for _, existing := range flat {
			if Equal(existing, t) {
				return
			}
		}
		flat = append(flat, t)
	}
	for _, m := range members {
		add(m)
	}
	switch len(flat) {
	case 0:
		return NeverType
	case 1:
		return flat[0]
	}
	keys := make(map[Type]string, len(flat))
	for _, t := range flat {
		keys[t] = canonicalString(t)
	}
	sort.SliceStable(flat, func(i, j int) bool { return keys[flat[i]] < keys[flat[j]] })
	return &Union{Types: flat}
}
