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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbcrawfo/vibefun-sub014/types"
)

func TestTypeEnvPersistence(t *testing.T) {
	parent := NewTypeEnv().addMono("x", types.Int, zeroLoc)
	child := parent.addMono("x", types.String, zeroLoc).addMono("y", types.Bool, zeroLoc)

	b, ok := parent.LookupValue("x")
	require.True(t, ok)
	assert.Equal(t, "Int", types.SchemeString(b.(*Value).Scheme))
	_, ok = parent.LookupValue("y")
	assert.False(t, ok)

	b, ok = child.LookupValue("x")
	require.True(t, ok)
	assert.Equal(t, "String", types.SchemeString(b.(*Value).Scheme))
	assert.Equal(t, 1, parent.NumValues())
	assert.Equal(t, 2, child.NumValues())

	var names []string
	child.RangeValues(func(name string, _ Binding) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{"x", "y"}, names)
}

func TestTypeEnvNamespaces(t *testing.T) {
	env := NewTypeEnv().
		AddType("T", &ExternalType{Name: "T"}).
		addMono("T", types.Int, zeroLoc)

	_, ok := env.LookupType("T")
	assert.True(t, ok)
	_, ok = env.LookupValue("T")
	assert.True(t, ok)
	assert.Equal(t, 1, env.NumTypes())
	assert.Equal(t, 1, env.NumValues())
}
