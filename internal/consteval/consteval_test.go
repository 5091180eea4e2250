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

package consteval

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	c "github.com/mbcrawfo/vibefun-sub014/construct"
)

func TestIntDivision(t *testing.T) {
	for _, tt := range []struct {
		a, b, want int64
	}{
		{10, 3, 3},
		{-7, 2, -3},
		{7, -2, -3},
		{-7, -2, 3},
		{6, 3, 2},
	} {
		got, err := Int(ast.IntDivide, tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d / %d", tt.a, tt.b)
	}

	rem, err := Int(ast.Modulo, -7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), rem)

	_, err = Int(ast.IntDivide, 1, 0)
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = Int(ast.FloatDivide, 1, 2)
	assert.Error(t, err)
}

func TestFloatDivision(t *testing.T) {
	got, err := Float(ast.FloatDivide, 5, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = Float(ast.FloatDivide, 1, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestFold(t *testing.T) {
	t.Run("int division", func(t *testing.T) {
		e := c.Div(c.Int(10), c.Int(3))
		e.Op = ast.IntDivide
		v, err := Fold(e)
		require.NoError(t, err)
		assert.Equal(t, int64(3), v.(*ast.IntLit).Value)
	})

	t.Run("negative operand truncates toward zero", func(t *testing.T) {
		e := c.Div(c.UnOp(ast.Negate, c.Int(7)), c.Int(2))
		e.Op = ast.IntDivide
		v, err := Fold(e)
		require.NoError(t, err)
		assert.Equal(t, int64(-3), v.(*ast.IntLit).Value)
	})

	t.Run("mixed operands", func(t *testing.T) {
		e := c.Div(c.Int(5), c.Float(2.0))
		e.Op = ast.FloatDivide
		v, err := Fold(e)
		require.NoError(t, err)
		assert.Equal(t, 2.5, v.(*ast.FloatLit).Value)
	})

	t.Run("generic operator", func(t *testing.T) {
		_, err := Fold(c.Div(c.Int(1), c.Int(2)))
		assert.Error(t, err)
	})

	t.Run("not constant", func(t *testing.T) {
		v, err := Fold(c.BinOp(ast.Add, c.Var("x"), c.Int(1)))
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
