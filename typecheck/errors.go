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
	"fmt"

	"github.com/pkg/errors"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// UnifyError is a unification failure. It carries no location; inference attaches the
// location of the expression being checked.
type UnifyError struct {
	Code    diagnostics.Code
	Message string
}

func (e *UnifyError) Error() string { return e.Message }

func unifyError(code diagnostics.Code, format string, args ...interface{}) *UnifyError {
	return &UnifyError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func mismatch(code diagnostics.Code, what string, a, b types.Type) *UnifyError {
	names := types.TypeStrings(a, b)
	return unifyError(code, "%s: %s and %s", what, names[0], names[1])
}

// Create an error diagnostic.
func fail(code diagnostics.Code, at ast.Location, format string, args ...interface{}) *diagnostics.Diagnostic {
	return diagnostics.NewError(code, at, fmt.Sprintf(format, args...))
}

// Attach a location to a unification failure. Other errors are returned as-is.
func locate(err error, at ast.Location) error {
	var uerr *UnifyError
	if errors.As(err, &uerr) {
		return diagnostics.NewError(uerr.Code, at, uerr.Message)
	}
	return err
}

// Report a unification failure under a context-specific code; the unification message
// is kept as a note.
func recode(err error, code diagnostics.Code, at ast.Location, format string, args ...interface{}) error {
	var uerr *UnifyError
	if errors.As(err, &uerr) {
		return fail(code, at, format, args...).WithNote(uerr.Message)
	}
	return err
}

// Internal invariant violation, reported as a checker bug.
func internalError(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// toDiagnostic converts any error produced by inference into a diagnostic.
func toDiagnostic(err error, at ast.Location) *diagnostics.Diagnostic {
	var diag *diagnostics.Diagnostic
	if errors.As(err, &diag) {
		return diag
	}
	var uerr *UnifyError
	if errors.As(err, &uerr) {
		return diagnostics.NewError(uerr.Code, at, uerr.Message)
	}
	return diagnostics.NewInternal(at, err.Error())
}
