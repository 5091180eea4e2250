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

package diagnostics

import (
	"strings"

	"github.com/mbcrawfo/vibefun-sub014/ast"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a structured type checking failure or warning. Diagnostic implements error.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Location ast.Location
	Hint     string   // Suggested remediation; may be empty
	Notes    []string // Additional context, e.g. missing cases
	// Internal diagnostics report checker bugs rather than program errors.
	Internal bool
}

// NewError creates a new error diagnostic
func NewError(code Code, loc ast.Location, message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Code: code, Location: loc, Message: message}
}

// NewWarning creates a new warning diagnostic
func NewWarning(code Code, loc ast.Location, message string) *Diagnostic {
	return &Diagnostic{Severity: Warning, Code: code, Location: loc, Message: message}
}

// NewInternal creates an error diagnostic for a violated checker invariant.
func NewInternal(loc ast.Location, message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Code: ErrInternal, Location: loc, Message: message, Internal: true}
}

// WithHint sets a suggestion for fixing the error
func (d *Diagnostic) WithHint(hint string) *Diagnostic {
	d.Hint = hint
	return d
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// AsError promotes a warning to an error.
func (d *Diagnostic) AsError() *Diagnostic {
	d.Severity = Error
	return d
}

func (d *Diagnostic) IsError() bool { return d.Severity == Error }

// Error formats the diagnostic as `file:line:col: severity[code]: message`.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	sb.WriteString(d.Location.String())
	sb.WriteString(": ")
	sb.WriteString(d.Severity.String())
	sb.WriteByte('[')
	sb.WriteString(string(d.Code))
	sb.WriteString("]: ")
	sb.WriteString(d.Message)
	return sb.String()
}
