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

// Bag collects diagnostics during type checking, in report order.
type Bag struct {
	diagnostics []*Diagnostic
	errorCount  int
	warnCount   int
	maxErrors   int
}

// NewBag creates a new bag. Once maxErrors errors have been recorded, further errors are
// dropped; zero means unlimited.
func NewBag(maxErrors int) *Bag {
	return &Bag{maxErrors: maxErrors}
}

// Add adds a diagnostic to the bag. Add reports false when the diagnostic was dropped.
func (b *Bag) Add(d *Diagnostic) bool {
	if d.Severity == Error {
		if b.Full() {
			return false
		}
		b.errorCount++
	} else {
		b.warnCount++
	}
	b.diagnostics = append(b.diagnostics, d)
	return true
}

// Full reports whether the error limit has been reached.
func (b *Bag) Full() bool { return b.maxErrors > 0 && b.errorCount >= b.maxErrors }

func (b *Bag) HasErrors() bool   { return b.errorCount > 0 }
func (b *Bag) ErrorCount() int   { return b.errorCount }
func (b *Bag) WarningCount() int { return b.warnCount }

// Diagnostics returns a copy of all diagnostics
func (b *Bag) Diagnostics() []*Diagnostic {
	out := make([]*Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	return out
}

// Errors returns the error diagnostics, in report order.
func (b *Bag) Errors() []*Diagnostic { return b.filter(Error) }

// Warnings returns the warning diagnostics, in report order.
func (b *Bag) Warnings() []*Diagnostic { return b.filter(Warning) }

func (b *Bag) filter(sev Severity) []*Diagnostic {
	var out []*Diagnostic
	for _, d := range b.diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Codes returns the code of every diagnostic, in report order.
func (b *Bag) Codes() []Code {
	out := make([]Code, len(b.diagnostics))
	for i, d := range b.diagnostics {
		out[i] = d.Code
	}
	return out
}
