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

// Package typecheck implements type inference and checking for core modules.
//
// Inference is Hindley-Milner with let-polymorphism, using binding-levels to decide which
// type-variables may be generalized (see "How OCaml type checker works", Oleg Kiselyov).
// Substitutions and environments are persistent: every operation returns a new value and
// leaves its inputs unchanged, so a failed inference never corrupts the caller's state.
//
// Beyond plain inference, the checker:
//
//   - restricts generalization to syntactic values
//   - specializes generic division to integer or float division, in place
//   - checks pattern matches for exhaustiveness and unreachable arms
//   - resolves overloaded external functions by argument count
//
// Failures are reported as diagnostics with stable VF4xxx codes. Checking continues with
// the next top-level declaration after a failure.
package typecheck
