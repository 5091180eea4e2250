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
	"io"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Options configure a type checking run.
type Options struct {
	// Stop recording errors once this many have been reported. Zero means unlimited.
	MaxErrors int `toml:"max_errors"`
	// Report unreachable match arms as errors rather than warnings.
	UnreachableAsError bool `toml:"unreachable_as_error"`
	// Treat Bool as the closed constructor set {true, false} during exhaustiveness checking.
	CheckBoolExhaustiveness bool `toml:"check_bool_exhaustiveness"`

	// Destination for debug events. Defaults to discarding all output.
	Logger *slog.Logger `toml:"-"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{CheckBoolExhaustiveness: true}
}

// ParseOptions decodes TOML-encoded options. Keys absent from data keep their defaults.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, errors.Wrap(err, "parsing type checker options")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, errors.Errorf("unknown type checker option %q", undecoded[0].String())
	}
	if opts.MaxErrors < 0 {
		return Options{}, errors.Errorf("max_errors must not be negative, got %d", opts.MaxErrors)
	}
	return opts, nil
}

// LoadOptions decodes options from a TOML file, with the same checks as ParseOptions.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrapf(err, "reading %s", path)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, errors.Wrap(err, path)
	}
	return opts, nil
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
