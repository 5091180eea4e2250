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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var (
	EmptyTypeMap  = TypeMap{emptyMap}
	EmptyFieldMap = FieldMap{emptyMap}
)

// TypeMap contains immutable mappings from labels to immutable lists of types.
// Variant constructors are stored as a TypeMap from constructor name to argument types.
type TypeMap struct {
	m *immutable.SortedMap
}

// Get the number of entries in the map.
func (m TypeMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the list of types for a label.
func (m TypeMap) Get(label string) (TypeList, bool) {
	if m.m == nil {
		return TypeList{}, false
	}
	l, ok := m.m.Get(label)
	if !ok {
		return TypeList{}, false
	}
	return TypeList{l: l.(*immutable.List)}, true
}

// Iterate over entries in the map. Entries are sorted by label.
// If f returns false, iteration will be stopped.
func (m TypeMap) Range(f func(string, TypeList) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), TypeList{v.(*immutable.List)}) {
			return
		}
	}
}

// Labels returns the sorted labels of the map.
func (m TypeMap) Labels() []string {
	labels := make([]string, 0, m.Len())
	m.Range(func(label string, _ TypeList) bool {
		labels = append(labels, label)
		return true
	})
	return labels
}

// Map returns a new map with f applied to every type in every list.
func (m TypeMap) Map(f func(Type) Type) TypeMap {
	b := NewTypeMapBuilder()
	m.Range(func(label string, ts TypeList) bool {
		b.Set(label, ts.Map(f))
		return true
	})
	return b.Build()
}

// TypeMapBuilder enables in-place updates of a map before finalization.
type TypeMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewTypeMapBuilder() TypeMapBuilder {
	return TypeMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Set the type list for the given label in the builder.
func (b TypeMapBuilder) Set(label string, ts TypeList) TypeMapBuilder {
	if ts.l == nil {
		ts = EmptyTypeList
	}
	b.b.Set(label, ts.l)
	return b
}

// Finalize the builder into an immutable map.
func (b TypeMapBuilder) Build() TypeMap { return TypeMap{b.b.Map()} }

// FieldMap contains immutable mappings from record labels to types.
type FieldMap struct {
	m *immutable.SortedMap
}

// Create a FieldMap from a Go map.
func NewFieldMap(fields map[string]Type) FieldMap {
	m := emptyMap
	for label, t := range fields {
		m = m.Set(label, t)
	}
	return FieldMap{m}
}

// Get the number of fields in the map.
func (m FieldMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type of a field.
func (m FieldMap) Get(label string) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(label)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a new map with the field assigned, without mutating the existing map.
func (m FieldMap) Set(label string, t Type) FieldMap {
	base := m.m
	if base == nil {
		base = emptyMap
	}
	return FieldMap{base.Set(label, t)}
}

// Iterate over fields in the map, sorted by label.
// If f returns false, iteration will be stopped.
func (m FieldMap) Range(f func(string, Type) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Labels returns the sorted labels of the map.
func (m FieldMap) Labels() []string {
	labels := make([]string, 0, m.Len())
	m.Range(func(label string, _ Type) bool {
		labels = append(labels, label)
		return true
	})
	return labels
}

// Map returns a new map with f applied to every field type.
func (m FieldMap) Map(f func(Type) Type) FieldMap {
	out := emptyMap
	m.Range(func(label string, t Type) bool {
		out = out.Set(label, f(t))
		return true
	})
	return FieldMap{out}
}
