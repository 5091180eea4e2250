package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable, ordered list of types.
type TypeList struct {
	l *immutable.List
}

func NewTypeList(ts ...Type) TypeList {
	if len(ts) == 0 {
		return EmptyTypeList
	}
	b := NewTypeListBuilder()
	for _, t := range ts {
		b.Append(t)
	}
	return b.Build()
}

func SingletonTypeList(t Type) TypeList {
	return TypeList{emptyList.Append(t)}
}

func (l TypeList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l TypeList) Get(i int) Type { return l.l.Get(i).(Type) }

// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, Type) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Type)) {
			return
		}
	}
}

// Types copies the list into a slice.
func (l TypeList) Types() []Type {
	ts := make([]Type, 0, l.Len())
	l.Range(func(_ int, t Type) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

// Map returns a new list with f applied to each element.
func (l TypeList) Map(f func(Type) Type) TypeList {
	b := NewTypeListBuilder()
	l.Range(func(_ int, t Type) bool {
		b.Append(f(t))
		return true
	})
	return b.Build()
}

type TypeListBuilder struct {
	b *immutable.ListBuilder
}

func NewTypeListBuilder() TypeListBuilder {
	return TypeListBuilder{immutable.NewListBuilder(emptyList)}
}

func (b TypeListBuilder) Len() int        { return b.b.Len() }
func (b TypeListBuilder) Append(t Type)   { b.b.Append(t) }
func (b TypeListBuilder) Build() TypeList { return TypeList{b.b.List()} }
