// Package list implements persistent list.
//
// Every non-empty list is a node holding one value and a reference to its
// parent, the list after that value. The chain of parents always ends at
// Empty. Nodes are never modified after construction, so deriving a new list
// with Cons, ReplaceFirst or ReplaceRest leaves the original valid and shares
// all unchanged nodes with it. This also makes lists safe for concurrent use.
package list

import (
	"fmt"
	"strings"
)

// List is a persistent list.
type List interface {
	fmt.Stringer
	// Len returns the number of values in the list.
	Len() int
	// IsEmpty returns whether the list is Empty.
	IsEmpty() bool
	// Cons returns a new list with an additional value in the front.
	Cons(any) List
	// First returns the first value in the list. It panics with an
	// *AccessError if the list is empty.
	First() any
	// Rest returns the list after the first value. It panics with an
	// *AccessError if the list is empty.
	Rest() List
	// Iterator returns an iterator over the values in the list.
	Iterator() Iterator

	node() *list
}

// Iterator is an iterator over list values. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
//
// An Iterator cannot be restarted; call Iterator again for a new traversal.
type Iterator interface {
	// Elem returns the value at the current position.
	Elem() any
	// HasElem returns whether the iterator is pointing to a value.
	HasElem() bool
	// Next moves the iterator to the next position.
	Next()
}

// Empty is the empty list. It is the only list for which IsEmpty returns
// true, and every list ends with it.
var Empty List = empty

var empty = &list{}

type list struct {
	first any
	rest  *list
	count int
}

// New returns the empty list.
func New() List { return empty }

// Of returns a list containing the given values, with values[0] as its first
// value.
func Of(values ...any) List {
	l := empty
	for i := len(values) - 1; i >= 0; i-- {
		l = l.cons(values[i])
	}
	return l
}

// Cons returns a new list whose first value is v and whose rest is l.
func Cons(v any, l List) List {
	return nodeOf(l).cons(v)
}

// IsEmpty returns whether l is Empty.
func IsEmpty(l List) bool {
	return nodeOf(l).isEmpty()
}

// First returns the first value of l. It returns an error wrapping
// ErrEmptyList if l is empty.
func First(l List) (any, error) {
	n := nodeOf(l)
	if n.isEmpty() {
		return nil, &AccessError{"first"}
	}
	return n.first, nil
}

// Rest returns the list after the first value of l. It returns an error
// wrapping ErrEmptyList if l is empty.
func Rest(l List) (List, error) {
	n := nodeOf(l)
	if n.isEmpty() {
		return nil, &AccessError{"rest"}
	}
	return n.rest, nil
}

// ReplaceFirst returns a new list whose first value is v and whose rest is the
// rest of l. It returns an error wrapping ErrEmptyList if l is empty.
func ReplaceFirst(v any, l List) (List, error) {
	n := nodeOf(l)
	if n.isEmpty() {
		return nil, &AccessError{"replace first"}
	}
	return n.rest.cons(v), nil
}

// ReplaceRest returns a new list whose first value is the first value of l and
// whose rest is rest. It returns an error wrapping ErrEmptyList if l is empty.
func ReplaceRest(rest List, l List) (List, error) {
	n := nodeOf(l)
	if n.isEmpty() {
		return nil, &AccessError{"replace rest"}
	}
	return nodeOf(rest).cons(n.first), nil
}

func nodeOf(l List) *list {
	if l == nil {
		panic("list: nil List")
	}
	return l.node()
}

func (l *list) node() *list { return l }

func (l *list) isEmpty() bool { return l == empty }

func (l *list) cons(v any) *list {
	return &list{v, l, l.count + 1}
}

func (l *list) Len() int {
	return l.count
}

func (l *list) IsEmpty() bool {
	return l.isEmpty()
}

func (l *list) Cons(v any) List {
	return l.cons(v)
}

func (l *list) First() any {
	if l.isEmpty() {
		panic(&AccessError{"first"})
	}
	return l.first
}

func (l *list) Rest() List {
	if l.isEmpty() {
		panic(&AccessError{"rest"})
	}
	return l.rest
}

func (l *list) Iterator() Iterator {
	return &iterator{l}
}

func (l *list) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l; !n.isEmpty(); n = n.rest {
		if n != l {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.first)
	}
	sb.WriteByte(']')
	return sb.String()
}

type iterator struct {
	current *list
}

func (it *iterator) Elem() any {
	return it.current.first
}

func (it *iterator) HasElem() bool {
	return !it.current.isEmpty()
}

func (it *iterator) Next() {
	it.current = it.current.rest
}
