/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package iters

import (
	"github.com/haraldrudell/corerun/internal/cyclebreaker"
)

// Simple traverses another iterator and returns converted values
type Simple[K any, V any] struct {
	// keyIterator provides the key values converterFunction uses to
	// return values
	keyIterator     Iterator[K]
	simpleConverter func(key K) (value V)
	// BaseIterator implements Cancel and the DelegateAction[T] function required by
	// Delegator[T]
	//	- receives invokeConverterFunction function
	//	- provides delegateAction function
	BaseIterator[V]
}

// NewSimpleConverterIterator returns a converting iterator.
//   - simpleConverter receives no cancel and cannot return error
//   - stores self-referencing pointers
func NewSimpleConverterIterator[K any, V any](
	keyIterator Iterator[K],
	simpleConverter SimpleConverter[K, V],
) (iterator Iterator[V]) {
	if simpleConverter == nil {
		panic(cyclebreaker.NilError("simpleConverter"))
	} else if keyIterator == nil {
		panic(cyclebreaker.NilError("keyIterator"))
	}

	c := Simple[K, V]{
		keyIterator:     keyIterator,
		simpleConverter: simpleConverter,
	}
	c.BaseIterator = *NewBaseIterator(c.iteratorAction)

	return &c
}

// Init implements the right-hand side of a short variable declaration in
// the init statement for a Go “for” clause
//
// Usage:
//
//		for i, iterator := NewSlicePointerIterator(someSlice).Init(); iterator.Cond(&i); {
//	   // i is pointer to slice element
func (i *Simple[K, T]) Init() (iterationVariable T, iterator Iterator[T]) {
	iterator = i
	return
}

// iteratorAction gets the next key and invokes simpleConverter
//   - if isCancel is true, it returns without invoking simpleConverter
//   - when keys are exhausted, err is parl.ErrEndCallbacks
//   - if err is nil, value is valid
//   - a panic in simpleConverter is not recovered here
func (i *Simple[K, T]) iteratorAction(isCancel bool) (value T, err error) {
	if isCancel {
		return
	}
	// get next key from keyIterator
	var key K
	var hasKey bool
	if key, hasKey = i.keyIterator.Next(); !hasKey {
		err = cyclebreaker.ErrEndCallbacks
		return
	}
	value = i.simpleConverter(key)

	return
}
