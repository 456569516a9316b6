package util

import (
	"io"

	"github.com/rotisserie/eris"
)

const DefaultCapacity = 10

var ErrOutOfRange = eris.New("index out of bounds")

// Printer is anything that can write a human-readable line about itself.
type Printer interface {
	Print(w io.Writer) error
}

// Array is a growable sequence with explicit capacity doubling.
// It never owns what its elements point to.
type Array[T any] struct {
	data []T // len(data) is the capacity
	size int
}

func NewArray[T any](capacity int) *Array[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Array[T]{data: make([]T, capacity)}
}

func (a *Array[T]) Size() int { return a.size }
func (a *Array[T]) Cap() int  { return len(a.data) }

func (a *Array[T]) grow() {
	next := make([]T, len(a.data)*2)
	copy(next, a.data[:a.size])
	a.data = next
}

func (a *Array[T]) Add(item T) {
	if len(a.data) == 0 {
		a.data = make([]T, DefaultCapacity)
	}
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = item
	a.size++
}

func (a *Array[T]) check(index int) error {
	if index < 0 || index >= a.size {
		return eris.Wrapf(ErrOutOfRange, "index %d, size %d", index, a.size)
	}
	return nil
}

func (a *Array[T]) RemoveAt(index int) error {
	if err := a.check(index); err != nil {
		return err
	}
	copy(a.data[index:a.size-1], a.data[index+1:a.size])
	a.size--
	var zero T
	a.data[a.size] = zero
	return nil
}

func (a *Array[T]) At(index int) (T, error) {
	if err := a.check(index); err != nil {
		var zero T
		return zero, err
	}
	return a.data[index], nil
}

// Ref returns a pointer into the backing buffer. It is invalidated by the
// next Add that grows the array or by RemoveAt.
func (a *Array[T]) Ref(index int) (*T, error) {
	if err := a.check(index); err != nil {
		return nil, err
	}
	return &a.data[index], nil
}

func (a *Array[T]) Set(index int, v T) error {
	if err := a.check(index); err != nil {
		return err
	}
	a.data[index] = v
	return nil
}

func (a *Array[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < a.size; i++ {
		if !fn(i, a.data[i]) {
			return
		}
	}
}

func (a *Array[T]) IndexFunc(pred func(T) bool) int {
	for i := 0; i < a.size; i++ {
		if pred(a.data[i]) {
			return i
		}
	}
	return -1
}

// Slice copies the live elements out.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.size)
	copy(out, a.data[:a.size])
	return out
}

// PrintAll prints every element in index order and stops at the first write error.
func PrintAll[T Printer](a *Array[T], w io.Writer) error {
	for i := 0; i < a.size; i++ {
		if err := a.data[i].Print(w); err != nil {
			return eris.Wrapf(err, "print element %d", i)
		}
	}
	return nil
}
