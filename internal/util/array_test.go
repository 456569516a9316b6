package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"gotest.tools/v3/assert"
)

func TestAddKeepsOrderAcrossGrowth(t *testing.T) {
	a := NewArray[int](1)
	for i := 0; i < 37; i++ {
		a.Add(i * 3)
	}
	assert.Equal(t, 37, a.Size())
	assert.Assert(t, a.Cap() >= 37)
	for i := 0; i < 37; i++ {
		v, err := a.At(i)
		assert.NilError(t, err)
		assert.Equal(t, i*3, v)
	}
}

func TestCapacityDoubles(t *testing.T) {
	a := NewArray[string](2)
	assert.Equal(t, 2, a.Cap())
	a.Add("a")
	a.Add("b")
	assert.Equal(t, 2, a.Cap())
	a.Add("c")
	assert.Equal(t, 4, a.Cap())
	a.Add("d")
	a.Add("e")
	assert.Equal(t, 8, a.Cap())
}

func TestNewArrayClampsCapacity(t *testing.T) {
	a := NewArray[int](0)
	assert.Equal(t, 1, a.Cap())
	a.Add(1)
	a.Add(2)
	assert.Equal(t, 2, a.Size())

	var zero Array[int]
	zero.Add(5)
	assert.Equal(t, DefaultCapacity, zero.Cap())
	v, err := zero.At(0)
	assert.NilError(t, err)
	assert.Equal(t, 5, v)
}

func TestRemoveAtShiftsLeft(t *testing.T) {
	a := NewArray[int](DefaultCapacity)
	for _, v := range []int{10, 20, 30, 40} {
		a.Add(v)
	}
	assert.NilError(t, a.RemoveAt(1))
	assert.Equal(t, 3, a.Size())
	assert.DeepEqual(t, []int{10, 30, 40}, a.Slice())

	assert.NilError(t, a.RemoveAt(2))
	assert.DeepEqual(t, []int{10, 30}, a.Slice())

	assert.NilError(t, a.RemoveAt(0))
	assert.DeepEqual(t, []int{30}, a.Slice())
}

func TestRemoveAtClearsVacatedSlot(t *testing.T) {
	x, y := new(int), new(int)
	a := NewArray[*int](4)
	a.Add(x)
	a.Add(y)
	assert.NilError(t, a.RemoveAt(0))
	assert.Assert(t, a.data[1] == nil)
}

func TestOutOfRange(t *testing.T) {
	a := NewArray[int](3)
	for size := 0; size < 3; size++ {
		_, err := a.At(size)
		assert.Assert(t, errors.Is(err, ErrOutOfRange), "size %d", size)
		assert.Assert(t, errors.Is(a.RemoveAt(size), ErrOutOfRange), "size %d", size)
		_, err = a.Ref(size)
		assert.Assert(t, errors.Is(err, ErrOutOfRange))
		assert.Assert(t, errors.Is(a.Set(size, 1), ErrOutOfRange))
		a.Add(size)
	}
	_, err := a.At(-1)
	assert.Assert(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, 3, a.Size())
}

func TestRefMutatesInPlace(t *testing.T) {
	a := NewArray[int](2)
	a.Add(1)
	p, err := a.Ref(0)
	assert.NilError(t, err)
	*p = 99
	v, _ := a.At(0)
	assert.Equal(t, 99, v)

	assert.NilError(t, a.Set(0, 7))
	v, _ = a.At(0)
	assert.Equal(t, 7, v)
}

func TestEachAndIndexFunc(t *testing.T) {
	a := NewArray[int](2)
	for _, v := range []int{4, 5, 6, 5} {
		a.Add(v)
	}
	var seen []int
	a.Each(func(i int, v int) bool {
		seen = append(seen, v)
		return i < 1
	})
	assert.DeepEqual(t, []int{4, 5}, seen)
	assert.Equal(t, 1, a.IndexFunc(func(v int) bool { return v == 5 }))
	assert.Equal(t, -1, a.IndexFunc(func(v int) bool { return v == 9 }))
}

type line string

func (l line) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, string(l))
	return err
}

type failWriter struct{ after int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.after == 0 {
		return 0, errors.New("sink closed")
	}
	f.after--
	return len(p), nil
}

func TestPrintAll(t *testing.T) {
	a := NewArray[line](1)
	a.Add("first")
	a.Add("second")
	var buf bytes.Buffer
	assert.NilError(t, PrintAll(a, &buf))
	assert.Equal(t, "first\nsecond\n", buf.String())

	err := PrintAll(a, &failWriter{after: 1})
	assert.ErrorContains(t, err, "sink closed")
}

func TestJitterBounds(t *testing.T) {
	r := NewRand(0)
	for i := 0; i < 200; i++ {
		dx, dy := Jitter(r, 2)
		assert.Assert(t, dx >= -2 && dx <= 2)
		assert.Assert(t, dy >= -2 && dy <= 2)
	}
	dx, dy := Jitter(r, 0)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)
}
