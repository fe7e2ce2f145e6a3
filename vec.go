// File: lixenwraith/flexop/vec.go
package flexop

import (
	"fmt"
	"strconv"
	"strings"
)

// vecChunk is the number of elements a Vec grows by when full.
const vecChunk = 16

// Vec is a growable, kind-tagged homogeneous sequence used as storage for
// vector options. The element kind is fixed by Init and checked on every
// access; reading with the wrong accessor or past Len()-1 panics.
type Vec struct {
	kind   Kind
	ready  bool
	ints   []int64
	uints  []uint64
	floats []float64
	strs   []string
}

// NewVec returns an initialized Vec holding elements of the given kind.
func NewVec(kind Kind) *Vec {
	v := &Vec{}
	v.Init(kind)
	return v
}

// Init (re)initializes v for elements of kind, discarding any content.
// Valid kinds are KindInt, KindUint, KindFloat and KindString.
func (v *Vec) Init(kind Kind) {
	switch kind {
	case KindInt, KindUint, KindFloat, KindString:
	default:
		panic(fmt.Sprintf("flexop: vector element kind %s is not supported", kind))
	}
	*v = Vec{kind: kind, ready: true}
}

// Initialized reports whether Init has been called since the last Reset.
func (v *Vec) Initialized() bool {
	return v != nil && v.ready
}

// Reset releases all elements and returns v to the uninitialized state.
func (v *Vec) Reset() {
	*v = Vec{}
}

// clear drops all elements but keeps the element kind.
func (v *Vec) clear() {
	kind := v.kind
	*v = Vec{kind: kind, ready: true}
}

// Kind returns the element kind.
func (v *Vec) Kind() Kind {
	return v.kind
}

// Len returns the number of elements.
func (v *Vec) Len() int {
	switch v.kind {
	case KindInt:
		return len(v.ints)
	case KindUint:
		return len(v.uints)
	case KindFloat:
		return len(v.floats)
	case KindString:
		return len(v.strs)
	}
	return 0
}

// Cap returns the number of elements v can hold before growing.
func (v *Vec) Cap() int {
	switch v.kind {
	case KindInt:
		return cap(v.ints)
	case KindUint:
		return cap(v.uints)
	case KindFloat:
		return cap(v.floats)
	case KindString:
		return cap(v.strs)
	}
	return 0
}

// grow returns s with room for at least one more element, extending the
// capacity by exactly vecChunk when it is full.
func grow[T any](s []T) []T {
	if len(s) < cap(s) {
		return s
	}
	ns := make([]T, len(s), cap(s)+vecChunk)
	copy(ns, s)
	return ns
}

func (v *Vec) must(kind Kind) {
	if !v.ready {
		panic("flexop: vector is not initialized")
	}
	if v.kind != kind {
		panic(fmt.Sprintf("flexop: %s access on a vector of %s", kind, v.kind))
	}
}

func (v *Vec) check(kind Kind, i int) {
	v.must(kind)
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("flexop: vector index %d out of range [0,%d)", i, v.Len()))
	}
}

// AppendInt appends x to an int vector.
func (v *Vec) AppendInt(x int64) {
	v.must(KindInt)
	v.ints = append(grow(v.ints), x)
}

// AppendUint appends x to an unsigned vector.
func (v *Vec) AppendUint(x uint64) {
	v.must(KindUint)
	v.uints = append(grow(v.uints), x)
}

// AppendFloat appends x to a float vector.
func (v *Vec) AppendFloat(x float64) {
	v.must(KindFloat)
	v.floats = append(grow(v.floats), x)
}

// AppendString appends an owned copy of s to a string vector.
func (v *Vec) AppendString(s string) {
	v.must(KindString)
	v.strs = append(grow(v.strs), strings.Clone(s))
}

// IntAt returns element i of an int vector.
func (v *Vec) IntAt(i int) int64 {
	v.check(KindInt, i)
	return v.ints[i]
}

// UintAt returns element i of an unsigned vector.
func (v *Vec) UintAt(i int) uint64 {
	v.check(KindUint, i)
	return v.uints[i]
}

// FloatAt returns element i of a float vector.
func (v *Vec) FloatAt(i int) float64 {
	v.check(KindFloat, i)
	return v.floats[i]
}

// StringAt returns element i of a string vector.
func (v *Vec) StringAt(i int) string {
	v.check(KindString, i)
	return v.strs[i]
}

// Ints returns a copy of the elements of an int vector.
func (v *Vec) Ints() []int64 {
	v.must(KindInt)
	return append([]int64{}, v.ints...)
}

// Uints returns a copy of the elements of an unsigned vector.
func (v *Vec) Uints() []uint64 {
	v.must(KindUint)
	return append([]uint64{}, v.uints...)
}

// Floats returns a copy of the elements of a float vector.
func (v *Vec) Floats() []float64 {
	v.must(KindFloat)
	return append([]float64{}, v.floats...)
}

// Strings returns a copy of the elements of a string vector.
func (v *Vec) Strings() []string {
	v.must(KindString)
	return append([]string{}, v.strs...)
}

// appendText converts a single token to the element kind and appends it.
func (v *Vec) appendText(tok string) error {
	switch v.kind {
	case KindInt:
		x, err := parseInt(tok)
		if err != nil {
			return err
		}
		v.AppendInt(x)
	case KindUint:
		x, err := parseUint(tok)
		if err != nil {
			return err
		}
		v.AppendUint(x)
	case KindFloat:
		x, err := parseFloat(tok)
		if err != nil {
			return err
		}
		v.AppendFloat(x)
	case KindString:
		v.AppendString(tok)
	default:
		return fmt.Errorf("%w: vector is not initialized", ErrInternal)
	}
	return nil
}

// String renders the elements separated by single spaces.
func (v *Vec) String() string {
	if v == nil || !v.ready {
		return ""
	}
	parts := make([]string, 0, v.Len())
	switch v.kind {
	case KindInt:
		for _, x := range v.ints {
			parts = append(parts, strconv.FormatInt(x, 10))
		}
	case KindUint:
		for _, x := range v.uints {
			parts = append(parts, strconv.FormatUint(x, 10))
		}
	case KindFloat:
		for _, x := range v.floats {
			parts = append(parts, formatFloat(x))
		}
	case KindString:
		parts = append(parts, v.strs...)
	}
	return strings.Join(parts, " ")
}
