// Copyright 2022 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"strings"
)

// wordBits is the number of bits in a storage word.
const wordBits = 64

const panicSizes = "bitvec: operation on bit vectors with different sizes"

// Bitv is a fixed-length vector of bits.  Vectors no longer than a single
// word use a compact one-word representation; longer vectors use a word
// slice.  Exactly one of small and big is non-nil.
//
// Binary operations require both operands to have the same length (and
// therefore the same representation); violating that is a programming error
// and panics.
type Bitv struct {
	small *smallBitv
	big   *bigBitv
	nbits int
}

// New returns a vector of nbits bits, all set to init.
func New(nbits int, init bool) *Bitv {
	if nbits < 0 {
		panic("bitvec: negative length")
	}
	if nbits <= wordBits {
		var bits uint64
		if init {
			bits = ^uint64(0)
		}
		return &Bitv{small: &smallBitv{bits: bits}, nbits: nbits}
	}
	storage := make([]uint64, (nbits+wordBits-1)/wordBits)
	if init {
		for i := range storage {
			storage[i] = ^uint64(0)
		}
	}
	return &Bitv{big: &bigBitv{storage: storage}, nbits: nbits}
}

// Len returns the number of bits in the vector.
func (v *Bitv) Len() int {
	return v.nbits
}

func (v *Bitv) doOp(other *Bitv, f func(w1, w2 uint64) uint64) bool {
	if v.nbits != other.nbits {
		panic(panicSizes)
	}
	switch {
	case v.small != nil && other.small != nil:
		return v.small.bitsOp(other.small.bits, v.nbits, f)
	case v.big != nil && other.big != nil:
		return v.big.process(other.big, v.nbits, f)
	default:
		panic(panicSizes)
	}
}

// Union sets v to the union of v and other.  Both vectors must have the
// same length.  It reports whether v changed.
func (v *Bitv) Union(other *Bitv) bool {
	return v.doOp(other, func(w1, w2 uint64) uint64 { return w1 | w2 })
}

// Intersect sets v to the intersection of v and other.  Both vectors must
// have the same length.  It reports whether v changed.
func (v *Bitv) Intersect(other *Bitv) bool {
	return v.doOp(other, func(w1, w2 uint64) uint64 { return w1 & w2 })
}

// Assign copies the contents of other into v.  Both vectors must have the
// same length.  It reports whether v changed.
func (v *Bitv) Assign(other *Bitv) bool {
	return v.doOp(other, func(_, w2 uint64) uint64 { return w2 })
}

// Difference clears every bit of v that is set in other.  Both vectors
// must have the same length.  It reports whether v changed.
func (v *Bitv) Difference(other *Bitv) bool {
	return v.doOp(other, func(w1, w2 uint64) uint64 { return w1 &^ w2 })
}

// Get returns the bit at index i.
func (v *Bitv) Get(i int) bool {
	if i < 0 || i >= v.nbits {
		panic("bitvec: index out of range")
	}
	if v.small != nil {
		return v.small.get(i)
	}
	return v.big.get(i)
}

// Set sets the bit at index i to x.
func (v *Bitv) Set(i int, x bool) {
	if i < 0 || i >= v.nbits {
		panic("bitvec: index out of range")
	}
	if v.small != nil {
		v.small.set(i, x)
		return
	}
	v.big.set(i, x)
}

// Equal reports whether v and other have identical contents.  Vectors of
// different lengths are never equal.  Neither are vectors with different
// representations, even if the bit content matches: a 64-bit compact vector
// never equals a 64-bit word-slice vector produced by BitSet.Unwrap.  That
// quirk is long-standing behavior that callers rely on.
func (v *Bitv) Equal(other *Bitv) bool {
	if v.nbits != other.nbits {
		return false
	}
	switch {
	case v.small != nil && other.small != nil:
		return v.small.equals(other.small, v.nbits)
	case v.big != nil && other.big != nil:
		return v.big.equals(other.big, v.nbits)
	default:
		return false
	}
}

// Clear sets every bit to 0.
func (v *Bitv) Clear() {
	if v.small != nil {
		v.small.clear()
		return
	}
	v.big.eachStorage(func(w *uint64) {
		*w = 0
	})
}

// SetAll sets every bit to 1.
func (v *Bitv) SetAll() {
	if v.small != nil {
		v.small.setAll()
		return
	}
	v.big.eachStorage(func(w *uint64) {
		*w = ^uint64(0)
	})
}

// Invert flips every bit.
func (v *Bitv) Invert() {
	if v.small != nil {
		v.small.invert()
		return
	}
	v.big.invert()
}

// IsTrue reports whether every bit is 1.
func (v *Bitv) IsTrue() bool {
	if v.small != nil {
		return v.small.isTrue(v.nbits)
	}
	for i := 0; i < v.nbits; i++ {
		if !v.big.get(i) {
			return false
		}
	}
	return true
}

// IsFalse reports whether every bit is 0.
func (v *Bitv) IsFalse() bool {
	if v.small != nil {
		return v.small.isFalse(v.nbits)
	}
	for i := 0; i < v.nbits; i++ {
		if v.big.get(i) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v *Bitv) Clone() *Bitv {
	if v.small != nil {
		s := *v.small
		return &Bitv{small: &s, nbits: v.nbits}
	}
	storage := make([]uint64, len(v.big.storage))
	copy(storage, v.big.storage)
	return &Bitv{big: &bigBitv{storage: storage}, nbits: v.nbits}
}

// ToVec returns the vector as a slice of 0/1 values.
func (v *Bitv) ToVec() []uint {
	out := make([]uint, v.nbits)
	for i := range out {
		if v.Get(i) {
			out[i] = 1
		}
	}
	return out
}

// ToBools returns the vector as a slice of booleans.
func (v *Bitv) ToBools() []bool {
	out := make([]bool, v.nbits)
	for i := range out {
		out[i] = v.Get(i)
	}
	return out
}

// ToBytes packs the vector into bytes, 8 bits per byte with bit 0 of the
// vector in the most significant position of byte 0.  If the length is not
// a multiple of 8 the trailing bits of the last byte are 0.
func (v *Bitv) ToBytes() []byte {
	out := make([]byte, (v.nbits+7)/8)
	for i := 0; i < v.nbits; i++ {
		if v.Get(i) {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// String renders the vector as a string of '0' and '1' characters in index
// order.
func (v *Bitv) String() string {
	var sb strings.Builder
	sb.Grow(v.nbits)
	for i := 0; i < v.nbits; i++ {
		if v.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// EqVec compares the vector against a slice of uints, treating any nonzero
// value as a set bit.  Both must have the same length.
func (v *Bitv) EqVec(u []uint) bool {
	if v.nbits != len(u) {
		panic(panicSizes)
	}
	for i := 0; i < v.nbits; i++ {
		if v.Get(i) != (u[i] != 0) {
			return false
		}
	}
	return true
}

// FromBytes returns a vector of len(bytes)*8 bits, the inverse of ToBytes:
// the most significant bit of byte 0 becomes bit 0 of the vector.
func FromBytes(bytes []byte) *Bitv {
	return FromFunc(len(bytes)*8, func(i int) bool {
		return bytes[i/8]>>uint(7-i%8)&1 == 1
	})
}

// FromBools returns a vector with one bit per element of bools.
func FromBools(bools []bool) *Bitv {
	return FromFunc(len(bools), func(i int) bool {
		return bools[i]
	})
}

// FromFunc returns a vector of n bits where bit i is f(i).
func FromFunc(n int, f func(i int) bool) *Bitv {
	v := New(n, false)
	for i := 0; i < n; i++ {
		v.Set(i, f(i))
	}
	return v
}

// OnesIter iterates over the indices of set bits in ascending order.  It
// is single-pass; call Ones again to restart.  Mutating the vector during
// iteration gives unspecified results.
type OnesIter struct {
	v *Bitv
	i int
}

// Ones returns an iterator over the indices of the vector's set bits.
func (v *Bitv) Ones() *OnesIter {
	return &OnesIter{v: v}
}

// Next returns the next set bit's index, or false when the iteration is
// done.
func (it *OnesIter) Next() (int, bool) {
	for ; it.i < it.v.nbits; it.i++ {
		if it.v.Get(it.i) {
			i := it.i
			it.i++
			return i, true
		}
	}
	return 0, false
}
