// Copyright 2022 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"math/bits"
	"strconv"
	"strings"
)

// BitSet is a growable set of unsigned integers backed by a bit vector.
// Storage is proportional to the largest element ever inserted, not to the
// number of elements.
//
// The backing store is always a word slice, never the compact single-word
// representation: knowing there is a slice keeps the set-algebra loops
// simple.
type BitSet struct {
	size int
	bitv bigBitv
}

// NewBitSet returns an empty set with a one-word capacity.
func NewBitSet() *BitSet {
	return &BitSet{bitv: bigBitv{storage: make([]uint64, 1)}}
}

// BitSetFromBitv returns a set containing the indices of v's set bits,
// taking over v's storage.  v must not be used afterwards.
func BitSetFromBitv(v *Bitv) *BitSet {
	size := 0
	for it := v.Ones(); ; {
		if _, ok := it.Next(); !ok {
			break
		}
		size++
	}
	var storage []uint64
	if v.small != nil {
		storage = []uint64{v.small.bits & smallMask(v.nbits)}
	} else {
		storage = v.big.storage
		// the vector's undefined tail bits must not become phantom
		// elements
		if n := len(storage); n > 0 {
			storage[n-1] &= bigMask(v.nbits, n-1)
		}
	}
	return &BitSet{size: size, bitv: bigBitv{storage: storage}}
}

// Capacity returns the number of bits the set can hold without growing.
// Inserting any element below it never reallocates.
func (s *BitSet) Capacity() uint {
	return uint(len(s.bitv.storage)) * wordBits
}

// Unwrap consumes the set and returns its storage as a bit vector.  The
// vector's length is the set's full word-aligned capacity, which may exceed
// the largest element ever inserted.  s must not be used afterwards.
func (s *BitSet) Unwrap() *Bitv {
	return &Bitv{big: &bigBitv{storage: s.bitv.storage}, nbits: int(s.Capacity())}
}

// Len returns the number of elements in the set.
func (s *BitSet) Len() int {
	return s.size
}

// IsEmpty reports whether the set has no elements.
func (s *BitSet) IsEmpty() bool {
	return s.size == 0
}

// Clear removes all elements, keeping the current capacity.
func (s *BitSet) Clear() {
	s.bitv.eachStorage(func(w *uint64) {
		*w = 0
	})
	s.size = 0
}

// Contains reports whether v is in the set.
func (s *BitSet) Contains(v uint) bool {
	return v < s.Capacity() && s.bitv.get(int(v))
}

// Insert adds v to the set, growing storage if needed, and reports whether
// v was not already present.  Growth at least doubles the capacity, so a
// run of inserts is amortized O(1) per element.
func (s *BitSet) Insert(v uint) bool {
	if s.Contains(v) {
		return false
	}
	if nbits := s.Capacity(); v >= nbits {
		newbits := nbits * 2
		if v > newbits {
			newbits = v
		}
		storage := make([]uint64, newbits/wordBits+1)
		copy(storage, s.bitv.storage)
		s.bitv.storage = storage
	}
	s.bitv.set(int(v), true)
	s.size++
	return true
}

// Remove deletes v from the set and reports whether it was present.
// Trailing all-zero words are truncated from storage, but capacity never
// drops below one word.
func (s *BitSet) Remove(v uint) bool {
	if !s.Contains(v) {
		return false
	}
	s.bitv.set(int(v), false)
	s.size--
	n := len(s.bitv.storage)
	for n > 1 && s.bitv.storage[n-1] == 0 {
		n--
	}
	s.bitv.storage = s.bitv.storage[:n]
	return true
}

// otherOp combines, in place, each of other's words into s with f,
// growing s first if other has the larger capacity.  size is maintained
// from the popcount delta of each rewritten word.  Words of s beyond
// other's range are left alone, so capacity only ever grows.
func (s *BitSet) otherOp(other *BitSet, f func(w1, w2 uint64) uint64) {
	if s.Capacity() < other.Capacity() {
		storage := make([]uint64, len(other.bitv.storage))
		copy(storage, s.bitv.storage)
		s.bitv.storage = storage
	}
	for i, w := range other.bitv.storage {
		old := s.bitv.storage[i]
		next := f(old, w)
		s.bitv.storage[i] = next
		s.size += bits.OnesCount64(next) - bits.OnesCount64(old)
	}
}

// UnionWith adds every element of other to s.
func (s *BitSet) UnionWith(other *BitSet) {
	s.otherOp(other, func(w1, w2 uint64) uint64 { return w1 | w2 })
}

// IntersectWith removes every element of s that is not in other.
func (s *BitSet) IntersectWith(other *BitSet) {
	s.otherOp(other, func(w1, w2 uint64) uint64 { return w1 & w2 })
}

// DifferenceWith removes every element of other from s.
func (s *BitSet) DifferenceWith(other *BitSet) {
	s.otherOp(other, func(w1, w2 uint64) uint64 { return w1 &^ w2 })
}

// SymmetricDifferenceWith leaves s holding the elements in exactly one of
// s and other.
func (s *BitSet) SymmetricDifferenceWith(other *BitSet) {
	s.otherOp(other, func(w1, w2 uint64) uint64 { return w1 ^ w2 })
}

// eachCommon calls f for every word index the two sets share, with the bit
// offset of the word and the word from each side.  It stops at the first f
// returning false and reports whether the traversal ran to completion.
func (s *BitSet) eachCommon(other *BitSet, f func(base uint, w1, w2 uint64) bool) bool {
	a, b := s.bitv.storage, other.bitv.storage
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if !f(uint(i)*wordBits, a[i], b[i]) {
			return false
		}
	}
	return true
}

// eachOutlier calls f for every word past the common range.  At most one
// side has any: mine reports whether the word belongs to s.  It stops at
// the first f returning false and reports whether the traversal ran to
// completion.
func (s *BitSet) eachOutlier(other *BitSet, f func(mine bool, base uint, w uint64) bool) bool {
	a, b := s.bitv.storage, other.bitv.storage
	min := len(a)
	if len(b) < min {
		min = len(b)
	}
	for i := min; i < len(a); i++ {
		if !f(true, uint(i)*wordBits, a[i]) {
			return false
		}
	}
	for i := min; i < len(b); i++ {
		if !f(false, uint(i)*wordBits, b[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain the same elements, regardless
// of capacity.
func (s *BitSet) Equal(other *BitSet) bool {
	if s.size != other.size {
		return false
	}
	if !s.eachCommon(other, func(_ uint, w1, w2 uint64) bool {
		return w1 == w2
	}) {
		return false
	}
	return s.eachOutlier(other, func(_ bool, _ uint, w uint64) bool {
		return w == 0
	})
}

// IsSubset reports whether every element of s is in other.
func (s *BitSet) IsSubset(other *BitSet) bool {
	if !s.eachCommon(other, func(_ uint, w1, w2 uint64) bool {
		return w1&w2 == w1
	}) {
		return false
	}
	// past the common range only one side has words: other's can't
	// disprove anything, while a nonzero word of ours does
	return s.eachOutlier(other, func(mine bool, _ uint, w uint64) bool {
		return !mine || w == 0
	})
}

// IsSuperset reports whether every element of other is in s.
func (s *BitSet) IsSuperset(other *BitSet) bool {
	return other.IsSubset(s)
}

// IsDisjoint reports whether s and other have no elements in common.
func (s *BitSet) IsDisjoint(other *BitSet) bool {
	_, ok := s.Intersection(other).Next()
	return !ok
}

// Each calls f for every element in ascending order.  It stops at the
// first f returning false and reports whether the traversal ran to
// completion.
func (s *BitSet) Each(f func(v uint) bool) bool {
	for i, w := range s.bitv.storage {
		if !iterateBits(uint(i)*wordBits, w, f) {
			return false
		}
	}
	return true
}

// Iter returns an iterator over the set's elements in ascending order.
func (s *BitSet) Iter() *SetIter {
	return newSetIter(s.bitv.storage, nil, func(w1, _ uint64) uint64 { return w1 })
}

// Intersection returns an iterator over the elements in both s and other,
// in ascending order.  Neither set is modified.
func (s *BitSet) Intersection(other *BitSet) *SetIter {
	return newSetIter(s.bitv.storage, other.bitv.storage, func(w1, w2 uint64) uint64 { return w1 & w2 })
}

// Union returns an iterator over the elements in s or other, in ascending
// order.  Neither set is modified.
func (s *BitSet) Union(other *BitSet) *SetIter {
	return newSetIter(s.bitv.storage, other.bitv.storage, func(w1, w2 uint64) uint64 { return w1 | w2 })
}

// Difference returns an iterator over the elements in s but not other, in
// ascending order.  Neither set is modified.
func (s *BitSet) Difference(other *BitSet) *SetIter {
	return newSetIter(s.bitv.storage, other.bitv.storage, func(w1, w2 uint64) uint64 { return w1 &^ w2 })
}

// SymmetricDifference returns an iterator over the elements in exactly one
// of s and other, in ascending order.  Neither set is modified.
func (s *BitSet) SymmetricDifference(other *BitSet) *SetIter {
	return newSetIter(s.bitv.storage, other.bitv.storage, func(w1, w2 uint64) uint64 { return w1 ^ w2 })
}

// Clone returns an independent copy of s.
func (s *BitSet) Clone() *BitSet {
	storage := make([]uint64, len(s.bitv.storage))
	copy(storage, s.bitv.storage)
	return &BitSet{size: s.size, bitv: bigBitv{storage: storage}}
}

// String renders the set as "{1, 2, 3}" with elements in ascending order.
func (s *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(v uint) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
