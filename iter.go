// Copyright 2022 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"math/bits"
)

// iterateBits calls f with base+n for every set bit position n of w, in
// ascending order.  It stops at the first f that returns false and reports
// whether the traversal ran to completion.  A zero word is a no-op.
func iterateBits(base uint, w uint64, f func(uint) bool) bool {
	for w != 0 {
		n := uint(bits.TrailingZeros64(w))
		if !f(base + n) {
			return false
		}
		w &^= 1 << n
	}
	return true
}

// SetIter lazily yields elements of a set-algebra result in ascending
// order.  It walks the two word slices in lockstep, combining each pair
// with op; a slice that runs out contributes zero words.  It is
// single-pass, and mutating either set during iteration gives unspecified
// results.
type SetIter struct {
	a, b []uint64
	op   func(w1, w2 uint64) uint64
	i    int    // next word index
	w    uint64 // unvisited bits of the current word
	base uint   // bit offset of the current word
}

func newSetIter(a, b []uint64, op func(w1, w2 uint64) uint64) *SetIter {
	return &SetIter{a: a, b: b, op: op}
}

// Next returns the next element, or false when the iteration is done.
func (it *SetIter) Next() (uint, bool) {
	for it.w == 0 {
		if it.i >= len(it.a) && it.i >= len(it.b) {
			return 0, false
		}
		var w1, w2 uint64
		if it.i < len(it.a) {
			w1 = it.a[it.i]
		}
		if it.i < len(it.b) {
			w2 = it.b[it.i]
		}
		it.w = it.op(w1, w2)
		it.base = uint(it.i) * wordBits
		it.i++
	}
	n := uint(bits.TrailingZeros64(it.w))
	it.w &^= 1 << n
	return it.base + n, true
}
