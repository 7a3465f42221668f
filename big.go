// Copyright 2022 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

// bigMask returns a mask with a 1 for each defined bit of word elem in a
// vector of length nbits.  Every word except a final partial one is fully
// defined, so the mask is all-ones.
func bigMask(nbits, elem int) uint64 {
	rmd := nbits % wordBits
	nelems := nbits / wordBits
	if rmd != 0 {
		nelems++
	}
	if elem < nelems-1 || rmd == 0 {
		return ^uint64(0)
	}
	return (1 << uint(rmd)) - 1
}

// bigBitv holds a vector of arbitrary length as an ordered word slice.
// Word i holds bits [i*wordBits, (i+1)*wordBits); only the last word may be
// partially defined.
type bigBitv struct {
	storage []uint64
}

// process combines each word of b with the corresponding word of other via
// f, masking both operands and the result to the defined bits, and reports
// whether any word changed.  Both vectors must have the same number of
// words; a mismatch is a bug in the caller.
func (b *bigBitv) process(other *bigBitv, nbits int, f func(w1, w2 uint64) uint64) bool {
	if len(b.storage) != len(other.storage) {
		panic("bitvec: word storage lengths differ")
	}
	changed := false
	for i := range b.storage {
		mask := bigMask(nbits, i)
		w0 := b.storage[i] & mask
		w1 := other.storage[i] & mask
		w := f(w0, w1) & mask
		if w0 != w {
			changed = true
			b.storage[i] = w
		}
	}
	return changed
}

// eachStorage calls f with a pointer to every word in order.  clear, setAll
// and invert are all expressed through it.
func (b *bigBitv) eachStorage(f func(w *uint64)) {
	for i := range b.storage {
		f(&b.storage[i])
	}
}

// invert flips every word wholesale, including undefined tail bits.  All
// readers mask before use, so the tail stays don't-care.
func (b *bigBitv) invert() {
	b.eachStorage(func(w *uint64) {
		*w = ^*w
	})
}

func (b *bigBitv) get(i int) bool {
	w := i / wordBits
	off := uint(i % wordBits)
	return b.storage[w]>>off&1 == 1
}

func (b *bigBitv) set(i int, x bool) {
	w := i / wordBits
	off := uint(i % wordBits)
	if x {
		b.storage[w] |= 1 << off
	} else {
		b.storage[w] &^= 1 << off
	}
}

func (b *bigBitv) equals(other *bigBitv, nbits int) bool {
	for i := range b.storage {
		mask := bigMask(nbits, i)
		if b.storage[i]&mask != other.storage[i]&mask {
			return false
		}
	}
	return true
}
