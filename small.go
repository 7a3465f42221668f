// Copyright 2022 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

// smallMask returns a mask with a 1 for each defined bit of a single-word
// vector of length nbits.
func smallMask(nbits int) uint64 {
	if nbits >= wordBits {
		return ^uint64(0)
	}
	return (1 << uint(nbits)) - 1
}

// smallBitv holds a vector of up to wordBits bits in a single word.  Only
// the low nbits of the word are defined; the rest is don't-care.
type smallBitv struct {
	bits uint64
}

// bitsOp stores f(old, right) into the word and reports whether the defined
// bits changed.  The result is stored unmasked: undefined high bits may end
// up holding anything, and readers must mask before comparing.
func (s *smallBitv) bitsOp(right uint64, nbits int, f func(w1, w2 uint64) uint64) bool {
	mask := smallMask(nbits)
	old := s.bits
	next := f(old, right)
	s.bits = next
	return old&mask != next&mask
}

func (s *smallBitv) get(i int) bool {
	return s.bits&(1<<uint(i)) != 0
}

func (s *smallBitv) set(i int, x bool) {
	if x {
		s.bits |= 1 << uint(i)
	} else {
		s.bits &^= 1 << uint(i)
	}
}

func (s *smallBitv) equals(other *smallBitv, nbits int) bool {
	mask := smallMask(nbits)
	return s.bits&mask == other.bits&mask
}

func (s *smallBitv) clear() {
	s.bits = 0
}

func (s *smallBitv) setAll() {
	s.bits = ^uint64(0)
}

func (s *smallBitv) isTrue(nbits int) bool {
	return smallMask(nbits)&^s.bits == 0
}

func (s *smallBitv) isFalse(nbits int) bool {
	return smallMask(nbits)&s.bits == 0
}

func (s *smallBitv) invert() {
	s.bits = ^s.bits
}
