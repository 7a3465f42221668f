// Copyright 2022 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	a := FromFunc(100, func(i int) bool { return i%3 == 0 })
	b := a.Clone()
	require.Equal(t, a.Hash(), b.Hash())

	b.Set(1, true)
	require.NotEqual(t, a.Hash(), b.Hash())

	// same serialized bytes, different lengths
	require.NotEqual(t, New(9, false).Hash(), New(16, false).Hash())
}

func TestHashRepresentationIndependent(t *testing.T) {
	// Unwrap yields a 64-bit word-slice vector; Equal treats it as
	// distinct from a compact one, but Hash only sees content.
	s := newSet(2, 40)
	expanded := s.Unwrap()
	compact := New(wordBits, false)
	compact.Set(2, true)
	compact.Set(40, true)

	require.False(t, compact.Equal(expanded))
	require.Equal(t, compact.Hash(), expanded.Hash())
}
