// Copyright 2022 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"github.com/dgryski/go-farm"
)

// Hash returns a 64-bit farmhash fingerprint of the vector.  Vectors with
// the same length and bit content hash identically regardless of internal
// representation; the length is mixed in as the seed so that vectors that
// serialize to the same bytes but differ in length hash apart.
func (v *Bitv) Hash() uint64 {
	return farm.Hash64WithSeed(v.ToBytes(), uint64(v.nbits))
}
