// Copyright 2022 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitvec provides a fixed-length bit-packed boolean vector (Bitv)
// and a growable set of unsigned integers (BitSet) built on the same
// word-level operations.  Both are conceptually similar to []bool and
// map[uint]struct{}, but store one bit per element.
//
// Neither type is safe for concurrent use; callers that share an instance
// across goroutines must synchronize externally.
package bitvec
