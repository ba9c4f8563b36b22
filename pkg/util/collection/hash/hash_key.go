// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"bytes"

	"github.com/consensys/go-oneoff/pkg/util"
)

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashset.  This is similar to the Hasher interface provided in
// go-set, except that it additionally includes equality.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Combine a sequence of hashes (or other uint64 values) into a single hash,
// using FNV1a over 64-bit words.  The result depends on the order of the
// hashes.
func Combine(hashes ...uint64) uint64 {
	hash := offset64
	//
	for _, c := range hashes {
		hash ^= c
		hash *= prime64
	}
	//
	return hash
}

// ============================================================================
// BytesKey Implementation
// ============================================================================

var _ Hasher[BytesKey] = BytesKey{}

// BytesKey wraps a bytes array as something which can be safely placed into a
// HashSet.
type BytesKey struct {
	bytes []byte
}

// NewBytesKey constructs a new bytes key.
func NewBytesKey(bytes []byte) BytesKey {
	return BytesKey{bytes}
}

// Equals compares two BytesKeys to check whether they represent the same
// underlying byte array (or not).
func (p BytesKey) Equals(other BytesKey) bool {
	return bytes.Equal(p.bytes, other.bytes)
}

// Hash generates a 64-bit hashcode from the underlying bytes array.
func (p BytesKey) Hash() uint64 {
	hash := offset64
	//
	for _, b := range p.bytes {
		hash ^= uint64(b)
		hash *= prime64
	}
	//
	return hash
}

// ============================================================================
// OneOffKey Implementation
// ============================================================================

const (
	leftTag  uint64 = 0
	rightTag uint64 = 1
)

// OneOffKey wraps a OneOff as something which can be safely placed into a
// HashSet or HashMap.  Two keys are equal when they hold the same side and
// equal values.  The hashcode is determined only by the side and the hashcode
// of the value, hence equal keys always have equal hashcodes.
type OneOffKey[T Hasher[T]] struct {
	util.OneOff[T]
}

// NewOneOffKey constructs a new key from a given OneOff.
func NewOneOffKey[T Hasher[T]](item util.OneOff[T]) OneOffKey[T] {
	return OneOffKey[T]{item}
}

// Equals compares two OneOffKeys to check whether they represent the same side
// and value (or not).
func (p OneOffKey[T]) Equals(other OneOffKey[T]) bool {
	return util.EqualFunc(p.OneOff, other.OneOff, func(x T, y T) bool { return x.Equals(y) })
}

// Hash generates a 64-bit hashcode from the side and value.
func (p OneOffKey[T]) Hash() uint64 {
	tag := leftTag
	//
	if p.IsRight() {
		tag = rightTag
	}
	//
	return Combine(tag, p.Value().Hash())
}

func (p OneOffKey[T]) String() string {
	return p.OneOff.String()
}
