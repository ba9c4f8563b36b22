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
package util

import (
	"cmp"
	"fmt"
)

// Comparable interface which can be implemented by non-primitive types.
type Comparable[T any] interface {
	// Cmp returns < 0 if this is less than other, or 0 if they are equal, or >
	// 0 if this is greater than other.
	Cmp(other T) int
}

// OneOff represents a value which is either a "left" or a "right" value, where
// both sides hold the same type.  The side is fixed at construction and cannot
// be changed.  Since this is a plain value type, extracting the contained value
// returns a copy and the OneOff itself remains usable.
type OneOff[T any] struct {
	// Indicates right present.  The zero value is therefore Left(zero).
	right bool
	// Contained value
	value T
}

// Left constructs a OneOff holding a left value.
func Left[T any](value T) OneOff[T] {
	return OneOff[T]{false, value}
}

// Right constructs a OneOff holding a right value.
func Right[T any](value T) OneOff[T] {
	return OneOff[T]{true, value}
}

// IsLeft indicates whether this holds a left value (or not).
func (o OneOff[T]) IsLeft() bool {
	return !o.right
}

// IsRight indicates whether this holds a right value (or not).
func (o OneOff[T]) IsRight() bool {
	return o.right
}

// Left returns the contained value if this is a left value, or an empty option
// otherwise.
func (o OneOff[T]) Left() Option[T] {
	if o.right {
		return None[T]()
	}
	//
	return Some(o.value)
}

// Right returns the contained value if this is a right value, or an empty
// option otherwise.
func (o OneOff[T]) Right() Option[T] {
	if o.right {
		return Some(o.value)
	}
	//
	return None[T]()
}

// Value returns the contained value, regardless of which side holds it.
func (o OneOff[T]) Value() T {
	return o.value
}

func (o OneOff[T]) String() string {
	if o.right {
		return fmt.Sprintf("Right(%v)", any(o.value))
	}
	//
	return fmt.Sprintf("Left(%v)", any(o.value))
}

// ============================================================================
// Equality / Ordering
// ============================================================================

// Equal determines whether two OneOffs hold the same side and equal values.
// This is the same as using == directly.
func Equal[T comparable](l OneOff[T], r OneOff[T]) bool {
	return l == r
}

// EqualFunc determines whether two OneOffs hold the same side and equal values,
// where values are compared using a given equality function.
func EqualFunc[T any](l OneOff[T], r OneOff[T], eq func(T, T) bool) bool {
	return l.right == r.right && eq(l.value, r.value)
}

// Compare two OneOffs of ordered values.  Any left value is below any right
// value, whilst values on the same side are ordered by their contents.
func Compare[T cmp.Ordered](l OneOff[T], r OneOff[T]) int {
	return CompareFunc(l, r, cmp.Compare[T])
}

// Cmp compares two OneOffs whose values implement Comparable.  See Compare for
// the ordering used.
func Cmp[T Comparable[T]](l OneOff[T], r OneOff[T]) int {
	return CompareFunc(l, r, func(x T, y T) int { return x.Cmp(y) })
}

// CompareFunc compares two OneOffs using a given function for comparing values.
// See Compare for the ordering used.
func CompareFunc[T any](l OneOff[T], r OneOff[T], fn func(T, T) int) int {
	switch {
	case !l.right && r.right:
		return -1
	case l.right && !r.right:
		return 1
	default:
		return fn(l.value, r.value)
	}
}
