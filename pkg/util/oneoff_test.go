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
	"math"
	"slices"
	"testing"
)

func Test_OneOff_01(t *testing.T) {
	left := Left(1)
	right := Right(2)
	//
	if left != Left(1) {
		t.Errorf("expected %s, got %s", Left(1), left)
	}
	//
	if right != Right(2) {
		t.Errorf("expected %s, got %s", Right(2), right)
	}
	//
	check_Extract(t, left, Some(1), None[int]())
	check_Extract(t, right, None[int](), Some(2))
	//
	if c := Compare(left, right); c >= 0 {
		t.Errorf("expected %s < %s, got %d", left, right, c)
	}
	//
	if c := Compare(right, left); c <= 0 {
		t.Errorf("expected %s > %s, got %d", right, left, c)
	}
}

func Test_OneOff_02(t *testing.T) {
	for _, v := range []string{"", "hello", "world"} {
		check_Extract(t, Left(v), Some(v), None[string]())
		check_Extract(t, Right(v), None[string](), Some(v))
	}
}

func Test_OneOff_03(t *testing.T) {
	var zero OneOff[int]
	// Zero value is a left
	check_Extract(t, zero, Some(0), None[int]())
}

func Test_OneOff_04(t *testing.T) {
	// Left below right regardless of the values themselves
	check_Less(t, Left(math.MaxInt), Right(math.MinInt))
	check_Less(t, Left(2), Right(1))
	check_Less(t, Left(1), Right(1))
	// Same side falls back to value
	check_Less(t, Left(1), Left(2))
	check_Less(t, Right(1), Right(2))
	check_Less(t, Right(-1), Right(0))
}

func Test_OneOff_05(t *testing.T) {
	for _, v := range []int{-1, 0, 1, 1024} {
		if Left(v) != Left(v) || !Equal(Left(v), Left(v)) {
			t.Errorf("expected %s to equal itself", Left(v))
		}
		//
		if Right(v) != Right(v) || !Equal(Right(v), Right(v)) {
			t.Errorf("expected %s to equal itself", Right(v))
		}
		//
		if Left(v) == Right(v) || Equal(Left(v), Right(v)) {
			t.Errorf("expected %s to differ from %s", Left(v), Right(v))
		}
		//
		if Compare(Left(v), Left(v)) != 0 || Compare(Right(v), Right(v)) != 0 {
			t.Errorf("expected %d to compare equal with itself", v)
		}
	}
}

func Test_OneOff_06(t *testing.T) {
	// Non-comparable contents
	l := Left([]int{1, 2})
	r := Right([]int{1, 2})
	//
	if !EqualFunc(l, Left([]int{1, 2}), slices.Equal[[]int]) {
		t.Errorf("expected %s to equal itself", l)
	}
	//
	if EqualFunc(l, r, slices.Equal[[]int]) {
		t.Errorf("expected %s to differ from %s", l, r)
	}
	//
	if c := CompareFunc(r, Right([]int{1, 3}), slices.Compare[[]int]); c >= 0 {
		t.Errorf("expected %s < Right([1 3]), got %d", r, c)
	}
}

func Test_OneOff_07(t *testing.T) {
	check_LessCmp(t, Left(testInt(5)), Right(testInt(0)))
	check_LessCmp(t, Right(testInt(0)), Right(testInt(5)))
	//
	if c := Cmp(Left(testInt(3)), Left(testInt(3))); c != 0 {
		t.Errorf("expected Left(3) == Left(3), got %d", c)
	}
}

func Test_OneOff_08(t *testing.T) {
	if s := Left(1).String(); s != "Left(1)" {
		t.Errorf("unexpected string %q", s)
	}
	//
	if s := Right("x").String(); s != "Right(x)" {
		t.Errorf("unexpected string %q", s)
	}
}

func Test_OneOff_09(t *testing.T) {
	check_Sorted(t, GenerateRandomOneOffs(10, 4))
}

func Test_OneOff_10(t *testing.T) {
	check_Sorted(t, GenerateRandomOneOffs(1000, 32))
}

func Test_OneOff_11(t *testing.T) {
	items := GenerateRandomOneOffs(1000, 1000)
	//
	for _, item := range items {
		v := item.Value()
		//
		if item.IsLeft() {
			check_Extract(t, item, Some(v), None[uint]())
		} else {
			check_Extract(t, item, None[uint](), Some(v))
		}
	}
}

func Test_OneOff_12(t *testing.T) {
	// Usable directly as a map key
	counts := make(map[OneOff[string]]uint)
	//
	for _, item := range []OneOff[string]{Left("a"), Right("a"), Left("a"), Right("b")} {
		counts[item]++
	}
	//
	if len(counts) != 3 || counts[Left("a")] != 2 || counts[Right("a")] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Extract[T comparable](t *testing.T, item OneOff[T], left Option[T], right Option[T]) {
	if item.IsLeft() != left.HasValue() {
		t.Errorf("%s.IsLeft() returned %t", item, item.IsLeft())
	}
	//
	if item.IsRight() != right.HasValue() {
		t.Errorf("%s.IsRight() returned %t", item, item.IsRight())
	}
	//
	if item.IsLeft() == item.IsRight() {
		t.Errorf("%s is both (or neither) left and right", item)
	}
	//
	if item.Left() != left {
		t.Errorf("%s.Left() returned %s, expected %s", item, item.Left(), left)
	}
	//
	if item.Right() != right {
		t.Errorf("%s.Right() returned %s, expected %s", item, item.Right(), right)
	}
}

func check_Less[T cmp.Ordered](t *testing.T, lhs OneOff[T], rhs OneOff[T]) {
	if c := Compare(lhs, rhs); c >= 0 {
		t.Errorf("expected %s < %s, got %d", lhs, rhs, c)
	}
	//
	if c := Compare(rhs, lhs); c <= 0 {
		t.Errorf("expected %s > %s, got %d", rhs, lhs, c)
	}
}

func check_LessCmp[T Comparable[T]](t *testing.T, lhs OneOff[T], rhs OneOff[T]) {
	if c := Cmp(lhs, rhs); c >= 0 {
		t.Errorf("expected %s < %s, got %d", lhs, rhs, c)
	}
	//
	if c := Cmp(rhs, lhs); c <= 0 {
		t.Errorf("expected %s > %s, got %d", rhs, lhs, c)
	}
}

func check_Sorted(t *testing.T, items []OneOff[uint]) {
	slices.SortFunc(items, Compare[uint])
	//
	for i := 1; i < len(items); i++ {
		var (
			prev = items[i-1]
			next = items[i]
		)
		//
		if prev.IsRight() && next.IsLeft() {
			t.Errorf("%s sorted before %s", prev, next)
		} else if prev.IsRight() == next.IsRight() && prev.Value() > next.Value() {
			t.Errorf("%s sorted before %s", prev, next)
		}
	}
}

type testInt int

func (p testInt) Cmp(other testInt) int {
	switch {
	case p < other:
		return -1
	case p > other:
		return 1
	default:
		return 0
	}
}
