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
package value

import (
	"math/big"
	"testing"

	"github.com/consensys/go-oneoff/pkg/util"
)

func Test_Int_01(t *testing.T) {
	check_ParseInt(t, "0", NewInt(0))
	check_ParseInt(t, "-12", NewInt(-12))
	check_ParseInt(t, "0x10", NewInt(16))
	check_ParseInt(t, "340282366920938463463374607431768211456", pow2(128))
}

func Test_Int_02(t *testing.T) {
	for _, text := range []string{"", "x", "1.5", "0xg"} {
		if _, err := ParseInt(text); err == nil {
			t.Errorf("expected error parsing \"%s\"", text)
		}
	}
}

func Test_Int_03(t *testing.T) {
	var zero Int
	//
	if !zero.Equals(NewInt(0)) || zero.Hash() != NewInt(0).Hash() {
		t.Errorf("expected zero value to equal 0")
	}
	// Same magnitude, different sign
	if NewInt(1).Hash() == NewInt(-1).Hash() {
		t.Errorf("expected 1 and -1 to hash differently")
	}
}

func Test_Int_04(t *testing.T) {
	check_Order(t, util.Left(NewInt(-1)), util.Left(NewInt(1)))
	check_Order(t, util.Left(pow2(200)), util.Right(NewInt(-5)))
	check_Order(t, util.Right(NewInt(7)), util.Right(pow2(64)))
}

func Test_Element_01(t *testing.T) {
	check_ParseElement(t, "0", NewElement(0))
	check_ParseElement(t, "255", NewElement(255))
	check_ParseElement(t, "0xff", NewElement(255))
}

func Test_Element_02(t *testing.T) {
	if _, err := ParseElement("abc"); err == nil {
		t.Errorf("expected error parsing \"abc\"")
	}
}

func Test_Element_03(t *testing.T) {
	check_Order(t, util.Left(NewElement(1)), util.Left(NewElement(2)))
	check_Order(t, util.Left(NewElement(1000)), util.Right(NewElement(0)))
	check_Order(t, util.Right(NewElement(3)), util.Right(NewElement(1<<40)))
	//
	if NewElement(3).Hash() != NewElement(3).Hash() {
		t.Errorf("expected equal elements to hash identically")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

type testValue[T any] interface {
	util.Comparable[T]
	Equals(T) bool
	Hash() uint64
}

func check_ParseInt(t *testing.T, text string, expected Int) {
	actual, err := ParseInt(text)
	//
	if err != nil {
		t.Errorf("unexpected error parsing \"%s\": %s", text, err)
	} else if !actual.Equals(expected) || actual.Hash() != expected.Hash() {
		t.Errorf("parsing \"%s\" gave %s, expected %s", text, actual, expected)
	}
}

func check_ParseElement(t *testing.T, text string, expected Element) {
	actual, err := ParseElement(text)
	//
	if err != nil {
		t.Errorf("unexpected error parsing \"%s\": %s", text, err)
	} else if !actual.Equals(expected) || actual.Hash() != expected.Hash() {
		t.Errorf("parsing \"%s\" gave %s, expected %s", text, actual, expected)
	}
}

func check_Order[T testValue[T]](t *testing.T, lhs util.OneOff[T], rhs util.OneOff[T]) {
	if c := util.Cmp(lhs, rhs); c >= 0 {
		t.Errorf("expected %s < %s, got %d", lhs, rhs, c)
	}
	//
	if c := util.Cmp(rhs, lhs); c <= 0 {
		t.Errorf("expected %s > %s, got %d", rhs, lhs, c)
	}
	//
	if util.Cmp(lhs, lhs) != 0 || !util.EqualFunc(lhs, lhs, func(x T, y T) bool { return x.Equals(y) }) {
		t.Errorf("expected %s to equal itself", lhs)
	}
}

func pow2(n uint) Int {
	return Int{new(big.Int).Lsh(big.NewInt(1), n)}
}
