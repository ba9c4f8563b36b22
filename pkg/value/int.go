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
	"fmt"
	"math/big"

	"github.com/consensys/go-oneoff/pkg/util"
	"github.com/consensys/go-oneoff/pkg/util/collection/hash"
)

var _ util.Comparable[Int] = Int{}
var _ hash.Hasher[Int] = Int{}

// Int is an arbitrary precision integer which can be held in a OneOff, ordered
// and placed into a hash set.  An Int is never modified after construction.
type Int struct {
	val *big.Int
}

// NewInt constructs an Int from a given int64.
func NewInt(val int64) Int {
	return Int{big.NewInt(val)}
}

// ParseInt parses an Int from a string in decimal, or any other base
// identified by its prefix (e.g. "0x" for hexadecimal).
func ParseInt(text string) (Int, error) {
	val, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return Int{}, fmt.Errorf("invalid integer \"%s\"", text)
	}
	//
	return Int{val}, nil
}

// BigInt returns the value of this Int.
func (x Int) BigInt() *big.Int {
	return new(big.Int).Set(x.get())
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Int) Cmp(y Int) int {
	return x.get().Cmp(y.get())
}

// Equals checks whether x = y.
func (x Int) Equals(y Int) bool {
	return x.Cmp(y) == 0
}

// Hash generates a 64-bit hashcode from the sign and magnitude of x.
func (x Int) Hash() uint64 {
	val := x.get()
	//
	return hash.Combine(uint64(val.Sign()+1), hash.NewBytesKey(val.Bytes()).Hash())
}

func (x Int) String() string {
	return x.get().String()
}

// The zero value of Int holds a nil pointer, which represents 0.
func (x Int) get() *big.Int {
	if x.val == nil {
		return new(big.Int)
	}
	//
	return x.val
}
