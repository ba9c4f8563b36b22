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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-oneoff/pkg/util"
	"github.com/consensys/go-oneoff/pkg/util/collection/hash"
)

var _ util.Comparable[Element] = Element{}
var _ hash.Hasher[Element] = Element{}

// Element wraps an fr.Element (i.e. an element of the BLS12-377 scalar field)
// so that it can be held in a OneOff, ordered and placed into a hash set.
// Elements are ordered by their canonical (i.e. non-Montgomery) value.
type Element struct {
	fr.Element
}

// NewElement constructs an Element from a given uint64.
func NewElement(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// ParseElement parses an Element from a string in decimal, or any other base
// identified by its prefix (e.g. "0x" for hexadecimal).  Values outside the
// field are reduced modulo the field order.
func ParseElement(text string) (Element, error) {
	var elem fr.Element
	//
	if _, err := elem.SetString(text); err != nil {
		return Element{}, fmt.Errorf("invalid field element \"%s\": %w", text, err)
	}
	//
	return Element{elem}, nil
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Equals checks whether x = y.
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Hash generates a 64-bit hashcode from the canonical bytes of x.
func (x Element) Hash() uint64 {
	bytes := x.Element.Bytes()
	//
	return hash.NewBytesKey(bytes[:]).Hash()
}

func (x Element) String() string {
	return x.Element.String()
}
