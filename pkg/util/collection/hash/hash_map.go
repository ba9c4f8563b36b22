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
	"fmt"
	"strings"

	"github.com/consensys/go-oneoff/pkg/util"
)

// A reasonably simple hashmap implementation which permits collisions.  Observe
// that, for example, hashicorp's go-set is *not* a suitable replacement here,
// since that does not handle collisions.  Specifically, it assumes the hash
// function always uniquely identifies the data in question.  I don't want to
// make that assumption here.

// Map defines a generic map implementation backed by a Go map.  This is a true
// hashtable in that collisions are handle gracefully using buckets, rather than
// simply discarding them.
type Map[K Hasher[K], V any] struct {
	// buckets maps hashcodes to *buckets* of items.
	buckets map[uint64]hashMapBucket[K, V]
}

// NewMap creates a new HashMap with a given underlying capacity.
func NewMap[K Hasher[K], V any](size uint) *Map[K, V] {
	items := make(map[uint64]hashMapBucket[K, V], size)
	return &Map[K, V]{items}
}

// Size returns the number of unique keys stored in this HashMap.
//
//nolint:revive
func (p *Map[K, V]) Size() uint {
	count := uint(0)
	for _, b := range p.buckets {
		count += uint(len(b.keys))
	}

	return count
}

// MaxBucket returns the size of the largest bucket.
//
//nolint:revive
func (p *Map[K, V]) MaxBucket() uint {
	m := uint(0)
	for _, b := range p.buckets {
		m = max(m, uint(len(b.keys)))
	}

	return m
}

// KeyValues returns all key-value pairs stored in this hash map.  Observe that
// the order of the pairs is unspecified.
func (p *Map[K, V]) KeyValues() []util.Pair[K, V] {
	pairs := make([]util.Pair[K, V], 0, len(p.buckets))
	//
	for _, b := range p.buckets {
		for i, k := range b.keys {
			pairs = append(pairs, util.NewPair(k, b.values[i]))
		}
	}
	//
	return pairs
}

// Insert a new key-value pair into this map, returning true if the key was
// already contained (in which case its value is replaced) and false otherwise.
//
//nolint:revive
func (p *Map[K, V]) Insert(key K, value V) bool {
	var (
		hash = key.Hash()
		// Lookup existing bucket
		bucket = p.buckets[hash]
	)
	// Determine whether key already present
	if i, ok := bucket.find(key); ok {
		bucket.values[i] = value
		return true
	}
	// Append item
	bucket.keys = append(bucket.keys, key)
	bucket.values = append(bucket.values, value)
	// Update map
	p.buckets[hash] = bucket
	//
	return false
}

// ContainsKey checks whether the given key is contained within this map, or not.
//
//nolint:revive
func (p *Map[K, V]) ContainsKey(key K) bool {
	_, ok := p.Get(key)
	return ok
}

// Get the value associated with a given key, or return false otherwise.
//
//nolint:revive
func (p *Map[K, V]) Get(key K) (V, bool) {
	var empty V
	// Look for bucket
	if bucket, ok := p.buckets[key.Hash()]; ok {
		if i, ok := bucket.find(key); ok {
			return bucket.values[i], true
		}
	}

	return empty, false
}

//nolint:revive
func (p *Map[K, V]) String() string {
	var r strings.Builder
	//
	r.WriteString("{")
	//
	for i, kv := range p.KeyValues() {
		if i != 0 {
			r.WriteString(",")
		}

		r.WriteString(fmt.Sprintf("%v:=%v", any(kv.Left), any(kv.Right)))
	}
	//
	r.WriteString("}")
	// Done
	return r.String()
}

// ============================================================================
// Bucket
// ============================================================================

type hashMapBucket[K Hasher[K], V any] struct {
	keys   []K
	values []V
}

// Find the index of a given key in this bucket, or return false otherwise.
//
//nolint:revive
func (b *hashMapBucket[K, V]) find(key K) (int, bool) {
	for i, k := range b.keys {
		if key.Equals(k) {
			return i, true
		}
	}

	return 0, false
}
