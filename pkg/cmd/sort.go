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
package cmd

import (
	"fmt"
	"slices"

	"github.com/consensys/go-oneoff/pkg/util"
	"github.com/consensys/go-oneoff/pkg/util/collection/hash"
	"github.com/consensys/go-oneoff/pkg/value"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort [flags] entries",
	Short: "print entries in order.",
	Long: `Print entries in order, where every left entry comes before every right
entry and entries on the same side are ordered by value.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			f       = configure(cmd)
			reverse = GetFlag(cmd, "reverse")
			unique  = GetFlag(cmd, "unique")
		)
		//
		dispatch(cmd, args,
			func(items []util.OneOff[value.Int]) { printSorted(f, items, reverse, unique) },
			func(items []util.OneOff[value.Element]) { printSorted(f, items, reverse, unique) })
	},
}

func printSorted[T Value[T]](f formatter, items []util.OneOff[T], reverse bool, unique bool) {
	for _, item := range sortEntries(items, reverse, unique) {
		fmt.Println(f.format(stringify(item)))
	}
}

// Sort entries, optionally removing duplicates and / or reversing the order.
// Entries which are equal retain their relative order.
func sortEntries[T Value[T]](items []util.OneOff[T], reverse bool, unique bool) []util.OneOff[T] {
	if unique {
		items = removeDuplicates(items)
	} else {
		items = slices.Clone(items)
	}
	//
	slices.SortStableFunc(items, util.Cmp[T])
	//
	if reverse {
		slices.Reverse(items)
	}
	//
	return items
}

// Remove any duplicate entries, retaining only the first occurrence of each.
func removeDuplicates[T Value[T]](items []util.OneOff[T]) []util.OneOff[T] {
	var (
		seen   = hash.NewSet[hash.OneOffKey[T]](uint(len(items)))
		unique []util.OneOff[T]
	)
	//
	for _, item := range items {
		if !seen.Insert(hash.NewOneOffKey(item)) {
			unique = append(unique, item)
		}
	}
	//
	log.Debugf("removed %d duplicate entries (max bucket %d)", len(items)-len(unique), seen.MaxBucket())
	//
	return unique
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().BoolP("reverse", "r", false, "print in reverse order")
	sortCmd.Flags().BoolP("unique", "u", false, "remove duplicate entries")
}
