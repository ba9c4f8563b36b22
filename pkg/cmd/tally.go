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
	"github.com/spf13/cobra"
)

var tallyCmd = &cobra.Command{
	Use:   "tally [flags] entries",
	Short: "count occurrences of each distinct entry.",
	Long: `Count how many times each distinct entry occurs, printing the distinct
entries in order alongside their counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		f := configure(cmd)
		//
		dispatch(cmd, args,
			func(items []util.OneOff[value.Int]) { printTally(f, items) },
			func(items []util.OneOff[value.Element]) { printTally(f, items) })
	},
}

func printTally[T Value[T]](f formatter, items []util.OneOff[T]) {
	for _, p := range tallyEntries(items) {
		fmt.Printf("%s\t%d\n", f.format(stringify(p.Left)), p.Right)
	}
}

// Count the occurrences of each distinct entry, returning them in order.
func tallyEntries[T Value[T]](items []util.OneOff[T]) []util.Pair[util.OneOff[T], uint] {
	var (
		counts = hash.NewMap[hash.OneOffKey[T], uint](uint(len(items)))
		pairs  []util.Pair[util.OneOff[T], uint]
	)
	//
	for _, item := range items {
		key := hash.NewOneOffKey(item)
		n, _ := counts.Get(key)
		counts.Insert(key, n+1)
	}
	//
	for _, kv := range counts.KeyValues() {
		pairs = append(pairs, util.NewPair(kv.Left.OneOff, kv.Right))
	}
	//
	slices.SortFunc(pairs, func(l, r util.Pair[util.OneOff[T], uint]) int {
		return util.Cmp(l.Left, r.Left)
	})
	//
	return pairs
}

func init() {
	rootCmd.AddCommand(tallyCmd)
}
