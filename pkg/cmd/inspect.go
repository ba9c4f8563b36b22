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

	"github.com/consensys/go-oneoff/pkg/util"
	"github.com/consensys/go-oneoff/pkg/value"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] entries",
	Short: "report the side and contents of each entry.",
	Run: func(cmd *cobra.Command, args []string) {
		f := configure(cmd)
		//
		dispatch(cmd, args,
			func(items []util.OneOff[value.Int]) { printInspection(f, items) },
			func(items []util.OneOff[value.Element]) { printInspection(f, items) })
	},
}

func printInspection[T Value[T]](f formatter, items []util.OneOff[T]) {
	for _, item := range items {
		fmt.Printf("%s\t%s\n", f.format(stringify(item)), inspectEntry(item))
	}
}

// Summarise what each accessor returns for a given entry.
func inspectEntry[T any](item util.OneOff[T]) string {
	return fmt.Sprintf("is-left=%t is-right=%t left=%s right=%s",
		item.IsLeft(), item.IsRight(), item.Left(), item.Right())
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
