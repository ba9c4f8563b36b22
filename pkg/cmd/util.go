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
	"os"

	"github.com/consensys/go-oneoff/pkg/util"
	"github.com/consensys/go-oneoff/pkg/util/collection/hash"
	"github.com/consensys/go-oneoff/pkg/util/termio"
	"github.com/consensys/go-oneoff/pkg/value"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Value captures what the subcommands require of the values held on either
// side of an entry.
type Value[T any] interface {
	util.Comparable[T]
	hash.Hasher[T]
	fmt.Stringer
}

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level and output format common to all subcommands.
func configure(cmd *cobra.Command) formatter {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	colour := !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stdout)
	log.Debugf("colour output: %t", colour)
	//
	return formatter{colour}
}

// Read entries from the command line or, if none were given, stdin.
func readEntries(cmd *cobra.Command, args []string) []string {
	if len(args) > 0 {
		return args
	}
	//
	log.Debug("reading entries from stdin")
	//
	lines, err := readLines(cmd.InOrStdin())
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return lines
}

// Parse entries using a given value parser, or exit if any entry is malformed.
func parseOrExit[T any](entries []string, parser func(string) (T, error)) []util.OneOff[T] {
	items, err := parseEntries(entries, parser)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("parsed %d entries", len(items))
	//
	return items
}

// Run a given action over the entries, choosing the value type according to
// the "field" flag.
func dispatch(cmd *cobra.Command, args []string, intFn func([]util.OneOff[value.Int]),
	elemFn func([]util.OneOff[value.Element])) {
	var (
		entries = readEntries(cmd, args)
		stats   = util.NewPerfStats()
	)
	//
	defer stats.Log(cmd.Name())
	//
	if GetFlag(cmd, "field") {
		elemFn(parseOrExit(entries, value.ParseElement))
	} else {
		intFn(parseOrExit(entries, value.ParseInt))
	}
}
