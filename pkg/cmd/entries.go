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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-oneoff/pkg/util"
	"github.com/consensys/go-oneoff/pkg/util/termio"
)

// Parse an entry of the form "L:<value>" or "R:<value>" (alternatively "left:"
// or "right:", in any case) into a OneOff, using a given value parser.
func parseEntry[T any](text string, parser func(string) (T, error)) (util.OneOff[T], error) {
	var empty util.OneOff[T]
	//
	side, val, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return empty, fmt.Errorf("malformed entry \"%s\" (expected L:<value> or R:<value>)", text)
	}
	//
	v, err := parser(strings.TrimSpace(val))
	if err != nil {
		return empty, fmt.Errorf("malformed entry \"%s\": %w", text, err)
	}
	//
	switch strings.ToLower(strings.TrimSpace(side)) {
	case "l", "left":
		return util.Left(v), nil
	case "r", "right":
		return util.Right(v), nil
	default:
		return empty, fmt.Errorf("malformed entry \"%s\" (unknown side \"%s\")", text, side)
	}
}

// Parse a sequence of entries, stopping at the first malformed one.
func parseEntries[T any](entries []string, parser func(string) (T, error)) ([]util.OneOff[T], error) {
	items := make([]util.OneOff[T], len(entries))
	//
	for i, e := range entries {
		item, err := parseEntry(e, parser)
		if err != nil {
			return nil, err
		}
		//
		items[i] = item
	}
	//
	return items, nil
}

// Read all non-blank lines from a given reader.
func readLines(reader io.Reader) ([]string, error) {
	var (
		lines   []string
		scanner = bufio.NewScanner(reader)
	)
	//
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	//
	return lines, scanner.Err()
}

// ============================================================================
// Formatting
// ============================================================================

var (
	leftEscape  = termio.BoldAnsiEscape().FgColour(termio.TERM_BLUE)
	rightEscape = termio.BoldAnsiEscape().FgColour(termio.TERM_MAGENTA)
)

// formatter renders entries back into their textual form, optionally
// highlighting the side.
type formatter struct {
	colour bool
}

func (p formatter) format(item util.OneOff[string]) string {
	var (
		side   = "L"
		escape = leftEscape
	)
	//
	if item.IsRight() {
		side, escape = "R", rightEscape
	}
	//
	if p.colour {
		side = escape.Wrap(side)
	}
	//
	return fmt.Sprintf("%s:%s", side, item.Value())
}

// Convert a OneOff into a OneOff of strings, preserving its side.
func stringify[T fmt.Stringer](item util.OneOff[T]) util.OneOff[string] {
	if item.IsLeft() {
		return util.Left(item.Value().String())
	}
	//
	return util.Right(item.Value().String())
}
