// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var existsCommand = &cli.Command{
	Name:      "exists",
	Usage:     "report whether a word is in the database",
	ArgsUsage: "WORD",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one WORD argument, got %d", ErrFlagParse, c.NArg())
		}
		word := c.Args().First()

		wn, err := openWordNet(c)
		if err != nil {
			return err
		}
		defer wn.Close()

		ok, err := wn.Exists(c.Context, word)
		if err != nil {
			return fmt.Errorf("%w: looking up %q: %w", ErrWnutil, word, err)
		}
		_, err = fmt.Fprintln(c.App.Writer, ok)
		check(err)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotFound, word)
		}
		return nil
	},
}
