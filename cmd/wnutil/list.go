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

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "print every lemma in the database",
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected arguments", ErrFlagParse)
		}

		wn, err := openWordNet(c)
		if err != nil {
			return err
		}
		defer wn.Close()

		lemmas, err := wn.List(c.Context)
		if err != nil {
			return fmt.Errorf("%w: listing lemmas: %w", ErrWnutil, err)
		}
		for _, l := range lemmas {
			_, err := fmt.Fprintln(c.App.Writer, l)
			check(err)
		}
		return nil
	},
}
