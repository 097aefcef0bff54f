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
	"io"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/data"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "print the senses of a word",
	ArgsUsage: "WORD",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "pointers",
			Usage:              "print the synsets related to each sense",
			Aliases:            []string{"p"},
			DisableDefaultText: true,
		},
	},
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

		synsets, err := wn.Lookup(c.Context, word)
		if err != nil {
			return fmt.Errorf("%w: looking up %q: %w", ErrWnutil, word, err)
		}
		if len(synsets) == 0 {
			return fmt.Errorf("%w: %q", ErrNotFound, word)
		}

		w := c.App.Writer
		for i, s := range synsets {
			printSynset(w, i+1, s)
			if c.Bool("pointers") && len(s.Pointers) > 0 {
				if err := printPointers(c, wn, s); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(w)
			check(err)
		}
		return nil
	},
}

func words(s *data.Synset) string {
	var text []string
	for _, w := range s.Words {
		text = append(text, w.Word)
	}
	return strings.Join(text, ", ")
}

func printSynset(w io.Writer, n int, s *data.Synset) {
	_, err := fmt.Fprintf(w, "%d. (%s) %s\n", n, s.Type, words(s))
	check(err)
	if s.Gloss != "" {
		_, err = fmt.Fprintf(w, "   %s\n", s.Gloss)
		check(err)
	}
}

func printPointers(c *cli.Context, wn *wordnet.WordNet, s *data.Synset) error {
	tbl := table.New("Relation", "Type", "Offset", "Words").WithWriter(c.App.Writer).WithPadding(2)
	for _, p := range s.Pointers {
		target, err := wn.Resolve(c.Context, p)
		if err != nil {
			return fmt.Errorf("%w: resolving %s pointer: %w", ErrWnutil, p.Symbol, err)
		}
		tbl.AddRow(p.Symbol, target.Type, fmt.Sprintf("%08d", target.Offset), words(target))
	}
	tbl.Print()
	return nil
}
