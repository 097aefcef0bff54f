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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-wordnet"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeNotFound is the exit code when a word is not in the database.
	ExitCodeNotFound

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrWnutil is a parent error for all command errors.
var ErrWnutil = errors.New("wnutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWnutil)

// ErrNoDatabase indicates no database directory was given or found.
var ErrNoDatabase = fmt.Errorf("%w: no WordNet database found, use --data-dir", ErrWnutil)

// ErrNotFound indicates a word is not in the database.
var ErrNotFound = fmt.Errorf("%w: not found", ErrWnutil)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// dataDir returns the database directory from the flags or the first
// default location that exists.
func dataDir(c *cli.Context) (string, error) {
	if dir := c.String("data-dir"); dir != "" {
		return dir, nil
	}
	for _, dir := range dbLocations() {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir, nil
		}
	}
	return "", ErrNoDatabase
}

func openWordNet(c *cli.Context) (*wordnet.WordNet, error) {
	dir, err := dataDir(c)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	wn, err := wordnet.Open(c.Context, dir, &wordnet.Options{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrWnutil, dir, err)
	}
	return wn, nil
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	w := c.App.Writer

	_, err := fmt.Fprintf(w, "%s %s\n", c.App.Name, info.GitVersion)
	check(err)
	_, err = fmt.Fprintln(w, "Copyright (c)", strings.Join(copyrightNames, ", "))
	check(err)
	_, err = fmt.Fprintln(w)
	check(err)
	_, err = fmt.Fprintln(w, info.String())
	check(err)

	return nil
}

func newWnutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search the WordNet lexical database.",
		Description: strings.Join([]string{
			"WordNet utility written in Go.",
			"http://github.com/ianlewis/go-wordnet",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "read the WordNet database in `DIR`",
				Aliases: []string{"d"},
				EnvVars: []string{"WNSEARCHDIR"},
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "log debug information to stderr",
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			lookupCommand,
			listCommand,
			existsCommand,
		},
	}
}

// run runs the app and returns the process exit code.
func run(ctx context.Context, app *cli.App, args []string) int {
	err := app.RunContext(ctx, args)
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrNotFound):
		return ExitCodeNotFound
	}

	printErr(app.ErrWriter, app.Name, err)
	if errors.Is(err, ErrFlagParse) {
		return ExitCodeFlagParseError
	}
	return ExitCodeUnknownError
}

func printErr(w io.Writer, name string, err error) {
	_, _ = fmt.Fprintf(w, "%s: %v\n", name, err)
}
