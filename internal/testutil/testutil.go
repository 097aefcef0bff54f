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

// Package testutil builds WordNet database files for tests.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/idx"
	"github.com/ianlewis/go-wordnet/pos"
)

// Header is the license header written at the start of every test file.
const Header = "  1 This is a WordNet test database.\n  2 \n"

// Database is the content of a test database. Categories without entries
// are written as files holding only the header.
type Database struct {
	Index map[pos.PartOfSpeech][]*idx.Entry
	Data  map[pos.PartOfSpeech][]*data.Synset
}

// MakeDatabaseOptions are options for writing a test database.
type MakeDatabaseOptions struct {
	// Compress writes gzip index files (index.noun.gz) and dictzip data
	// files (data.noun.dz).
	Compress bool

	// Omit are file names that are not written.
	Omit []string
}

// MakeIndex makes a test index file given a list of entries.
func MakeIndex(t *testing.T, entries []*idx.Entry) []byte {
	t.Helper()

	var b strings.Builder
	b.WriteString(Header)
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// MakeData makes a test data file. Each synset line is written at the
// synset's Offset. Synsets must be ordered by offset and the gaps between
// them filled with blank lines, so offsets must leave room for the previous
// line.
func MakeData(t *testing.T, synsets []*data.Synset) []byte {
	t.Helper()

	b := []byte(Header)
	for _, s := range synsets {
		gap := s.Offset - int64(len(b))
		if gap < 0 {
			t.Fatalf("synset offset %d overlaps previous line ending at %d", s.Offset, len(b))
		}
		if gap > 0 {
			b = append(b, strings.Repeat(" ", int(gap-1))...)
			b = append(b, '\n')
		}
		b = append(b, s.String()...)
		b = append(b, '\n')
	}
	return b
}

// MakeFS returns the database as an in-memory file system.
func MakeFS(t *testing.T, db *Database) fstest.MapFS {
	t.Helper()

	fsys := fstest.MapFS{}
	for _, p := range pos.Categories {
		fsys[idx.FileName(p)] = &fstest.MapFile{Data: MakeIndex(t, db.Index[p]), Mode: 0o600}
		fsys[data.FileName(p)] = &fstest.MapFile{Data: MakeData(t, db.Data[p]), Mode: 0o600}
	}
	return fsys
}

// MakeDatabase writes the database to a temporary directory and returns its
// path. The directory is removed when the test finishes.
func MakeDatabase(t *testing.T, db *Database, opts *MakeDatabaseOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDatabaseOptions{}
	}

	dir := t.TempDir()
	for name, f := range MakeFS(t, db) {
		omit := false
		for _, o := range opts.Omit {
			if o == name {
				omit = true
			}
		}
		if omit {
			continue
		}

		switch {
		case opts.Compress && strings.HasPrefix(name, "index."):
			writeGzip(t, filepath.Join(dir, name+".gz"), f.Data)
		case opts.Compress && strings.HasPrefix(name, "data."):
			writeDictzip(t, filepath.Join(dir, name+".dz"), f.Data)
		default:
			if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o600); err != nil {
				t.Fatal(err)
			}
		}
	}
	return dir
}

func writeGzip(t *testing.T, path string, b []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z := gzip.NewWriter(f)
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}

func writeDictzip(t *testing.T, path string, b []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}
