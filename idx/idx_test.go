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

package idx_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-wordnet/idx"
	"github.com/ianlewis/go-wordnet/internal/testutil"
	"github.com/ianlewis/go-wordnet/pos"
)

func sampleEntries() []*idx.Entry {
	db := testutil.Sample()
	var entries []*idx.Entry
	for _, p := range pos.Categories {
		entries = append(entries, db.Index[p]...)
	}
	return entries
}

// TestIdx_Search tests Idx.Search.
func TestIdx_Search(t *testing.T) {
	t.Parallel()

	db := testutil.Sample()

	tests := []struct {
		name    string
		query   string
		entries []*idx.Entry

		expected []*idx.Entry
	}{
		{
			name:    "empty index",
			query:   "run",
			entries: nil,

			expected: nil,
		},
		{
			name:    "no match",
			query:   "walk",
			entries: sampleEntries(),

			expected: nil,
		},
		{
			name:    "single match",
			query:   "travel",
			entries: sampleEntries(),

			expected: []*idx.Entry{db.Index[pos.Verb][1]},
		},
		{
			name:    "match in category order",
			query:   "run",
			entries: sampleEntries(),

			expected: []*idx.Entry{db.Index[pos.Noun][0], db.Index[pos.Verb][0]},
		},
		{
			name:    "upper case query",
			query:   "FAST",
			entries: sampleEntries(),

			expected: []*idx.Entry{db.Index[pos.Adjective][0], db.Index[pos.Adverb][0]},
		},
		{
			name:    "collocation with spaces",
			query:   "ice  cream",
			entries: sampleEntries(),

			expected: []*idx.Entry{db.Index[pos.Noun][3]},
		},
		{
			name:    "collocation with separator",
			query:   "Ice_Cream",
			entries: sampleEntries(),

			expected: []*idx.Entry{db.Index[pos.Noun][3]},
		},
		{
			name:    "upper case lemma",
			query:   "new york",
			entries: []*idx.Entry{{Lemma: "New_York", PartOfSpeech: pos.Noun}},

			expected: []*idx.Entry{{Lemma: "New_York", PartOfSpeech: pos.Noun}},
		},
		{
			name:    "prefix",
			query:   "ru",
			entries: sampleEntries(),

			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			index, err := idx.New(tc.entries, nil)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			got, err := index.Search(tc.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Search (-want, +got):\n%s", diff)
			}

			ok, err := index.Contains(tc.query)
			if err != nil {
				t.Fatalf("Contains: %v", err)
			}
			if want := len(tc.expected) > 0; ok != want {
				t.Errorf("Contains: got %v, want %v", ok, want)
			}
		})
	}
}

func TestIdx_Lemmas(t *testing.T) {
	t.Parallel()

	index, err := idx.New(sampleEntries(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if diff := cmp.Diff(testutil.SampleLemmas, index.Lemmas()); diff != "" {
		t.Errorf("Lemmas (-want, +got):\n%s", diff)
	}
	if got, want := index.Len(), len(testutil.SampleLemmas); got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}

func TestIdx_Folder(t *testing.T) {
	t.Parallel()

	// Exact matching.
	index, err := idx.New(sampleEntries(), &idx.Options{
		Folder: func() transform.Transformer { return transform.Nop },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for query, want := range map[string]bool{
		"ice_cream": true,
		"ice cream": false,
		"Run":       false,
		"run":       true,
	} {
		ok, err := index.Contains(query)
		if err != nil {
			t.Fatalf("Contains(%q): %v", query, err)
		}
		if ok != want {
			t.Errorf("Contains(%q): got %v, want %v", query, ok, want)
		}
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	entries := testutil.Sample().Index[pos.Noun]

	tests := []struct {
		name     string
		compress bool
		omit     bool
		err      error
	}{
		{
			name: "plain",
		},
		{
			name:     "gzip",
			compress: true,
		},
		{
			name: "missing",
			omit: true,
			err:  fs.ErrNotExist,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts := &testutil.MakeDatabaseOptions{Compress: tc.compress}
			if tc.omit {
				opts.Omit = []string{idx.FileName(pos.Noun)}
			}
			dir := testutil.MakeDatabase(t, testutil.Sample(), opts)

			r, err := idx.Open(os.DirFS(dir), pos.Noun)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Open: got %v, want %v", err, tc.err)
			}
			if err != nil {
				return
			}
			defer r.Close()

			got, err := idx.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if diff := cmp.Diff(entries, got); diff != "" {
				t.Errorf("ReadAll (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_PreferPlain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	plain := testutil.MakeIndex(t, testutil.Sample().Index[pos.Verb])
	if err := os.WriteFile(filepath.Join(dir, "index.verb"), plain, 0o600); err != nil {
		t.Fatal(err)
	}
	// Not a gzip file. Opening it would fail.
	if err := os.WriteFile(filepath.Join(dir, "index.verb.gz"), []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := idx.Open(os.DirFS(dir), pos.Verb)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if diff := cmp.Diff(string(plain), string(b)); diff != "" {
		t.Errorf("ReadAll (-want, +got):\n%s", diff)
	}
}
