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

package data_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/internal/testutil"
	"github.com/ianlewis/go-wordnet/pos"
)

// TestData_Synset tests Data.Synset.
func TestData_Synset(t *testing.T) {
	t.Parallel()

	synsets := testutil.SampleSynsets(pos.Verb)
	d := data.New(bytes.NewReader(testutil.MakeData(t, synsets)))

	for _, want := range synsets {
		got, err := d.Synset(want.Offset)
		if err != nil {
			t.Fatalf("Synset(%d): %v", want.Offset, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Synset(%d) (-want, +got):\n%s", want.Offset, diff)
		}
	}

	tests := []struct {
		name   string
		offset int64
		err    error
	}{
		{
			name:   "past end of file",
			offset: 10000,
			err:    data.ErrOffsetRead,
		},
		{
			name:   "negative",
			offset: -1,
			err:    data.ErrOffsetRead,
		},
		{
			name:   "license header",
			offset: 0,
			err:    data.ErrMalformedLine,
		},
		{
			name:   "middle of line",
			offset: 105,
			err:    data.ErrMalformedLine,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := d.Synset(tc.offset)
			if diff := cmp.Diff(tc.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("Synset(%d) error (-want, +got):\n%s", tc.offset, diff)
			}
		})
	}
}

func TestData_SynsetLastLine(t *testing.T) {
	t.Parallel()

	// The last line has no newline and is shorter than the read window.
	line := "00000000 04 n 01 run 0 000 | a score"
	d := data.New(bytes.NewReader([]byte(line)))

	got, err := d.Synset(0)
	if err != nil {
		t.Fatalf("Synset: %v", err)
	}
	if got.Gloss != "a score" {
		t.Errorf("Gloss: got %q, want %q", got.Gloss, "a score")
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

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
			name:     "dictzip",
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
				opts.Omit = []string{data.FileName(pos.Noun)}
			}
			dir := testutil.MakeDatabase(t, testutil.Sample(), opts)

			d, err := data.Open(os.DirFS(dir), pos.Noun)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Open: got %v, want %v", err, tc.err)
			}
			if err != nil {
				return
			}
			defer d.Close()

			for _, want := range testutil.SampleSynsets(pos.Noun) {
				got, err := d.Synset(want.Offset)
				if err != nil {
					t.Fatalf("Synset(%d): %v", want.Offset, err)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Synset(%d) (-want, +got):\n%s", want.Offset, diff)
				}
			}
		})
	}
}

// streamFS returns files that only support sequential reads.
type streamFS struct {
	fs.FS
}

type streamFile struct {
	fs.File
}

func (s streamFS) Open(name string) (fs.File, error) {
	f, err := s.FS.Open(name)
	if err != nil {
		//nolint:wrapcheck // error should not be wrapped
		return nil, err
	}
	return streamFile{File: f}, nil
}

func TestOpen_NoRandomAccess(t *testing.T) {
	t.Parallel()

	fsys := streamFS{FS: testutil.MakeFS(t, testutil.Sample())}
	if _, err := data.Open(fsys, pos.Verb); err == nil {
		t.Fatalf("Open: got nil error")
	}
}
