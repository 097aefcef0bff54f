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

package idx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet/pos"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected *Entry
		err      error
	}{
		{
			name: "verb",
			line: "run v 2 0 2 2 00000201 00000305  ",
			expected: &Entry{
				Lemma:         "run",
				PartOfSpeech:  pos.Verb,
				SynsetCount:   2,
				SenseCount:    2,
				TagSenseCount: 2,
				SynsetOffsets: []int64{201, 305},
			},
		},
		{
			name: "short offsets",
			line: "run v 2 0 5 2 201 305",
			expected: &Entry{
				Lemma:         "run",
				PartOfSpeech:  pos.Verb,
				SynsetCount:   2,
				SenseCount:    5,
				TagSenseCount: 2,
				SynsetOffsets: []int64{201, 305},
			},
		},
		{
			name: "pointer symbols",
			line: "ice_cream n 1 2 @ ~ 1 0 07611839  ",
			expected: &Entry{
				Lemma:          "ice_cream",
				PartOfSpeech:   pos.Noun,
				SynsetCount:    1,
				PointerSymbols: []string{"@", "~"},
				SenseCount:     1,
				SynsetOffsets:  []int64{7611839},
			},
		},
		{
			name: "crlf",
			line: "fast r 1 1 \\ 1 0 00085811  \r\n",
			expected: &Entry{
				Lemma:          "fast",
				PartOfSpeech:   pos.Adverb,
				SynsetCount:    1,
				PointerSymbols: []string{"\\"},
				SenseCount:     1,
				SynsetOffsets:  []int64{85811},
			},
		},
		{
			name: "license header",
			line: "  1 This software and database is being provided to you, the LICENSEE, by  ",
			err:  ErrHeaderLine,
		},
		{
			name: "empty",
			line: "",
			err:  ErrHeaderLine,
		},
		{
			name: "satellite",
			line: "quick s 1 0 1 0 00004000  ",
			err:  ErrMalformedLine,
		},
		{
			name: "unknown part of speech",
			line: "quick x 1 0 1 0 00004000  ",
			err:  ErrMalformedLine,
		},
		{
			name: "missing offsets",
			line: "run v 2 0 2 2 00000201  ",
			err:  ErrMalformedLine,
		},
		{
			name: "extra offsets",
			line: "run v 1 0 1 1 00000201 00000305  ",
			err:  ErrMalformedLine,
		},
		{
			name: "lemma only",
			line: "run",
			err:  ErrMalformedLine,
		},
		{
			name: "negative count",
			line: "run v -1 0 2 2  ",
			err:  ErrMalformedLine,
		},
		{
			name: "invalid offset",
			line: "run v 1 0 1 1 0000x201  ",
			err:  ErrMalformedLine,
		},
		{
			name: "invalid pointer count",
			line: "run v 1 many 1 1 00000201  ",
			err:  ErrMalformedLine,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLine(tc.line)
			if !errors.Is(err, tc.err) {
				t.Fatalf("ParseLine: got %v, want %v", err, tc.err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("ParseLine (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestEntry_String(t *testing.T) {
	t.Parallel()

	e := &Entry{
		Lemma:          "run",
		PartOfSpeech:   pos.Verb,
		SynsetCount:    2,
		PointerSymbols: []string{"@", "+"},
		SenseCount:     2,
		TagSenseCount:  1,
		SynsetOffsets:  []int64{201, 305},
	}
	want := "run v 2 2 @ + 2 1 00000201 00000305  "
	if got := e.String(); got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}

	got, err := ParseLine(e.String())
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if diff := cmp.Diff(e, got); diff != "" {
		t.Errorf("ParseLine (-want, +got):\n%s", diff)
	}
}
