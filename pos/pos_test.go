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

package pos

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string

		expected PartOfSpeech
		storage  PartOfSpeech
		label    string
		ext      string
		err      error
	}{
		{code: "n", expected: Noun, storage: Noun, label: "noun", ext: "noun"},
		{code: "v", expected: Verb, storage: Verb, label: "verb", ext: "verb"},
		{code: "a", expected: Adjective, storage: Adjective, label: "adjective", ext: "adj"},
		{code: "s", expected: AdjectiveSatellite, storage: Adjective, label: "adjective satellite", ext: "adj"},
		{code: "r", expected: Adverb, storage: Adverb, label: "adverb", ext: "adv"},
		{code: "x", err: ErrInvalid},
		{code: "", err: ErrInvalid},
		{code: "nn", err: ErrInvalid},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			t.Parallel()

			p, err := Parse(test.code)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Parse (-want, +got):\n%s", diff)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(test.expected, p); diff != "" {
				t.Errorf("Parse (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.storage, p.Storage()); diff != "" {
				t.Errorf("Storage (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.label, p.String()); diff != "" {
				t.Errorf("String (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.ext, p.Ext()); diff != "" {
				t.Errorf("Ext (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.code, p.Code()); diff != "" {
				t.Errorf("Code (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPartOfSpeech_Index(t *testing.T) {
	t.Parallel()

	for i, p := range Categories {
		if got := p.Index(); got != i {
			t.Errorf("%v.Index(): want: %d, got: %d", p, i, got)
		}
	}
	if got := AdjectiveSatellite.Index(); got != Adjective.Index() {
		t.Errorf("AdjectiveSatellite.Index(): want: %d, got: %d", Adjective.Index(), got)
	}
	if got := PartOfSpeech('x').Index(); got != -1 {
		t.Errorf("Index of unknown code: want: -1, got: %d", got)
	}
	if len(Categories) != Count {
		t.Errorf("len(Categories): want: %d, got: %d", Count, len(Categories))
	}
}
