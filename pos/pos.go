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

// Package pos implements WordNet part of speech codes.
//
// WordNet stores four syntactic categories in separate files. Adjective
// satellites have their own code in data files but are stored in the
// adjective files.
package pos

import (
	"errors"
	"fmt"
)

// ErrInvalid indicates an unknown part of speech code.
var ErrInvalid = errors.New("invalid part of speech")

// PartOfSpeech is a single letter WordNet part of speech code.
type PartOfSpeech byte

const (
	// Noun is the noun code.
	Noun = PartOfSpeech('n')

	// Verb is the verb code.
	Verb = PartOfSpeech('v')

	// Adjective is the adjective code.
	Adjective = PartOfSpeech('a')

	// AdjectiveSatellite is the adjective satellite code. It only appears in
	// data files.
	AdjectiveSatellite = PartOfSpeech('s')

	// Adverb is the adverb code.
	Adverb = PartOfSpeech('r')
)

// Categories are the storage categories in database file order.
var Categories = []PartOfSpeech{
	Adjective,
	Adverb,
	Noun,
	Verb,
}

// Count is the number of storage categories.
const Count = 4

// Parse parses a single letter part of speech code.
func Parse(code string) (PartOfSpeech, error) {
	if len(code) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, code)
	}
	p := PartOfSpeech(code[0])
	switch p {
	case Noun, Verb, Adjective, AdjectiveSatellite, Adverb:
		return p, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalid, code)
	}
}

// Storage returns the code of the category whose files store p.
func (p PartOfSpeech) Storage() PartOfSpeech {
	if p == AdjectiveSatellite {
		return Adjective
	}
	return p
}

// Index returns the position of p's storage category in Categories, or -1.
func (p PartOfSpeech) Index() int {
	switch p.Storage() {
	case Adjective:
		return 0
	case Adverb:
		return 1
	case Noun:
		return 2
	case Verb:
		return 3
	default:
		return -1
	}
}

// Ext returns the database file extension for p's storage category.
func (p PartOfSpeech) Ext() string {
	switch p.Storage() {
	case Adjective:
		return "adj"
	case Adverb:
		return "adv"
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	default:
		return ""
	}
}

// Code returns the single letter code.
func (p PartOfSpeech) Code() string {
	return string(rune(p))
}

// String returns the part of speech label.
func (p PartOfSpeech) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case AdjectiveSatellite:
		return "adjective satellite"
	case Adverb:
		return "adverb"
	default:
		return fmt.Sprintf("unknown(%q)", rune(p))
	}
}
