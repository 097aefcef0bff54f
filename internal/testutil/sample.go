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

package testutil

import (
	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/idx"
	"github.com/ianlewis/go-wordnet/pos"
)

// SampleLemmas are the lemmas of Sample in index order with separators
// replaced by spaces.
var SampleLemmas = []string{
	"fast",
	"slow",
	"speedy",
	"quick",
	"run",
	"motion",
	"movement",
	"ice cream",
	"travel",
	"running",
}

// Sample returns a small database covering every category. Each call
// returns new values.
func Sample() *Database {
	return &Database{
		Index: map[pos.PartOfSpeech][]*idx.Entry{
			pos.Adjective: {
				entry("fast", pos.Adjective, []string{"!", "&"}, 0, 100),
				entry("slow", pos.Adjective, []string{"!"}, 0, 300),
				entry("speedy", pos.Adjective, []string{"&"}, 0, 500),
				entry("quick", pos.Adjective, []string{"&"}, 0, 500),
			},
			pos.Adverb: {
				entry("fast", pos.Adverb, []string{"\\"}, 0, 100),
			},
			pos.Noun: {
				entry("run", pos.Noun, []string{"@", "+"}, 1, 100),
				entry("motion", pos.Noun, []string{"~"}, 0, 300),
				entry("movement", pos.Noun, []string{"~"}, 0, 300),
				entry("ice_cream", pos.Noun, nil, 0, 500),
			},
			pos.Verb: {
				entry("run", pos.Verb, []string{"@", "+", "$"}, 2, 300, 500),
				entry("travel", pos.Verb, []string{"~"}, 1, 100),
				entry("running", pos.Verb, []string{"@", "+"}, 0, 300),
			},
		},
		Data: map[pos.PartOfSpeech][]*data.Synset{
			pos.Adjective: SampleSynsets(pos.Adjective),
			pos.Adverb:    SampleSynsets(pos.Adverb),
			pos.Noun:      SampleSynsets(pos.Noun),
			pos.Verb:      SampleSynsets(pos.Verb),
		},
	}
}

// SampleSynsets returns new copies of the Sample synsets for p.
func SampleSynsets(p pos.PartOfSpeech) []*data.Synset {
	switch p.Storage() {
	case pos.Adjective:
		return []*data.Synset{
			{
				Offset:     100,
				LexFileNum: 0,
				Type:       pos.Adjective,
				Words:      []*data.Word{{Word: "fast", Marker: "p"}},
				Pointers: []*data.Pointer{
					{Symbol: data.Antonym, Offset: 300, PartOfSpeech: pos.Adjective, SourceTarget: "0101"},
					{Symbol: data.SimilarTo, Offset: 500, PartOfSpeech: pos.AdjectiveSatellite, SourceTarget: "0000"},
				},
				Gloss: "acting or moving quickly",
			},
			{
				Offset:     300,
				LexFileNum: 0,
				Type:       pos.Adjective,
				Words:      []*data.Word{{Word: "slow"}},
				Pointers: []*data.Pointer{
					{Symbol: data.Antonym, Offset: 100, PartOfSpeech: pos.Adjective, SourceTarget: "0101"},
				},
				Gloss: "not moving quickly",
			},
			{
				Offset:     500,
				LexFileNum: 0,
				Type:       pos.AdjectiveSatellite,
				Words:      []*data.Word{{Word: "speedy"}, {Word: "quick", LexID: 1}},
				Pointers: []*data.Pointer{
					{Symbol: data.SimilarTo, Offset: 100, PartOfSpeech: pos.Adjective, SourceTarget: "0000"},
				},
				Gloss: "accomplished rapidly",
			},
		}
	case pos.Adverb:
		return []*data.Synset{
			{
				Offset:     100,
				LexFileNum: 2,
				Type:       pos.Adverb,
				Words:      []*data.Word{{Word: "fast"}},
				Pointers: []*data.Pointer{
					{Symbol: data.Pertainym, Offset: 100, PartOfSpeech: pos.Adjective, SourceTarget: "0101"},
				},
				Gloss: "quickly",
			},
		}
	case pos.Noun:
		return []*data.Synset{
			{
				Offset:     100,
				LexFileNum: 4,
				Type:       pos.Noun,
				Words:      []*data.Word{{Word: "run"}},
				Pointers: []*data.Pointer{
					{Symbol: data.Hypernym, Offset: 300, PartOfSpeech: pos.Noun, SourceTarget: "0000"},
					{Symbol: data.DerivationallyRelated, Offset: 300, PartOfSpeech: pos.Verb, SourceTarget: "0101"},
				},
				Gloss: "a score in baseball",
			},
			{
				Offset:     300,
				LexFileNum: 4,
				Type:       pos.Noun,
				Words:      []*data.Word{{Word: "motion"}, {Word: "movement"}},
				Pointers: []*data.Pointer{
					{Symbol: data.Hyponym, Offset: 100, PartOfSpeech: pos.Noun, SourceTarget: "0000"},
				},
				Gloss: "the act of changing location",
			},
			{
				Offset:     500,
				LexFileNum: 13,
				Type:       pos.Noun,
				Words:      []*data.Word{{Word: "ice cream"}},
				Gloss:      "frozen dessert",
			},
		}
	case pos.Verb:
		return []*data.Synset{
			{
				Offset:     100,
				LexFileNum: 38,
				Type:       pos.Verb,
				Words:      []*data.Word{{Word: "travel"}},
				Pointers: []*data.Pointer{
					{Symbol: data.Hyponym, Offset: 300, PartOfSpeech: pos.Verb, SourceTarget: "0000"},
				},
				Frames: []*data.Frame{{Number: 1}},
				Gloss:  "change location",
			},
			{
				Offset:     300,
				LexFileNum: 38,
				Type:       pos.Verb,
				Words:      []*data.Word{{Word: "run"}, {Word: "running"}},
				Pointers: []*data.Pointer{
					{Symbol: data.Hypernym, Offset: 100, PartOfSpeech: pos.Verb, SourceTarget: "0000"},
					{Symbol: data.DerivationallyRelated, Offset: 100, PartOfSpeech: pos.Noun, SourceTarget: "0101"},
				},
				Frames: []*data.Frame{{Number: 1}, {Number: 2, Word: 1}},
				Gloss:  "move fast by using one's feet",
			},
			{
				Offset:     500,
				LexFileNum: 38,
				Type:       pos.Verb,
				Words:      []*data.Word{{Word: "run", LexID: 1}},
				Pointers: []*data.Pointer{
					{Symbol: data.VerbGroup, Offset: 300, PartOfSpeech: pos.Verb, SourceTarget: "0000"},
				},
				Frames: []*data.Frame{{Number: 8}},
				Gloss:  "operate or function",
			},
		}
	default:
		return nil
	}
}

func entry(lemma string, p pos.PartOfSpeech, symbols []string, tagSenseCount int, offsets ...int64) *idx.Entry {
	return &idx.Entry{
		Lemma:          lemma,
		PartOfSpeech:   p,
		SynsetCount:    len(offsets),
		PointerSymbols: symbols,
		SenseCount:     len(offsets),
		TagSenseCount:  tagSenseCount,
		SynsetOffsets:  offsets,
	}
}
