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

package data

import (
	"fmt"
	"strconv"

	"github.com/ianlewis/go-wordnet/pos"
)

// Symbol is a pointer symbol. It names the kind of relation a pointer
// describes.
type Symbol string

// Pointer symbols as written in data files.
const (
	Antonym               = Symbol("!")
	Hypernym              = Symbol("@")
	InstanceHypernym      = Symbol("@i")
	Hyponym               = Symbol("~")
	InstanceHyponym       = Symbol("~i")
	MemberHolonym         = Symbol("#m")
	SubstanceHolonym      = Symbol("#s")
	PartHolonym           = Symbol("#p")
	MemberMeronym         = Symbol("%m")
	SubstanceMeronym      = Symbol("%s")
	PartMeronym           = Symbol("%p")
	Attribute             = Symbol("=")
	DerivationallyRelated = Symbol("+")
	DomainTopic           = Symbol(";c")
	MemberTopic           = Symbol("-c")
	DomainRegion          = Symbol(";r")
	MemberRegion          = Symbol("-r")
	DomainUsage           = Symbol(";u")
	MemberUsage           = Symbol("-u")
	Entailment            = Symbol("*")
	Cause                 = Symbol(">")
	AlsoSee               = Symbol("^")
	VerbGroup             = Symbol("$")
	SimilarTo             = Symbol("&")
	ParticipleOfVerb      = Symbol("<")

	// Pertainym is "pertains to noun" for adjectives and "derived from
	// adjective" for adverbs.
	Pertainym = Symbol("\\")
)

var symbolNames = map[Symbol]string{
	Antonym:               "antonym",
	Hypernym:              "hypernym",
	InstanceHypernym:      "instance hypernym",
	Hyponym:               "hyponym",
	InstanceHyponym:       "instance hyponym",
	MemberHolonym:         "member holonym",
	SubstanceHolonym:      "substance holonym",
	PartHolonym:           "part holonym",
	MemberMeronym:         "member meronym",
	SubstanceMeronym:      "substance meronym",
	PartMeronym:           "part meronym",
	Attribute:             "attribute",
	DerivationallyRelated: "derivationally related form",
	DomainTopic:           "domain of synset (topic)",
	MemberTopic:           "member of domain (topic)",
	DomainRegion:          "domain of synset (region)",
	MemberRegion:          "member of domain (region)",
	DomainUsage:           "domain of synset (usage)",
	MemberUsage:           "member of domain (usage)",
	Entailment:            "entailment",
	Cause:                 "cause",
	AlsoSee:               "also see",
	VerbGroup:             "verb group",
	SimilarTo:             "similar to",
	ParticipleOfVerb:      "participle of verb",
	Pertainym:             "pertainym",
}

// String returns a readable name for the symbol. Unknown symbols are
// returned as is.
func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return string(s)
}

// Pointer is a relation from a synset, or from one of its words, to another
// synset or word. It only describes the target. Resolve the target through
// the database that produced the synset.
type Pointer struct {
	// Symbol is the kind of relation.
	Symbol Symbol

	// Offset is the target synset's byte offset.
	Offset int64

	// PartOfSpeech is the target synset's part of speech.
	PartOfSpeech pos.PartOfSpeech

	// SourceTarget is the raw four hex digit source/target field. "0000"
	// means the pointer is between synsets. Otherwise the first two digits
	// are the source word number and the last two the target word number.
	SourceTarget string
}

// Source returns the 1-based source word number, or 0 for a semantic
// pointer.
func (p *Pointer) Source() int {
	return hexByte(p.SourceTarget, 0)
}

// Target returns the 1-based target word number, or 0 for a semantic
// pointer.
func (p *Pointer) Target() int {
	return hexByte(p.SourceTarget, 2)
}

// Lexical returns true if the pointer is between words rather than synsets.
func (p *Pointer) Lexical() bool {
	return p.Source() != 0 || p.Target() != 0
}

func (p *Pointer) String() string {
	return fmt.Sprintf("%s %08d %s %s", string(p.Symbol), p.Offset, p.PartOfSpeech.Code(), p.SourceTarget)
}

func hexByte(s string, i int) int {
	if len(s) < i+2 {
		return 0
	}
	n, err := strconv.ParseUint(s[i:i+2], 16, 8)
	if err != nil {
		return 0
	}
	return int(n)
}
