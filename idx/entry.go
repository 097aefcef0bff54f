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
	"fmt"
	"strconv"
	"strings"

	"github.com/ianlewis/go-wordnet/pos"
)

// Separator separates the words of a collocation in stored lemmas.
const Separator = '_'

var (
	// ErrMalformedLine indicates an index line that does not match the index
	// file format.
	ErrMalformedLine = errors.New("malformed index line")

	// ErrHeaderLine indicates a license header or empty line.
	ErrHeaderLine = errors.New("not an index entry")
)

// Entry is an index file entry. It describes one lemma in one syntactic
// category.
type Entry struct {
	// Lemma is the lemma as stored in the file.
	Lemma string

	// PartOfSpeech is the syntactic category of the entry.
	PartOfSpeech pos.PartOfSpeech

	// SynsetCount is the number of synsets that contain the lemma.
	SynsetCount int

	// PointerSymbols are the pointer kinds found in any of the lemma's
	// synsets.
	PointerSymbols []string

	// SenseCount repeats SynsetCount.
	SenseCount int

	// TagSenseCount is the number of senses ranked by tagged frequency.
	TagSenseCount int

	// SynsetOffsets are the byte offsets of the synsets in the data file.
	SynsetOffsets []int64
}

// ParseLine parses a single index file line. Lines that start with a space
// and empty lines return ErrHeaderLine.
func ParseLine(line string) (*Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" || line[0] == ' ' {
		return nil, ErrHeaderLine
	}

	t := &tokens{fields: strings.Fields(line)}
	e := &Entry{}

	e.Lemma = t.next()

	code := t.next()
	p, err := pos.Parse(code)
	if err != nil || p == pos.AdjectiveSatellite {
		return nil, fmt.Errorf("%w: part of speech %q", ErrMalformedLine, code)
	}
	e.PartOfSpeech = p

	if e.SynsetCount, err = t.int("synset_cnt"); err != nil {
		return nil, err
	}

	pCount, err := t.int("p_cnt")
	if err != nil {
		return nil, err
	}
	for i := 0; i < pCount; i++ {
		s := t.next()
		if s == "" {
			return nil, fmt.Errorf("%w: want %d pointer symbols, got %d", ErrMalformedLine, pCount, i)
		}
		e.PointerSymbols = append(e.PointerSymbols, s)
	}

	if e.SenseCount, err = t.int("sense_cnt"); err != nil {
		return nil, err
	}
	if e.TagSenseCount, err = t.int("tagsense_cnt"); err != nil {
		return nil, err
	}

	for i := 0; i < e.SynsetCount; i++ {
		off, err := t.offset()
		if err != nil {
			return nil, fmt.Errorf("%w: synset offset %d of %d", err, i+1, e.SynsetCount)
		}
		e.SynsetOffsets = append(e.SynsetOffsets, off)
	}

	if rest := t.rest(); len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected trailing fields %q", ErrMalformedLine, rest)
	}

	return e, nil
}

// String returns the entry formatted as an index file line without the
// line terminator.
func (e *Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %d %d ", e.Lemma, e.PartOfSpeech.Code(), e.SynsetCount, len(e.PointerSymbols))
	for _, s := range e.PointerSymbols {
		b.WriteString(s)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%d %d", e.SenseCount, e.TagSenseCount)
	for _, off := range e.SynsetOffsets {
		fmt.Fprintf(&b, " %08d", off)
	}
	b.WriteString("  ")
	return b.String()
}

// tokens consumes whitespace separated fields in order.
type tokens struct {
	fields []string
	i      int
}

func (t *tokens) next() string {
	if t.i >= len(t.fields) {
		return ""
	}
	f := t.fields[t.i]
	t.i++
	return f
}

func (t *tokens) rest() []string {
	return t.fields[t.i:]
}

func (t *tokens) int(name string) (int, error) {
	f := t.next()
	if f == "" {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedLine, name)
	}
	n, err := strconv.Atoi(f)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrMalformedLine, name, f)
	}
	return n, nil
}

func (t *tokens) offset() (int64, error) {
	f := t.next()
	if f == "" {
		return 0, fmt.Errorf("%w: missing", ErrMalformedLine)
	}
	off, err := strconv.ParseInt(f, 10, 64)
	if err != nil || off < 0 {
		return 0, fmt.Errorf("%w: invalid %q", ErrMalformedLine, f)
	}
	return off, nil
}
