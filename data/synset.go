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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ianlewis/go-wordnet/pos"
)

// separator separates the words of a collocation in data files.
const separator = "_"

// ErrMalformedLine indicates a data line that does not match the data file
// format.
var ErrMalformedLine = errors.New("malformed data line")

// Synset is a set of synonymous words that share one meaning.
type Synset struct {
	// Offset is the synset's byte offset in its data file.
	Offset int64

	// LexFileNum is the lexicographer file the synset was defined in.
	LexFileNum int

	// Type is the synset type. Unlike PartOfSpeech it distinguishes
	// adjective satellites.
	Type pos.PartOfSpeech

	// Words are the members of the synset in file order.
	Words []*Word

	// Pointers are the outgoing relations in file order.
	Pointers []*Pointer

	// Frames are the generic sentence frames of a verb synset.
	Frames []*Frame

	// Gloss is the definition and example sentences. It is empty if the
	// line has no gloss.
	Gloss string
}

// PartOfSpeech returns the syntactic category whose files store the
// synset.
func (s *Synset) PartOfSpeech() pos.PartOfSpeech {
	return s.Type.Storage()
}

// Word is a synset member.
type Word struct {
	// Word is the word text with collocations separated by spaces.
	Word string

	// LexID identifies the sense of the word within the lexicographer file.
	LexID int

	// Marker is the syntactic marker of an adjective (p, a, or ip). It is
	// empty if the word has none.
	Marker string
}

// Frame is a generic verb sentence frame.
type Frame struct {
	// Number is the frame number.
	Number int

	// Word is the 1-based number of the word the frame applies to, or 0 if
	// it applies to all words in the synset.
	Word int
}

// ParseLine parses a data file line. Only the text up to the first newline
// is parsed.
func ParseLine(line string) (*Synset, error) {
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimRight(line, "\r")

	meta, gloss, _ := strings.Cut(line, "|")
	t := &tokens{fields: strings.Fields(meta)}
	s := &Synset{
		Gloss: strings.TrimSpace(gloss),
	}

	var err error
	if s.Offset, err = t.int64("synset_offset"); err != nil {
		return nil, err
	}
	if s.LexFileNum, err = t.int("lex_filenum", 10); err != nil {
		return nil, err
	}
	if s.Type, err = t.partOfSpeech("ss_type"); err != nil {
		return nil, err
	}

	wCount, err := t.int("w_cnt", 16)
	if err != nil {
		return nil, err
	}
	for i := 0; i < wCount; i++ {
		w, err := t.word(s.Type)
		if err != nil {
			return nil, fmt.Errorf("%w (word %d of %d)", err, i+1, wCount)
		}
		s.Words = append(s.Words, w)
	}

	pCount, err := t.int("p_cnt", 10)
	if err != nil {
		return nil, err
	}
	for i := 0; i < pCount; i++ {
		p, err := t.pointer()
		if err != nil {
			return nil, fmt.Errorf("%w (pointer %d of %d)", err, i+1, pCount)
		}
		s.Pointers = append(s.Pointers, p)
	}

	if s.Type == pos.Verb && len(t.rest()) > 0 {
		fCount, err := t.int("f_cnt", 10)
		if err != nil {
			return nil, err
		}
		for i := 0; i < fCount; i++ {
			f, err := t.frame()
			if err != nil {
				return nil, fmt.Errorf("%w (frame %d of %d)", err, i+1, fCount)
			}
			s.Frames = append(s.Frames, f)
		}
	}

	if rest := t.rest(); len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected trailing fields %q", ErrMalformedLine, rest)
	}

	return s, nil
}

// String returns the synset formatted as a data file line without the line
// terminator.
func (s *Synset) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08d %02d %s %02x ", s.Offset, s.LexFileNum, s.Type.Code(), len(s.Words))
	for _, w := range s.Words {
		b.WriteString(strings.ReplaceAll(w.Word, " ", separator))
		if w.Marker != "" {
			fmt.Fprintf(&b, "(%s)", w.Marker)
		}
		fmt.Fprintf(&b, " %x ", w.LexID)
	}
	fmt.Fprintf(&b, "%03d", len(s.Pointers))
	for _, p := range s.Pointers {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	if len(s.Frames) > 0 {
		fmt.Fprintf(&b, " %02d", len(s.Frames))
		for _, f := range s.Frames {
			fmt.Fprintf(&b, " + %02d %02x", f.Number, f.Word)
		}
	}
	if s.Gloss != "" {
		b.WriteString(" | ")
		b.WriteString(s.Gloss)
	}
	b.WriteString("  ")
	return b.String()
}

// tokens consumes whitespace separated fields in order.
type tokens struct {
	fields []string
	i      int
}

func (t *tokens) next(name string) (string, error) {
	if t.i >= len(t.fields) {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedLine, name)
	}
	f := t.fields[t.i]
	t.i++
	return f, nil
}

func (t *tokens) rest() []string {
	return t.fields[t.i:]
}

func (t *tokens) int(name string, base int) (int, error) {
	f, err := t.next(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(f, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrMalformedLine, name, f)
	}
	return int(n), nil
}

func (t *tokens) int64(name string) (int64, error) {
	f, err := t.next(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(f, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrMalformedLine, name, f)
	}
	return n, nil
}

func (t *tokens) partOfSpeech(name string) (pos.PartOfSpeech, error) {
	f, err := t.next(name)
	if err != nil {
		return 0, err
	}
	p, err := pos.Parse(f)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMalformedLine, name, err)
	}
	return p, nil
}

func (t *tokens) word(ssType pos.PartOfSpeech) (*Word, error) {
	text, err := t.next("word")
	if err != nil {
		return nil, err
	}
	lexID, err := t.int("lex_id", 16)
	if err != nil {
		return nil, err
	}

	w := &Word{LexID: lexID}
	if ssType.Storage() == pos.Adjective && strings.HasSuffix(text, ")") {
		if i := strings.LastIndexByte(text, '('); i > 0 {
			w.Marker = text[i+1 : len(text)-1]
			text = text[:i]
		}
	}
	w.Word = strings.ReplaceAll(text, separator, " ")
	return w, nil
}

func (t *tokens) pointer() (*Pointer, error) {
	symbol, err := t.next("pointer_symbol")
	if err != nil {
		return nil, err
	}
	offset, err := t.int64("synset_offset")
	if err != nil {
		return nil, err
	}
	p, err := t.partOfSpeech("pos")
	if err != nil {
		return nil, err
	}
	st, err := t.next("source/target")
	if err != nil {
		return nil, err
	}
	if _, err := strconv.ParseUint(st, 16, 16); err != nil || len(st) != 4 {
		return nil, fmt.Errorf("%w: invalid source/target %q", ErrMalformedLine, st)
	}

	return &Pointer{
		Symbol:       Symbol(symbol),
		Offset:       offset,
		PartOfSpeech: p,
		SourceTarget: st,
	}, nil
}

func (t *tokens) frame() (*Frame, error) {
	plus, err := t.next("frame marker")
	if err != nil {
		return nil, err
	}
	if plus != "+" {
		return nil, fmt.Errorf("%w: invalid frame marker %q", ErrMalformedLine, plus)
	}
	number, err := t.int("f_num", 10)
	if err != nil {
		return nil, err
	}
	word, err := t.int("w_num", 16)
	if err != nil {
		return nil, err
	}
	return &Frame{Number: number, Word: word}, nil
}
