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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-wordnet/internal/folding"
	"github.com/ianlewis/go-wordnet/internal/index"
	"github.com/ianlewis/go-wordnet/pos"
)

type foldedEntry struct {
	folded string
	entry  *Entry
}

func (e *foldedEntry) String() string {
	return e.folded
}

// Options are options for the idx data.
type Options struct {
	// Folder returns a [transform.Transformer] that normalizes lemmas and
	// queries before they are compared.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for an Idx. Lemmas are lower cased
// and whitespace is folded into Separator.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return folding.Lemma(Separator)
	},
}

// Idx is an in-memory lookup table from normalized lemma to every index
// entry for that lemma. An Idx is immutable and safe for concurrent use.
type Idx struct {
	index *index.Index[*foldedEntry]

	// foldTransformer performs folding on text.
	foldTransformer func() transform.Transformer
}

// New returns a new Idx over the given entries. Entries for the same lemma
// keep their order.
func New(entries []*Entry, options *Options) (*Idx, error) {
	if options == nil {
		options = DefaultOptions
	}

	idx := Idx{
		foldTransformer: DefaultOptions.Folder,
	}
	if options.Folder != nil {
		idx.foldTransformer = options.Folder
	}

	words := make([]*foldedEntry, 0, len(entries))
	for _, e := range entries {
		folded, err := idx.fold(e.Lemma)
		if err != nil {
			return nil, err
		}
		words = append(words, &foldedEntry{
			folded: folded,
			entry:  e,
		})
	}
	idx.index = index.NewIndex(words)

	return &idx, nil
}

// Search returns the entries for the lemma matching query. It returns an
// empty result if the lemma is not in the index.
func (idx *Idx) Search(query string) ([]*Entry, error) {
	folded, err := idx.fold(query)
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	for _, e := range idx.index.Search(folded) {
		entries = append(entries, e.entry)
	}
	return entries, nil
}

// Contains returns true if the lemma matching query is in the index.
func (idx *Idx) Contains(query string) (bool, error) {
	folded, err := idx.fold(query)
	if err != nil {
		return false, err
	}
	return idx.index.Contains(folded), nil
}

// Lemmas returns every distinct normalized lemma in the order first seen,
// with separators replaced by spaces.
func (idx *Idx) Lemmas() []string {
	keys := idx.index.Keys()
	for i, k := range keys {
		keys[i] = strings.ReplaceAll(k, string(Separator), " ")
	}
	return keys
}

// Len returns the number of distinct lemmas.
func (idx *Idx) Len() int {
	return idx.index.Len()
}

func (idx *Idx) fold(s string) (string, error) {
	folded, _, err := transform.String(idx.foldTransformer(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}

// FileName returns the name of the index file for p.
func FileName(p pos.PartOfSpeech) string {
	return "index." + p.Ext()
}

// Open opens the index file for p in fsys. Gzip compressed index files
// (index.noun.gz) are decompressed transparently.
func Open(fsys fs.FS, p pos.PartOfSpeech) (io.ReadCloser, error) {
	name := FileName(p)

	f, err := fsys.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}

	gzf, gzErr := fsys.Open(name + ".gz")
	if gzErr != nil {
		// Report the uncompressed name when neither exists.
		if errors.Is(gzErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		return nil, fmt.Errorf("opening %s.gz: %w", name, gzErr)
	}
	z, err := gzip.NewReader(gzf)
	if err != nil {
		gzf.Close()
		return nil, fmt.Errorf("opening %s.gz: %w", name, err)
	}
	return &gzipFile{Reader: z, f: gzf}, nil
}

type gzipFile struct {
	*gzip.Reader
	f fs.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.f.Close())
}
