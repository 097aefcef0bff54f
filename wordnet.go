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

package wordnet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/idx"
	"github.com/ianlewis/go-wordnet/pos"
)

var (
	// ErrMissingDataset indicates that no database directory was given.
	ErrMissingDataset = errors.New("no WordNet database directory given")

	// ErrIndexFileUnavailable indicates an index file could not be opened or
	// read.
	ErrIndexFileUnavailable = errors.New("index file unavailable")

	// ErrDataFileUnavailable indicates a data file could not be opened.
	ErrDataFileUnavailable = errors.New("data file unavailable")
)

// Options are options for opening a WordNet database.
type Options struct {
	// FS is the file system the database is read from. If nil, the
	// database directory is read from the operating system's file system.
	// Data files must implement io.ReaderAt.
	FS fs.FS

	// Folder returns a [transform.Transformer] that normalizes lemmas and
	// queries. If nil, lemmas are lower cased and whitespace becomes an
	// underscore.
	Folder func() transform.Transformer

	// Logger receives debug records about loading the database. If nil,
	// nothing is logged.
	Logger *slog.Logger

	// MaxParallelReads limits the number of concurrent data file reads of a
	// single query. Values less than 1 mean the default.
	MaxParallelReads int
}

// DefaultOptions is the default options for a WordNet.
var DefaultOptions = &Options{
	MaxParallelReads: 16,
}

// WordNet is a WordNet database. It is safe for concurrent use.
type WordNet struct {
	// ready is closed when loading finishes. The fields below are not
	// modified afterwards.
	ready chan struct{}
	err   error

	index *idx.Idx
	res   *resolver

	logger    *slog.Logger
	closeOnce sync.Once
	closeErr  error
}

// New returns a WordNet for the database in dir and starts loading its
// index in the background. Queries block until loading finishes. If
// options.FS is set, dir is a directory within it and may be empty.
func New(dir string, options *Options) (*WordNet, error) {
	if options == nil {
		options = DefaultOptions
	}

	fsys := options.FS
	switch {
	case fsys == nil && dir == "":
		return nil, ErrMissingDataset
	case fsys == nil:
		fsys = os.DirFS(dir)
	case dir != "" && dir != ".":
		sub, err := fs.Sub(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", dir, err)
		}
		fsys = sub
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	maxParallel := options.MaxParallelReads
	if maxParallel < 1 {
		maxParallel = DefaultOptions.MaxParallelReads
	}

	wn := &WordNet{
		ready:  make(chan struct{}),
		logger: logger.With("dir", dir),
	}
	go wn.load(fsys, options.Folder, maxParallel)
	return wn, nil
}

// Open opens the database in dir and waits for its index to load.
func Open(ctx context.Context, dir string, options *Options) (*WordNet, error) {
	wn, err := New(dir, options)
	if err != nil {
		return nil, err
	}
	if err := wn.Wait(ctx); err != nil {
		if errors.Is(err, ctx.Err()) {
			// Release the data files once loading finishes.
			go wn.Close()
		}
		return nil, err
	}
	return wn, nil
}

// load reads the index files and then opens the data files.
func (wn *WordNet) load(fsys fs.FS, folder func() transform.Transformer, maxParallel int) {
	defer close(wn.ready)

	start := time.Now()
	wn.logger.Debug("loading WordNet database")

	entries, err := wn.readIndexes(fsys)
	if err != nil {
		wn.logger.Debug("loading WordNet index failed", "error", err)
		wn.err = err
		return
	}

	index, err := idx.New(entries, &idx.Options{Folder: folder})
	if err != nil {
		wn.err = err
		return
	}

	var files [pos.Count]*data.Data
	for i, p := range pos.Categories {
		d, err := data.Open(fsys, p)
		if err != nil {
			for _, f := range files[:i] {
				f.Close()
			}
			wn.logger.Debug("opening WordNet data failed", "error", err)
			wn.err = fmt.Errorf("%w: %w", ErrDataFileUnavailable, err)
			return
		}
		files[i] = d
	}

	wn.index = index
	wn.res = &resolver{
		files:       files,
		maxParallel: maxParallel,
	}
	wn.logger.Debug("loaded WordNet database",
		"entries", len(entries),
		"lemmas", index.Len(),
		"duration", time.Since(start),
	)
}

// readIndexes reads the index files concurrently and returns their entries
// in category order.
func (wn *WordNet) readIndexes(fsys fs.FS) ([]*idx.Entry, error) {
	var results [pos.Count][]*idx.Entry

	var g errgroup.Group
	for i, p := range pos.Categories {
		g.Go(func() error {
			name := idx.FileName(p)
			r, err := idx.Open(fsys, p)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrIndexFileUnavailable, err)
			}
			defer r.Close()

			entries, err := idx.ReadAll(r)
			if err != nil {
				if errors.Is(err, idx.ErrMalformedLine) {
					return fmt.Errorf("%s: %w", name, err)
				}
				return fmt.Errorf("%w: reading %s: %w", ErrIndexFileUnavailable, name, err)
			}
			wn.logger.Debug("read index file", "file", name, "entries", len(entries))

			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		//nolint:wrapcheck // errors are wrapped above.
		return nil, err
	}

	var entries []*idx.Entry
	for _, r := range results {
		entries = append(entries, r...)
	}
	return entries, nil
}

// Wait blocks until the index is loaded. It returns the error that stopped
// loading, if any, or the context's error if ctx is done first.
func (wn *WordNet) Wait(ctx context.Context) error {
	select {
	case <-wn.ready:
		return wn.err
	case <-ctx.Done():
		//nolint:wrapcheck // error should not be wrapped
		return ctx.Err()
	}
}

// Lookup returns every synset of word across all parts of speech, ordered
// by part of speech and then by sense. It returns an empty result if the
// word is not in the database.
func (wn *WordNet) Lookup(ctx context.Context, word string) ([]*data.Synset, error) {
	entries, err := wn.Entries(ctx, word)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return wn.res.senses(ctx, entries)
}

// Entries returns the index entries of word, one per part of speech.
func (wn *WordNet) Entries(ctx context.Context, word string) ([]*idx.Entry, error) {
	if err := wn.Wait(ctx); err != nil {
		return nil, err
	}
	//nolint:wrapcheck // error should not be wrapped
	return wn.index.Search(word)
}

// List returns every lemma in the database in index order. Words in
// collocations are separated by spaces.
func (wn *WordNet) List(ctx context.Context) ([]string, error) {
	if err := wn.Wait(ctx); err != nil {
		return nil, err
	}
	return wn.index.Lemmas(), nil
}

// Exists returns true if word is a lemma in the database.
func (wn *WordNet) Exists(ctx context.Context, word string) (bool, error) {
	if err := wn.Wait(ctx); err != nil {
		return false, err
	}
	//nolint:wrapcheck // error should not be wrapped
	return wn.index.Contains(word)
}

// Synset reads the synset at offset in the data file for p.
func (wn *WordNet) Synset(ctx context.Context, p pos.PartOfSpeech, offset int64) (*data.Synset, error) {
	if err := wn.Wait(ctx); err != nil {
		return nil, err
	}
	return wn.res.synset(p, offset)
}

// Senses reads the synsets of all entries. The result is ordered by entry
// and then by offset.
func (wn *WordNet) Senses(ctx context.Context, entries []*idx.Entry) ([]*data.Synset, error) {
	if err := wn.Wait(ctx); err != nil {
		return nil, err
	}
	return wn.res.senses(ctx, entries)
}

// Resolve reads the synset a pointer refers to. Each call reads the data
// file again and returns a new synset.
func (wn *WordNet) Resolve(ctx context.Context, p *data.Pointer) (*data.Synset, error) {
	return wn.Synset(ctx, p.PartOfSpeech, p.Offset)
}

// Close waits for loading to finish and closes the data files.
func (wn *WordNet) Close() error {
	<-wn.ready
	wn.closeOnce.Do(func() {
		if wn.res != nil {
			wn.closeErr = wn.res.close()
		}
	})
	return wn.closeErr
}
