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
	"io"
	"io/fs"
	"sync"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-wordnet/pos"
)

// WindowSize is the number of bytes read at a synset offset. No data file
// line is longer than this.
const WindowSize = 1024

var (
	// ErrOffsetRead indicates the synset at an offset could not be read.
	ErrOffsetRead = errors.New("reading synset")

	errNoRandomAccess = errors.New("file does not support random access")
)

// Data represents a WordNet data file. Reads are positioned reads so a Data
// is safe for concurrent use.
type Data struct {
	r io.ReaderAt
	c io.Closer
}

// New returns a new Data from the given reader. If r is also an io.Closer,
// Data takes ownership of it and closes it in Close.
func New(r io.ReaderAt) *Data {
	d := &Data{r: r}
	if c, ok := r.(io.Closer); ok {
		d.c = c
	}
	return d
}

// Synset reads and parses the synset line starting at offset.
func (d *Data) Synset(offset int64) (*Synset, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w at offset %d: negative offset", ErrOffsetRead, offset)
	}

	b := make([]byte, WindowSize)
	// NOTE: ReadAt returns io.EOF when the window extends past the end of
	// the file. Any bytes read are still usable.
	n, err := d.r.ReadAt(b, offset)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w at offset %d: %w", ErrOffsetRead, offset, err)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w at offset %d: %w", ErrOffsetRead, offset, err)
	}

	s, err := ParseLine(string(b[:n]))
	if err != nil {
		return nil, fmt.Errorf("offset %d: %w", offset, err)
	}
	if s.Offset != offset {
		return nil, fmt.Errorf("%w: line at offset %d has synset offset %d", ErrMalformedLine, offset, s.Offset)
	}
	return s, nil
}

// Close closes the data file.
func (d *Data) Close() error {
	if d.c == nil {
		return nil
	}
	if err := d.c.Close(); err != nil {
		return fmt.Errorf("closing data file: %w", err)
	}
	return nil
}

// FileName returns the name of the data file for p.
func FileName(p pos.PartOfSpeech) string {
	return "data." + p.Ext()
}

// Open opens the data file for p in fsys. Dictzip compressed data files
// (data.noun.dz) are supported. Files must implement io.ReaderAt, or
// io.ReadSeeker for dictzip files.
func Open(fsys fs.FS, p pos.PartOfSpeech) (*Data, error) {
	name := FileName(p)

	f, err := fsys.Open(name)
	if err == nil {
		r, ok := f.(io.ReaderAt)
		if !ok {
			f.Close()
			return nil, fmt.Errorf("opening %s: %w", name, errNoRandomAccess)
		}
		return &Data{r: r, c: f}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}

	dzf, dzErr := fsys.Open(name + ".dz")
	if dzErr != nil {
		// Report the uncompressed name when neither exists.
		if errors.Is(dzErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		return nil, fmt.Errorf("opening %s.dz: %w", name, dzErr)
	}
	rs, ok := dzf.(io.ReadSeeker)
	if !ok {
		dzf.Close()
		return nil, fmt.Errorf("opening %s.dz: %w", name, errNoRandomAccess)
	}
	z, err := dictzip.NewReader(rs)
	if err != nil {
		dzf.Close()
		return nil, fmt.Errorf("opening %s.dz: %w", name, err)
	}
	return &Data{r: &lockedReaderAt{r: z}, c: dzf}, nil
}

// lockedReaderAt serializes reads for readers that share a file cursor.
type lockedReaderAt struct {
	mu sync.Mutex
	r  io.ReaderAt
}

func (l *lockedReaderAt) ReadAt(p []byte, off int64) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	//nolint:wrapcheck // error should not be wrapped
	return l.r.ReadAt(p, off)
}
