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
	"bufio"
	"errors"
	"fmt"
	"io"
)

// maxLineSize is the longest index line the Scanner accepts.
const maxLineSize = 1 << 20

// Scanner scans an index file from start to end.
type Scanner struct {
	r     io.ReadCloser
	s     *bufio.Scanner
	entry *Entry
	line  int
	err   error
}

// NewScanner return a new index scanner that scans the index from start to
// end. The Scanner assumes ownership of the reader and should be closed with the
// Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	s := &Scanner{
		r: r,
		s: bufio.NewScanner(r),
	}
	s.s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return s
}

// Scan advances the index to the next index entry, skipping license header
// lines. It returns false if the scan stops either by reaching the end of
// the index or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.line++
		e, err := ParseLine(s.s.Text())
		if errors.Is(err, ErrHeaderLine) {
			continue
		}
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			s.entry = nil
			return false
		}
		s.entry = e
		return true
	}
	s.entry = nil
	return false
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Entry returns the entry read by the last call to Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing index file: %w", err)
	}
	return nil
}

// ReadAll reads all entries from r in file order. It does not close r.
func ReadAll(r io.Reader) ([]*Entry, error) {
	s := NewScanner(io.NopCloser(r))
	var entries []*Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
