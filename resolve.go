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

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/idx"
	"github.com/ianlewis/go-wordnet/pos"
)

// resolver reads synsets from the open data files. files is indexed by
// [pos.PartOfSpeech.Index] and is not modified after loading.
type resolver struct {
	files       [pos.Count]*data.Data
	maxParallel int
}

func (r *resolver) synset(p pos.PartOfSpeech, offset int64) (*data.Synset, error) {
	i := p.Index()
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", pos.ErrInvalid, rune(p))
	}
	s, err := r.files[i].Synset(offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", data.FileName(p), err)
	}
	return s, nil
}

type sense struct {
	p      pos.PartOfSpeech
	offset int64
}

// senses reads the synsets of every entry in parallel. Results keep entry
// order and then offset order.
func (r *resolver) senses(ctx context.Context, entries []*idx.Entry) ([]*data.Synset, error) {
	var refs []sense
	for _, e := range entries {
		for _, off := range e.SynsetOffsets {
			refs = append(refs, sense{p: e.PartOfSpeech, offset: off})
		}
	}

	results := make([]*data.Synset, len(refs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxParallel)
	for i, ref := range refs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				//nolint:wrapcheck // error should not be wrapped
				return err
			}
			s, err := r.synset(ref.p, ref.offset)
			if err != nil {
				return err
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		//nolint:wrapcheck // errors are wrapped by synset.
		return nil, err
	}
	return results, nil
}

func (r *resolver) close() error {
	var errs []error
	for _, f := range r.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}
