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

// Package wordnet implements a library for reading the WordNet lexical
// database in pure Go.
//
// A WordNet database directory contains two files per syntactic category
// (adjective, adverb, noun, verb):
//  1. An index file (index.adj, index.adv, index.noun, index.verb) that
//     lists every lemma of the category and the byte offsets of its synsets
//     in the data file. Index files may be gzip compressed (index.noun.gz).
//  2. A data file (data.adj, data.adv, data.noun, data.verb) with one synset
//     per line: its words, gloss, and pointers to related synsets. Data files
//     may be compressed using the dictzip format (data.noun.dz).
//
// [New] reads all index files into memory in the background and keeps the
// data files open for positioned reads. Queries wait until the index is
// loaded. Synsets are read from the data files on every query, and a
// synset's pointers are resolved only when asked for with
// [WordNet.Resolve].
//
// More info on the database format can be found at this URL:
// https://wordnet.princeton.edu/documentation/wndb5wn
package wordnet
