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

// Package idx implements reading WordNet index files.
//
// There is one index file per syntactic category (index.adj, index.adv,
// index.noun, index.verb). The file starts with license lines that begin
// with a space. Every other line describes one lemma in that category as
// space separated fields:
//
//	lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt synset_offset...
//
//  1. lemma: the lower case word, with spaces in collocations written as
//     underscores.
//  2. pos: the part of speech code.
//  3. synset_cnt: the number of synsets (senses) the lemma is in.
//  4. p_cnt: the number of pointer symbols that follow.
//  5. ptr_symbol: the kinds of pointers the lemma has in any sense.
//  6. sense_cnt: same as synset_cnt, kept for compatibility.
//  7. tagsense_cnt: the number of senses ranked by tagged frequency.
//  8. synset_offset: byte offsets of the synsets in the matching data file.
package idx
