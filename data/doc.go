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

// Package data implements reading WordNet data files.
//
// Each data file (data.adj, data.adv, data.noun, data.verb) holds one synset
// per line. A synset's byte offset in the file is its identity and is the
// first field of its line:
//
//	synset_offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] [frames...] | gloss
//
// w_cnt and lex_id are hexadecimal. Every other number is decimal. Each ptr
// is four fields: pointer_symbol synset_offset pos source/target. Verb
// synsets may list frames as f_cnt followed by "+ f_num w_num" triples.
package data
