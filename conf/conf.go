// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package conf

import (
	"errors"
	"fmt"
	"os"
)

// writeSuffix is appended to the store's path to form the rewrite path.
// It is not configurable.
const writeSuffix = ".tmp"

// ErrNotFound is returned by Get when the section or entry does not exist.
var ErrNotFound = errors.New("entry not found")

// A Store is the in-memory image of one configuration file, obtained from
// Open or Create. It records every line of the file, comments included, so
// that a rewrite reproduces anything it did not change.
type Store struct {
	sections  []section
	path      string
	writePath string
	dirty     bool
}

// A section is a [Name] header line and the lines that follow it, up to the
// next header. The section at index 0 is always the unnamed global section
// holding the lines before the first header; it is never written as a header.
type section struct {
	global  bool
	name    string
	comment string
	entries []entry
}

// An entry is one line within a section. Named entries come from NAME=VALUE
// lines. Name-less entries record free text, blank lines, and standalone
// comment lines so they survive a rewrite; lookups never match them.
type entry struct {
	hasName bool
	name    string
	value   string
	comment string // verbatim trailing text, delimiter and spacing included
}

// Open parses the configuration file at path. It fails if the file does not
// exist or cannot be read.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	s := &Store{path: path, writePath: path + writeSuffix}
	if err := s.parse(f); err != nil {
		return nil, err
	}
	return s, nil
}

// Create opens the configuration file at path, first creating it empty if it
// does not exist.
func Create(path string) (*Store, error) {
	s, err := Open(path)
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		return s, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}
	return Open(path)
}

// Close releases the store, first rewriting the file if it was modified.
// The in-memory state is discarded whether or not the rewrite succeeds;
// a failed rewrite is reported but never retried.
func (s *Store) Close() error {
	var err error
	if s.dirty {
		err = s.flush()
	}
	s.sections = nil
	s.dirty = false
	return err
}

// insertEntry links e into section si after the entry at index prev. A prev
// of -1 inserts at the head of the section, pushing existing entries down.
// It returns the index of the inserted entry.
func (s *Store) insertEntry(si, prev int, e entry) int {
	sec := &s.sections[si]
	at := prev + 1
	sec.entries = append(sec.entries, entry{})
	copy(sec.entries[at+1:], sec.entries[at:])
	sec.entries[at] = e
	return at
}
