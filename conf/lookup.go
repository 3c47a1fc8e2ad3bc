// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package conf

import "fmt"

// Get returns a copy of the value stored under the given section and entry
// name. The empty section name addresses the global section. Duplicates are
// not collapsed: the first entry in file order wins. If the section or entry
// does not exist, Get returns ErrNotFound.
func (s *Store) Get(section, entry string) (string, error) {
	e := s.find(section, entry, false)
	if e == nil {
		return "", ErrNotFound
	}
	return e.value, nil
}

// Set stores value under the given section and entry name, creating both if
// needed, and marks the store dirty. A created section is appended after all
// existing sections; a created entry is placed after the last named entry of
// its section so it does not land below trailing comments that belong to the
// next section.
func (s *Store) Set(section, entry, value string) error {
	e := s.find(section, entry, true)
	if e == nil {
		return fmt.Errorf("set config entry in section %q: empty entry name", section)
	}
	e.value = value
	s.dirty = true
	return nil
}

// Has reports whether the entry exists. It never modifies the store.
func (s *Store) Has(section, entry string) bool {
	return s.find(section, entry, false) != nil
}

// Delete removes every entry with the given name from the first section
// matching sectionName, leaving comments and free text in place. It reports
// whether anything was removed, and dirties the store only if so.
func (s *Store) Delete(sectionName, entryName string) bool {
	if entryName == "" {
		return false
	}
	si := s.findSection(sectionName)
	if si < 0 {
		return false
	}
	sec := &s.sections[si]
	n := 0
	removed := false
	for _, e := range sec.entries {
		if e.hasName && e.name == entryName {
			removed = true
			continue
		}
		sec.entries[n] = e
		n++
	}
	sec.entries = sec.entries[:n]
	if removed {
		s.dirty = true
	}
	return removed
}

// Sections returns the names of the named sections in file order. The global
// section is not listed.
func (s *Store) Sections() []string {
	var names []string
	for i := range s.sections {
		if !s.sections[i].global {
			names = append(names, s.sections[i].name)
		}
	}
	return names
}

// Keys returns the entry names of the given section in file order, addressed
// the same way as Get.
func (s *Store) Keys(section string) []string {
	si := s.findSection(section)
	if si < 0 {
		return nil
	}
	var keys []string
	for _, e := range s.sections[si].entries {
		if e.hasName && e.name != "" {
			keys = append(keys, e.name)
		}
	}
	return keys
}

// findSection returns the index of the first section matching name, or -1.
// The empty name matches only the global section.
func (s *Store) findSection(name string) int {
	for i := range s.sections {
		sec := &s.sections[i]
		if sec.global {
			if name == "" {
				return i
			}
			continue
		}
		if name != "" && sec.name == name {
			return i
		}
	}
	return -1
}

// find locates the first entry named entryName inside the first section
// matching sectionName. With create set, missing pieces are built; a created
// entry starts with an empty value and no comment. Name-less entries never
// match, and the empty entry name never finds or creates anything.
func (s *Store) find(sectionName, entryName string, create bool) *entry {
	if entryName == "" {
		return nil
	}
	si := s.findSection(sectionName)
	lastNamed := -1
	if si >= 0 {
		sec := &s.sections[si]
		for j := range sec.entries {
			e := &sec.entries[j]
			if e.hasName && e.name == entryName {
				return e
			}
			if e.hasName {
				lastNamed = j
			}
		}
	}
	if !create {
		return nil
	}
	if si < 0 {
		s.sections = append(s.sections, section{name: sectionName})
		si = len(s.sections) - 1
	}
	at := s.insertEntry(si, lastNamed, entry{hasName: true, name: entryName})
	return &s.sections[si].entries[at]
}
