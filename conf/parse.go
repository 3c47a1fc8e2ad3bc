// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package conf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// parse populates an empty store from r. On error the store is left partially
// populated; callers discard it.
func (s *Store) parse(r io.Reader) error {
	br := bufio.NewReader(r)
	s.sections = []section{{global: true}}
	cur := 0
	prev := -1 // index of the previously parsed entry in cur; -1 = none yet
	for lineno := 1; ; lineno++ {
		raw, err := readLine(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse config: line %d: %w", lineno, err)
		}
		content, comment, standalone := splitComment(raw)
		switch {
		case standalone:
			// A comment line occupies an entry slot of its own so it is
			// re-emitted in place. It also advances the cursor: the next
			// entry chains after it.
			prev = s.insertEntry(cur, prev, entry{comment: comment})
		case strings.HasPrefix(content, "["):
			name := content[1:]
			// A missing ] is tolerated; the name then runs to the end of
			// the line. The last ] closes the name.
			if k := strings.LastIndexByte(name, ']'); k >= 0 {
				name = name[:k]
			}
			s.sections = append(s.sections, section{name: name, comment: comment})
			cur = len(s.sections) - 1
			prev = -1
		default:
			e := entry{value: content, comment: comment}
			if i := strings.IndexByte(content, '='); i >= 0 {
				e.hasName = true
				e.name = content[:i]
				e.value = content[i+1:]
			}
			prev = s.insertEntry(cur, prev, e)
		}
	}
}

// readLine reads one logical line, without its trailing newline. io.EOF is
// returned only once no data remains.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil // final line without a newline
	}
	if err != nil {
		return "", err
	}
	return line[:len(line)-1], nil
}

// splitComment divides a raw line into its content and its verbatim trailing
// comment. A line whose first byte is '#' is a standalone comment. Otherwise
// the comment starts after the last content byte before the first '#': the
// whitespace run in front of the delimiter belongs to the comment, so the
// line is reproduced byte for byte on rewrite. Trailing whitespace with no
// delimiter is kept the same way. If nothing but whitespace precedes the
// delimiter, the whole line collapses to nothing.
func splitComment(raw string) (content, comment string, standalone bool) {
	if strings.HasPrefix(raw, "#") {
		return "", raw, true
	}
	i := strings.IndexByte(raw, '#')
	if i < 0 {
		i = len(raw)
	}
	for j := i; j > 0; j-- {
		switch raw[j-1] {
		case ' ', '\t', '\r', '\n':
		default:
			return raw[:j], raw[j:], false
		}
	}
	return "", "", false
}
