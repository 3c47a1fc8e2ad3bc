// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package conf

import (
	"fmt"
	"io"
	"os"
)

// MarshalText serializes the store in its file format. Every section after
// the global one is written as a [name]comment header line; entries render
// as name=valuecomment, or valuecomment for name-less lines.
func (s *Store) MarshalText() ([]byte, error) {
	var buf []byte
	for i := range s.sections {
		sec := &s.sections[i]
		if i > 0 {
			buf = append(buf, '[')
			buf = append(buf, sec.name...)
			buf = append(buf, ']')
			buf = append(buf, sec.comment...)
			buf = append(buf, '\n')
		}
		for _, e := range sec.entries {
			if e.hasName && e.name != "" {
				buf = append(buf, e.name...)
				buf = append(buf, '=')
			}
			buf = append(buf, e.value...)
			buf = append(buf, e.comment...)
			buf = append(buf, '\n')
		}
	}
	return buf, nil
}

// WriteTo writes the serialized store to w.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	data, err := s.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// flush rewrites the file: the store is serialized to the write path, then
// the original file is removed and the temporary renamed over it. A failed
// write leaves the partial temporary file behind; nothing is retried.
func (s *Store) flush() error {
	f, err := os.Create(s.writePath)
	if err != nil {
		return fmt.Errorf("flush config: %w", err)
	}
	_, werr := s.WriteTo(f)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("flush config: %w", werr)
	}
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("flush config: %w", err)
	}
	if err := os.Rename(s.writePath, s.path); err != nil {
		return fmt.Errorf("flush config: %w", err)
	}
	return nil
}
