// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package conf

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalText(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "Empty",
			source: "",
			want:   "",
		},
		{
			name:   "GlobalOnly",
			source: "a=1\nb=2\n",
			want:   "a=1\nb=2\n",
		},
		{
			name:   "SectionHeaderComment",
			source: "[s] # note\na=1\n",
			want:   "[s] # note\na=1\n",
		},
		{
			name:   "NamelessLines",
			source: "freetext # note\n\n# standalone\n",
			want:   "freetext # note\n\n# standalone\n",
		},
		{
			// An entry whose name is empty writes without an equals sign,
			// so =v collapses to its bare value.
			name:   "EmptyNameDropsEquals",
			source: "=v\n",
			want:   "v\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := parseString(t, test.source)
			got, err := s.MarshalText()
			if err != nil {
				t.Fatal("MarshalText:", err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("MarshalText (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteTo(t *testing.T) {
	const source = "g=1\n[s]\na=1 # note\n"
	s := parseString(t, source)
	buf := new(bytes.Buffer)
	n, err := s.WriteTo(buf)
	if err != nil {
		t.Fatal("WriteTo:", err)
	}
	if n != int64(len(source)) {
		t.Errorf("WriteTo wrote %d bytes; want %d", n, len(source))
	}
	if diff := cmp.Diff(source, buf.String()); diff != "" {
		t.Errorf("WriteTo (-want +got):\n%s", diff)
	}
}

// A Set-created entry has no comment and an initially empty value; the value
// written is whatever Set stored last.
func TestMarshalCreatedEntry(t *testing.T) {
	s := parseString(t, "")
	if err := s.Set("s", "k", ""); err != nil {
		t.Fatal("Set:", err)
	}
	got, err := s.MarshalText()
	if err != nil {
		t.Fatal("MarshalText:", err)
	}
	if diff := cmp.Diff("[s]\nk=\n", string(got)); diff != "" {
		t.Errorf("MarshalText (-want +got):\n%s", diff)
	}
}
