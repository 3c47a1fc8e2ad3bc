// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

/*
Package conf reads and rewrites the INI-style configuration files used by the
retrobus device control tools.

The package is designed for read-modify-write cycles on small files: a file is
parsed into an ordered, line-preserving model, values are looked up or changed
through a handle, and Close rewrites the file only if something changed.
Comments, blank lines, and lines the parser does not understand are kept
verbatim and written back unchanged.

# Syntax

A file is a sequence of lines. A [Name] line starts a section; the lines
before the first header form the unnamed global section, addressed by the
empty string. A NAME=VALUE line is an entry of the current section. A line
with no '=' is kept as free text. '#' introduces a comment: a line starting
with '#' is a standalone comment, and on any other line the text from the
first '#' to the end of the line, together with the whitespace in front of
it, is preserved as written. There is no quoting and no escape mechanism;
names are compared byte for byte, case-sensitively.

Malformed input is normalized rather than rejected: a header missing its
closing bracket takes its name from the rest of the line, and duplicate
sections or entries are kept, with lookups returning the first match in file
order.

# Concurrency

A Store must be confined to a single goroutine, and no lock is taken on the
underlying file. The rewrite on Close goes through a fixed temporary path
(the file path plus ".tmp"), so two handles open on the same path can clobber
each other; the last rename wins.
*/
package conf
