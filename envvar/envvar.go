// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuring the retrobus tools.
package envvar

import (
	"os"
	"strconv"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// First returns the value of the first environment variable in keys that is
// set and non-empty. If none is, it returns the default value.
func First(defaultValue string, keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return defaultValue
}

// Bool returns the value of a boolean environment variable. If it is unset or
// not one of the strings 1, t, T, TRUE, true, or True, then it returns false.
func Bool(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
