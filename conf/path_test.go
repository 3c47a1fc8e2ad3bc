// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package conf

import "testing"

func TestDefaultPath(t *testing.T) {
	clear := func(t *testing.T) {
		t.Setenv("DEVCONF_CONFIG", "")
		t.Setenv("DEVCONF_CONFIG_DIR", "")
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "")
	}

	t.Run("Fallback", func(t *testing.T) {
		clear(t)
		if got, want := DefaultPath(), "/etc/retrobus/devconf.conf"; got != want {
			t.Errorf("DefaultPath() = %q; want %q", got, want)
		}
	})
	t.Run("Home", func(t *testing.T) {
		clear(t)
		t.Setenv("HOME", "/home/u")
		if got, want := DefaultPath(), "/home/u/.config/retrobus/devconf.conf"; got != want {
			t.Errorf("DefaultPath() = %q; want %q", got, want)
		}
	})
	t.Run("XDG", func(t *testing.T) {
		clear(t)
		t.Setenv("HOME", "/home/u")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		if got, want := DefaultPath(), "/xdg/retrobus/devconf.conf"; got != want {
			t.Errorf("DefaultPath() = %q; want %q", got, want)
		}
	})
	t.Run("ConfigDir", func(t *testing.T) {
		clear(t)
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		t.Setenv("DEVCONF_CONFIG_DIR", "/custom")
		if got, want := DefaultPath(), "/custom/retrobus/devconf.conf"; got != want {
			t.Errorf("DefaultPath() = %q; want %q", got, want)
		}
	})
	t.Run("Override", func(t *testing.T) {
		clear(t)
		t.Setenv("DEVCONF_CONFIG_DIR", "/custom")
		t.Setenv("DEVCONF_CONFIG", "/tmp/override.conf")
		if got, want := DefaultPath(), "/tmp/override.conf"; got != want {
			t.Errorf("DefaultPath() = %q; want %q", got, want)
		}
	})
}
