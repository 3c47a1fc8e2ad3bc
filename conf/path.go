// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package conf

import (
	"path/filepath"

	"github.com/retrobus/devconf/envvar"
)

// DefaultPath returns the per-user configuration file location. The
// DEVCONF_CONFIG environment variable overrides it entirely; otherwise the
// file lives in a retrobus directory under DEVCONF_CONFIG_DIR or
// XDG_CONFIG_HOME, falling back to ~/.config and finally to /etc for
// processes without a home.
func DefaultPath() string {
	if p := envvar.Get("DEVCONF_CONFIG", ""); p != "" {
		return p
	}
	if dir := envvar.First("", "DEVCONF_CONFIG_DIR", "XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "retrobus", "devconf.conf")
	}
	if home := envvar.Get("HOME", ""); home != "" {
		return filepath.Join(home, ".config", "retrobus", "devconf.conf")
	}
	return "/etc/retrobus/devconf.conf"
}
