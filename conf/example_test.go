// Copyright 2026 The Retrobus Authors
// SPDX-License-Identifier: BSD-3-Clause

package conf_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/retrobus/devconf/conf"
)

func Example() {
	dir, err := os.MkdirTemp("", "devconf")
	if err != nil {
		// handle error
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "devconf.conf")

	// Create the file and record some settings.
	st, err := conf.Create(path)
	if err != nil {
		// handle error
	}
	st.Set("drive", "address", "8")
	st.Set("", "cable", "usb")
	if err := st.Close(); err != nil {
		// handle error
	}

	// Reopen and read them back.
	st, err = conf.Open(path)
	if err != nil {
		// handle error
	}
	defer st.Close()
	address, _ := st.Get("drive", "address")
	cable, _ := st.Get("", "cable")
	fmt.Println("drive address:", address)
	fmt.Println("cable:", cable)

	// Output:
	// drive address: 8
	// cable: usb
}
