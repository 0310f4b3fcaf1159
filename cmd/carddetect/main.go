// go-colorlight
// Copyright (c) 2026 The PixelGrid Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-colorlight.
//
// go-colorlight is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-colorlight is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-colorlight; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// carddetect broadcasts a detection query on a network interface and prints
// the identity of the receiver card that answers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	colorlight "github.com/PixelGridProject/go-colorlight"
	"github.com/PixelGridProject/go-colorlight/transport/ethernet"
)

func main() {
	iface := flag.String("interface", "eth0", "Network interface the card is attached to")
	timeout := flag.Duration("timeout", 2*time.Second, "How long to wait for the card's reply")
	debug := flag.Bool("debug", false, "Enable debug output")
	flag.Parse()

	if *debug {
		colorlight.SetDebugEnabled(true)
	}

	if err := run(*iface, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "carddetect: %v\n", err)
		if errors.Is(err, colorlight.ErrPermissionDenied) {
			fmt.Fprintln(os.Stderr, "hint: raw sockets need CAP_NET_RAW (try sudo)")
		}
		os.Exit(1)
	}
}

func run(iface string, timeout time.Duration) error {
	tr, err := ethernet.New(iface)
	if err != nil {
		return err
	}

	card, err := colorlight.New(tr, colorlight.WithTimeout(timeout))
	if err != nil {
		_ = tr.Close()
		return err
	}
	defer card.Close()

	info, err := card.DetectReceiver()
	if err != nil {
		return err
	}

	fmt.Printf("Model:    %02X\n", info.Model)
	fmt.Printf("Firmware: %d.%d\n", info.VersionMajor, info.VersionMinor)
	fmt.Printf("Address:  %s\n", info.Addr)
	fmt.Printf("Panel:    %d x %d pixels\n", info.PixelColumns, info.PixelRows)
	return nil
}
