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

// fillpanel floods the panel with one solid color: it detects the card,
// streams every row each pass, and latches with a display frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	colorlight "github.com/PixelGridProject/go-colorlight"
	"github.com/PixelGridProject/go-colorlight/transport/ethernet"
)

func main() {
	iface := flag.String("interface", "eth0", "Network interface the card is attached to")
	color := flag.String("color", "FF0000", "Fill color as RRGGBB hex")
	interval := flag.Duration("interval", 10*time.Millisecond, "Delay between refresh passes")
	flag.Parse()

	r, g, b, err := parseColor(*color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fillpanel: %v\n", err)
		os.Exit(1)
	}

	if err := run(*iface, r, g, b, *interval); err != nil {
		fmt.Fprintf(os.Stderr, "fillpanel: %v\n", err)
		os.Exit(1)
	}
}

func parseColor(s string) (r, g, b byte, err error) {
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("color %q: want RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", s, err)
	}
	return byte(v >> 16), byte(v >> 8), byte(v), nil
}

func run(iface string, r, g, b byte, interval time.Duration) error {
	tr, err := ethernet.New(iface)
	if err != nil {
		return err
	}

	card, err := colorlight.New(tr)
	if err != nil {
		_ = tr.Close()
		return err
	}
	defer card.Close()

	info, err := card.DetectReceiver()
	if err != nil {
		return err
	}
	fmt.Println(info)

	// One row of BGR pixels, reused for every row of the panel.
	row := make([]byte, int(info.PixelColumns)*3)
	for i := 0; i < len(row); i += 3 {
		row[i] = b
		row[i+1] = g
		row[i+2] = r
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		for y := uint16(0); y < info.PixelRows; y++ {
			if err := card.SendRow(y, row); err != nil {
				return err
			}
		}
		if err := card.SendDisplayFrame(0xFF, 0xFF, 0xFF, 0x05); err != nil {
			return err
		}

		select {
		case <-stop:
			return nil
		case <-ticker.C:
		}
	}
}
