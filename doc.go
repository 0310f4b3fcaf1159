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

/*
Package colorlight drives Colorlight 5A-75 LED receiver cards over raw
Ethernet frames. The cards speak directly at the link layer - there is no
IP or UDP involved - so the library talks through an AF_PACKET socket bound
to one network interface and addresses the card by its hardware address.

Features:
  - Receiver card detection (broadcast query, parsed identity reply)
  - Display commands (per-channel brightness, color temperature)
  - Row-based pixel streaming (BGR data, chunked to the link MTU)
  - Typed, inspectable errors; no internal retries or background tasks
  - Opt-in retry wrapper for callers that want resend-on-failure

Basic Usage:

	import (
	    "github.com/PixelGridProject/go-colorlight"
	    "github.com/PixelGridProject/go-colorlight/transport/ethernet"
	)

	// Open a raw Ethernet transport (requires CAP_NET_RAW on Linux)
	tr, err := ethernet.New("eth0")
	if err != nil {
	    log.Fatal(err)
	}

	// Create the card session; it owns the transport from here on
	card, err := colorlight.New(tr, colorlight.WithTimeout(2*time.Second))
	if err != nil {
	    tr.Close()
	    log.Fatal(err)
	}
	defer card.Close()

	// Find the card and learn its address
	info, err := card.DetectReceiver()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(info)

	// Stream a frame row by row, then latch it onto the panel
	row := make([]byte, int(info.PixelColumns)*3) // BGR
	for y := uint16(0); y < info.PixelRows; y++ {
	    if err := card.SendRow(y, row); err != nil {
	        log.Fatal(err)
	    }
	}
	if err := card.SendDisplayFrame(0xFF, 0xFF, 0xFF, 0x05); err != nil {
	    log.Fatal(err)
	}

A Card is not safe for concurrent use; wrap it with a mutex if multiple
goroutines must share one session.
*/
package colorlight
