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

package frame

// ChecksumVersion identifies the trailer scheme this build speaks. The
// trailer algorithm is firmware-defined and not publicly documented; bump
// this constant when the scheme changes.
const ChecksumVersion = 1

// Checksum computes a one-byte integrity trailer over a frame payload.
type Checksum func(payload []byte) byte

// Sum8 is the additive 8-bit checksum: the truncated sum of all payload
// bytes. Wire captures of stock 5A-75 firmware show no trailer on any
// family, so version 1 attaches none (plain Encode/Decode); Sum8 with
// EncodeWith/DecodeWith serves firmware that checks one.
func Sum8(payload []byte) byte {
	var sum byte
	for _, b := range payload {
		sum += b
	}
	return sum
}
